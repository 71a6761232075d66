package cfgm

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251016-go-pkg-envsub/internal/document"
	"github.com/lwmacct/251016-go-pkg-envsub/pkg/envsub"
)

// AppPaths 返回应用专属的配置文件搜索路径。
//
// 优先级 (从高到低)：
//  1. ./.appname.yaml - 当前目录应用配置
//  2. ~/.appname.yaml - 用户主目录配置
//  3. /etc/appname/config.yaml - 系统级配置
func AppPaths(appName string) []string {
	if appName == "" {
		return nil
	}

	paths := []string{"." + appName + ".yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, "."+appName+".yaml"))
	}

	return append(paths, "/etc/"+appName+"/config.yaml")
}

// DefaultPaths 返回默认配置文件的搜索顺序：[AppPaths] 之后追加
// config.yaml 与 config/config.yaml。
func DefaultPaths(appName ...string) []string {
	var paths []string
	if len(appName) > 0 {
		paths = AppPaths(appName[0])
	}

	return append(paths, "config.yaml", "config/config.yaml")
}

// Load 读取配置并按优先级合并。
//
// 优先级 (从低到高)：
//  1. 默认值 - defaultConfig
//  2. 配置文件 - [WithConfigPaths] / [WithAppName]
//  3. 占位符替换 - 对 1、2 合并后的字符串执行 ${VAR} 替换（[WithoutSubstitution] 可关闭）
//  4. 环境变量(前缀) - [WithEnvPrefix]
//  5. CLI flags - [WithCommand]
//
// 环境变量与 CLI flags 的值不再做占位符替换。
func Load[T any](defaultConfig T, opts ...Option) (*T, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.lookup == nil {
		o.lookup = envsub.OSReader{}
	}
	if len(o.configPaths) == 0 {
		if o.appName != "" {
			o.configPaths = DefaultPaths(o.appName)
		} else {
			o.configPaths = DefaultPaths()
		}
	}

	configMap := structToMap(defaultConfig)

	// 配置文件 (按顺序搜索，找到第一个即停止)
	fileMap, err := loadFirstFile(o)
	if err != nil {
		return nil, err
	}
	mergeMaps(configMap, fileMap)

	if !o.noSubstitution {
		if o.strict {
			configMap, err = envsub.SubstituteStrict(configMap, o.lookup)
			if err != nil {
				return nil, fmt.Errorf("substitute config: %w", err)
			}
		} else {
			configMap = envsub.Substitute(configMap, o.lookup)
		}
	}

	if o.envPrefix != "" {
		applyEnvPrefix(configMap, o.envPrefix, collectConfigKeys(defaultConfig), o.lookup)
	}

	if o.cmd != nil {
		applyCLIFlags(o.cmd, configMap, defaultConfig)
	}

	var cfg T
	if err := decodeConfigMap(configMap, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// LoadCmd 是 [Load] 的便捷版本，适用于 CLI 场景。
//
// 它会注入 [WithCommand]，appName 非空时额外注入 [WithAppName]。
func LoadCmd[T any](cmd *cli.Command, defaultConfig T, appName string, opts ...Option) (*T, error) {
	return Load(defaultConfig, cmdOptions(cmd, appName, opts)...)
}

// MustLoad 调用 [Load] 并在失败时 panic，适合启动阶段。
func MustLoad[T any](defaultConfig T, opts ...Option) *T {
	cfg, err := Load(defaultConfig, opts...)
	if err != nil {
		panic(fmt.Sprintf("cfgm: failed to load config: %v", err))
	}

	return cfg
}

// MustLoadCmd 调用 [LoadCmd] 并在失败时 panic，适合启动阶段。
func MustLoadCmd[T any](cmd *cli.Command, defaultConfig T, appName string, opts ...Option) *T {
	cfg, err := LoadCmd(cmd, defaultConfig, appName, opts...)
	if err != nil {
		panic(fmt.Sprintf("cfgm: failed to load config: %v", err))
	}

	return cfg
}

func cmdOptions(cmd *cli.Command, appName string, opts []Option) []Option {
	base := []Option{WithCommand(cmd)}
	if appName != "" {
		base = append(base, WithAppName(appName))
	}

	return append(base, opts...)
}

// loadFirstFile 返回第一个可读配置文件的内容，均不存在时返回 nil。
func loadFirstFile(o *options) (map[string]any, error) {
	for _, path := range o.configPaths {
		if o.baseDir != "" && !filepath.IsAbs(path) {
			path = filepath.Join(o.baseDir, path)
		}

		content, err := os.ReadFile(path) //nolint:gosec // path is from trusted config
		if err != nil {
			if o.mustExist {
				return nil, fmt.Errorf("read config file: %w", err)
			}
			if !errors.Is(err, os.ErrNotExist) {
				slog.Debug("Skip unreadable config file", "path", path, "error", err)
			}

			continue
		}

		fileMap, err := document.DecodeObject(document.FormatFromPath(path), content)
		if err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
		slog.Debug("Loaded config from file", "path", path, "substitution", !o.noSubstitution)

		return fileMap, nil
	}

	slog.Debug("No config file found, using defaults", "paths", strings.Join(o.configPaths, ","))

	return nil, nil
}

// applyEnvPrefix 将带前缀的环境变量写入配置 map。
//
// 仅匹配结构体中定义的 key，值为空字符串的变量会被忽略。
func applyEnvPrefix(configMap map[string]any, prefix string, keys []string, lookup envsub.Reader) {
	replacer := strings.NewReplacer(".", "_", "-", "_")
	for _, key := range keys {
		envKey := prefix + strings.ToUpper(replacer.Replace(key))
		if val, ok := lookup.LookupEnv(envKey); ok && val != "" {
			setByPath(configMap, key, val)
			slog.Debug("Loaded env binding", "env", envKey, "path", key)
		}
	}
}
