// Package command 提供 envsub 的子命令与共享的加载逻辑。
package command

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251016-go-pkg-envsub/internal/config"
	"github.com/lwmacct/251016-go-pkg-envsub/internal/logging"
	"github.com/lwmacct/251016-go-pkg-envsub/internal/version"
	"github.com/lwmacct/251016-go-pkg-envsub/pkg/cfgm"
)

// Defaults 为默认配置的单一来源，子命令 flag 的默认值引用它。
var Defaults = config.DefaultConfig()

// GlobalFlags 返回根命令上的 flags，子命令继承。
func GlobalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "配置文件路径（必须存在）",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Value: Defaults.Log.Level,
			Usage: "日志级别 (debug|info|warn|error)",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Value: Defaults.Log.Format,
			Usage: "日志格式 (text|json)",
		},
	}
}

// Setup 加载工具配置并安装默认 logger。
func Setup(cmd *cli.Command) (*config.Config, error) {
	opts := []cfgm.Option{cfgm.WithEnvPrefix(config.EnvPrefix)}
	if path := cmd.String("config"); path != "" {
		opts = append(opts, cfgm.WithRequiredConfig(path))
	} else {
		opts = append(opts, cfgm.WithConfigPaths(cfgm.AppPaths(version.AppRawName)...))
	}

	cfg, err := cfgm.LoadCmd(cmd, config.DefaultConfig(), version.AppRawName, opts...)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	format, err := logging.ParseFormat(cfg.Log.Format)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logging.New(
		logging.WithLevel(level),
		logging.WithFormat(format),
		logging.WithOutput(cmd.Root().ErrWriter),
	))

	return cfg, nil
}

// ReadInput 读取输入文件；path 为空或 "-" 时读取根命令的 Reader（默认 stdin）。
func ReadInput(cmd *cli.Command, path string) ([]byte, error) {
	if path == "" || path == "-" {
		reader := cmd.Root().Reader
		if reader == nil {
			reader = os.Stdin
		}
		content, err := io.ReadAll(reader)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}

		return content, nil
	}

	content, err := os.ReadFile(path) //nolint:gosec // path comes from CLI args
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	return content, nil
}
