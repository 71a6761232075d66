package cfgm

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251016-go-pkg-envsub/pkg/envsub"
)

// options 配置加载选项。
type options struct {
	appName        string // 应用名称，用于生成默认配置路径
	cmd            *cli.Command
	configPaths    []string
	mustExist      bool   // configPaths 中至少一个文件必须存在
	baseDir        string // 相对路径的解析基准，空字符串表示当前工作目录
	envPrefix      string
	lookup         envsub.Reader
	noSubstitution bool // 禁用 ${VAR} 占位符替换（默认启用）
	strict         bool // 占位符无法解析时报错
}

// Option 配置加载选项函数。
type Option func(*options)

// WithCommand 绑定 CLI 命令，读取显式设置的 flags 以覆盖配置（最高优先级）。
func WithCommand(cmd *cli.Command) Option {
	return func(o *options) {
		o.cmd = cmd
	}
}

// WithAppName 设置应用名称，用于生成默认搜索路径（见 [DefaultPaths]）。
func WithAppName(name string) Option {
	return func(o *options) {
		o.appName = name
	}
}

// WithConfigPaths 设置配置文件搜索路径。
//
// 按顺序查找，命中首个文件即停止；相对路径会基于 [WithBaseDir] 解析。
func WithConfigPaths(paths ...string) Option {
	return func(o *options) {
		o.configPaths = paths
	}
}

// WithRequiredConfig 指定一个必须存在的配置文件，文件无法读取时 [Load] 返回错误。
//
// 常用于用户通过 --config 显式指定配置文件的场景。
func WithRequiredConfig(path string) Option {
	return func(o *options) {
		o.configPaths = []string{path}
		o.mustExist = true
	}
}

// WithBaseDir 设置配置路径的解析基准。绝对路径不受影响。
func WithBaseDir(path string) Option {
	return func(o *options) {
		o.baseDir = path
	}
}

// WithEnvPrefix 启用环境变量前缀解析。
//
// 环境变量命名规则：
//   - 前缀 + 大写的配置 key
//   - 点号 (.) 和连字符 (-) 转为下划线 (_)
//
// 示例 (前缀为 "MYAPP_")：
//   - MYAPP_DEBUG → debug
//   - MYAPP_SERVER_URL → server.url
//   - MYAPP_CLIENT_REV_AUTH_USER → client.rev-auth-user
func WithEnvPrefix(prefix string) Option {
	return func(o *options) {
		o.envPrefix = prefix
	}
}

// WithLookup 设置环境变量来源，同时作用于占位符替换与前缀解析。
//
// 默认为 [envsub.OSReader]。
func WithLookup(lookup envsub.Reader) Option {
	return func(o *options) {
		o.lookup = lookup
	}
}

// WithoutSubstitution 禁用 ${VAR} 占位符替换，保留原始字符串。
func WithoutSubstitution() Option {
	return func(o *options) {
		o.noSubstitution = true
	}
}

// WithStrictSubstitution 在任一占位符无法解析时返回 [*envsub.MissingError]。
//
// 默认行为是替换为空字符串。
func WithStrictSubstitution() Option {
	return func(o *options) {
		o.strict = true
	}
}
