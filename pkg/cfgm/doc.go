// Package cfgm 提供通用的配置加载功能。
//
// 支持 YAML/JSON，按默认值、配置文件、占位符替换、环境变量与 CLI flags 逐层覆盖。
// 配置 key 使用 json tag 统一描述，YAML 与 JSON 共享同一套 key。
//
// # 加载优先级 (从低到高)
//
//  1. 默认值 - 通过 defaultConfig 参数传入
//  2. 配置文件 - 通过 [WithConfigPaths] 或 [WithAppName] 设置
//  3. 占位符替换 - 对默认值与配置文件中的字符串执行 ${VAR} 替换
//  4. 环境变量(前缀) - 通过 [WithEnvPrefix] 自动生成绑定
//  5. CLI flags - 通过 [WithCommand] 选项设置，最高优先级
//
// # 快速开始
//
//	type Config struct {
//	    Name    string        `json:"name"    desc:"应用名称"`
//	    Debug   bool          `json:"debug"   desc:"调试模式"`
//	    Timeout time.Duration `json:"timeout" desc:"超时时间"`
//	}
//
//	cfg, err := cfgm.LoadCmd(cmd, DefaultConfig(), "myapp",
//	    cfgm.WithEnvPrefix("MYAPP_"),
//	)
//
// # 占位符替换
//
// 替换发生在解析之后、解码之前，作用于配置树中的字符串值，由
// [github.com/lwmacct/251016-go-pkg-envsub/pkg/envsub] 实现：
//   - 仅识别 ${NAME}，不解析 $NAME、默认值与转义
//   - 未设置的变量替换为空字符串；[WithStrictSubstitution] 改为报错
//   - 配置 key 不参与替换
//
// 由于替换作用于解析后的值，变量值中的引号、冒号或换行不会破坏 YAML/JSON 结构。
//
//	# config.yaml
//	api_key: "${OPENAI_API_KEY}"
//	base_url: "https://${API_HOST}/v1"
//
// # 环境变量(前缀)
//
// 通过 [WithEnvPrefix] 启用，前缀 + 大写 key，"." 与 "-" 转为 "_"：
//   - MYAPP_DEBUG → debug
//   - MYAPP_CLIENT_REV_AUTH_USER → client.rev-auth-user
//
// # CLI Flag 映射
//
// 仅替换 "." 为 "-"，见 [FlagName]：
//   - server.url → --server-url
//
// # 生成配置示例
//
//	yaml := cfgm.ExampleYAML(defaultConfig)
//	os.WriteFile("config.example.yaml", yaml, 0644)
package cfgm
