// Package config 提供 envsub 命令行工具自身的配置。
//
// 配置加载优先级 (从低到高)：
//  1. 默认值 - DefaultConfig() 函数中定义
//  2. 配置文件 - --config 指定，或 .envsub.yaml / ~/.envsub.yaml / /etc/envsub/config.yaml
//  3. 环境变量 - ENVSUB_ 前缀，如 ENVSUB_RENDER_STRICT=true
//  4. CLI flags - 如 --render-strict
package config

// EnvPrefix 工具自身配置的环境变量前缀。
const EnvPrefix = "ENVSUB_"

// Config 应用配置。
type Config struct {
	Render RenderConfig `json:"render" desc:"render 子命令配置"`
	Log    LogConfig    `json:"log" desc:"日志配置"`
}

// RenderConfig render 子命令配置。
type RenderConfig struct {
	InputFormat string `json:"input-format" desc:"输入格式 (yaml|json)，留空按扩展名推断"`
	Format      string `json:"format" desc:"输出格式 (yaml|json)，留空与输入一致"`
	Output      string `json:"output" desc:"输出文件路径，留空或 - 写入 stdout"`
	Strict      bool   `json:"strict" desc:"存在未设置的变量时报错"`
}

// LogConfig 日志配置。
type LogConfig struct {
	Level  string `json:"level" desc:"日志级别 (debug|info|warn|error)"`
	Format string `json:"format" desc:"日志格式 (text|json)"`
}

// DefaultConfig 返回默认配置。
func DefaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}
