// Package logging 创建进程级 [*slog.Logger]。
//
// 默认 Text 格式、INFO 级别、输出到 stderr，时间戳格式为 RFC3339。
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Format 日志输出格式。
type Format int

const (
	// FormatText 人类可读的 key=value 格式。
	FormatText Format = iota
	// FormatJSON 每行一个 JSON 对象。
	FormatJSON
)

type config struct {
	format Format
	level  slog.Leveler
	output io.Writer
}

// Option 配置 [New] 创建的 logger。
type Option func(*config)

// WithFormat 设置输出格式。
func WithFormat(f Format) Option {
	return func(c *config) {
		c.format = f
	}
}

// WithLevel 设置最低日志级别，可传入 [*slog.LevelVar] 以便运行时调整。
func WithLevel(l slog.Leveler) Option {
	return func(c *config) {
		c.level = l
	}
}

// WithOutput 设置输出目标。
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		c.output = w
	}
}

// New 创建 logger。
func New(opts ...Option) *slog.Logger {
	cfg := &config{
		format: FormatText,
		level:  slog.LevelInfo,
		output: os.Stderr,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	handlerOpts := &slog.HandlerOptions{
		Level:       cfg.level,
		ReplaceAttr: replaceAttr,
	}

	var handler slog.Handler
	switch cfg.format {
	case FormatJSON:
		handler = slog.NewJSONHandler(cfg.output, handlerOpts)
	default:
		handler = slog.NewTextHandler(cfg.output, handlerOpts)
	}

	return slog.New(handler)
}

// ParseLevel 解析 debug / info / warn / error（不区分大小写），空字符串视为 info。
func ParseLevel(name string) (slog.Level, error) {
	if strings.TrimSpace(name) == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelInfo, fmt.Errorf("parse log level %q: %w", name, err)
	}

	return level, nil
}

// ParseFormat 解析 text / json，空字符串视为 text。
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	}

	return FormatText, fmt.Errorf("unknown log format %q", name)
}

// replaceAttr 将时间格式化为 RFC3339。
func replaceAttr(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey {
		if t, ok := a.Value.Any().(time.Time); ok {
			a.Value = slog.StringValue(t.Format(time.RFC3339))
		}
	}

	return a
}
