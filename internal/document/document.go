// Package document 负责 YAML/JSON 文档与动态树（map[string]any / []any）之间的转换。
package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	yamlv3 "go.yaml.in/yaml/v3"
)

// Format 文档格式。
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ErrUnknownFormat 表示无法识别的格式名称。
var ErrUnknownFormat = errors.New("unknown document format")

// ParseFormat 解析格式名称，支持 yaml / yml / json（不区分大小写）。
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatFromPath 根据文件扩展名推断格式，.json 为 JSON，其余（含 stdin "-"）按 YAML 处理。
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}

	return FormatYAML
}

// Decode 将文档解析为动态树。
//
// YAML 中非字符串的 map key 会被转换为字符串；JSON 数字保留为 [json.Number]，
// 以便重新编码时不丢失精度。空文档返回 nil。
func Decode(format Format, content []byte) (any, error) {
	var raw any
	switch format {
	case FormatJSON:
		if len(bytes.TrimSpace(content)) == 0 {
			return nil, nil
		}
		dec := json.NewDecoder(bytes.NewReader(content))
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	case FormatYAML:
		if err := yamlv3.Unmarshal(content, &raw); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return NormalizeKeys(raw), nil
}

// DecodeObject 与 [Decode] 相同，但要求根节点为对象；空文档返回空 map。
func DecodeObject(format Format, content []byte) (map[string]any, error) {
	raw, err := Decode(format, content)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return map[string]any{}, nil
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, errors.New("document root must be object")
	}

	return obj, nil
}

// Encode 将动态树编码为指定格式。
//
// JSON 使用两空格缩进，YAML 使用两空格缩进；两者都以换行结尾。
func Encode(format Format, value any) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(value); err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}
	case FormatYAML:
		enc := yamlv3.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(yamlNumbers(value)); err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return buf.Bytes(), nil
}

// NormalizeKeys 将 map[any]any 递归转换为 map[string]any。
//
// 返回新的树，不修改输入。
func NormalizeKeys(val any) any {
	switch typed := val.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, value := range typed {
			out[key] = NormalizeKeys(value)
		}

		return out
	case map[any]any:
		out := make(map[string]any, len(typed))
		for key, value := range typed {
			out[fmt.Sprintf("%v", key)] = NormalizeKeys(value)
		}

		return out
	case []any:
		out := make([]any, len(typed))
		for i := range typed {
			out[i] = NormalizeKeys(typed[i])
		}

		return out
	default:
		return val
	}
}

// yamlNumbers 将 [json.Number] 转为 int64 / float64，避免 YAML 输出为带引号的字符串。
func yamlNumbers(val any) any {
	switch typed := val.(type) {
	case json.Number:
		if i, err := typed.Int64(); err == nil {
			return i
		}
		if f, err := typed.Float64(); err == nil {
			return f
		}

		return typed.String()
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, value := range typed {
			out[key] = yamlNumbers(value)
		}

		return out
	case []any:
		out := make([]any, len(typed))
		for i := range typed {
			out[i] = yamlNumbers(typed[i])
		}

		return out
	default:
		return val
	}
}
