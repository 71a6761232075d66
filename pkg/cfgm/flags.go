package cfgm

import (
	"reflect"
	"strings"

	"github.com/urfave/cli/v3"
)

// FlagName 返回配置 key 对应的 CLI flag 名称，仅将 "." 替换为 "-"。
//
// 映射示例：
//   - server.url → server-url
//   - tls.skip_verify → tls-skip_verify
func FlagName(key string) string {
	return strings.ReplaceAll(key, ".", "-")
}

// applyCLIFlags 将用户显式设置的 CLI flags 写入配置 map。
//
// 只处理 cmd.IsSet 为 true 的 flag，未设置的 flag 默认值不会覆盖配置文件。
func applyCLIFlags[T any](cmd *cli.Command, configMap map[string]any, defaultConfig T) {
	walkConfigFields(reflect.TypeOf(defaultConfig), func(f configField) {
		if f.nested {
			return
		}
		name := FlagName(f.key)
		if !cmd.IsSet(name) {
			return
		}
		if val, ok := flagValue(cmd, name, f.field.Type); ok {
			setByPath(configMap, f.key, val)
		}
	})
}

// flagValue 按字段类型读取 flag 值，不支持的类型返回 false。
func flagValue(cmd *cli.Command, name string, typ reflect.Type) (any, bool) {
	switch typ {
	case durationType:
		return cmd.Duration(name), true
	case timeType:
		return cmd.Timestamp(name), true
	}

	switch typ.Kind() {
	case reflect.String:
		return cmd.String(name), true
	case reflect.Bool:
		return cmd.Bool(name), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32:
		return cmd.Int(name), true
	case reflect.Int64:
		return cmd.Int64(name), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return cmd.Uint(name), true
	case reflect.Uint64:
		return cmd.Uint64(name), true
	case reflect.Float32, reflect.Float64:
		return cmd.Float64(name), true
	case reflect.Slice:
		switch typ.Elem().Kind() {
		case reflect.String:
			return cmd.StringSlice(name), true
		case reflect.Int:
			return cmd.IntSlice(name), true
		case reflect.Float64:
			return cmd.Float64Slice(name), true
		}
	case reflect.Map:
		if typ.Key().Kind() == reflect.String && typ.Elem().Kind() == reflect.String {
			return cmd.StringMap(name), true
		}
	}

	return nil, false
}
