package envsub

import (
	"slices"
	"strings"
)

// MissingError 列出无法解析的变量名（已排序、去重）。
type MissingError struct {
	Names []string
}

func (e *MissingError) Error() string {
	return "envsub: missing variables: " + strings.Join(e.Names, ", ")
}

// Placeholders 返回 value 中引用的全部变量名，已排序、去重。
func Placeholders(value any) []string {
	rec := &recorder{}
	_ = substitute(value, rec)

	return sortedUnique(rec.names)
}

// Missing 返回 value 中 lookup 无法解析的变量名，已排序、去重。
//
// 值为空字符串但已设置的变量不算缺失。
func Missing(value any, lookup Reader) []string {
	rec := &recorder{next: lookup}
	_ = substitute(value, rec)

	return sortedUnique(rec.missing)
}

// SubstituteStrict 与 [Substitute] 相同，但任一占位符无法解析时返回 [*MissingError]。
//
// 出错时返回原始 value，不做任何替换。
func SubstituteStrict[T any](value T, lookup Reader) (T, error) {
	rec := &recorder{next: lookup}
	out := Substitute(value, rec)
	if len(rec.missing) > 0 {
		return value, &MissingError{Names: sortedUnique(rec.missing)}
	}

	return out, nil
}

func sortedUnique(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	out := slices.Clone(names)
	slices.Sort(out)

	return slices.Compact(out)
}
