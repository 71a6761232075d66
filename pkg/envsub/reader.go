package envsub

//go:generate mockgen -source=reader.go -destination=mocks/mock_reader.go -package=mocks Reader

import "os"

// Reader 是占位符的查找来源。
type Reader interface {
	// LookupEnv 返回 name 对应的值，以及该值是否存在。
	LookupEnv(name string) (string, bool)
}

// OSReader 从进程环境变量查找。
type OSReader struct{}

// LookupEnv 实现 [Reader]。
func (OSReader) LookupEnv(name string) (string, bool) {
	return os.LookupEnv(name)
}

// MapReader 从内存 map 查找，常用于测试或预先采集的环境快照。
type MapReader map[string]string

// LookupEnv 实现 [Reader]。
func (m MapReader) LookupEnv(name string) (string, bool) {
	val, ok := m[name]

	return val, ok
}

// LookupFunc 将普通函数适配为 [Reader]。
type LookupFunc func(name string) (string, bool)

// LookupEnv 实现 [Reader]。
func (f LookupFunc) LookupEnv(name string) (string, bool) {
	return f(name)
}

// recorder 记录所有被查询的变量名，并将查询转发给 next（可为 nil）。
type recorder struct {
	next    Reader
	names   []string
	missing []string
}

func (r *recorder) LookupEnv(name string) (string, bool) {
	r.names = append(r.names, name)
	if r.next == nil {
		return "", false
	}
	val, ok := r.next.LookupEnv(name)
	if !ok {
		r.missing = append(r.missing, name)
	}

	return val, ok
}
