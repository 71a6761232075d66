// Package envsub 对任意嵌套结构中的字符串叶子执行 ${VAR} 占位符替换。
//
// 输入可以是反序列化得到的动态树（[]any / map[string]any），也可以是带类型的
// 切片、map、结构体与指针。输出与输入形状完全一致，只有字符串内容可能变化；
// 输入本身不会被修改。
//
// # 替换规则
//
//  1. 仅识别 ${name}，name 至少一个字符，遇到第一个 "}" 即结束（不支持嵌套）
//  2. 同一字符串中的多个占位符在一次从左到右的扫描中各自替换
//  3. 查找失败时替换为空字符串，不返回错误
//  4. map 的 key 不参与替换；结构体只处理导出字段
//
// 不支持 $VAR、默认值（${VAR:-x}）与 "$$" 转义。
//
// # 查找来源
//
// 环境变量通过 [Reader] 显式注入，核心函数不会隐式读取进程环境：
//
//	out := envsub.Substitute(tree, envsub.OSReader{})
//	out := envsub.Substitute(tree, envsub.MapReader{"HOST": "db"})
//
// [SubstituteEnv] 是使用 [OSReader] 的便捷写法。
//
// # 幂等性
//
// 替换不是幂等的：若变量值本身包含 ${...}，再次替换会继续展开。
//
// # 严格模式
//
// [SubstituteStrict] 在任一占位符无法解析时返回 [*MissingError]，
// [Placeholders] 与 [Missing] 可用于事先检查引用了哪些变量。
package envsub
