package validation

import (
	"fmt"
	"sync"
)

// Params 约束参数，如 length 的 min/max
type Params map[string]interface{}

// Int 读取整型参数，缺失或类型不符时返回默认值
func (p Params) Int(key string, def int) int {
	switch v := p[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return def
	}
}

// Float 读取浮点参数，缺失或类型不符时返回默认值
func (p Params) Float(key string, def float64) float64 {
	switch v := p[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return def
	}
}

// Violation 校验失败信息，产生后立即被转换为失败响应
type Violation struct {
	Field   string
	Message string
}

// CheckFunc 约束判定函数，true 表示通过
type CheckFunc func(value interface{}, params Params) bool

// Kind 命名约束：判定函数 + 默认提示
type Kind struct {
	Name           string
	Check          CheckFunc
	DefaultMessage string
}

var (
	kindMu sync.RWMutex
	kinds  = make(map[string]Kind)
)

// Register 注册约束类型，重名注册返回错误
func Register(k Kind) error {
	if k.Name == "" || k.Check == nil {
		return fmt.Errorf("validation: kind requires name and check func")
	}
	kindMu.Lock()
	defer kindMu.Unlock()
	if _, ok := kinds[k.Name]; ok {
		return fmt.Errorf("validation: kind %q already registered", k.Name)
	}
	kinds[k.Name] = k
	return nil
}

// MustRegister 注册约束类型，失败直接 panic（启动期配置错误）
func MustRegister(k Kind) {
	if err := Register(k); err != nil {
		panic(err)
	}
}

// lookupKind 查询约束类型
func lookupKind(name string) (Kind, bool) {
	kindMu.RLock()
	defer kindMu.RUnlock()
	k, ok := kinds[name]
	return k, ok
}

// Rule 字段约束描述：字段名 + 待校验值 + 约束类型 + 参数 + 提示
// 一个请求对象按字段声明顺序给出规则列表
type Rule struct {
	Field   string
	Value   interface{}
	Kind    string
	Params  Params
	Message string
}

// First 按声明顺序逐条校验，返回第一条违反的约束，全部通过返回 nil
// 后续规则在命中第一条违反后不再求值
func First(rules []Rule) *Violation {
	for _, r := range rules {
		k, ok := lookupKind(r.Kind)
		if !ok {
			panic(fmt.Sprintf("validation: unknown kind %q on field %q", r.Kind, r.Field))
		}
		if k.Check(r.Value, r.Params) {
			continue
		}
		msg := r.Message
		if msg == "" {
			msg = k.DefaultMessage
		}
		return &Violation{Field: r.Field, Message: msg}
	}
	return nil
}
