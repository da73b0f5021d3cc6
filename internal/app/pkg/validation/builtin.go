package validation

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// engine 内置约束委托的第三方校验引擎（email 等格式类校验）
var engine = validator.New()

// 内置约束类型
const (
	KindNotBlank = "notblank"
	KindLength   = "length"
	KindEmail    = "email"
	KindRange    = "range"
)

func init() {
	MustRegister(Kind{
		Name:           KindNotBlank,
		Check:          checkNotBlank,
		DefaultMessage: "field must not be blank",
	})
	MustRegister(Kind{
		Name:           KindLength,
		Check:          checkLength,
		DefaultMessage: "field length out of range",
	})
	MustRegister(Kind{
		Name:           KindEmail,
		Check:          checkEmail,
		DefaultMessage: "invalid email format",
	})
	MustRegister(Kind{
		Name:           KindRange,
		Check:          checkRange,
		DefaultMessage: "value out of range",
	})
}

// checkNotBlank 非空约束：nil 失败，字符串要求去空白后非空
func checkNotBlank(value interface{}, _ Params) bool {
	if value == nil {
		return false
	}
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s) != ""
	}
	return engine.Var(value, "required") == nil
}

// checkLength 字符串长度约束，按 Unicode 字符数计，区间 [min, max]
func checkLength(value interface{}, params Params) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	n := utf8.RuneCountInString(s)
	min := params.Int("min", 0)
	max := params.Int("max", int(^uint(0)>>1))
	return n >= min && n <= max
}

// checkEmail 邮箱格式约束，委托校验引擎
func checkEmail(value interface{}, _ Params) bool {
	s, ok := value.(string)
	if !ok || s == "" {
		return false
	}
	return engine.Var(s, "email") == nil
}

// checkRange 数值区间约束 [min, max]
func checkRange(value interface{}, params Params) bool {
	f, ok := toFloat(value)
	if !ok {
		return false
	}
	min := params.Float("min", -math.MaxFloat64)
	max := params.Float("max", math.MaxFloat64)
	return f >= min && f <= max
}

func toFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}
