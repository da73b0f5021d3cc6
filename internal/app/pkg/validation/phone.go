package validation

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// KindPhone 手机号约束（自定义扩展约束的示例实现）
const KindPhone = "phone"

// phonePattern 大陆手机号：1 开头，第二位 3~9，共 11 位
// 两端锚定，带前后缀的串一律拒绝
var phonePattern = regexp.MustCompile(`^1[3-9]\d{9}$`)

func init() {
	MustRegister(Kind{
		Name:           KindPhone,
		Check:          checkPhone,
		DefaultMessage: "invalid phone number",
	})
}

func checkPhone(value interface{}, _ Params) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	return phonePattern.MatchString(s)
}

// InstallBinding 把 phone 约束同步注册进 gin 的 binding 引擎
// 使 binding:"phone" 标签与规则列表共用同一判定
func InstallBinding() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation(KindPhone, func(fl validator.FieldLevel) bool {
			return checkPhone(fl.Field().String(), nil)
		})
	}
}
