package request

import "ucenter/internal/app/pkg/validation"

// CreateUserRequest 创建用户请求（DTO）
type CreateUserRequest struct {
	Account  string `json:"account"`
	Password string `json:"password"`
	Nickname string `json:"nickname"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// Rules 字段约束，按字段声明顺序排列
// 校验管道只透出第一条违反的约束
func (r *CreateUserRequest) Rules() []validation.Rule {
	return []validation.Rule{
		{
			Field:   "account",
			Value:   r.Account,
			Kind:    validation.KindNotBlank,
			Message: "account is required",
		},
		{
			Field:   "account",
			Value:   r.Account,
			Kind:    validation.KindLength,
			Params:  validation.Params{"min": 6, "max": 11},
			Message: "account length must be between 6 and 11",
		},
		{
			Field:   "password",
			Value:   r.Password,
			Kind:    validation.KindNotBlank,
			Message: "password is required",
		},
		{
			Field:   "password",
			Value:   r.Password,
			Kind:    validation.KindLength,
			Params:  validation.Params{"min": 6, "max": 20},
			Message: "password length must be between 6 and 20",
		},
		{
			Field:   "nickname",
			Value:   r.Nickname,
			Kind:    validation.KindLength,
			Params:  validation.Params{"max": 30},
			Message: "nickname is too long",
		},
		{
			Field:   "email",
			Value:   r.Email,
			Kind:    validation.KindNotBlank,
			Message: "email is required",
		},
		{
			Field:   "email",
			Value:   r.Email,
			Kind:    validation.KindEmail,
			Message: "invalid email format",
		},
		{
			Field:   "phone",
			Value:   r.Phone,
			Kind:    validation.KindPhone,
			Message: "invalid phone number",
		},
	}
}
