package request

import "ucenter/internal/app/pkg/validation"

// UpdateUserRequest 更新用户请求（DTO），账号不可变更
type UpdateUserRequest struct {
	Nickname string `json:"nickname"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// Rules 字段约束，按字段声明顺序排列
func (r *UpdateUserRequest) Rules() []validation.Rule {
	return []validation.Rule{
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
