package response

import "time"

// UserResponse 用户响应，密码永不输出
type UserResponse struct {
	ID         int64     `json:"id" example:"1"`
	Account    string    `json:"account" example:"user01"`
	Nickname   string    `json:"nickname" example:"John"`
	Email      string    `json:"email" example:"john@example.com"`
	Phone      string    `json:"phone" example:"13800138000"`
	CreateUser string    `json:"create_user" example:"system"`
	CreateTime time.Time `json:"create_time" example:"2024-01-01T00:00:00Z"`
	ModifyUser string    `json:"modify_user" example:"system"`
	ModifyTime time.Time `json:"modify_time" example:"2024-01-01T00:00:00Z"`
}
