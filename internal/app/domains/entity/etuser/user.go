package etuser

import (
	"errors"

	"ucenter/internal/app/domains/entity/etprimitive"
)

// 错误定义
var (
	ErrInvalidUserID  = errors.New("invalid user ID")
	ErrInvalidAccount = errors.New("account cannot be empty")
)

// User 用户实体
type User struct {
	ID       int64  // 用户ID
	Account  string // 登录账号
	Password string // 密码（本系统不负责散列，响应层永不输出）
	Nickname string // 昵称
	Email    string // 邮箱
	Phone    string // 手机号

	Audit etprimitive.AuditInfo // 审计字段
}

// NewUser 创建用户（工厂方法）
// id 为 0 表示新建用户，ID 由 ID 生成器补齐
func NewUser(id int64, account, password, nickname, email, phone string) (*User, error) {
	// 业务规则校验，格式类约束由请求校验管道负责
	if id < 0 {
		return nil, ErrInvalidUserID
	}
	if account == "" {
		return nil, ErrInvalidAccount
	}

	return &User{
		ID:       id,
		Account:  account,
		Password: password,
		Nickname: nickname,
		Email:    email,
		Phone:    phone,
	}, nil
}
