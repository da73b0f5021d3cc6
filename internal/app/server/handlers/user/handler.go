package user

import "ucenter/internal/app/domains/services/svuser"

// actorHeader 操作人请求头，缺省时记为 system
const (
	actorHeader  = "X-Operator"
	defaultActor = "system"
)

// UserHandler 用户 HTTP 处理器
type UserHandler struct {
	userService *svuser.UserService
}

// NewUserHandler 创建用户处理器实例
func NewUserHandler(userService *svuser.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}
