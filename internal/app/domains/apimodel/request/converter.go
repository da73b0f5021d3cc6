package request

import "ucenter/internal/app/domains/entity/etuser"

// ToUserEntity 将创建请求转换为领域对象，ID 由服务层补齐
func (r *CreateUserRequest) ToUserEntity() (*etuser.User, error) {
	return etuser.NewUser(0, r.Account, r.Password, r.Nickname, r.Email, r.Phone)
}

// ApplyTo 将更新请求的可变字段写入领域对象
func (r *UpdateUserRequest) ApplyTo(user *etuser.User) {
	user.Nickname = r.Nickname
	user.Email = r.Email
	user.Phone = r.Phone
}
