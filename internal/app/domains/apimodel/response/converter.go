package response

import "ucenter/internal/app/domains/entity/etuser"

// FromUserEntity 从领域对象转换为响应 DTO
func FromUserEntity(user *etuser.User) *UserResponse {
	return &UserResponse{
		ID:         user.ID,
		Account:    user.Account,
		Nickname:   user.Nickname,
		Email:      user.Email,
		Phone:      user.Phone,
		CreateUser: user.Audit.CreateUser,
		CreateTime: user.Audit.CreateTime,
		ModifyUser: user.Audit.ModifyUser,
		ModifyTime: user.Audit.ModifyTime,
	}
}

// FromUserEntities 批量转换
func FromUserEntities(users []*etuser.User) []*UserResponse {
	list := make([]*UserResponse, 0, len(users))
	for _, u := range users {
		list = append(list, FromUserEntity(u))
	}
	return list
}
