package rpuser

import (
	"time"

	"ucenter/internal/app/domains/entity/etprimitive"
	"ucenter/internal/app/domains/entity/etuser"
)

// UserPO 用户持久化对象，列与 t_user 表一一对应
type UserPO struct {
	ID         int64     `gorm:"column:id;primaryKey"`
	Account    string    `gorm:"column:account;type:varchar(64);uniqueIndex:uk_account;not null"`
	Password   string    `gorm:"column:password;type:varchar(128);not null"`
	Nickname   string    `gorm:"column:nickname;type:varchar(64)"`
	Email      string    `gorm:"column:email;type:varchar(128)"`
	Phone      string    `gorm:"column:phone;type:varchar(16)"`
	CreateUser string    `gorm:"column:create_user;type:varchar(64)"`
	CreateTime time.Time `gorm:"column:create_time"`
	ModifyUser string    `gorm:"column:modify_user;type:varchar(64)"`
	ModifyTime time.Time `gorm:"column:modify_time"`
}

// TableName 指定表名
func (UserPO) TableName() string {
	return "t_user"
}

// toPO 领域对象转持久化对象
func toPO(user *etuser.User) *UserPO {
	return &UserPO{
		ID:         user.ID,
		Account:    user.Account,
		Password:   user.Password,
		Nickname:   user.Nickname,
		Email:      user.Email,
		Phone:      user.Phone,
		CreateUser: user.Audit.CreateUser,
		CreateTime: user.Audit.CreateTime,
		ModifyUser: user.Audit.ModifyUser,
		ModifyTime: user.Audit.ModifyTime,
	}
}

// toEntity 持久化对象转领域对象
func toEntity(po *UserPO) (*etuser.User, error) {
	user, err := etuser.NewUser(po.ID, po.Account, po.Password, po.Nickname, po.Email, po.Phone)
	if err != nil {
		return nil, err
	}
	user.Audit = etprimitive.AuditInfo{
		CreateUser: po.CreateUser,
		CreateTime: po.CreateTime,
		ModifyUser: po.ModifyUser,
		ModifyTime: po.ModifyTime,
	}
	return user, nil
}
