package svuser

import (
	"context"
	"fmt"
	"time"

	"ucenter/internal/app/domains/apimodel/request"
	"ucenter/internal/app/domains/entity/etuser"
	"ucenter/internal/app/domains/modules/mduser"
	"ucenter/internal/app/pkg/errorx"
	"ucenter/internal/app/pkg/idgen"
	"ucenter/internal/app/pkg/statuscode"
)

// UserService 用户服务，负责用户业务编排
type UserService struct {
	userModule *mduser.UserModule
}

// NewUserService 创建用户服务实例
func NewUserService(userModule *mduser.UserModule) *UserService {
	return &UserService{
		userModule: userModule,
	}
}

// CreateUser 创建用户（完整业务流程）
// 1. 检查账号是否重复
// 2. 生成分布式ID
// 3. 审计打戳并落库
func (s *UserService) CreateUser(ctx context.Context, user *etuser.User, actor string) (*etuser.User, error) {
	existing, err := s.userModule.GetUserByAccount(ctx, user.Account)
	if err != nil {
		return nil, fmt.Errorf("check account duplicate failed: %w", err)
	}
	if existing != nil {
		return nil, errorx.New(statuscode.DuplicateAccount, "")
	}

	user.ID = idgen.GenerateID()
	user.Audit.StampCreate(actor, time.Now())

	if _, err := s.userModule.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("save user failed: %w", err)
	}

	return user, nil
}

// GetUser 查询用户，不存在时返回业务错误
func (s *UserService) GetUser(ctx context.Context, userID int64) (*etuser.User, error) {
	user, err := s.userModule.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user failed: %w", err)
	}
	if user == nil {
		return nil, errorx.New(statuscode.UserNotFound, "")
	}
	return user, nil
}

// UpdateUser 更新用户可变字段
// 先查询再覆写，保证创建审计字段不被触碰
func (s *UserService) UpdateUser(ctx context.Context, userID int64, req *request.UpdateUserRequest, actor string) (*etuser.User, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	req.ApplyTo(user)
	user.Audit.StampModify(actor, time.Now())

	affected, err := s.userModule.UpdateUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("update user failed: %w", err)
	}
	if affected == 0 {
		return nil, errorx.New(statuscode.UserNotFound, "")
	}
	return user, nil
}

// DeleteUser 删除用户，返回影响行数（ID不存在返回 0，不视为错误）
func (s *UserService) DeleteUser(ctx context.Context, userID int64) (int64, error) {
	affected, err := s.userModule.DeleteUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("delete user failed: %w", err)
	}
	return affected, nil
}

// ListUsers 分页查询用户
func (s *UserService) ListUsers(ctx context.Context, page *request.PageQuery) (int64, []*etuser.User, error) {
	page.Normalize()
	total, users, err := s.userModule.ListUsers(ctx, page)
	if err != nil {
		return 0, nil, fmt.Errorf("list users failed: %w", err)
	}
	return total, users, nil
}
