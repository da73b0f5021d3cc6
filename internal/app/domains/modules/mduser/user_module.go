package mduser

import (
	"context"

	"ucenter/internal/app/domains/apimodel/request"
	"ucenter/internal/app/domains/entity/etuser"
	"ucenter/internal/app/domains/repo/rpuser"
	"ucenter/internal/app/pkg/logger"
)

// UserCache 用户缓存接口，Get 未命中返回 (nil, nil)
type UserCache interface {
	Get(ctx context.Context, userID int64) (*etuser.User, error)
	Set(ctx context.Context, user *etuser.User) error
	Delete(ctx context.Context, userID int64) error
}

// UserModule 用户模块，负责数据操作编排（仓储 + 旁路缓存）
// cache 可为 nil 表示未启用缓存
type UserModule struct {
	userRepo rpuser.UserRepository
	cache    UserCache
	log      logger.Logger
}

// NewUserModule 创建用户模块
func NewUserModule(userRepo rpuser.UserRepository, cache UserCache, log logger.Logger) *UserModule {
	return &UserModule{
		userRepo: userRepo,
		cache:    cache,
		log:      log,
	}
}

// CreateUser 落库并预热缓存
func (m *UserModule) CreateUser(ctx context.Context, user *etuser.User) (int64, error) {
	id, err := m.userRepo.Insert(ctx, user)
	if err != nil {
		return 0, err
	}
	m.fillCache(ctx, user)
	return id, nil
}

// GetUser 查询用户，先读缓存，未命中回源并回填
func (m *UserModule) GetUser(ctx context.Context, userID int64) (*etuser.User, error) {
	if m.cache != nil {
		user, err := m.cache.Get(ctx, userID)
		if err != nil {
			// 缓存故障不阻断查询
			m.log.Warnf(ctx, "user cache get failed: %v", err)
		} else if user != nil {
			return user, nil
		}
	}

	user, err := m.userRepo.GetByID(ctx, userID)
	if err != nil || user == nil {
		return user, err
	}
	m.fillCache(ctx, user)
	return user, nil
}

// GetUserByAccount 根据账号查询用户（检查重复）
func (m *UserModule) GetUserByAccount(ctx context.Context, account string) (*etuser.User, error) {
	return m.userRepo.GetByAccount(ctx, account)
}

// UpdateUser 更新并失效缓存，返回影响行数
func (m *UserModule) UpdateUser(ctx context.Context, user *etuser.User) (int64, error) {
	affected, err := m.userRepo.Update(ctx, user)
	if err != nil {
		return 0, err
	}
	m.dropCache(ctx, user.ID)
	return affected, nil
}

// DeleteUser 删除并失效缓存，返回影响行数
func (m *UserModule) DeleteUser(ctx context.Context, userID int64) (int64, error) {
	affected, err := m.userRepo.DeleteByID(ctx, userID)
	if err != nil {
		return 0, err
	}
	m.dropCache(ctx, userID)
	return affected, nil
}

// ListUsers 分页查询
func (m *UserModule) ListUsers(ctx context.Context, page *request.PageQuery) (int64, []*etuser.User, error) {
	return m.userRepo.List(ctx, page)
}

func (m *UserModule) fillCache(ctx context.Context, user *etuser.User) {
	if m.cache == nil {
		return
	}
	if err := m.cache.Set(ctx, user); err != nil {
		m.log.Warnf(ctx, "user cache set failed: %v", err)
	}
}

func (m *UserModule) dropCache(ctx context.Context, userID int64) {
	if m.cache == nil {
		return
	}
	if err := m.cache.Delete(ctx, userID); err != nil {
		m.log.Warnf(ctx, "user cache delete failed: %v", err)
	}
}
