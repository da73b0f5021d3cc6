package rpuser

import (
	"context"

	"ucenter/internal/app/domains/apimodel/request"
	"ucenter/internal/app/domains/entity/etuser"
)

// UserRepository 用户仓储接口
type UserRepository interface {
	// GetByID 根据ID查询用户，未找到返回 (nil, nil)
	GetByID(ctx context.Context, userID int64) (*etuser.User, error)

	// GetByAccount 根据账号查询用户（检查重复），未找到返回 (nil, nil)
	GetByAccount(ctx context.Context, account string) (*etuser.User, error)

	// Insert 落库并返回生成的ID
	Insert(ctx context.Context, user *etuser.User) (int64, error)

	// Update 按ID更新，返回影响行数
	Update(ctx context.Context, user *etuser.User) (int64, error)

	// DeleteByID 按ID删除，返回影响行数，ID不存在返回 0 而非错误
	DeleteByID(ctx context.Context, userID int64) (int64, error)

	// List 分页查询
	List(ctx context.Context, page *request.PageQuery) (int64, []*etuser.User, error)
}
