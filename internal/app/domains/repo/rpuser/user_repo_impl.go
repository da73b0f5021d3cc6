package rpuser

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"ucenter/internal/app/domains/apimodel/request"
	"ucenter/internal/app/domains/entity/etuser"
)

// sortableColumns 允许排序的列，防止排序参数拼入任意 SQL
var sortableColumns = map[string]string{
	"id":          "id",
	"account":     "account",
	"create_time": "create_time",
	"modify_time": "modify_time",
}

// UserRepositoryImpl 用户仓储实现（MySQL）
type UserRepositoryImpl struct {
	db *gorm.DB
}

// NewUserRepository 创建用户仓储实例
func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

// GetByID 根据ID查询用户
func (r *UserRepositoryImpl) GetByID(ctx context.Context, userID int64) (*etuser.User, error) {
	var po UserPO
	err := r.db.WithContext(ctx).Where("id = ?", userID).First(&po).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toEntity(&po)
}

// GetByAccount 根据账号查询用户（用于检查重复）
func (r *UserRepositoryImpl) GetByAccount(ctx context.Context, account string) (*etuser.User, error) {
	var po UserPO
	err := r.db.WithContext(ctx).Where("account = ?", account).First(&po).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toEntity(&po)
}

// Insert 落库并返回生成的ID
func (r *UserRepositoryImpl) Insert(ctx context.Context, user *etuser.User) (int64, error) {
	po := toPO(user)
	if err := r.db.WithContext(ctx).Create(po).Error; err != nil {
		return 0, err
	}
	// 将数据库生成的ID回写到领域对象
	user.ID = po.ID
	return po.ID, nil
}

// Update 按ID更新，返回影响行数
func (r *UserRepositoryImpl) Update(ctx context.Context, user *etuser.User) (int64, error) {
	po := toPO(user)
	tx := r.db.WithContext(ctx).Model(&UserPO{}).Where("id = ?", po.ID).Updates(map[string]interface{}{
		"nickname":    po.Nickname,
		"email":       po.Email,
		"phone":       po.Phone,
		"modify_user": po.ModifyUser,
		"modify_time": po.ModifyTime,
	})
	return tx.RowsAffected, tx.Error
}

// DeleteByID 按ID删除，返回影响行数
func (r *UserRepositoryImpl) DeleteByID(ctx context.Context, userID int64) (int64, error) {
	tx := r.db.WithContext(ctx).Where("id = ?", userID).Delete(&UserPO{})
	return tx.RowsAffected, tx.Error
}

// List 分页查询
func (r *UserRepositoryImpl) List(ctx context.Context, page *request.PageQuery) (int64, []*etuser.User, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&UserPO{}).Count(&total).Error; err != nil {
		return 0, nil, err
	}

	var pos []UserPO
	query := r.db.WithContext(ctx).Model(&UserPO{}).
		Order(orderClause(page)).
		Offset(page.Offset()).
		Limit(page.PageSize)
	if err := query.Find(&pos).Error; err != nil {
		return 0, nil, err
	}

	users := make([]*etuser.User, 0, len(pos))
	for i := range pos {
		user, err := toEntity(&pos[i])
		if err != nil {
			return 0, nil, err
		}
		users = append(users, user)
	}
	return total, users, nil
}

// orderClause 生成排序子句，非白名单字段退回按ID排序
func orderClause(page *request.PageQuery) string {
	col, ok := sortableColumns[page.OrderField]
	if !ok {
		col = "id"
	}
	return fmt.Sprintf("%s %s", col, page.OrderDirection)
}
