package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"ucenter/internal/app/domains/entity/etprimitive"
	"ucenter/internal/app/domains/entity/etuser"
)

// 用户缓存键前缀与过期时间
const (
	userKeyPrefix = "ucenter:user:"
	userTTL       = 30 * time.Minute
)

// UserCache 用户读缓存（cache-aside）
type UserCache struct {
	client *redis.Client
}

// NewUserCache 创建缓存实例并探活
func NewUserCache(addr, password string, db int) (*UserCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	// 测试连接
	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &UserCache{client: client}, nil
}

// cachedUser 缓存序列化结构
type cachedUser struct {
	ID         int64     `json:"id"`
	Account    string    `json:"account"`
	Password   string    `json:"password"`
	Nickname   string    `json:"nickname"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	CreateUser string    `json:"create_user"`
	CreateTime time.Time `json:"create_time"`
	ModifyUser string    `json:"modify_user"`
	ModifyTime time.Time `json:"modify_time"`
}

// Get 读取缓存，未命中返回 (nil, nil)
func (c *UserCache) Get(ctx context.Context, userID int64) (*etuser.User, error) {
	raw, err := c.client.Get(ctx, userKey(userID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read user cache: %w", err)
	}

	var cu cachedUser
	if err := json.Unmarshal(raw, &cu); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached user: %w", err)
	}

	user, err := etuser.NewUser(cu.ID, cu.Account, cu.Password, cu.Nickname, cu.Email, cu.Phone)
	if err != nil {
		return nil, err
	}
	user.Audit = etprimitive.AuditInfo{
		CreateUser: cu.CreateUser,
		CreateTime: cu.CreateTime,
		ModifyUser: cu.ModifyUser,
		ModifyTime: cu.ModifyTime,
	}
	return user, nil
}

// Set 写入缓存
func (c *UserCache) Set(ctx context.Context, user *etuser.User) error {
	cu := cachedUser{
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
	raw, err := json.Marshal(cu)
	if err != nil {
		return fmt.Errorf("failed to marshal user for cache: %w", err)
	}
	return c.client.Set(ctx, userKey(user.ID), raw, userTTL).Err()
}

// Delete 删除缓存（更新/删除用户后失效）
func (c *UserCache) Delete(ctx context.Context, userID int64) error {
	return c.client.Del(ctx, userKey(userID)).Err()
}

// Close 关闭连接
func (c *UserCache) Close() error {
	return c.client.Close()
}

func userKey(userID int64) string {
	return fmt.Sprintf("%s%d", userKeyPrefix, userID)
}
