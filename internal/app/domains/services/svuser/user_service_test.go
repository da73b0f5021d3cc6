package svuser

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ucenter/internal/app/domains/apimodel/request"
	"ucenter/internal/app/domains/entity/etuser"
	"ucenter/internal/app/domains/modules/mduser"
	"ucenter/internal/app/pkg/errorx"
	"ucenter/internal/app/pkg/statuscode"
)

// fakeUserRepo 内存仓储，替代 MySQL 实现
type fakeUserRepo struct {
	users   map[int64]*etuser.User
	insErr  error
	getErr  error
	nextSeq int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*etuser.User)}
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*etuser.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByAccount(_ context.Context, account string) (*etuser.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, u := range f.users {
		if u.Account == account {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Insert(_ context.Context, user *etuser.User) (int64, error) {
	if f.insErr != nil {
		return 0, f.insErr
	}
	if user.ID == 0 {
		f.nextSeq++
		user.ID = f.nextSeq
	}
	cp := *user
	f.users[user.ID] = &cp
	return user.ID, nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *etuser.User) (int64, error) {
	if _, ok := f.users[user.ID]; !ok {
		return 0, nil
	}
	cp := *user
	f.users[user.ID] = &cp
	return 1, nil
}

func (f *fakeUserRepo) DeleteByID(_ context.Context, id int64) (int64, error) {
	if _, ok := f.users[id]; !ok {
		return 0, nil
	}
	delete(f.users, id)
	return 1, nil
}

func (f *fakeUserRepo) List(_ context.Context, page *request.PageQuery) (int64, []*etuser.User, error) {
	all := make([]*etuser.User, 0, len(f.users))
	for _, u := range f.users {
		cp := *u
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	total := int64(len(all))
	start := page.Offset()
	if start > len(all) {
		start = len(all)
	}
	end := start + page.PageSize
	if end > len(all) {
		end = len(all)
	}
	return total, all[start:end], nil
}

// nopLogger 丢弃日志
type nopLogger struct{}

func (nopLogger) Debugf(context.Context, string, ...interface{}) {}
func (nopLogger) Infof(context.Context, string, ...interface{})  {}
func (nopLogger) Warnf(context.Context, string, ...interface{})  {}
func (nopLogger) Errorf(context.Context, string, ...interface{}) {}
func (nopLogger) Sync() error                                    { return nil }

func newService(repo *fakeUserRepo) *UserService {
	return NewUserService(mduser.NewUserModule(repo, nil, nopLogger{}))
}

func mustUser(t *testing.T, account, password, email string) *etuser.User {
	t.Helper()
	u, err := etuser.NewUser(0, account, password, "", email, "13800138000")
	require.NoError(t, err)
	return u
}

// TestCreateThenGetRoundTrip 创建后按ID查询，得到原始数据加审计字段
func TestCreateThenGetRoundTrip(t *testing.T) {
	svc := newService(newFakeUserRepo())
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, mustUser(t, "user01", "secret1", "u@example.com"), "alice")
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := svc.GetUser(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "user01", got.Account)
	assert.Equal(t, "secret1", got.Password)
	assert.Equal(t, "u@example.com", got.Email)
	assert.Equal(t, "alice", got.Audit.CreateUser)
	assert.False(t, got.Audit.CreateTime.IsZero())
	assert.Equal(t, "alice", got.Audit.ModifyUser)
}

func TestCreateDuplicateAccount(t *testing.T) {
	svc := newService(newFakeUserRepo())
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, mustUser(t, "user01", "secret1", "u@example.com"), "alice")
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, mustUser(t, "user01", "secret2", "v@example.com"), "bob")
	require.Error(t, err)

	var bizErr *errorx.BusinessError
	require.ErrorAs(t, err, &bizErr)
	assert.Equal(t, statuscode.DuplicateAccount.Code, bizErr.Code)
	assert.Equal(t, statuscode.DuplicateAccount.Message, bizErr.Message)
}

func TestGetMissingUser(t *testing.T) {
	svc := newService(newFakeUserRepo())

	_, err := svc.GetUser(context.Background(), 404)
	require.Error(t, err)

	var bizErr *errorx.BusinessError
	require.ErrorAs(t, err, &bizErr)
	assert.Equal(t, statuscode.UserNotFound.Code, bizErr.Code)
}

// TestUpdateKeepsCreateAudit 更新只动修改审计字段
func TestUpdateKeepsCreateAudit(t *testing.T) {
	svc := newService(newFakeUserRepo())
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, mustUser(t, "user01", "secret1", "u@example.com"), "alice")
	require.NoError(t, err)

	updated, err := svc.UpdateUser(ctx, created.ID, &request.UpdateUserRequest{
		Nickname: "newnick",
		Email:    "new@example.com",
		Phone:    "13900139000",
	}, "bob")
	require.NoError(t, err)

	assert.Equal(t, "newnick", updated.Nickname)
	assert.Equal(t, "new@example.com", updated.Email)
	assert.Equal(t, "alice", updated.Audit.CreateUser)
	assert.Equal(t, created.Audit.CreateTime, updated.Audit.CreateTime)
	assert.Equal(t, "bob", updated.Audit.ModifyUser)
}

// TestDeleteMissingUser 删除不存在的ID返回影响行数 0，而不是错误
func TestDeleteMissingUser(t *testing.T) {
	svc := newService(newFakeUserRepo())

	affected, err := svc.DeleteUser(context.Background(), 404)
	require.NoError(t, err)
	assert.Zero(t, affected)
}

func TestDeleteExistingUser(t *testing.T) {
	svc := newService(newFakeUserRepo())
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, mustUser(t, "user01", "secret1", "u@example.com"), "alice")
	require.NoError(t, err)

	affected, err := svc.DeleteUser(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	_, err = svc.GetUser(ctx, created.ID)
	assert.Error(t, err)
}

func TestListUsersPaged(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newService(repo)
	ctx := context.Background()

	for _, account := range []string{"user01", "user02", "user03"} {
		_, err := svc.CreateUser(ctx, mustUser(t, account, "secret1", account+"@example.com"), "alice")
		require.NoError(t, err)
	}

	page := &request.PageQuery{PageNum: 1, PageSize: 2}
	total, users, err := svc.ListUsers(ctx, page)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, users, 2)
}

func TestCreateWrapsRepoFailure(t *testing.T) {
	repo := newFakeUserRepo()
	repo.insErr = errors.New("db gone")
	svc := newService(repo)

	_, err := svc.CreateUser(context.Background(), mustUser(t, "user01", "secret1", "u@example.com"), "alice")
	require.Error(t, err)

	var bizErr *errorx.BusinessError
	assert.False(t, errors.As(err, &bizErr))
}
