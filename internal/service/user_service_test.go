package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-gin-shop-api/internal/domain"
	"go-gin-shop-api/internal/dto"
)

func TestUserService_CreateAndGet(t *testing.T) {
	e := newTestEnv(t)

	u := e.mustUser(t, "alice@example.com")
	got, err := e.users.GetUserByID(u.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", got.Email)
	assert.Equal(t, "Alice", got.Name)
}

func TestUserService_DuplicateEmailConflicts(t *testing.T) {
	e := newTestEnv(t)
	e.mustUser(t, "alice@example.com")

	_, err := e.users.CreateUser(&dto.CreateUserDTO{Name: "Bob", Email: "alice@example.com", Password: "secret1"})
	require.Error(t, err)
	assert.True(t, domain.IsConflict(err))

	all, err := e.users.GetAllUsers()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUserService_ShortPasswordRejected(t *testing.T) {
	e := newTestEnv(t)

	_, err := e.users.CreateUser(&dto.CreateUserDTO{Name: "Alice", Email: "alice@example.com", Password: "abc"})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestUserService_UpdateEmailConflict(t *testing.T) {
	e := newTestEnv(t)
	e.mustUser(t, "alice@example.com")
	bob, err := e.users.CreateUser(&dto.CreateUserDTO{Name: "Bobby", Email: "bob@example.com", Password: "secret1"})
	require.NoError(t, err)

	taken := "alice@example.com"
	_, err = e.users.UpdateUser(bob.ID, &dto.UpdateUserDTO{Email: &taken})
	require.Error(t, err)
	assert.True(t, domain.IsConflict(err))

	// 传入自己当前的 email 不触发冲突检查
	same := "bob@example.com"
	updated, err := e.users.UpdateUser(bob.ID, &dto.UpdateUserDTO{Email: &same})
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", updated.Email)
}

func TestUserService_GetUnknownIsNotFound(t *testing.T) {
	e := newTestEnv(t)
	_, err := e.users.GetUserByID("nope")
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestUserService_DeleteUnknownIsNotFound(t *testing.T) {
	e := newTestEnv(t)
	err := e.users.DeleteUser("nope")
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}
