package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-gin-shop-api/internal/domain"
)

func TestUserRepo_CreateAndFind(t *testing.T) {
	r := NewUserRepo(testStore())

	u, err := r.Create("alice@example.com", "Alice", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, u.CreatedAt, u.UpdatedAt)

	got, err := r.FindByID(u.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "alice@example.com", got.Email)

	byEmail, err := r.FindByEmail("alice@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, u.ID, byEmail.ID)

	missing, err := r.FindByID("nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepo_UpdateMergesAndRefreshesTimestamp(t *testing.T) {
	r := NewUserRepo(testStore())
	u, err := r.Create("alice@example.com", "Alice", "secret1")
	require.NoError(t, err)

	name := "Alicia"
	updated, err := r.Update(u.ID, domain.UserPatch{Name: &name})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, "Alicia", updated.Name)
	// 未出现在 patch 里的字段保持不变
	assert.Equal(t, "alice@example.com", updated.Email)
	assert.True(t, updated.UpdatedAt.After(u.UpdatedAt))

	got, err := r.FindByID(u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alicia", got.Name)
	assert.False(t, got.UpdatedAt.Before(updated.UpdatedAt))
}

func TestUserRepo_UpdateUnknownID(t *testing.T) {
	r := NewUserRepo(testStore())
	name := "x"
	updated, err := r.Update("nope", domain.UserPatch{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestUserRepo_Delete(t *testing.T) {
	r := NewUserRepo(testStore())
	u, err := r.Create("alice@example.com", "Alice", "secret1")
	require.NoError(t, err)

	ok, err := r.Delete(u.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	again, err := r.Delete(u.ID)
	require.NoError(t, err)
	assert.False(t, again)

	all, err := r.FindAll()
	require.NoError(t, err)
	assert.Empty(t, all)
}
