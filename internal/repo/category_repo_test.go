package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-gin-shop-api/internal/domain"
)

func TestCategoryRepo_CRUD(t *testing.T) {
	r := NewCategoryRepo(testStore())

	c, err := r.Create("Books", "printed matter")
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)

	all, err := r.FindAll()
	require.NoError(t, err)
	assert.Len(t, all, 1)

	desc := "paper and ink"
	updated, err := r.Update(c.ID, domain.CategoryPatch{Description: &desc})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Books", updated.Name)
	assert.Equal(t, "paper and ink", updated.Description)

	ok, err := r.Delete(c.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	missing, err := r.FindByID(c.ID)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
