package repo

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-gin-shop-api/internal/domain"
)

func seedProducts(t *testing.T, r *ProductRepo, n int) []domain.Product {
	t.Helper()
	out := make([]domain.Product, 0, n)
	for i := 0; i < n; i++ {
		p, err := r.Create(domain.NewProduct{
			Name:       fmt.Sprintf("product-%02d", i),
			Price:      float64(i + 1),
			Stock:      10,
			CategoryID: "cat-1",
		})
		require.NoError(t, err)
		out = append(out, *p)
	}
	return out
}

func TestProductRepo_Pagination(t *testing.T) {
	r := NewProductRepo(testStore())
	seeded := seedProducts(t, r, 25)

	page, total, err := r.FindAll(2, 10)
	require.NoError(t, err)
	assert.Equal(t, 25, total)
	require.Len(t, page, 10)
	assert.Equal(t, seeded[10].ID, page[0].ID)
	assert.Equal(t, seeded[19].ID, page[9].ID)
}

func TestProductRepo_PaginationClampsPastEnd(t *testing.T) {
	r := NewProductRepo(testStore())
	seedProducts(t, r, 5)

	page, total, err := r.FindAll(3, 10)
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	assert.Empty(t, page)

	// 尾页窗口缩短到剩余条数
	page, total, err = r.FindAll(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	assert.Len(t, page, 2)
}

func TestProductRepo_FindAllWithoutPaging(t *testing.T) {
	r := NewProductRepo(testStore())
	seedProducts(t, r, 7)

	for _, args := range [][2]int{{0, 0}, {0, 10}, {2, 0}, {-1, 5}} {
		page, total, err := r.FindAll(args[0], args[1])
		require.NoError(t, err)
		assert.Equal(t, 7, total)
		assert.Len(t, page, 7)
	}
}

func TestProductRepo_FindByCategory(t *testing.T) {
	r := NewProductRepo(testStore())
	seedProducts(t, r, 3)
	other, err := r.Create(domain.NewProduct{Name: "widget", Price: 2, Stock: 1, CategoryID: "cat-2"})
	require.NoError(t, err)

	got, err := r.FindByCategory("cat-2")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, other.ID, got[0].ID)

	none, err := r.FindByCategory("cat-404")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestProductRepo_Update(t *testing.T) {
	r := NewProductRepo(testStore())
	p, err := r.Create(domain.NewProduct{Name: "widget", Price: 9.99, Stock: 3, CategoryID: "cat-1"})
	require.NoError(t, err)

	price := 12.5
	stock := 0
	updated, err := r.Update(p.ID, domain.ProductPatch{Price: &price, Stock: &stock})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, 12.5, updated.Price)
	assert.Equal(t, 0, updated.Stock)
	assert.Equal(t, "widget", updated.Name)
	assert.True(t, updated.UpdatedAt.After(p.UpdatedAt))
}
