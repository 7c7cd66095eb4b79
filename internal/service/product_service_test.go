package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-gin-shop-api/internal/domain"
	"go-gin-shop-api/internal/dto"
)

func TestProductService_CreateRequiresExistingCategory(t *testing.T) {
	e := newTestEnv(t)

	_, err := e.products.CreateProduct(&dto.CreateProductDTO{
		Name:       "widget",
		Price:      5,
		Stock:      1,
		CategoryID: "cat-404",
	})
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestProductService_UpdateValidatesCategoryAndPrice(t *testing.T) {
	e := newTestEnv(t)
	cat := e.mustCategory(t, "Tools")
	p := e.mustProduct(t, "hammer", cat.ID, 15, 4)

	missing := "cat-404"
	_, err := e.products.UpdateProduct(p.ID, &dto.UpdateProductDTO{CategoryID: &missing})
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))

	zero := 0.0
	_, err = e.products.UpdateProduct(p.ID, &dto.UpdateProductDTO{Price: &zero})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))

	price := 18.0
	updated, err := e.products.UpdateProduct(p.ID, &dto.UpdateProductDTO{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, 18.0, updated.Price)
	assert.Equal(t, "hammer", updated.Name)
}

func TestProductService_ListPaginates(t *testing.T) {
	e := newTestEnv(t)
	cat := e.mustCategory(t, "Tools")
	for i := 0; i < 5; i++ {
		e.mustProduct(t, "widget", cat.ID, 5, 1)
	}

	page, total, err := e.products.GetAllProducts(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	assert.Len(t, page, 2)

	all, total, err := e.products.GetAllProducts(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	assert.Len(t, all, 5)
}
