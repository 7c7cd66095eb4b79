package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"go-gin-shop-api/internal/core/storage"
	"go-gin-shop-api/internal/domain"
	"go-gin-shop-api/internal/dto"
	"go-gin-shop-api/internal/repo"
)

// testEnv 全套服务跑在同一个内存 Store 上，时钟为单调假时钟
type testEnv struct {
	store      *storage.Store
	users      *UserService
	products   *ProductService
	categories *CategoryService
	orders     *OrderService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	s := storage.New()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	s.Now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}

	log := zap.NewNop()
	userRepo := repo.NewUserRepo(s)
	productRepo := repo.NewProductRepo(s)
	categoryRepo := repo.NewCategoryRepo(s)
	orderRepo := repo.NewOrderRepo(s)

	return &testEnv{
		store:      s,
		users:      NewUserService(userRepo, log),
		products:   NewProductService(productRepo, categoryRepo, log),
		categories: NewCategoryService(categoryRepo, productRepo, log),
		orders:     NewOrderService(orderRepo, productRepo, userRepo, log),
	}
}

func (e *testEnv) mustUser(t *testing.T, email string) *domain.User {
	t.Helper()
	u, err := e.users.CreateUser(&dto.CreateUserDTO{Name: "Alice", Email: email, Password: "secret1"})
	require.NoError(t, err)
	return u
}

func (e *testEnv) mustCategory(t *testing.T, name string) *domain.Category {
	t.Helper()
	c, err := e.categories.CreateCategory(&dto.CreateCategoryDTO{Name: name})
	require.NoError(t, err)
	return c
}

func (e *testEnv) mustProduct(t *testing.T, name, categoryID string, price float64, stock int) *domain.Product {
	t.Helper()
	p, err := e.products.CreateProduct(&dto.CreateProductDTO{
		Name:       name,
		Price:      price,
		Stock:      stock,
		CategoryID: categoryID,
	})
	require.NoError(t, err)
	return p
}
