package repo

import (
	"go-gin-shop-api/internal/core/storage"
	"go-gin-shop-api/internal/domain"
)

type ProductRepo struct{ store *storage.Store }

func NewProductRepo(s *storage.Store) *ProductRepo { return &ProductRepo{store: s} }

// FindAll page 和 limit 均为正时返回第 page 页（1 起），否则全量。
// 越界窗口收缩为空页，total 始终是集合大小。
func (r *ProductRepo) FindAll(page, limit int) ([]domain.Product, int, error) {
	var out []domain.Product
	var total int
	r.store.Products.View(func(items []domain.Product) {
		total = len(items)
		if page > 0 && limit > 0 {
			start := (page - 1) * limit
			if start > total {
				start = total
			}
			end := start + limit
			if end > total {
				end = total
			}
			out = append(out, items[start:end]...)
			return
		}
		out = append(out, items...)
	})
	return out, total, nil
}

func (r *ProductRepo) FindByID(id string) (*domain.Product, error) {
	var found *domain.Product
	r.store.Products.View(func(items []domain.Product) {
		for i := range items {
			if items[i].ID == id {
				p := items[i]
				found = &p
				return
			}
		}
	})
	return found, nil
}

func (r *ProductRepo) FindByCategory(categoryID string) ([]domain.Product, error) {
	var out []domain.Product
	r.store.Products.View(func(items []domain.Product) {
		for i := range items {
			if items[i].CategoryID == categoryID {
				out = append(out, items[i])
			}
		}
	})
	return out, nil
}

func (r *ProductRepo) Create(np domain.NewProduct) (*domain.Product, error) {
	now := r.store.Now()
	p := domain.Product{
		ID:          r.store.NewID(),
		Name:        np.Name,
		Description: np.Description,
		Price:       np.Price,
		Stock:       np.Stock,
		CategoryID:  np.CategoryID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.store.Products.Mutate(func(items []domain.Product) []domain.Product {
		return append(items, p)
	})
	return &p, nil
}

func (r *ProductRepo) Update(id string, p domain.ProductPatch) (*domain.Product, error) {
	var updated *domain.Product
	r.store.Products.Mutate(func(items []domain.Product) []domain.Product {
		for i := range items {
			if items[i].ID != id {
				continue
			}
			if p.Name != nil {
				items[i].Name = *p.Name
			}
			if p.Description != nil {
				items[i].Description = *p.Description
			}
			if p.Price != nil {
				items[i].Price = *p.Price
			}
			if p.Stock != nil {
				items[i].Stock = *p.Stock
			}
			if p.CategoryID != nil {
				items[i].CategoryID = *p.CategoryID
			}
			items[i].UpdatedAt = r.store.Now()
			pr := items[i]
			updated = &pr
			break
		}
		return items
	})
	return updated, nil
}

func (r *ProductRepo) Delete(id string) (bool, error) {
	removed := false
	r.store.Products.Mutate(func(items []domain.Product) []domain.Product {
		for i := range items {
			if items[i].ID == id {
				removed = true
				return append(items[:i], items[i+1:]...)
			}
		}
		return items
	})
	return removed, nil
}
