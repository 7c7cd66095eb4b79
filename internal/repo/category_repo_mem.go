package repo

import (
	"go-gin-shop-api/internal/core/storage"
	"go-gin-shop-api/internal/domain"
)

type CategoryRepo struct{ store *storage.Store }

func NewCategoryRepo(s *storage.Store) *CategoryRepo { return &CategoryRepo{store: s} }

func (r *CategoryRepo) FindAll() ([]domain.Category, error) {
	var out []domain.Category
	r.store.Categories.View(func(items []domain.Category) {
		out = append(out, items...)
	})
	return out, nil
}

func (r *CategoryRepo) FindByID(id string) (*domain.Category, error) {
	var found *domain.Category
	r.store.Categories.View(func(items []domain.Category) {
		for i := range items {
			if items[i].ID == id {
				c := items[i]
				found = &c
				return
			}
		}
	})
	return found, nil
}

func (r *CategoryRepo) Create(name, description string) (*domain.Category, error) {
	now := r.store.Now()
	c := domain.Category{
		ID:          r.store.NewID(),
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.store.Categories.Mutate(func(items []domain.Category) []domain.Category {
		return append(items, c)
	})
	return &c, nil
}

func (r *CategoryRepo) Update(id string, p domain.CategoryPatch) (*domain.Category, error) {
	var updated *domain.Category
	r.store.Categories.Mutate(func(items []domain.Category) []domain.Category {
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
			items[i].UpdatedAt = r.store.Now()
			c := items[i]
			updated = &c
			break
		}
		return items
	})
	return updated, nil
}

func (r *CategoryRepo) Delete(id string) (bool, error) {
	removed := false
	r.store.Categories.Mutate(func(items []domain.Category) []domain.Category {
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
