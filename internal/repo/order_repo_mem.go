package repo

import (
	"go-gin-shop-api/internal/core/storage"
	"go-gin-shop-api/internal/domain"
)

type OrderRepo struct{ store *storage.Store }

func NewOrderRepo(s *storage.Store) *OrderRepo { return &OrderRepo{store: s} }

func cloneOrder(o domain.Order) domain.Order {
	o.Items = append([]domain.OrderItem(nil), o.Items...)
	return o
}

func (r *OrderRepo) FindAll(userID string) ([]domain.Order, error) {
	var out []domain.Order
	r.store.Orders.View(func(items []domain.Order) {
		for i := range items {
			if userID != "" && items[i].UserID != userID {
				continue
			}
			out = append(out, cloneOrder(items[i]))
		}
	})
	return out, nil
}

func (r *OrderRepo) FindByID(id string) (*domain.Order, error) {
	var found *domain.Order
	r.store.Orders.View(func(items []domain.Order) {
		for i := range items {
			if items[i].ID == id {
				o := cloneOrder(items[i])
				found = &o
				return
			}
		}
	})
	return found, nil
}

func (r *OrderRepo) Create(no domain.NewOrder) (*domain.Order, error) {
	now := r.store.Now()
	o := domain.Order{
		ID:         r.store.NewID(),
		UserID:     no.UserID,
		Items:      append([]domain.OrderItem(nil), no.Items...),
		TotalPrice: no.TotalPrice,
		Status:     no.Status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	r.store.Orders.Mutate(func(items []domain.Order) []domain.Order {
		return append(items, o)
	})
	out := cloneOrder(o)
	return &out, nil
}

func (r *OrderRepo) Update(id string, p domain.OrderPatch) (*domain.Order, error) {
	var updated *domain.Order
	r.store.Orders.Mutate(func(items []domain.Order) []domain.Order {
		for i := range items {
			if items[i].ID != id {
				continue
			}
			if p.Status != nil {
				items[i].Status = *p.Status
			}
			items[i].UpdatedAt = r.store.Now()
			o := cloneOrder(items[i])
			updated = &o
			break
		}
		return items
	})
	return updated, nil
}

func (r *OrderRepo) Delete(id string) (bool, error) {
	removed := false
	r.store.Orders.Mutate(func(items []domain.Order) []domain.Order {
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
