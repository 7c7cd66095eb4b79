package repo

import (
	"go-gin-shop-api/internal/core/storage"
	"go-gin-shop-api/internal/domain"
)

type UserRepo struct{ store *storage.Store }

func NewUserRepo(s *storage.Store) *UserRepo { return &UserRepo{store: s} }

func (r *UserRepo) FindAll() ([]domain.User, error) {
	var out []domain.User
	r.store.Users.View(func(items []domain.User) {
		out = append(out, items...)
	})
	return out, nil
}

func (r *UserRepo) FindByID(id string) (*domain.User, error) {
	var found *domain.User
	r.store.Users.View(func(items []domain.User) {
		for i := range items {
			if items[i].ID == id {
				u := items[i]
				found = &u
				return
			}
		}
	})
	return found, nil
}

func (r *UserRepo) FindByEmail(email string) (*domain.User, error) {
	var found *domain.User
	r.store.Users.View(func(items []domain.User) {
		for i := range items {
			if items[i].Email == email {
				u := items[i]
				found = &u
				return
			}
		}
	})
	return found, nil
}

func (r *UserRepo) Create(email, name, password string) (*domain.User, error) {
	now := r.store.Now()
	u := domain.User{
		ID:        r.store.NewID(),
		Email:     email,
		Name:      name,
		Password:  password,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.store.Users.Mutate(func(items []domain.User) []domain.User {
		return append(items, u)
	})
	return &u, nil
}

func (r *UserRepo) Update(id string, p domain.UserPatch) (*domain.User, error) {
	var updated *domain.User
	r.store.Users.Mutate(func(items []domain.User) []domain.User {
		for i := range items {
			if items[i].ID != id {
				continue
			}
			if p.Name != nil {
				items[i].Name = *p.Name
			}
			if p.Email != nil {
				items[i].Email = *p.Email
			}
			items[i].UpdatedAt = r.store.Now()
			u := items[i]
			updated = &u
			break
		}
		return items
	})
	return updated, nil
}

func (r *UserRepo) Delete(id string) (bool, error) {
	removed := false
	r.store.Users.Mutate(func(items []domain.User) []domain.User {
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
