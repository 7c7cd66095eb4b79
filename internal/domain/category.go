package domain

import "time"

type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CategoryPatch struct {
	Name        *string
	Description *string
}

type CategoryRepository interface {
	FindAll() ([]Category, error)
	FindByID(id string) (*Category, error)
	Create(name, description string) (*Category, error)
	Update(id string, p CategoryPatch) (*Category, error)
	Delete(id string) (bool, error)
}
