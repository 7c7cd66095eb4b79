package domain

import "time"

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserPatch 部分更新：nil 字段保持原值
type UserPatch struct {
	Name  *string
	Email *string
}

type UserRepository interface {
	FindAll() ([]User, error)
	FindByID(id string) (*User, error)
	FindByEmail(email string) (*User, error)
	Create(email, name, password string) (*User, error)
	Update(id string, p UserPatch) (*User, error)
	Delete(id string) (bool, error)
}
