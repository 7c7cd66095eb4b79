package domain

import "time"

type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	CategoryID  string    `json:"categoryId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ProductPatch struct {
	Name        *string
	Description *string
	Price       *float64
	Stock       *int
	CategoryID  *string
}

// NewProduct 创建所需的全部字段（ID/时间戳由仓储生成）
type NewProduct struct {
	Name        string
	Description string
	Price       float64
	Stock       int
	CategoryID  string
}

type ProductRepository interface {
	// FindAll 当 page/limit 均 >0 时返回对应窗口，否则返回全量；total 恒为集合大小
	FindAll(page, limit int) ([]Product, int, error)
	FindByID(id string) (*Product, error)
	FindByCategory(categoryID string) ([]Product, error)
	Create(np NewProduct) (*Product, error)
	Update(id string, p ProductPatch) (*Product, error)
	Delete(id string) (bool, error)
}
