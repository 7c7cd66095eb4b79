package domain

import "time"

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	default:
		return false
	}
}

type Order struct {
	ID         string      `json:"id"`
	UserID     string      `json:"userId"`
	Items      []OrderItem `json:"items"`
	TotalPrice float64     `json:"totalPrice"`
	Status     OrderStatus `json:"status"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}

type OrderItem struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type OrderPatch struct {
	Status *OrderStatus
}

// NewOrder 创建时的快照：TotalPrice 只在此刻计算，之后不再重算
type NewOrder struct {
	UserID     string
	Items      []OrderItem
	TotalPrice float64
	Status     OrderStatus
}

type OrderRepository interface {
	// FindAll userID 非空时只返回该用户的订单
	FindAll(userID string) ([]Order, error)
	FindByID(id string) (*Order, error)
	Create(no NewOrder) (*Order, error)
	Update(id string, p OrderPatch) (*Order, error)
	Delete(id string) (bool, error)
}
