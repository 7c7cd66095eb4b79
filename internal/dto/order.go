package dto

import (
	"strings"

	"go-gin-shop-api/internal/domain"
)

type OrderItemDTO struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type CreateOrderDTO struct {
	UserID string         `json:"userId"`
	Items  []OrderItemDTO `json:"items"`
}

func (d *CreateOrderDTO) Normalize() {
	d.UserID = strings.TrimSpace(d.UserID)
	for i := range d.Items {
		d.Items[i].ProductID = strings.TrimSpace(d.Items[i].ProductID)
	}
}

func (d *CreateOrderDTO) Validate() map[string]string {
	errs := map[string]string{}
	if d.UserID == "" {
		errs["userId"] = "userId is required"
	}
	if len(d.Items) == 0 {
		errs["items"] = "order must contain at least one item"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

type UpdateOrderStatusDTO struct {
	Status domain.OrderStatus `json:"status"`
}

func (d *UpdateOrderStatusDTO) Normalize() {
	d.Status = domain.OrderStatus(strings.TrimSpace(string(d.Status)))
}

func (d *UpdateOrderStatusDTO) Validate() map[string]string {
	if !d.Status.Valid() {
		return map[string]string{"status": "status must be one of pending, processing, shipped, delivered, cancelled"}
	}
	return nil
}
