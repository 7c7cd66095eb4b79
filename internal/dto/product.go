package dto

import (
	"strings"
	"unicode/utf8"
)

type CreateProductDTO struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	CategoryID  string  `json:"categoryId"`
}

func (d *CreateProductDTO) Normalize() {
	d.Name = strings.TrimSpace(d.Name)
	d.Description = strings.TrimSpace(d.Description)
	d.CategoryID = strings.TrimSpace(d.CategoryID)
}

func (d *CreateProductDTO) Validate() map[string]string {
	errs := map[string]string{}
	if utf8.RuneCountInString(d.Name) < 3 {
		errs["name"] = "product name must be at least 3 characters"
	}
	if d.Price <= 0 {
		errs["price"] = "price must be greater than 0"
	}
	if d.Stock < 0 {
		errs["stock"] = "stock cannot be negative"
	}
	if d.CategoryID == "" {
		errs["categoryId"] = "categoryId is required"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

type UpdateProductDTO struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
	CategoryID  *string  `json:"categoryId"`
}

func (d *UpdateProductDTO) Normalize() {
	if d.Name != nil {
		*d.Name = strings.TrimSpace(*d.Name)
	}
	if d.Description != nil {
		*d.Description = strings.TrimSpace(*d.Description)
	}
	if d.CategoryID != nil {
		*d.CategoryID = strings.TrimSpace(*d.CategoryID)
	}
}

func (d *UpdateProductDTO) Validate() map[string]string {
	errs := map[string]string{}
	if d.Name != nil && utf8.RuneCountInString(*d.Name) < 3 {
		errs["name"] = "product name must be at least 3 characters"
	}
	if d.Price != nil && *d.Price <= 0 {
		errs["price"] = "price must be greater than 0"
	}
	if d.Stock != nil && *d.Stock < 0 {
		errs["stock"] = "stock cannot be negative"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
