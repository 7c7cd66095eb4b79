package dto

import "strings"

type CreateCategoryDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (d *CreateCategoryDTO) Normalize() {
	d.Name = strings.TrimSpace(d.Name)
	d.Description = strings.TrimSpace(d.Description)
}

func (d *CreateCategoryDTO) Validate() map[string]string {
	if d.Name == "" {
		return map[string]string{"name": "name is required"}
	}
	return nil
}

type UpdateCategoryDTO struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (d *UpdateCategoryDTO) Normalize() {
	if d.Name != nil {
		*d.Name = strings.TrimSpace(*d.Name)
	}
	if d.Description != nil {
		*d.Description = strings.TrimSpace(*d.Description)
	}
}

func (d *UpdateCategoryDTO) Validate() map[string]string {
	if d.Name != nil && *d.Name == "" {
		return map[string]string{"name": "name cannot be empty"}
	}
	return nil
}
