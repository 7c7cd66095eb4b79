package service

import (
	"go.uber.org/zap"

	"go-gin-shop-api/internal/domain"
	"go-gin-shop-api/internal/dto"
)

type CategoryService struct {
	categories domain.CategoryRepository
	products   domain.ProductRepository
	log        *zap.Logger
}

func NewCategoryService(categories domain.CategoryRepository, products domain.ProductRepository, log *zap.Logger) *CategoryService {
	return &CategoryService{categories: categories, products: products, log: log}
}

func (s *CategoryService) GetAllCategories() ([]domain.Category, error) {
	return s.categories.FindAll()
}

func (s *CategoryService) GetCategoryByID(id string) (*domain.Category, error) {
	c, err := s.categories.FindByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.NotFound("category")
	}
	return c, nil
}

func (s *CategoryService) CreateCategory(d *dto.CreateCategoryDTO) (*domain.Category, error) {
	c, err := s.categories.Create(d.Name, d.Description)
	if err != nil {
		return nil, err
	}
	s.log.Info("category created", zap.String("id", c.ID), zap.String("name", c.Name))
	return c, nil
}

func (s *CategoryService) UpdateCategory(id string, d *dto.UpdateCategoryDTO) (*domain.Category, error) {
	if _, err := s.GetCategoryByID(id); err != nil {
		return nil, err
	}
	updated, err := s.categories.Update(id, domain.CategoryPatch{Name: d.Name, Description: d.Description})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.NotFound("category")
	}
	return updated, nil
}

// DeleteCategory 引用完整性守卫：仍有商品挂在该分类下时拒绝删除
func (s *CategoryService) DeleteCategory(id string) error {
	if _, err := s.GetCategoryByID(id); err != nil {
		return err
	}

	referencing, err := s.products.FindByCategory(id)
	if err != nil {
		return err
	}
	if len(referencing) > 0 {
		return domain.Validation("cannot delete a category that still has products")
	}

	if _, err := s.categories.Delete(id); err != nil {
		return err
	}
	s.log.Info("category deleted", zap.String("id", id))
	return nil
}
