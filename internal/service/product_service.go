package service

import (
	"go.uber.org/zap"

	"go-gin-shop-api/internal/domain"
	"go-gin-shop-api/internal/dto"
)

type ProductService struct {
	products   domain.ProductRepository
	categories domain.CategoryRepository
	log        *zap.Logger
}

func NewProductService(products domain.ProductRepository, categories domain.CategoryRepository, log *zap.Logger) *ProductService {
	return &ProductService{products: products, categories: categories, log: log}
}

func (s *ProductService) GetAllProducts(page, limit int) ([]domain.Product, int, error) {
	return s.products.FindAll(page, limit)
}

func (s *ProductService) GetProductByID(id string) (*domain.Product, error) {
	p, err := s.products.FindByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.NotFound("product")
	}
	return p, nil
}

func (s *ProductService) CreateProduct(d *dto.CreateProductDTO) (*domain.Product, error) {
	cat, err := s.categories.FindByID(d.CategoryID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.NotFound("category")
	}

	if d.Price <= 0 {
		return nil, domain.Validation("price must be greater than 0")
	}
	if d.Stock < 0 {
		return nil, domain.Validation("stock cannot be negative")
	}

	p, err := s.products.Create(domain.NewProduct{
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
		Stock:       d.Stock,
		CategoryID:  d.CategoryID,
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("product created", zap.String("id", p.ID), zap.String("category", p.CategoryID))
	return p, nil
}

func (s *ProductService) UpdateProduct(id string, d *dto.UpdateProductDTO) (*domain.Product, error) {
	if _, err := s.GetProductByID(id); err != nil {
		return nil, err
	}

	if d.CategoryID != nil {
		cat, err := s.categories.FindByID(*d.CategoryID)
		if err != nil {
			return nil, err
		}
		if cat == nil {
			return nil, domain.NotFound("category")
		}
	}

	if d.Price != nil && *d.Price <= 0 {
		return nil, domain.Validation("price must be greater than 0")
	}

	updated, err := s.products.Update(id, domain.ProductPatch{
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
		Stock:       d.Stock,
		CategoryID:  d.CategoryID,
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.NotFound("product")
	}
	return updated, nil
}

func (s *ProductService) DeleteProduct(id string) error {
	if _, err := s.GetProductByID(id); err != nil {
		return err
	}
	if _, err := s.products.Delete(id); err != nil {
		return err
	}
	s.log.Info("product deleted", zap.String("id", id))
	return nil
}
