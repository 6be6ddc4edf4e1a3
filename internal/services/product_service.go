// internal/services/product_service.go
package services

import (
	"fmt"

	"github.com/orderdesk/backend/internal/models"
	"github.com/orderdesk/backend/internal/store"
	"github.com/orderdesk/backend/internal/validation"
)

type ProductService struct {
	store store.Store
}

type CreateProductRequest struct {
	Name        string  `json:"name" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}

func NewProductService(s store.Store) *ProductService {
	return &ProductService{store: s}
}

func (s *ProductService) CreateProduct(req *CreateProductRequest) (*models.Product, error) {
	if err := validation.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrValidation, err)
	}

	product := &models.Product{
		Name:        req.Name,
		Price:       req.Price,
		Category:    req.Category,
		Description: req.Description,
	}
	if _, err := s.store.AddProduct(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) ListProducts() ([]models.Product, error) {
	return s.store.GetProducts()
}
