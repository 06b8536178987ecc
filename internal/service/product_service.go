package service

import (
	"context"
	"strings"

	"golang.org/x/text/cases"

	"github.com/mistore/storefront/internal/models"
	"github.com/mistore/storefront/internal/repository"
)

// ProductService handles business logic for products
type ProductService struct {
	repo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// ListProducts returns all available products
func (s *ProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.repo.GetAll(ctx)
}

// SearchProducts returns catalog products matching query, in catalog order
func (s *ProductService) SearchProducts(ctx context.Context, query string) ([]models.Product, error) {
	products, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return FilterProducts(products, query), nil
}

// GetProduct returns a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// FilterProducts keeps products whose name or category contains query,
// ignoring case. An empty query returns products unchanged.
func FilterProducts(products []models.Product, query string) []models.Product {
	if query == "" {
		return products
	}

	fold := cases.Fold()
	q := fold.String(query)

	matched := make([]models.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(fold.String(p.Name), q) || strings.Contains(fold.String(p.Category), q) {
			matched = append(matched, p)
		}
	}
	return matched
}
