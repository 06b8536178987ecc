package service

import (
	"context"

	"github.com/mistore/storefront/internal/models"
	"github.com/mistore/storefront/internal/repository"
)

// OrderService serves the read-only order history
type OrderService struct {
	repo repository.OrderRepository
}

// NewOrderService creates a new order service
func NewOrderService(repo repository.OrderRepository) *OrderService {
	return &OrderService{
		repo: repo,
	}
}

// ListOrders returns the order history, newest first
func (s *OrderService) ListOrders(ctx context.Context) ([]models.Order, error) {
	return s.repo.GetAll(ctx)
}

// GetOrder returns a single order or repository.ErrOrderNotFound
func (s *OrderService) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	return s.repo.GetByID(ctx, id)
}
