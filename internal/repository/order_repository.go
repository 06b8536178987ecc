package repository

import (
	"context"
	"errors"

	"github.com/mistore/storefront/internal/models"
)

var (
	ErrOrderNotFound = errors.New("order not found")
)

// OrderRepository provides read access to the order history
type OrderRepository interface {
	GetAll(ctx context.Context) ([]models.Order, error)
	GetByID(ctx context.Context, id string) (*models.Order, error)
}

// InMemoryOrderRepository holds the mock order history, newest first
type InMemoryOrderRepository struct {
	orders []models.Order
}

// NewInMemoryOrderRepository builds the order history from catalog products
func NewInMemoryOrderRepository(products *InMemoryProductRepository) *InMemoryOrderRepository {
	item := func(id int64, qty int) models.OrderItem {
		p, _ := products.Lookup(id)
		return models.OrderItem{Product: p, Quantity: qty}
	}

	return &InMemoryOrderRepository{
		orders: []models.Order{
			{
				ID:     "12345",
				Date:   "20.01.2026",
				Status: models.OrderStatusShipped,
				Total:  58980,
				Items:  []models.OrderItem{item(1, 1), item(2, 1)},
			},
			{
				ID:     "12344",
				Date:   "15.01.2026",
				Status: models.OrderStatusDelivered,
				Total:  15990,
				Items:  []models.OrderItem{item(3, 1)},
			},
		},
	}
}

// GetAll returns the order history
func (r *InMemoryOrderRepository) GetAll(ctx context.Context) ([]models.Order, error) {
	orders := make([]models.Order, len(r.orders))
	copy(orders, r.orders)
	return orders, nil
}

// GetByID returns a single order
func (r *InMemoryOrderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	for _, o := range r.orders {
		if o.ID == id {
			order := o
			return &order, nil
		}
	}
	return nil, ErrOrderNotFound
}
