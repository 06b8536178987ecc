package repository

import (
	"context"
	"errors"

	"github.com/mistore/storefront/internal/models"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
}

// InMemoryProductRepository is the immutable session catalog.
// GetAll returns products in catalog order.
type InMemoryProductRepository struct {
	products []models.Product
	index    map[int64]int
}

// NewInMemoryProductRepository creates a catalog seeded with the storefront assortment
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return NewProductRepositoryFrom(seedProducts())
}

// NewProductRepositoryFrom creates a catalog over the given products.
// The slice is copied; later ids shadow earlier duplicates.
func NewProductRepositoryFrom(products []models.Product) *InMemoryProductRepository {
	r := &InMemoryProductRepository{
		products: make([]models.Product, len(products)),
		index:    make(map[int64]int, len(products)),
	}
	copy(r.products, products)
	for i, p := range r.products {
		r.index[p.ID] = i
	}
	return r
}

// GetAll returns all products
func (r *InMemoryProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	products := make([]models.Product, len(r.products))
	copy(products, r.products)
	return products, nil
}

// GetByID returns a product by its ID
func (r *InMemoryProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	product, exists := r.Lookup(id)
	if !exists {
		return nil, ErrProductNotFound
	}
	return &product, nil
}

// Lookup is the context-free accessor used by carts to price line items
func (r *InMemoryProductRepository) Lookup(id int64) (models.Product, bool) {
	i, exists := r.index[id]
	if !exists {
		return models.Product{}, false
	}
	return r.products[i], true
}

func seedProducts() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Смартфон Galaxy X", Price: 49990, Category: "Электроника", Badge: "Хит",
			Image: "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?w=400"},
		{ID: 2, Name: "Наушники Pro", Price: 8990, Category: "Аудио",
			Image: "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400"},
		{ID: 3, Name: "Умные часы", Price: 15990, Category: "Аксессуары", Badge: "Новинка",
			Image: "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=400"},
		{ID: 4, Name: "Ноутбук Ultra", Price: 79990, Category: "Компьютеры",
			Image: "https://images.unsplash.com/photo-1496181133206-80ce9b88a853?w=400"},
		{ID: 5, Name: "Камера 4K", Price: 35990, Category: "Фото", Badge: "Скидка",
			Image: "https://images.unsplash.com/photo-1526170375885-4d8ecf77b99f?w=400"},
		{ID: 6, Name: "Планшет Tab", Price: 29990, Category: "Электроника",
			Image: "https://images.unsplash.com/photo-1544244015-0df4b3ffc6b0?w=400"},
	}
}
