package port

import (
	"context"

	"github.com/lainecomfort/storefront/internal/core/domain"
)

type ProductRepository interface {
	// Save persists a new product and returns it with the assigned identity
	Save(ctx context.Context, product domain.Product) (domain.Product, error)

	// FindAll returns every stored product in store order
	FindAll(ctx context.Context) ([]domain.Product, error)

	// FindByID returns nil, nil when no product matches
	FindByID(ctx context.Context, id int64) (*domain.Product, error)
}

// OrderRepository is write-only from the rest of the system's
// perspective: no reads are exposed.
type OrderRepository interface {
	// Save persists a new order and returns it with the assigned identity
	Save(ctx context.Context, order domain.Order) (domain.Order, error)
}
