package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lainecomfort/storefront/internal/core/domain"
	"github.com/lainecomfort/storefront/internal/port"
)

type OrderService struct {
	repo port.OrderRepository
}

func NewOrderService(repo port.OrderRepository) *OrderService {
	return &OrderService{repo: repo}
}

// PlaceOrder persists a new order built from the draft's business
// fields. The draft's ID and OrderNumber are discarded: identity is
// store-assigned and the order number is generated here. Collisions
// on the generated number are not checked at this layer; the orders
// table's unique index backstops them. No field validation is
// performed.
func (s *OrderService) PlaceOrder(ctx context.Context, draft domain.Order) (domain.Order, error) {
	order := domain.Order{
		OrderNumber: uuid.NewString(),
		Price:       draft.Price,
		Quantity:    draft.Quantity,
		ProductName: draft.ProductName,
		PhoneNumber: draft.PhoneNumber,
		Address:     draft.Address,
		ClientName:  draft.ClientName,
	}

	saved, err := s.repo.Save(ctx, order)
	if err != nil {
		return domain.Order{}, fmt.Errorf("save order: %w", err)
	}

	return saved, nil
}
