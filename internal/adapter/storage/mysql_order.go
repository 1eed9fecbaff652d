package storage

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/lainecomfort/storefront/internal/core/domain"
)

type OrderStore struct {
	db *sqlx.DB
}

func NewOrderStore(db *sqlx.DB) *OrderStore {
	return &OrderStore{db: db}
}

var insertOrderQuery = `
	INSERT INTO orders (order_number, price, quantity, product_name, phone_number, address, client_name)
	VALUES (:order_number, :price, :quantity, :product_name, :phone_number, :address, :client_name)`

func (s *OrderStore) Save(ctx context.Context, order domain.Order) (domain.Order, error) {
	res, err := s.db.NamedExecContext(ctx, insertOrderQuery, order)
	if err != nil {
		return domain.Order{}, fmt.Errorf("insert order: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Order{}, fmt.Errorf("order insert id: %w", err)
	}

	order.ID = id
	return order, nil
}
