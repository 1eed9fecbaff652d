package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/lainecomfort/storefront/internal/core/domain"
)

type ProductStore struct {
	db *sqlx.DB
}

func NewProductStore(db *sqlx.DB) *ProductStore {
	return &ProductStore{db: db}
}

var insertProductQuery = `
	INSERT INTO products (name, description, price, category)
	VALUES (:name, :description, :price, :category)`

func (s *ProductStore) Save(ctx context.Context, product domain.Product) (domain.Product, error) {
	res, err := s.db.NamedExecContext(ctx, insertProductQuery, product)
	if err != nil {
		return domain.Product{}, fmt.Errorf("insert product: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Product{}, fmt.Errorf("product insert id: %w", err)
	}

	product.ID = id
	return product, nil
}

var findAllProductsQuery = `
	SELECT id, name, description, price, category FROM products`

func (s *ProductStore) FindAll(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := s.db.SelectContext(ctx, &products, findAllProductsQuery); err != nil {
		return nil, fmt.Errorf("select products: %w", err)
	}
	return products, nil
}

var findProductByIDQuery = `
	SELECT id, name, description, price, category FROM products WHERE id = ?`

func (s *ProductStore) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	var product domain.Product
	err := s.db.GetContext(ctx, &product, findProductByIDQuery, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select product: %w", err)
	}
	return &product, nil
}
