package storage

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lainecomfort/storefront/internal/core/domain"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "mysql"), mock
}

var productColumns = []string{"id", "name", "description", "price", "category"}

func TestProductStore_Save(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewProductStore(db)

	mock.ExpectExec("INSERT INTO products").
		WithArgs("Chair", "A comfy chair", "49.99", "Furniture").
		WillReturnResult(sqlmock.NewResult(7, 1))

	saved, err := store.Save(context.Background(), domain.Product{
		Name:        "Chair",
		Description: "A comfy chair",
		Price:       decimal.RequireFromString("49.99"),
		Category:    "Furniture",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(7), saved.ID)
	assert.Equal(t, "Chair", saved.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductStore_FindByID(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewProductStore(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM products WHERE id = ?")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(productColumns).
			AddRow(7, "Chair", "A comfy chair", "49.99", "Furniture"))

	product, err := store.FindByID(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, product)

	assert.Equal(t, int64(7), product.ID)
	assert.Equal(t, "Chair", product.Name)
	assert.True(t, product.Price.Equal(decimal.RequireFromString("49.99")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductStore_FindByID_Absent(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewProductStore(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM products WHERE id = ?")).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(productColumns))

	product, err := store.FindByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, product)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductStore_FindAll(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewProductStore(db)

	mock.ExpectQuery("SELECT id, name, description, price, category FROM products").
		WillReturnRows(sqlmock.NewRows(productColumns).
			AddRow(1, "Chair", "A comfy chair", "49.99", "Furniture").
			AddRow(2, "Lamp", "Reading lamp", "19.50", "Lighting"))

	products, err := store.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, "Chair", products[0].Name)
	assert.Equal(t, "Lamp", products[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
