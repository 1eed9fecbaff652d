package domain

import "github.com/shopspring/decimal"

// Order is write-once: it is persisted at placement and never read
// back through this system. OrderNumber is generated server-side and
// is distinct from the integer store identity.
type Order struct {
	ID          int64           `db:"id"`
	OrderNumber string          `db:"order_number"`
	Price       decimal.Decimal `db:"price"`
	Quantity    int             `db:"quantity"`
	ProductName string          `db:"product_name"`
	PhoneNumber int64           `db:"phone_number"`
	Address     string          `db:"address"`
	ClientName  string          `db:"client_name"`
}
