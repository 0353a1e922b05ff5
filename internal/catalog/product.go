package catalog

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is an immutable catalog entry. Price is a unit price and is
// clamped to zero at construction so downstream pricing never sees a
// negative base amount.
type Product struct {
	ID       uuid.UUID
	Title    string
	Price    decimal.Decimal
	Category *Category
}

// NewProduct constructs a product under the given category.
func NewProduct(title string, price float64, category *Category) *Product {
	p := decimal.NewFromFloat(price)
	if p.IsNegative() {
		p = decimal.Zero
	}
	return &Product{ID: uuid.New(), Title: title, Price: p, Category: category}
}
