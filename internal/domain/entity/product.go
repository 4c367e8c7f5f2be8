package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario. El ID lo genera el store y es
// inmutable; Quantity es el único campo mutable después de la creación.
type Product struct {
	ID          int64
	Name        string
	Type        string
	SKU         string
	ImageURL    string
	Description string
	Quantity    int             // invariante: >= 0
	Price       decimal.Decimal // invariante: >= 0
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
