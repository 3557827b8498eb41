package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario. Quantity se modifica solo
// vía transacciones de stock (in/out/adjustment), nunca editando el producto.
type Product struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	SKU          string          `json:"sku"` // único en el inventario
	Category     string          `json:"category"`
	Quantity     int             `json:"quantity"`
	ReorderLevel int             `json:"reorderLevel"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	SupplierID   string          `json:"supplierId"`
	Description  string          `json:"description"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// LowStock indica si el producto está en o por debajo de su nivel de reorden.
func (p Product) LowStock() bool {
	return p.Quantity <= p.ReorderLevel
}

// StockValue devuelve Quantity × UnitPrice.
func (p Product) StockValue() decimal.Decimal {
	return p.UnitPrice.Mul(decimal.NewFromInt(int64(p.Quantity)))
}
