package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest datos para crear un producto. Quantity inicial se
// acepta aquí; después solo se modifica vía transacciones de stock.
type CreateProductRequest struct {
	Name         string          `json:"name" validate:"required"`
	SKU          string          `json:"sku" validate:"required"`
	Category     string          `json:"category"`
	Quantity     int             `json:"quantity" validate:"min=0"`
	ReorderLevel int             `json:"reorderLevel" validate:"min=0"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	SupplierID   string          `json:"supplierId"`
	Description  string          `json:"description"`
}

// UpdateProductRequest edición parcial de un producto; los campos nil no se
// tocan. Quantity no se edita aquí (solo vía transacciones).
type UpdateProductRequest struct {
	Name         *string          `json:"name"`
	SKU          *string          `json:"sku"`
	Category     *string          `json:"category"`
	ReorderLevel *int             `json:"reorderLevel" validate:"omitempty,min=0"`
	UnitPrice    *decimal.Decimal `json:"unitPrice"`
	SupplierID   *string          `json:"supplierId"`
	Description  *string          `json:"description"`
}

// ProductResponse proyección pública de Product.
type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	SKU          string          `json:"sku"`
	Category     string          `json:"category"`
	Quantity     int             `json:"quantity"`
	ReorderLevel int             `json:"reorderLevel"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	SupplierID   string          `json:"supplierId"`
	Description  string          `json:"description"`
	LowStock     bool            `json:"lowStock"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}
