package entity

import "time"

// Tipos de transacción de stock.
const (
	TransactionIn         = "in"         // entrada: suma Quantity al producto
	TransactionOut        = "out"        // salida: resta Quantity (piso en 0)
	TransactionAdjustment = "adjustment" // ajuste: fija Quantity como cantidad final
)

// Transaction representa un movimiento de stock sobre un producto,
// atribuido al usuario que lo registró. Inmutable una vez creada.
type Transaction struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	Type      string    `json:"type"` // in, out, adjustment
	Quantity  int       `json:"quantity"`
	Reason    string    `json:"reason"`
	Timestamp time.Time `json:"timestamp"`
	UserID    string    `json:"userId"`
}
