package dto

import "time"

// RegisterTransactionRequest movimiento de stock a registrar. Para type
// adjustment, Quantity es la cantidad final; para in/out, el delta.
type RegisterTransactionRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Type      string `json:"type" validate:"required,oneof=in out adjustment"`
	Quantity  int    `json:"quantity" validate:"min=0"`
	Reason    string `json:"reason"`
}

// TransactionResponse proyección pública de Transaction.
type TransactionResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	Type      string    `json:"type"`
	Quantity  int       `json:"quantity"`
	Reason    string    `json:"reason"`
	Timestamp time.Time `json:"timestamp"`
	UserID    string    `json:"userId"`
}
