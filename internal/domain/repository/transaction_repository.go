package repository

import "github.com/jhoicas/inventario-local/internal/domain/entity"

// TransactionRepository define el puerto de persistencia para Transaction.
// List devuelve los movimientos más recientes primero.
type TransactionRepository interface {
	Create(tx *entity.Transaction) error
	List() ([]*entity.Transaction, error)
	ListByProduct(productID string) ([]*entity.Transaction, error)
}
