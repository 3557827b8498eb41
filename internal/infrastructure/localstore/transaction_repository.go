package localstore

import (
	"fmt"

	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación del puerto TransactionRepository, colección
// completa bajo KeyTransactions, más reciente primero.
type TransactionRepo struct {
	store Store
}

// NewTransactionRepository construye el adaptador de movimientos de stock.
func NewTransactionRepository(store Store) *TransactionRepo {
	return &TransactionRepo{store: store}
}

func (r *TransactionRepo) load() ([]*entity.Transaction, error) {
	var txs []*entity.Transaction
	if _, err := r.store.Get(KeyTransactions, &txs); err != nil {
		return nil, fmt.Errorf("cargar transacciones: %w", err)
	}
	return txs, nil
}

// Create antepone el movimiento a la colección (orden cronológico inverso,
// como lo guarda la aplicación original).
func (r *TransactionRepo) Create(tx *entity.Transaction) error {
	txs, err := r.load()
	if err != nil {
		return err
	}
	txs = append([]*entity.Transaction{tx}, txs...)
	if err := r.store.Set(KeyTransactions, txs); err != nil {
		return fmt.Errorf("guardar transacciones: %w", err)
	}
	return nil
}

// List devuelve todos los movimientos, más reciente primero.
func (r *TransactionRepo) List() ([]*entity.Transaction, error) {
	return r.load()
}

// ListByProduct devuelve los movimientos de un producto, más reciente primero.
func (r *TransactionRepo) ListByProduct(productID string) ([]*entity.Transaction, error) {
	txs, err := r.load()
	if err != nil {
		return nil, err
	}
	var out []*entity.Transaction
	for _, tx := range txs {
		if tx.ProductID == productID {
			out = append(out, tx)
		}
	}
	return out, nil
}
