package usecase

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/domain/repository"
)

// TransactionUseCase registra movimientos de stock y aplica su efecto al
// producto: in suma, out resta con piso en 0, adjustment fija la cantidad.
type TransactionUseCase struct {
	txRepo      repository.TransactionRepository
	productRepo repository.ProductRepository
	validate    *validator.Validate
}

// NewTransactionUseCase construye el caso de uso.
func NewTransactionUseCase(txRepo repository.TransactionRepository, productRepo repository.ProductRepository) *TransactionUseCase {
	return &TransactionUseCase{txRepo: txRepo, productRepo: productRepo, validate: validator.New()}
}

// Register crea el movimiento atribuido a userID y actualiza la cantidad
// del producto. Una salida mayor al stock no falla: la cantidad queda en 0,
// como lo hace la pantalla de transacciones original.
func (uc *TransactionUseCase) Register(userID string, in dto.RegisterTransactionRequest) (*dto.TransactionResponse, error) {
	if err := uc.validate.Struct(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	quantity := product.Quantity
	switch in.Type {
	case entity.TransactionIn:
		quantity += in.Quantity
	case entity.TransactionOut:
		quantity -= in.Quantity
	case entity.TransactionAdjustment:
		quantity = in.Quantity
	default:
		return nil, domain.ErrInvalidInput
	}
	if quantity < 0 {
		quantity = 0
	}

	now := time.Now()
	tx := &entity.Transaction{
		ID:        uuid.New().String(),
		ProductID: in.ProductID,
		Type:      in.Type,
		Quantity:  in.Quantity,
		Reason:    in.Reason,
		Timestamp: now,
		UserID:    userID,
	}
	if err := uc.txRepo.Create(tx); err != nil {
		return nil, err
	}
	product.Quantity = quantity
	product.UpdatedAt = now
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return toTransactionResponse(tx), nil
}

// List devuelve todos los movimientos, más reciente primero.
func (uc *TransactionUseCase) List() ([]dto.TransactionResponse, error) {
	txs, err := uc.txRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, *toTransactionResponse(tx))
	}
	return out, nil
}

// ListByProduct devuelve los movimientos de un producto, más reciente primero.
func (uc *TransactionUseCase) ListByProduct(productID string) ([]dto.TransactionResponse, error) {
	txs, err := uc.txRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, *toTransactionResponse(tx))
	}
	return out, nil
}

func toTransactionResponse(tx *entity.Transaction) *dto.TransactionResponse {
	if tx == nil {
		return nil
	}
	return &dto.TransactionResponse{
		ID:        tx.ID,
		ProductID: tx.ProductID,
		Type:      tx.Type,
		Quantity:  tx.Quantity,
		Reason:    tx.Reason,
		Timestamp: tx.Timestamp,
		UserID:    tx.UserID,
	}
}
