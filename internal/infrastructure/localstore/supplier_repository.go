package localstore

import (
	"fmt"

	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación del puerto SupplierRepository, colección
// completa bajo KeySuppliers.
type SupplierRepo struct {
	store Store
}

// NewSupplierRepository construye el adaptador de persistencia de proveedores.
func NewSupplierRepository(store Store) *SupplierRepo {
	return &SupplierRepo{store: store}
}

func (r *SupplierRepo) load() ([]*entity.Supplier, error) {
	var suppliers []*entity.Supplier
	if _, err := r.store.Get(KeySuppliers, &suppliers); err != nil {
		return nil, fmt.Errorf("cargar proveedores: %w", err)
	}
	return suppliers, nil
}

func (r *SupplierRepo) save(suppliers []*entity.Supplier) error {
	if err := r.store.Set(KeySuppliers, suppliers); err != nil {
		return fmt.Errorf("guardar proveedores: %w", err)
	}
	return nil
}

// Create persiste un nuevo proveedor.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	suppliers, err := r.load()
	if err != nil {
		return err
	}
	suppliers = append(suppliers, supplier)
	return r.save(suppliers)
}

// GetByID obtiene un proveedor por ID, (nil, nil) si no existe.
func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	suppliers, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, s := range suppliers {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

// List devuelve todos los proveedores en orden de inserción.
func (r *SupplierRepo) List() ([]*entity.Supplier, error) {
	return r.load()
}

// Update reemplaza el proveedor con el mismo ID. ErrNotFound si no existe.
func (r *SupplierRepo) Update(supplier *entity.Supplier) error {
	suppliers, err := r.load()
	if err != nil {
		return err
	}
	for i, s := range suppliers {
		if s.ID == supplier.ID {
			suppliers[i] = supplier
			return r.save(suppliers)
		}
	}
	return domain.ErrNotFound
}

// Delete elimina el proveedor por ID. ErrNotFound si no existe.
func (r *SupplierRepo) Delete(id string) error {
	suppliers, err := r.load()
	if err != nil {
		return err
	}
	for i, s := range suppliers {
		if s.ID == id {
			suppliers = append(suppliers[:i], suppliers[i+1:]...)
			return r.save(suppliers)
		}
	}
	return domain.ErrNotFound
}
