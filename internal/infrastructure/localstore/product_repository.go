package localstore

import (
	"fmt"

	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre el almacén
// local, colección completa bajo KeyProducts.
type ProductRepo struct {
	store Store
}

// NewProductRepository construye el adaptador de persistencia de productos.
func NewProductRepository(store Store) *ProductRepo {
	return &ProductRepo{store: store}
}

func (r *ProductRepo) load() ([]*entity.Product, error) {
	var products []*entity.Product
	if _, err := r.store.Get(KeyProducts, &products); err != nil {
		return nil, fmt.Errorf("cargar productos: %w", err)
	}
	return products, nil
}

func (r *ProductRepo) save(products []*entity.Product) error {
	if err := r.store.Set(KeyProducts, products); err != nil {
		return fmt.Errorf("guardar productos: %w", err)
	}
	return nil
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	products, err := r.load()
	if err != nil {
		return err
	}
	products = append(products, product)
	return r.save(products)
}

// GetByID obtiene un producto por ID, (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	products, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

// GetBySKU obtiene un producto por SKU.
func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	products, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

// List devuelve todos los productos en orden de inserción.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	return r.load()
}

// Update reemplaza el producto con el mismo ID. ErrNotFound si no existe.
func (r *ProductRepo) Update(product *entity.Product) error {
	products, err := r.load()
	if err != nil {
		return err
	}
	for i, p := range products {
		if p.ID == product.ID {
			products[i] = product
			return r.save(products)
		}
	}
	return domain.ErrNotFound
}

// Delete elimina el producto por ID. ErrNotFound si no existe.
func (r *ProductRepo) Delete(id string) error {
	products, err := r.load()
	if err != nil {
		return err
	}
	for i, p := range products {
		if p.ID == id {
			products = append(products[:i], products[i+1:]...)
			return r.save(products)
		}
	}
	return domain.ErrNotFound
}
