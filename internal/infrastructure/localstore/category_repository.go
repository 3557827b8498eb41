package localstore

import (
	"fmt"

	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository, colección
// completa bajo KeyCategories.
type CategoryRepo struct {
	store Store
}

// NewCategoryRepository construye el adaptador de persistencia de categorías.
func NewCategoryRepository(store Store) *CategoryRepo {
	return &CategoryRepo{store: store}
}

func (r *CategoryRepo) load() ([]*entity.Category, error) {
	var categories []*entity.Category
	if _, err := r.store.Get(KeyCategories, &categories); err != nil {
		return nil, fmt.Errorf("cargar categorías: %w", err)
	}
	return categories, nil
}

func (r *CategoryRepo) save(categories []*entity.Category) error {
	if err := r.store.Set(KeyCategories, categories); err != nil {
		return fmt.Errorf("guardar categorías: %w", err)
	}
	return nil
}

// Create persiste una nueva categoría.
func (r *CategoryRepo) Create(category *entity.Category) error {
	categories, err := r.load()
	if err != nil {
		return err
	}
	categories = append(categories, category)
	return r.save(categories)
}

// GetByID obtiene una categoría por ID, (nil, nil) si no existe.
func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	categories, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, c := range categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

// GetByName obtiene una categoría por nombre (los productos referencian la
// categoría por nombre).
func (r *CategoryRepo) GetByName(name string) (*entity.Category, error) {
	categories, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, c := range categories {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, nil
}

// List devuelve todas las categorías en orden de inserción.
func (r *CategoryRepo) List() ([]*entity.Category, error) {
	return r.load()
}

// Update reemplaza la categoría con el mismo ID. ErrNotFound si no existe.
func (r *CategoryRepo) Update(category *entity.Category) error {
	categories, err := r.load()
	if err != nil {
		return err
	}
	for i, c := range categories {
		if c.ID == category.ID {
			categories[i] = category
			return r.save(categories)
		}
	}
	return domain.ErrNotFound
}

// Delete elimina la categoría por ID. ErrNotFound si no existe.
func (r *CategoryRepo) Delete(id string) error {
	categories, err := r.load()
	if err != nil {
		return err
	}
	for i, c := range categories {
		if c.ID == id {
			categories = append(categories[:i], categories[i+1:]...)
			return r.save(categories)
		}
	}
	return domain.ErrNotFound
}
