package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/application/usecase"
	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/infrastructure/localstore"
)

func TestCategory_CRUDConNombreUnico(t *testing.T) {
	uc := usecase.NewCategoryUseCase(localstore.NewCategoryRepository(localstore.NewMemory()))

	cat, err := uc.Create(dto.CreateCategoryRequest{Name: "Pantallas", Description: "Monitores y TV"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateCategoryRequest{Name: "Pantallas"})
	assert.ErrorIs(t, err, domain.ErrDuplicate, "el nombre de categoría es único")

	desc := "Monitores"
	updated, err := uc.Update(cat.ID, dto.UpdateCategoryRequest{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, "Monitores", updated.Description)
	assert.Equal(t, "Pantallas", updated.Name)

	require.NoError(t, uc.Delete(cat.ID))
	got, err := uc.GetByID(cat.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCategory_RenombrarColisiona(t *testing.T) {
	uc := usecase.NewCategoryUseCase(localstore.NewCategoryRepository(localstore.NewMemory()))

	_, err := uc.Create(dto.CreateCategoryRequest{Name: "Pantallas"})
	require.NoError(t, err)
	otra, err := uc.Create(dto.CreateCategoryRequest{Name: "Periféricos"})
	require.NoError(t, err)

	nombre := "Pantallas"
	_, err = uc.Update(otra.ID, dto.UpdateCategoryRequest{Name: &nombre})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestSupplier_CRUD(t *testing.T) {
	uc := usecase.NewSupplierUseCase(localstore.NewSupplierRepository(localstore.NewMemory()))

	sup, err := uc.Create(dto.CreateSupplierRequest{
		Name:  "Distribuidora Norte",
		Email: "ventas@norte.com",
		Phone: "555-0101",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, sup.ID)

	_, err = uc.Create(dto.CreateSupplierRequest{Name: "Sin email", Email: "no-es-email"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	phone := "555-0202"
	updated, err := uc.Update(sup.ID, dto.UpdateSupplierRequest{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, "555-0202", updated.Phone)
	assert.Equal(t, "Distribuidora Norte", updated.Name)

	list, err := uc.List()
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, uc.Delete(sup.ID))
	got, err := uc.GetByID(sup.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
