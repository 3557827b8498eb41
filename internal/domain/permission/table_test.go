package permission_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-local/internal/domain/permission"
)

// ──────────────────────────────────────────────────────────────────────────────
// Cobertura de la tabla
// ──────────────────────────────────────────────────────────────────────────────

func TestDefault_TablaCompleta(t *testing.T) {
	table := permission.Default()
	require.NoError(t, table.Complete(),
		"la tabla Default debe definir toda tripleta role×resource×action")
}

func TestComplete_DetectaTripletaFaltante(t *testing.T) {
	table := permission.Default()
	delete(table[permission.RoleViewer][permission.ResourceUsers], permission.ActionRead)

	assert.Error(t, table.Complete(),
		"una tripleta eliminada debe hacer fallar la verificación de cobertura")
}

// ──────────────────────────────────────────────────────────────────────────────
// Política por rol
// ──────────────────────────────────────────────────────────────────────────────

func TestIsAllowed_PoliticaExacta(t *testing.T) {
	table := permission.Default()

	// allowed[role][resource] = acciones permitidas; lo no listado se niega.
	allowed := map[permission.Role]map[permission.Resource][]permission.Action{
		permission.RoleAdmin: {
			permission.ResourceProducts:     {"create", "read", "update", "delete"},
			permission.ResourceSuppliers:    {"create", "read", "update", "delete"},
			permission.ResourceCategories:   {"create", "read", "update", "delete"},
			permission.ResourceTransactions: {"create", "read", "update", "delete"},
			permission.ResourceAnalytics:    {"read"},
			permission.ResourceUsers:        {"create", "read", "update", "delete"},
		},
		permission.RoleManager: {
			permission.ResourceProducts:     {"create", "read", "update"},
			permission.ResourceSuppliers:    {"create", "read", "update"},
			permission.ResourceCategories:   {"create", "read", "update"},
			permission.ResourceTransactions: {"create", "read"},
			permission.ResourceAnalytics:    {"read"},
			permission.ResourceUsers:        {"read"},
		},
		permission.RoleViewer: {
			permission.ResourceProducts:     {"read"},
			permission.ResourceSuppliers:    {"read"},
			permission.ResourceCategories:   {"read"},
			permission.ResourceTransactions: {"read"},
			permission.ResourceAnalytics:    {"read"},
			permission.ResourceUsers:        {},
		},
	}

	for _, role := range permission.Roles {
		for _, resource := range permission.Resources {
			for _, action := range permission.Actions {
				want := false
				for _, a := range allowed[role][resource] {
					if a == action {
						want = true
					}
				}
				got := table.IsAllowed(role, resource, action)
				assert.Equalf(t, want, got,
					"(%s, %s, %s): esperado %v", role, resource, action, want)
			}
		}
	}
}

func TestIsAllowed_CasosRepresentativos(t *testing.T) {
	table := permission.Default()

	assert.False(t, table.IsAllowed(permission.RoleManager, permission.ResourceTransactions, permission.ActionUpdate),
		"manager no edita transacciones")
	assert.False(t, table.IsAllowed(permission.RoleViewer, permission.ResourceUsers, permission.ActionRead),
		"viewer no ve usuarios")
	assert.True(t, table.IsAllowed(permission.RoleAdmin, permission.ResourceUsers, permission.ActionDelete),
		"admin borra usuarios")
}

// ──────────────────────────────────────────────────────────────────────────────
// Entradas fuera de enumeración
// ──────────────────────────────────────────────────────────────────────────────

func TestIsAllowed_EntradasDesconocidasSeNiegan(t *testing.T) {
	table := permission.Default()

	assert.False(t, table.IsAllowed("superadmin", permission.ResourceProducts, permission.ActionRead))
	assert.False(t, table.IsAllowed(permission.RoleAdmin, "warehouses", permission.ActionRead))
	assert.False(t, table.IsAllowed(permission.RoleAdmin, permission.ResourceProducts, "export"))
}
