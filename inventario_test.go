package inventario_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	inventario "github.com/jhoicas/inventario-local"
	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/pkg/config"
)

func testConfig() *config.Config {
	return &config.Config{
		App:   config.AppConfig{Env: "development", Name: "inventario-test", LogLevel: "error"},
		Store: config.StoreConfig{Driver: config.StoreDriverMemory},
		Auth:  config.AuthConfig{SessionTTLHours: 24, BcryptCost: 4, SeedIdentities: true},
	}
}

func newApp(t *testing.T) *inventario.App {
	t.Helper()
	app, err := inventario.New(testConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })
	return app
}

func TestNew_DriverDesconocido(t *testing.T) {
	cfg := testConfig()
	cfg.Store.Driver = "redis"
	_, err := inventario.New(cfg)
	assert.Error(t, err)
}

// El flujo que recorre la capa de presentación: sesión → permiso → mutación.
func TestApp_FlujoCompleto(t *testing.T) {
	app := newApp(t)

	// Login con la identidad demo sembrada.
	session, err := app.Sessions().Login(dto.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, session.User.Role)

	// El permiso se consulta antes de cada mutación.
	require.True(t, app.IsAllowed(session.User.Role, "products", "create"))

	product, err := app.Products().Create(dto.CreateProductRequest{
		Name:         "Monitor",
		SKU:          "MON-001",
		Category:     "Pantallas",
		Quantity:     10,
		ReorderLevel: 4,
		UnitPrice:    decimal.NewFromInt(200),
	})
	require.NoError(t, err)

	// Registrar una salida atribuida al usuario autenticado.
	user, err := app.Sessions().CurrentUser()
	require.NoError(t, err)
	require.NotNil(t, user)

	_, err = app.Transactions().Register(user.ID, dto.RegisterTransactionRequest{
		ProductID: product.ID,
		Type:      entity.TransactionOut,
		Quantity:  8,
		Reason:    "venta",
	})
	require.NoError(t, err)

	// El dashboard refleja el movimiento: 2 unidades <= reorden 4.
	stats, err := app.Dashboard().Stats()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalProducts)
	assert.Equal(t, 1, stats.LowStockProducts)
	assert.Equal(t, 1, stats.RecentTransactions)
	assert.True(t, stats.TotalValue.Equal(decimal.NewFromInt(400)))

	require.NoError(t, app.Sessions().Logout())
	assert.False(t, app.Sessions().IsAuthenticated())
}

func TestApp_PermisosPorRol(t *testing.T) {
	app := newApp(t)

	assert.True(t, app.IsAllowed("manager", "products", "update"))
	assert.False(t, app.IsAllowed("manager", "products", "delete"))
	assert.False(t, app.IsAllowed("manager", "transactions", "update"))
	assert.True(t, app.IsAllowed("viewer", "analytics", "read"))
	assert.False(t, app.IsAllowed("viewer", "users", "read"))
}

// La siembra ocurre una sola vez aunque se construya la app dos veces sobre
// el mismo almacén.
func TestApp_SiembraUnaSolaVez(t *testing.T) {
	app := newApp(t)

	list, err := app.Users().List()
	require.NoError(t, err)
	require.Len(t, list, 3)

	// Registrar un cuarto usuario y "reiniciar" con el mismo almacén.
	_, err = app.Sessions().Register(dto.RegisterRequest{
		Username: "cuarto",
		Email:    "cuarto@inventory.com",
		Password: "pw1234",
		Role:     entity.RoleViewer,
	})
	require.NoError(t, err)

	require.NoError(t, app.Sessions().Seed())
	list, err = app.Users().List()
	require.NoError(t, err)
	assert.Len(t, list, 4, "re-sembrar con usuarios existentes no agrega nada")
}
