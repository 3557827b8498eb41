// Package inventario arma la aplicación: configuración → almacén local →
// repositorios → casos de uso. La capa de presentación (fuera de este core)
// consulta la sesión activa y la tabla de permisos antes de renderizar o
// mutar nada.
package inventario

import (
	"fmt"
	"time"

	"github.com/jhoicas/inventario-local/internal/application/analytics"
	"github.com/jhoicas/inventario-local/internal/application/auth"
	"github.com/jhoicas/inventario-local/internal/application/usecase"
	"github.com/jhoicas/inventario-local/internal/domain/permission"
	"github.com/jhoicas/inventario-local/internal/infrastructure/localstore"
	"github.com/jhoicas/inventario-local/pkg/config"
	"github.com/jhoicas/inventario-local/pkg/logger"
)

// App agrupa los casos de uso ya cableados sobre un único almacén local.
// Construir una instancia por proceso; Close libera el almacén.
type App struct {
	store       localstore.Store
	permissions permission.Table
	sessions    *auth.SessionManager
	users       *usecase.UserUseCase
	products    *usecase.ProductUseCase
	suppliers   *usecase.SupplierUseCase
	categories  *usecase.CategoryUseCase
	txs         *usecase.TransactionUseCase
	dashboard   *analytics.DashboardUseCase
	log         *logger.Logger
}

// New construye la aplicación según cfg: abre el almacén del driver
// configurado, verifica la cobertura de la tabla RBAC y siembra las
// identidades demo si corresponde.
func New(cfg *config.Config) (*App, error) {
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	var store localstore.Store
	switch cfg.Store.Driver {
	case config.StoreDriverSQLite:
		s, err := localstore.OpenSQLite(cfg.Store.Path)
		if err != nil {
			return nil, fmt.Errorf("abrir almacén: %w", err)
		}
		store = s
	case config.StoreDriverMemory:
		store = localstore.NewMemory()
	default:
		return nil, fmt.Errorf("driver de almacén desconocido: %q", cfg.Store.Driver)
	}

	app, err := NewWithStore(store, cfg, log)
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	return app, nil
}

// NewWithStore cablea la aplicación sobre un almacén ya abierto. Útil en
// tests (almacén en memoria) y cuando el caller gestiona el ciclo de vida.
func NewWithStore(store localstore.Store, cfg *config.Config, log *logger.Logger) (*App, error) {
	if log == nil {
		log = logger.Nop()
	}

	permissions := permission.Default()
	if err := permissions.Complete(); err != nil {
		return nil, err
	}

	userRepo := localstore.NewUserRepository(store)
	credRepo := localstore.NewCredentialRepository(store)
	sessionRepo := localstore.NewSessionRepository(store)
	productRepo := localstore.NewProductRepository(store)
	supplierRepo := localstore.NewSupplierRepository(store)
	categoryRepo := localstore.NewCategoryRepository(store)
	txRepo := localstore.NewTransactionRepository(store)

	sessions := auth.NewSessionManager(userRepo, credRepo, sessionRepo, auth.Config{
		SessionTTL: time.Duration(cfg.Auth.SessionTTLHours) * time.Hour,
		BcryptCost: cfg.Auth.BcryptCost,
	}, log)

	if cfg.Auth.SeedIdentities {
		if err := sessions.Seed(); err != nil {
			return nil, fmt.Errorf("sembrar identidades: %w", err)
		}
	}

	app := &App{
		store:       store,
		permissions: permissions,
		sessions:    sessions,
		users:       usecase.NewUserUseCase(userRepo, credRepo, cfg.Auth.BcryptCost),
		products:    usecase.NewProductUseCase(productRepo),
		suppliers:   usecase.NewSupplierUseCase(supplierRepo),
		categories:  usecase.NewCategoryUseCase(categoryRepo),
		txs:         usecase.NewTransactionUseCase(txRepo, productRepo),
		dashboard:   analytics.NewDashboardUseCase(productRepo, txRepo),
		log:         log,
	}
	log.Info().Str("app", cfg.App.Name).Str("driver", cfg.Store.Driver).Msg("aplicación lista")
	return app, nil
}

// IsAllowed responde si role puede ejecutar action sobre resource, según la
// tabla RBAC fija del sistema.
func (a *App) IsAllowed(role, resource, action string) bool {
	return a.permissions.IsAllowed(permission.Role(role), permission.Resource(resource), permission.Action(action))
}

// Sessions devuelve el Session Manager (login, logout, registro, sesión).
func (a *App) Sessions() *auth.SessionManager { return a.sessions }

// Users devuelve la administración de usuarios.
func (a *App) Users() *usecase.UserUseCase { return a.users }

// Products devuelve el CRUD de productos.
func (a *App) Products() *usecase.ProductUseCase { return a.products }

// Suppliers devuelve el CRUD de proveedores.
func (a *App) Suppliers() *usecase.SupplierUseCase { return a.suppliers }

// Categories devuelve el CRUD de categorías.
func (a *App) Categories() *usecase.CategoryUseCase { return a.categories }

// Transactions devuelve el registro de movimientos de stock.
func (a *App) Transactions() *usecase.TransactionUseCase { return a.txs }

// Dashboard devuelve los agregados de dashboard y analítica.
func (a *App) Dashboard() *analytics.DashboardUseCase { return a.dashboard }

// Close cierra el almacén local.
func (a *App) Close() error {
	return a.store.Close()
}
