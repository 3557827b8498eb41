package inventario_test

import (
	"fmt"

	inventario "github.com/jhoicas/inventario-local"
	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/pkg/config"
)

// La capa de presentación consulta primero la sesión, después el permiso, y
// solo entonces ejecuta la mutación.
func Example() {
	app, err := inventario.New(&config.Config{
		App:   config.AppConfig{Env: "production", LogLevel: "error"},
		Store: config.StoreConfig{Driver: config.StoreDriverMemory},
		Auth:  config.AuthConfig{SessionTTLHours: 24, BcryptCost: 4, SeedIdentities: true},
	})
	if err != nil {
		panic(err)
	}
	defer app.Close()

	session, err := app.Sessions().Login(dto.LoginRequest{Username: "manager", Password: "manager123"})
	if err != nil {
		panic(err)
	}

	fmt.Println(app.IsAllowed(session.User.Role, "products", "create"))
	fmt.Println(app.IsAllowed(session.User.Role, "users", "delete"))
	// Output:
	// true
	// false
}
