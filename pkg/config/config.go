package config

import (
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde
// env y opcionalmente archivo).
type Config struct {
	App   AppConfig
	Store StoreConfig
	Auth  AuthConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// Drivers soportados por el almacén local.
const (
	StoreDriverSQLite = "sqlite"
	StoreDriverMemory = "memory"
)

// StoreConfig configuración del almacén local clave-valor.
type StoreConfig struct {
	Driver string // sqlite (persistente) o memory (volátil)
	Path   string // ruta del archivo sqlite; ignorado con memory
}

// AuthConfig configuración de autenticación y sesiones.
type AuthConfig struct {
	SessionTTLHours int  // validez de la sesión desde el login
	BcryptCost      int  // 0 = costo por defecto de bcrypt
	SeedIdentities  bool // sembrar identidades demo en el primer arranque
}

// Load lee la configuración desde variables de entorno (y opcionalmente
// desde archivo .env / config.env). Las env vars tienen prioridad.
// Nombres esperados: APP_ENV, STORE_DRIVER, AUTH_SESSION_TTL_HOURS, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "inventario-local"),
			LogLevel: getString(v, "APP_LOG_LEVEL", "info"),
		},
		Store: StoreConfig{
			Driver: getString(v, "STORE_DRIVER", StoreDriverSQLite),
			Path:   getString(v, "STORE_PATH", "inventario.db"),
		},
		Auth: AuthConfig{
			SessionTTLHours: getInt(v, "AUTH_SESSION_TTL_HOURS", 24),
			BcryptCost:      getInt(v, "AUTH_BCRYPT_COST", 0),
			SeedIdentities:  getBool(v, "AUTH_SEED_IDENTITIES", true),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
