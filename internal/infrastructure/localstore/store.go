// Package localstore implementa la superficie de persistencia clave-valor
// del sistema (valores JSON) y los adaptadores de repositorio sobre ella.
//
// El contrato es el del almacenamiento local del navegador: Get devuelve lo
// guardado o "ausente" si el key no existe o el valor no deserializa; Set
// reemplaza por completo; Remove borra. Las colecciones se leen y reescriben
// enteras (read-modify-write), igual que hacía la aplicación original.
package localstore

// Keys usados por el dominio. Coinciden con los del almacén original para
// que un export/import de datos sea directo.
const (
	KeyUsers        = "inventory_users"
	KeyCredentials  = "inventory_credentials"
	KeySession      = "inventory_auth_session"
	KeyProducts     = "inventory_products"
	KeySuppliers    = "inventory_suppliers"
	KeyCategories   = "inventory_categories"
	KeyTransactions = "inventory_transactions"
)

// Store es la superficie de persistencia que el core trata como fuente de
// verdad. Get deserializa en out y devuelve false si el key está ausente o
// el valor almacenado está corrupto (el caller usa entonces su default).
type Store interface {
	Get(key string, out any) (bool, error)
	Set(key string, value any) error
	Remove(key string) error
	Close() error
}
