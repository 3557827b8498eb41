package repository

import "github.com/jhoicas/inventario-local/internal/domain/entity"

// SessionRepository define el puerto para la única sesión activa.
// Get devuelve (nil, nil) si no hay sesión; Clear es idempotente.
type SessionRepository interface {
	Get() (*entity.Session, error)
	Set(session *entity.Session) error
	Clear() error
}
