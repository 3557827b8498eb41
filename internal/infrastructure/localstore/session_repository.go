package localstore

import (
	"fmt"

	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/domain/repository"
)

var _ repository.SessionRepository = (*SessionRepo)(nil)

// SessionRepo implementación del puerto SessionRepository: la única sesión
// activa bajo KeySession.
type SessionRepo struct {
	store Store
}

// NewSessionRepository construye el adaptador de la sesión activa.
func NewSessionRepository(store Store) *SessionRepo {
	return &SessionRepo{store: store}
}

// Get devuelve la sesión activa tal cual está persistida (puede estar
// expirada: juzgar validez es del caller), o (nil, nil) si no hay.
func (r *SessionRepo) Get() (*entity.Session, error) {
	var session entity.Session
	found, err := r.store.Get(KeySession, &session)
	if err != nil {
		return nil, fmt.Errorf("cargar sesión: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &session, nil
}

// Set reemplaza la sesión activa.
func (r *SessionRepo) Set(session *entity.Session) error {
	if err := r.store.Set(KeySession, session); err != nil {
		return fmt.Errorf("guardar sesión: %w", err)
	}
	return nil
}

// Clear borra la sesión activa. Idempotente.
func (r *SessionRepo) Clear() error {
	if err := r.store.Remove(KeySession); err != nil {
		return fmt.Errorf("borrar sesión: %w", err)
	}
	return nil
}
