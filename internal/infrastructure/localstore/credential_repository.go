package localstore

import (
	"fmt"

	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/domain/repository"
)

var _ repository.CredentialRepository = (*CredentialRepo)(nil)

// CredentialRepo implementación del puerto CredentialRepository: un mapa
// username → Credential bajo KeyCredentials, separado de los perfiles User.
type CredentialRepo struct {
	store Store
}

// NewCredentialRepository construye el adaptador de credenciales.
func NewCredentialRepository(store Store) *CredentialRepo {
	return &CredentialRepo{store: store}
}

func (r *CredentialRepo) load() (map[string]entity.Credential, error) {
	creds := make(map[string]entity.Credential)
	if _, err := r.store.Get(KeyCredentials, &creds); err != nil {
		return nil, fmt.Errorf("cargar credenciales: %w", err)
	}
	if creds == nil {
		creds = make(map[string]entity.Credential)
	}
	return creds, nil
}

func (r *CredentialRepo) save(creds map[string]entity.Credential) error {
	if err := r.store.Set(KeyCredentials, creds); err != nil {
		return fmt.Errorf("guardar credenciales: %w", err)
	}
	return nil
}

// Get devuelve el credential del username, (nil, nil) si no existe.
func (r *CredentialRepo) Get(username string) (*entity.Credential, error) {
	creds, err := r.load()
	if err != nil {
		return nil, err
	}
	cred, ok := creds[username]
	if !ok {
		return nil, nil
	}
	return &cred, nil
}

// Set crea o reemplaza el credential del username.
func (r *CredentialRepo) Set(username string, cred *entity.Credential) error {
	creds, err := r.load()
	if err != nil {
		return err
	}
	creds[username] = *cred
	return r.save(creds)
}

// Delete borra el credential del username. Idempotente.
func (r *CredentialRepo) Delete(username string) error {
	creds, err := r.load()
	if err != nil {
		return err
	}
	delete(creds, username)
	return r.save(creds)
}

// Count devuelve el número de credenciales persistidas.
func (r *CredentialRepo) Count() (int, error) {
	creds, err := r.load()
	if err != nil {
		return 0, err
	}
	return len(creds), nil
}
