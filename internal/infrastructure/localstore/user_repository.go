package localstore

import (
	"fmt"

	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre el almacén local.
// La colección completa vive bajo KeyUsers y se reescribe en cada mutación.
type UserRepo struct {
	store Store
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(store Store) *UserRepo {
	return &UserRepo{store: store}
}

func (r *UserRepo) load() ([]*entity.User, error) {
	var users []*entity.User
	if _, err := r.store.Get(KeyUsers, &users); err != nil {
		return nil, fmt.Errorf("cargar usuarios: %w", err)
	}
	return users, nil
}

func (r *UserRepo) save(users []*entity.User) error {
	if err := r.store.Set(KeyUsers, users); err != nil {
		return fmt.Errorf("guardar usuarios: %w", err)
	}
	return nil
}

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(user *entity.User) error {
	users, err := r.load()
	if err != nil {
		return err
	}
	users = append(users, user)
	return r.save(users)
}

// GetByID obtiene un usuario por ID, (nil, nil) si no existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	users, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

// GetByEmail obtiene un usuario por email.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	users, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

// GetByUsername obtiene un usuario por username.
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	users, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

// List devuelve todos los usuarios en orden de inserción.
func (r *UserRepo) List() ([]*entity.User, error) {
	return r.load()
}

// Update reemplaza el usuario con el mismo ID. ErrNotFound si no existe.
func (r *UserRepo) Update(user *entity.User) error {
	users, err := r.load()
	if err != nil {
		return err
	}
	for i, u := range users {
		if u.ID == user.ID {
			users[i] = user
			return r.save(users)
		}
	}
	return domain.ErrNotFound
}

// Delete elimina el usuario por ID. ErrNotFound si no existe.
func (r *UserRepo) Delete(id string) error {
	users, err := r.load()
	if err != nil {
		return err
	}
	for i, u := range users {
		if u.ID == id {
			users = append(users[:i], users[i+1:]...)
			return r.save(users)
		}
	}
	return domain.ErrNotFound
}

// Count devuelve el número de usuarios persistidos.
func (r *UserRepo) Count() (int, error) {
	users, err := r.load()
	if err != nil {
		return 0, err
	}
	return len(users), nil
}
