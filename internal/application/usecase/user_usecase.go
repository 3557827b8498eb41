package usecase

import (
	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/domain/repository"
	"github.com/jhoicas/inventario-local/pkg/password"
)

// UserUseCase administración de usuarios: listar, editar, borrar.
// Mantiene el invariante User↔Credential: editar password solo reemplaza el
// hash, borrar un usuario borra también su credential.
type UserUseCase struct {
	userRepo   repository.UserRepository
	credRepo   repository.CredentialRepository
	bcryptCost int
	validate   *validator.Validate
}

// NewUserUseCase construye el caso de uso con los puertos de persistencia.
func NewUserUseCase(userRepo repository.UserRepository, credRepo repository.CredentialRepository, bcryptCost int) *UserUseCase {
	return &UserUseCase{
		userRepo:   userRepo,
		credRepo:   credRepo,
		bcryptCost: bcryptCost,
		validate:   validator.New(),
	}
}

// List devuelve todos los usuarios.
func (uc *UserUseCase) List() ([]dto.UserResponse, error) {
	users, err := uc.userRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *entityToUserResponse(u))
	}
	return out, nil
}

// GetByID obtiene un usuario por ID, (nil, nil) si no existe.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return entityToUserResponse(user), nil
}

// Update edita email, rol y opcionalmente el password de un usuario.
// ID y Username nunca cambian; con Password nil el credential queda intacto.
// Valida el email nuevo contra el resto de usuarios antes de escribir.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if err := uc.validate.Struct(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Email != nil && *in.Email != user.Email {
		other, err := uc.userRepo.GetByEmail(*in.Email)
		if err != nil {
			return nil, err
		}
		if other != nil {
			return nil, domain.ErrEmailTaken
		}
		user.Email = *in.Email
	}
	if in.Role != nil {
		user.Role = *in.Role
	}
	// Hashear antes de tocar el perfil: si bcrypt falla, nada se escribió.
	var newHash string
	if in.Password != nil && *in.Password != "" {
		newHash, err = password.Hash(*in.Password, uc.bcryptCost)
		if err != nil {
			return nil, err
		}
	}
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	if newHash != "" {
		if err := uc.credRepo.Set(user.Username, &entity.Credential{
			PasswordHash: newHash,
			UserID:       user.ID,
		}); err != nil {
			return nil, err
		}
	}
	return entityToUserResponse(user), nil
}

// Delete elimina un usuario y su credential. La identidad autenticada no
// puede borrarse a sí misma: el check va aquí, en el caller del almacén,
// no en el Session Manager.
func (uc *UserUseCase) Delete(actorID, id string) error {
	if actorID == id {
		return domain.ErrCannotDeleteSelf
	}
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	// Primero el credential: un fallo a medias deja un perfil sin login,
	// nunca un login colgante hacia un perfil borrado.
	if err := uc.credRepo.Delete(user.Username); err != nil {
		return err
	}
	return uc.userRepo.Delete(id)
}

func entityToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
