// Package auth contiene el Session Manager: autentica credenciales, emite,
// valida y revoca la sesión activa, y registra nuevas identidades.
package auth

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/domain/repository"
	"github.com/jhoicas/inventario-local/pkg/logger"
	"github.com/jhoicas/inventario-local/pkg/password"
	"github.com/jhoicas/inventario-local/pkg/token"
)

// Config parámetros del Session Manager.
type Config struct {
	SessionTTL time.Duration // validez de la sesión desde el login (default 24h)
	BcryptCost int           // 0 = costo por defecto
}

// SessionManager orquesta login, logout, registro y la sesión activa.
// Es dueño exclusivo de la sesión; Users y Credentials viven en el almacén
// (el manager es autoridad transitoria sobre ellos, no su fuente de verdad).
type SessionManager struct {
	userRepo    repository.UserRepository
	credRepo    repository.CredentialRepository
	sessionRepo repository.SessionRepository
	cfg         Config
	validate    *validator.Validate
	log         *logger.Logger
}

// NewSessionManager construye el manager. Sin estado oculto: una instancia
// por proceso, con init/teardown explícitos del caller.
func NewSessionManager(
	userRepo repository.UserRepository,
	credRepo repository.CredentialRepository,
	sessionRepo repository.SessionRepository,
	cfg Config,
	log *logger.Logger,
) *SessionManager {
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 24 * time.Hour
	}
	if log == nil {
		log = logger.Nop()
	}
	return &SessionManager{
		userRepo:    userRepo,
		credRepo:    credRepo,
		sessionRepo: sessionRepo,
		cfg:         cfg,
		validate:    validator.New(),
		log:         log.Component("auth"),
	}
}

// Identidades demo sembradas en el primer arranque.
var seedIdentities = []struct {
	username string
	password string
	role     string
}{
	{"admin", "admin123", entity.RoleAdmin},
	{"manager", "manager123", entity.RoleManager},
	{"viewer", "viewer123", entity.RoleViewer},
}

// Seed siembra las identidades demo si el almacén no tiene ningún usuario.
// A lo sumo una vez: cualquier usuario existente desactiva la siembra.
func (m *SessionManager) Seed() error {
	count, err := m.userRepo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	now := time.Now()
	for _, id := range seedIdentities {
		user := &entity.User{
			ID:        uuid.New().String(),
			Username:  id.username,
			Email:     id.username + "@inventory.com",
			Role:      id.role,
			CreatedAt: now,
		}
		hash, err := password.Hash(id.password, m.cfg.BcryptCost)
		if err != nil {
			return err
		}
		if err := m.userRepo.Create(user); err != nil {
			return err
		}
		if err := m.credRepo.Set(user.Username, &entity.Credential{
			PasswordHash: hash,
			UserID:       user.ID,
		}); err != nil {
			return err
		}
	}
	m.log.Info().Int("users", len(seedIdentities)).Msg("identidades demo sembradas")
	return nil
}

// Login verifica las credenciales y, si son válidas, emite la sesión activa
// con token opaco y expiración now+TTL. Username desconocido y password
// incorrecto devuelven el mismo ErrInvalidCredentials (sin enumeración);
// un credential que apunta a un User inexistente devuelve ErrUserNotFound.
func (m *SessionManager) Login(in dto.LoginRequest) (*dto.SessionResponse, error) {
	if err := m.validate.Struct(in); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	cred, err := m.credRepo.Get(in.Username)
	if err != nil {
		return nil, err
	}
	if cred == nil || !password.Verify(in.Password, cred.PasswordHash) {
		m.log.Debug().Str("username", in.Username).Msg("login rechazado")
		return nil, domain.ErrInvalidCredentials
	}
	user, err := m.userRepo.GetByID(cred.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// Credential huérfano: el User fue borrado sin su credential.
		return nil, domain.ErrUserNotFound
	}
	tok, err := token.New()
	if err != nil {
		return nil, err
	}
	session := &entity.Session{
		User:      *user, // snapshot al momento del login
		Token:     tok,
		ExpiresAt: time.Now().Add(m.cfg.SessionTTL),
	}
	if err := m.sessionRepo.Set(session); err != nil {
		return nil, err
	}
	m.log.Info().Str("username", user.Username).Str("role", user.Role).Msg("login exitoso")
	return toSessionResponse(session), nil
}

// Logout borra la sesión activa incondicionalmente. Idempotente.
func (m *SessionManager) Logout() error {
	return m.sessionRepo.Clear()
}

// Register crea una nueva identidad con su credential. No inicia sesión.
// Valida unicidad de username (contra credentials) y de email (contra users)
// antes de escribir nada, así un fallo no deja los almacenes inconsistentes.
func (m *SessionManager) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if err := m.validate.Struct(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	existing, err := m.credRepo.Get(in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsernameTaken
	}
	byEmail, err := m.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if byEmail != nil {
		return nil, domain.ErrEmailTaken
	}
	hash, err := password.Hash(in.Password, m.cfg.BcryptCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:        uuid.New().String(),
		Username:  in.Username,
		Email:     in.Email,
		Role:      in.Role,
		CreatedAt: time.Now(),
	}
	if err := m.userRepo.Create(user); err != nil {
		return nil, err
	}
	if err := m.credRepo.Set(user.Username, &entity.Credential{
		PasswordHash: hash,
		UserID:       user.ID,
	}); err != nil {
		return nil, err
	}
	m.log.Info().Str("username", user.Username).Str("role", user.Role).Msg("usuario registrado")
	return toUserResponse(user), nil
}

// CurrentSession devuelve la sesión activa tal cual está persistida, o nil
// si no hay. No refresca ni borra una sesión expirada: juzgar validez es de
// IsValid y el logout explícito queda en manos del caller.
func (m *SessionManager) CurrentSession() (*dto.SessionResponse, error) {
	session, err := m.sessionRepo.Get()
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, nil
	}
	return toSessionResponse(session), nil
}

// IsValid indica si la sesión aún no expiró (expiresAt > now).
func (m *SessionManager) IsValid(s *dto.SessionResponse) bool {
	return s != nil && s.ExpiresAt.After(time.Now())
}

// CurrentUser devuelve el usuario de la sesión activa, o nil si no hay
// sesión o está expirada (una sesión expirada equivale a "sin sesión").
func (m *SessionManager) CurrentUser() (*dto.UserResponse, error) {
	session, err := m.sessionRepo.Get()
	if err != nil {
		return nil, err
	}
	if session == nil || !session.Valid() {
		return nil, nil
	}
	return toUserResponse(&session.User), nil
}

// IsAuthenticated indica si hay una sesión activa y válida.
func (m *SessionManager) IsAuthenticated() bool {
	user, err := m.CurrentUser()
	return err == nil && user != nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
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

func toSessionResponse(s *entity.Session) *dto.SessionResponse {
	return &dto.SessionResponse{
		User:      *toUserResponse(&s.User),
		Token:     s.Token,
		ExpiresAt: s.ExpiresAt,
	}
}
