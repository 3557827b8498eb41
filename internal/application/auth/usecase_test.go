package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-local/internal/application/auth"
	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/infrastructure/localstore"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// costo bcrypt mínimo para que los tests no pierdan tiempo hasheando.
const testBcryptCost = 4

type fixture struct {
	manager     *auth.SessionManager
	store       *localstore.MemoryStore
	userRepo    *localstore.UserRepo
	credRepo    *localstore.CredentialRepo
	sessionRepo *localstore.SessionRepo
}

// newFixture construye un Session Manager sobre un almacén en memoria,
// recién sembrado con las identidades demo.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := localstore.NewMemory()
	f := &fixture{
		store:       store,
		userRepo:    localstore.NewUserRepository(store),
		credRepo:    localstore.NewCredentialRepository(store),
		sessionRepo: localstore.NewSessionRepository(store),
	}
	f.manager = auth.NewSessionManager(f.userRepo, f.credRepo, f.sessionRepo, auth.Config{
		BcryptCost: testBcryptCost,
	}, nil)
	require.NoError(t, f.manager.Seed(), "la siembra inicial no debe fallar")
	return f
}

// ──────────────────────────────────────────────────────────────────────────────
// Siembra de identidades demo
// ──────────────────────────────────────────────────────────────────────────────

func TestSeed_CreaTresIdentidadesConCredential(t *testing.T) {
	f := newFixture(t)

	users, err := f.userRepo.Count()
	require.NoError(t, err)
	creds, err := f.credRepo.Count()
	require.NoError(t, err)

	assert.Equal(t, 3, users, "deben sembrarse admin, manager y viewer")
	assert.Equal(t, 3, creds, "cada identidad demo debe tener su credential")
}

func TestSeed_NoResiembraConUsuariosExistentes(t *testing.T) {
	f := newFixture(t)

	// Borrar una identidad y volver a sembrar: no debe recrearla.
	admin, err := f.userRepo.GetByUsername("admin")
	require.NoError(t, err)
	require.NotNil(t, admin)
	require.NoError(t, f.userRepo.Delete(admin.ID))

	require.NoError(t, f.manager.Seed())

	count, err := f.userRepo.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, count, "la siembra ocurre a lo sumo una vez")
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_AdminDemoExitoso(t *testing.T) {
	f := newFixture(t)

	session, err := f.manager.Login(dto.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	require.NotNil(t, session)

	assert.Equal(t, "admin", session.User.Username)
	assert.Equal(t, entity.RoleAdmin, session.User.Role)
	assert.NotEmpty(t, session.Token, "la sesión debe llevar un token opaco")
	assert.True(t, session.ExpiresAt.After(time.Now().Add(23*time.Hour)),
		"la expiración debe ser aproximadamente now+24h")
	assert.True(t, f.manager.IsAuthenticated())
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	f := newFixture(t)

	session, err := f.manager.Login(dto.LoginRequest{Username: "admin", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Nil(t, session)

	current, err := f.manager.CurrentSession()
	require.NoError(t, err)
	assert.Nil(t, current, "un login fallido no debe crear sesión")
}

func TestLogin_UsernameDesconocidoMismoError(t *testing.T) {
	f := newFixture(t)

	_, err := f.manager.Login(dto.LoginRequest{Username: "nadie", Password: "admin123"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials,
		"username desconocido y password incorrecto no deben distinguirse")
}

func TestLogin_CredentialHuerfano(t *testing.T) {
	f := newFixture(t)

	// Borrar el User directamente, dejando el credential colgado.
	admin, err := f.userRepo.GetByUsername("admin")
	require.NoError(t, err)
	require.NoError(t, f.userRepo.Delete(admin.ID))

	_, err = f.manager.Login(dto.LoginRequest{Username: "admin", Password: "admin123"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_TokensDistintosPorSesion(t *testing.T) {
	f := newFixture(t)

	s1, err := f.manager.Login(dto.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	s2, err := f.manager.Login(dto.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)

	assert.NotEqual(t, s1.Token, s2.Token, "cada login emite un token nuevo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Sesión: validez, expiración, logout
// ──────────────────────────────────────────────────────────────────────────────

func TestIsValid_SesionExpirada(t *testing.T) {
	f := newFixture(t)

	_, err := f.manager.Login(dto.LoginRequest{Username: "viewer", Password: "viewer123"})
	require.NoError(t, err)

	// Forzar la expiración al pasado directamente en el almacén.
	stored, err := f.sessionRepo.Get()
	require.NoError(t, err)
	stored.ExpiresAt = time.Now().Add(-time.Minute)
	require.NoError(t, f.sessionRepo.Set(stored))

	session, err := f.manager.CurrentSession()
	require.NoError(t, err)
	require.NotNil(t, session, "la sesión expirada sigue persistida: leerla no la borra")
	assert.False(t, f.manager.IsValid(session))
	assert.False(t, f.manager.IsAuthenticated(),
		"una sesión expirada equivale a no tener sesión")

	user, err := f.manager.CurrentUser()
	require.NoError(t, err)
	assert.Nil(t, user)

	// Leer no debe refrescar: la expiración persistida queda en el pasado.
	again, err := f.sessionRepo.Get()
	require.NoError(t, err)
	assert.True(t, again.ExpiresAt.Before(time.Now()),
		"leer una sesión expirada no debe refrescarla")
}

func TestLogout_Idempotente(t *testing.T) {
	f := newFixture(t)

	_, err := f.manager.Login(dto.LoginRequest{Username: "manager", Password: "manager123"})
	require.NoError(t, err)
	require.True(t, f.manager.IsAuthenticated())

	require.NoError(t, f.manager.Logout())
	assert.False(t, f.manager.IsAuthenticated())

	// Segundo logout sin sesión: sin error.
	assert.NoError(t, f.manager.Logout())
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_YLoginRoundTrip(t *testing.T) {
	f := newFixture(t)

	user, err := f.manager.Register(dto.RegisterRequest{
		Username: "newuser",
		Email:    "n@x.com",
		Password: "pw1234",
		Role:     entity.RoleViewer,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleViewer, user.Role)
	assert.NotEmpty(t, user.ID)

	// Register no inicia sesión.
	assert.False(t, f.manager.IsAuthenticated())

	session, err := f.manager.Login(dto.LoginRequest{Username: "newuser", Password: "pw1234"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleViewer, session.User.Role)
	assert.Equal(t, user.ID, session.User.ID)
}

func TestRegister_UsernameTomadoSinMutacion(t *testing.T) {
	f := newFixture(t)

	usersBefore, err := f.userRepo.Count()
	require.NoError(t, err)
	credsBefore, err := f.credRepo.Count()
	require.NoError(t, err)

	_, err = f.manager.Register(dto.RegisterRequest{
		Username: "admin",
		Email:    "otro@x.com",
		Password: "pw1234",
		Role:     entity.RoleViewer,
	})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)

	usersAfter, err := f.userRepo.Count()
	require.NoError(t, err)
	credsAfter, err := f.credRepo.Count()
	require.NoError(t, err)
	assert.Equal(t, usersBefore, usersAfter, "un registro rechazado no muta usuarios")
	assert.Equal(t, credsBefore, credsAfter, "un registro rechazado no muta credenciales")
}

func TestRegister_EmailTomado(t *testing.T) {
	f := newFixture(t)

	_, err := f.manager.Register(dto.RegisterRequest{
		Username: "otro",
		Email:    "admin@inventory.com",
		Password: "pw1234",
		Role:     entity.RoleViewer,
	})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestRegister_EntradaInvalida(t *testing.T) {
	f := newFixture(t)

	casos := []dto.RegisterRequest{
		{Username: "ab", Email: "a@x.com", Password: "pw1234", Role: "viewer"},    // username corto
		{Username: "valido", Email: "no-es-email", Password: "pw1234", Role: "viewer"},
		{Username: "valido", Email: "a@x.com", Password: "corto", Role: "viewer"}, // password < 6
		{Username: "valido", Email: "a@x.com", Password: "pw1234", Role: "root"},  // rol fuera de enum
	}
	for _, in := range casos {
		_, err := f.manager.Register(in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "registro debe rechazar: %+v", in)
	}
}
