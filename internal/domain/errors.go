package domain

import "errors"

// Errores de dominio (sin dependencias externas). Toda operación falla con
// uno de estos sentinelas y sin efectos secundarios; no hay clase "fatal".
var (
	// ErrInvalidCredentials cubre username desconocido y password incorrecto
	// sin distinguirlos, para no permitir enumeración de usuarios.
	ErrInvalidCredentials = errors.New("usuario o contraseña inválidos")
	// ErrUserNotFound: el credential apunta a un User que ya no existe.
	ErrUserNotFound     = errors.New("usuario no encontrado")
	ErrUsernameTaken    = errors.New("el username ya está registrado")
	ErrEmailTaken       = errors.New("el email ya está registrado")
	ErrCannotDeleteSelf = errors.New("no se puede eliminar la identidad autenticada")
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrDuplicate        = errors.New("recurso duplicado")
	ErrInvalidInput     = errors.New("entrada inválida")
)
