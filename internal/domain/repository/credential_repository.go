package repository

import "github.com/jhoicas/inventario-local/internal/domain/entity"

// CredentialRepository define el puerto para el mapa username → Credential.
// Semántica de mapa: Set reemplaza, Delete es idempotente, Get devuelve
// (nil, nil) si el username no tiene credential.
type CredentialRepository interface {
	Get(username string) (*entity.Credential, error)
	Set(username string, cred *entity.Credential) error
	Delete(username string) error
	Count() (int, error)
}
