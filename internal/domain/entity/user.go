package entity

import "time"

// Roles válidos para User. El rol determina permisos únicamente vía la
// tabla RBAC (internal/domain/permission), nunca con lógica ad-hoc.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleViewer  = "viewer"
)

// User representa una identidad del sistema. ID y Username son inmutables
// después de la creación; Email y Role se editan solo vía administración.
// El password vive aparte, en Credential (keyed por username).
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"` // admin, manager, viewer
	CreatedAt time.Time `json:"createdAt"`
}
