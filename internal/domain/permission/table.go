// Package permission define la tabla RBAC Role × Resource × Action → bool.
// La tabla es constante: se construye una vez y nunca se muta en runtime.
package permission

import "fmt"

// Role de un usuario, según entity.User.Role.
type Role string

// Resource es una categoría de objetos de dominio sujeta a control de acceso.
type Resource string

// Action sobre un Resource.
type Action string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleViewer  Role = "viewer"
)

const (
	ResourceProducts     Resource = "products"
	ResourceSuppliers    Resource = "suppliers"
	ResourceCategories   Resource = "categories"
	ResourceTransactions Resource = "transactions"
	ResourceAnalytics    Resource = "analytics"
	ResourceUsers        Resource = "users"
)

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Enumeraciones completas, en orden estable. Complete() verifica cobertura
// de la tabla contra estas listas.
var (
	Roles     = []Role{RoleAdmin, RoleManager, RoleViewer}
	Resources = []Resource{ResourceProducts, ResourceSuppliers, ResourceCategories, ResourceTransactions, ResourceAnalytics, ResourceUsers}
	Actions   = []Action{ActionCreate, ActionRead, ActionUpdate, ActionDelete}
)

// Table mapea cada tripleta (role, resource, action) a permitido/denegado.
type Table map[Role]map[Resource]map[Action]bool

// crud es un shorthand para construir la fila de acciones de un resource.
func crud(create, read, update, del bool) map[Action]bool {
	return map[Action]bool{
		ActionCreate: create,
		ActionRead:   read,
		ActionUpdate: update,
		ActionDelete: del,
	}
}

// Default construye la política del sistema:
//
//	admin   → CRUD total sobre todo, analytics solo lectura
//	manager → crea y edita catálogo, registra transacciones, no borra nada,
//	          usuarios solo lectura
//	viewer  → solo lectura, sin acceso a usuarios
func Default() Table {
	return Table{
		RoleAdmin: {
			ResourceProducts:     crud(true, true, true, true),
			ResourceSuppliers:    crud(true, true, true, true),
			ResourceCategories:   crud(true, true, true, true),
			ResourceTransactions: crud(true, true, true, true),
			ResourceAnalytics:    crud(false, true, false, false),
			ResourceUsers:        crud(true, true, true, true),
		},
		RoleManager: {
			ResourceProducts:     crud(true, true, true, false),
			ResourceSuppliers:    crud(true, true, true, false),
			ResourceCategories:   crud(true, true, true, false),
			ResourceTransactions: crud(true, true, false, false),
			ResourceAnalytics:    crud(false, true, false, false),
			ResourceUsers:        crud(false, true, false, false),
		},
		RoleViewer: {
			ResourceProducts:     crud(false, true, false, false),
			ResourceSuppliers:    crud(false, true, false, false),
			ResourceCategories:   crud(false, true, false, false),
			ResourceTransactions: crud(false, true, false, false),
			ResourceAnalytics:    crud(false, true, false, false),
			ResourceUsers:        crud(false, false, false, false),
		},
	}
}

// IsAllowed responde si role puede ejecutar action sobre resource.
// Una tripleta no definida se niega; Complete() garantiza que con la tabla
// Default eso solo ocurre con entradas fuera de las enumeraciones.
func (t Table) IsAllowed(role Role, resource Resource, action Action) bool {
	byResource, ok := t[role]
	if !ok {
		return false
	}
	byAction, ok := byResource[resource]
	if !ok {
		return false
	}
	return byAction[action]
}

// Complete verifica que la tabla defina explícitamente cada tripleta
// Role × Resource × Action. Se invoca al construir la aplicación para no
// depender de un default-deny silencioso.
func (t Table) Complete() error {
	for _, role := range Roles {
		byResource, ok := t[role]
		if !ok {
			return fmt.Errorf("permission: rol %q sin entradas", role)
		}
		for _, resource := range Resources {
			byAction, ok := byResource[resource]
			if !ok {
				return fmt.Errorf("permission: tripleta (%s, %s, *) sin definir", role, resource)
			}
			for _, action := range Actions {
				if _, ok := byAction[action]; !ok {
					return fmt.Errorf("permission: tripleta (%s, %s, %s) sin definir", role, resource, action)
				}
			}
		}
	}
	return nil
}
