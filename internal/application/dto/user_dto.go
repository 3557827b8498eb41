package dto

// UpdateUserRequest edición administrativa de un usuario. ID y Username son
// inmutables y no aparecen aquí; Password vacío deja el credential intacto.
type UpdateUserRequest struct {
	Email    *string `json:"email" validate:"omitempty,email"`
	Role     *string `json:"role" validate:"omitempty,oneof=admin manager viewer"`
	Password *string `json:"password" validate:"omitempty,min=6"`
}
