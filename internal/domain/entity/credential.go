package entity

// Credential es el registro de verificación de secreto, separado del perfil
// User y keyed por username en el almacén. Invariantes:
//   - todo User con capacidad de login tiene exactamente un Credential
//   - borrar un User borra su Credential (nunca queda un login colgante)
//   - el username no se renombra, así el key nunca queda huérfano
type Credential struct {
	PasswordHash string `json:"passwordHash"` // bcrypt, nunca el password plano
	UserID       string `json:"userId"`
}
