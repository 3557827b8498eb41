package entity

import "time"

// Session es la prueba de autenticación acotada en el tiempo: snapshot del
// User al momento del login, token opaco y expiración. Se persiste como la
// única sesión activa; la validez se comprueba de forma perezosa al leer.
type Session struct {
	User      User      `json:"user"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Valid indica si la sesión aún no expiró. Una sesión expirada equivale a
// "sin sesión" para el caller; leerla nunca la refresca.
func (s Session) Valid() bool {
	return s.ExpiresAt.After(time.Now())
}
