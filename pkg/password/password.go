// Package password encapsula el hashing de contraseñas detrás de un
// contrato estable Hash/Verify, independiente del algoritmo (hoy bcrypt).
package password

import "golang.org/x/crypto/bcrypt"

// DefaultCost es el costo bcrypt usado si el caller pasa cost <= 0.
const DefaultCost = bcrypt.DefaultCost

// Hash genera el hash bcrypt de plain con el costo indicado.
func Hash(plain string, cost int) (string, error) {
	if cost <= 0 {
		cost = DefaultCost
	}
	h, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify compara plain contra el hash almacenado. Devuelve false ante
// cualquier discrepancia, sin distinguir el motivo.
func Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
