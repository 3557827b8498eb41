// Package token genera tokens de sesión opacos: bytes aleatorios de
// crypto/rand codificados en base64url sin padding. El caller solo depende
// del contrato "string opaco no adivinable".
package token

import (
	"crypto/rand"
	"encoding/base64"
)

const rawSize = 32

// New devuelve un token opaco de 32 bytes aleatorios en base64url.
func New() (string, error) {
	raw := make([]byte, rawSize)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}
