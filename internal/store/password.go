package store

import (
	"crypto/rand"
	"fmt"
)

const passwordAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// generatePassword produces the initial credential handed to a newly created
// patient: 8 lower-case alphanumeric characters drawn from crypto/rand. The
// plaintext is returned to the caller exactly once; only its hash is stored.
func generatePassword() (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate password: %w", err)
	}
	for i, b := range buf {
		buf[i] = passwordAlphabet[int(b)%len(passwordAlphabet)]
	}
	return string(buf), nil
}
