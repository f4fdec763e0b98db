// Package security holds the token helpers for the serve API.
package security

import (
	"crypto/rand"
	"encoding/base64"

	"golang.org/x/crypto/bcrypt"
)

// HashToken bcrypt-hashes an access token for storage in config.
func HashToken(tok string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(tok), bcrypt.DefaultCost)
	return string(b), err
}

// CheckToken reports whether tok matches the stored bcrypt hash.
func CheckToken(hash, tok string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(tok)) == nil
}

// NewToken returns n random bytes, URL-safe base64 encoded.
func NewToken(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
