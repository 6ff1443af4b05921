package cryptox

import (
	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used for new hashes. Existing hashes
// keep the cost they were minted with, so this can be raised safely.
const DefaultCost = bcrypt.DefaultCost

// HashPassword generates a salted bcrypt digest for the given plaintext.
// The salt is random per call, so hashing the same password twice yields
// different digests.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether plaintext matches the stored digest.
// Malformed digests simply fail verification; there is no shared state, so
// it is safe for concurrent use.
func VerifyPassword(password, encodedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password)) == nil
}
