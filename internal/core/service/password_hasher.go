package service

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the work factor the account base was hashed with.
const bcryptCost = 10

// BcryptHasher hashes passwords with bcrypt. Every hash carries its own
// random salt, so hashing the same password twice yields different strings.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcryptCost}
}

func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(b), nil
}

// Verify reports whether plaintext matches hash.
func (h *BcryptHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
