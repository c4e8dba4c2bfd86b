package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// HashSign hashes a signature string using bcrypt.
func HashSign(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckSignHash compares a signature string with a bcrypt hash.
// Both $2a$ and $2y$ hashes are accepted.
func CheckSignHash(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
