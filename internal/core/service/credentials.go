package service

import (
	"golang.org/x/crypto/bcrypt"
)

// hashCost is deliberately expensive; bcrypt's default of 10 rounds.
const hashCost = bcrypt.DefaultCost

// hashPassword derives a self-contained salted hash from the plaintext. The
// salt is generated internally and embedded in the returned string. Neither
// the plaintext nor the hash may ever be logged.
func hashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), hashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// verifyPassword reports whether plaintext matches the stored hash. The
// comparison runs in constant time relative to the hash length.
func verifyPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
