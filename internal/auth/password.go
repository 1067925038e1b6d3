// Package auth holds the credential primitives: salted password hashing and
// opaque session tokens. Storage of either lives in the database package.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/argon2"
)

const saltLength = 16

// Argon2id parameters, OWASP's minimum recommendation.
const (
	argonTime    = 2
	argonMemory  = 19 * 1024
	argonThreads = 1
	argonKeyLen  = 32
)

// HashPassword derives a fresh random salt and returns it together with the
// password hash, both hex encoded.
func HashPassword(password string) (salt, hash string, err error) {
	b := make([]byte, saltLength)
	if _, err := rand.Read(b); err != nil {
		return "", "", fmt.Errorf("generate salt: %w", err)
	}

	salt = hex.EncodeToString(b)
	return salt, derive(password, salt), nil
}

// VerifyPassword recomputes the hash for password and salt and compares it
// with hash in constant time.
func VerifyPassword(password, salt, hash string) bool {
	computed := derive(password, salt)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(hash)) == 1
}

func derive(password, salt string) string {
	key := argon2.IDKey([]byte(password), []byte(salt), argonTime, argonMemory, argonThreads, argonKeyLen)
	return hex.EncodeToString(key)
}
