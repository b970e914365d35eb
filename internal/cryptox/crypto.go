// Package cryptox hashes account passwords for stores that cannot rely on
// the database's crypt().
package cryptox

import (
	"crypto/subtle"

	"golang.org/x/crypto/argon2"
)

const (
	argonTime    = 1
	argonMemory  = 19 * 1024
	argonThreads = 1
	argonKeyLen  = 32
)

// HashPassword derives an argon2id key from password, salted with secret.
// The same inputs always give the same hash.
func HashPassword(password, secret []byte) []byte {
	return argon2.IDKey(password, secret, argonTime, argonMemory, argonThreads, argonKeyLen)
}

// VerifyPassword reports whether password hashes to hash. The comparison
// runs in constant time.
func VerifyPassword(hash, password, secret []byte) bool {
	return subtle.ConstantTimeCompare(hash, HashPassword(password, secret)) == 1
}
