package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a bcrypt hash of the given credential at the default
// cost. Hashing happens once when the auth service is constructed, never on
// the request path.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPasswordHash reports whether plaintext matches a stored bcrypt hash.
// A malformed hash counts as a mismatch, not an error.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
