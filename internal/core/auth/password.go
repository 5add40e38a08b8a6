package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost is the fixed work factor applied to all stored credentials.
const bcryptCost = 12

// HashPassword derives a salted bcrypt hash from a plaintext password. The
// salt is generated per call, so two hashes of the same input differ.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches the stored hash. A
// malformed hash reports false rather than an error.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
