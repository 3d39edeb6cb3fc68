package cryptox

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// PasswordCost is the bcrypt cost factor. Deliberately low: this service
// favours cheap logins over brute-force margin, and the rate limiter on the
// login route is the primary defence.
const PasswordCost = 5

var ErrPasswordMismatch = errors.New("cryptox: password does not match")

// HashPassword hashes a plaintext password with a per-hash random salt.
// The returned string embeds the salt and cost parameters.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword compares a plaintext password against a stored hash.
func VerifyPassword(password, encodedHash string) error {
	err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrPasswordMismatch
		}
		return err
	}
	return nil
}
