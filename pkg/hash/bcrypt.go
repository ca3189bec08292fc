// Package hash wraps bcrypt so plaintext passwords never travel further
// than the auth service.
package hash

import "golang.org/x/crypto/bcrypt"

func Password(plain string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(bytes), err
}

func Verify(hashed, plain string) bool {
	if hashed == "" {
		// OAuth-only accounts carry no password hash.
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
