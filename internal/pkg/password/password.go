package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrMismatch        = errors.New("password mismatch")
	ErrInvalidPassword = errors.New("invalid password")
)

// Stored hashes are bcrypt cost 12; verification only, account creation
// happens upstream of this service.
func Verify(hashedPassword, plaintext string) error {
	if hashedPassword == "" || plaintext == "" {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plaintext))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatch
		}
		return err
	}

	return nil
}
