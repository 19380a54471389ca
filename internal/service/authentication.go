// File: internal/service/authentication.go
package service

import (
	"errors"

	"lightbnb/internal/model"
)

// ErrInvalidCredentials covers both an unknown email and a wrong password.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthenticateUser checks password against the stored hash. A nil user is
// what the repository returns for an unknown email.
func AuthenticateUser(user *model.User, password string) error {
	if user == nil || user.Password == "" {
		return ErrInvalidCredentials
	}
	if err := ComparePassword(user.Password, password); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}
