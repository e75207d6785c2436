// Package auth implements the one-shot credential check. No session or
// token is issued on success; every request stays anonymous.
package auth

import (
	"context"

	"github.com/rotisserie/eris"
	"golang.org/x/crypto/bcrypt"

	"github.com/sells-group/projectmap/internal/store"
)

// ErrInvalidCredentials covers both an unknown email and a password
// mismatch, so a caller cannot distinguish which failed.
var ErrInvalidCredentials = eris.New("auth: invalid credentials")

// Authenticate verifies email/password against the user store. Email
// matching is case-sensitive. Store read or parse failures propagate
// as-is; only a genuine mismatch maps to ErrInvalidCredentials.
func Authenticate(ctx context.Context, users *store.UserStore, email, password string) error {
	u, err := users.FindByEmail(ctx, email)
	if eris.Is(err, store.ErrUserNotFound) {
		return ErrInvalidCredentials
	}
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// HashPassword produces a bcrypt hash for storage in the user file.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", eris.Wrap(err, "auth: hash password")
	}
	return string(hash), nil
}
