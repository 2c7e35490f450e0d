package auth

import (
	"context"
	"strings"

	"github.com/mmynk/devarc/internal/models"
)

// Authenticator is what the auth service needs from an account backend. Accounts are keyed
// by normalized e-mail; every other record in the store hangs off the user id it returns.
type Authenticator interface {
	// Register opens an account. It fails with ErrEmailExists, ErrWeakPassword or a
	// *models.ValidationError.
	Register(ctx context.Context, email, displayName, credential string) (*models.User, error)

	// Authenticate returns the account for email when credential matches, ErrInvalidCredentials
	// otherwise. Unknown e-mails and wrong passwords are indistinguishable.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)

	ValidateCredential(credential string) error

	// Lookup returns the user behind a validated session, or ErrUserNotFound when the
	// account is gone.
	Lookup(ctx context.Context, userID string) (*models.User, error)
}

var _ Authenticator = (*PasswordAuthenticator)(nil)

// NormalizeEmail is the form e-mails are stored and looked up in.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
