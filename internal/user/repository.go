package user

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/PrakritiSharma17/kerala-digital-health-55780/internal/health"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
)

// Credential is a user row together with its password hash. The hash never
// leaves this package.
type Credential struct {
	User         health.User
	PasswordHash string
}

// Repository contains all DB interactions needed by the profile service.
type Repository interface {
	CreateUser(ctx context.Context, cred Credential) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*health.User, error)
	GetCredentialByEmail(ctx context.Context, email string) (*Credential, error)
	UpdateUser(ctx context.Context, u health.User) error
}
