package interfaces

import (
	"context"
	"errors"

	"hoa_stickers/internal/domain/entities"
)

var (
	ErrAuthNotConfigured  = errors.New("auth provider not configured")
	ErrInvalidCredentials = errors.New("invalid login credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUserAlreadyExists  = errors.New("user already registered")
)

// IAuthProvider wraps the hosted auth service.
//
// Ready blocks until the provider answered once; callers bound it with a timeout.
// SignUp may return a user without a session when email confirmation is on.
type IAuthProvider interface {
	Ready(ctx context.Context) error
	SignInWithPassword(ctx context.Context, email, password string) (entities.AuthSession, error)
	SignUp(ctx context.Context, email, password string) (entities.AuthUser, error)
	SignOut(ctx context.Context, accessToken string) error
	GetUser(ctx context.Context, accessToken string) (entities.AuthUser, error)
	RefreshSession(ctx context.Context, refreshToken string) (entities.AuthSession, error)
}
