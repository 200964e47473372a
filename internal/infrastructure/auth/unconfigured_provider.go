package auth

import (
	"context"

	"hoa_stickers/internal/domain/entities"
	"hoa_stickers/internal/usecase/interfaces"
)

// UnconfiguredProvider stands in when no provider URL or key is set.
// It is ready at once and refuses every operation.
type UnconfiguredProvider struct{}

var _ interfaces.IAuthProvider = UnconfiguredProvider{}

func (UnconfiguredProvider) Ready(context.Context) error { return nil }

func (UnconfiguredProvider) SignInWithPassword(context.Context, string, string) (entities.AuthSession, error) {
	return entities.AuthSession{}, interfaces.ErrAuthNotConfigured
}

func (UnconfiguredProvider) SignUp(context.Context, string, string) (entities.AuthUser, error) {
	return entities.AuthUser{}, interfaces.ErrAuthNotConfigured
}

func (UnconfiguredProvider) SignOut(context.Context, string) error {
	return interfaces.ErrAuthNotConfigured
}

func (UnconfiguredProvider) GetUser(context.Context, string) (entities.AuthUser, error) {
	return entities.AuthUser{}, interfaces.ErrAuthNotConfigured
}

func (UnconfiguredProvider) RefreshSession(context.Context, string) (entities.AuthSession, error) {
	return entities.AuthSession{}, interfaces.ErrAuthNotConfigured
}
