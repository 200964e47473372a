package usecase

import (
	"context"
	"errors"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"hoa_stickers/internal/domain/entities"
	"hoa_stickers/internal/domain/guard"
	"hoa_stickers/internal/infrastructure/metrics"
	"hoa_stickers/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const MinPasswordLength = 6

var (
	ErrInvalidEmail    = errors.New("invalid email")
	ErrInvalidPassword = errors.New("password must have at least 6 characters")
	ErrMissingToken    = errors.New("authorization token required")
)

type IAuthUseCase interface {
	Loading() bool
	State(ctx context.Context, sessionID string) (guard.State, entities.AuthSession)
	SignIn(ctx context.Context, email, password string) (string, entities.AuthSession, error)
	SignUp(ctx context.Context, email, password string) (entities.AuthUser, error)
	SignOut(ctx context.Context, sessionID string) error
	CurrentSession(ctx context.Context, sessionID string) (entities.AuthSession, error)
	VerifyAccessToken(ctx context.Context, accessToken string) (entities.AuthUser, error)
	RevokeAccessToken(ctx context.Context, accessToken string) error
}

// AuthUseCase keeps browser sessions for users of the hosted auth provider.
//
// Until Initialize completes, or its timeout elapses, Loading reports true and
// guarded pages render a placeholder instead of redirecting.
type AuthUseCase struct {
	provider    interfaces.IAuthProvider
	sessions    interfaces.ISessionStore
	events      interfaces.ISessionEvents
	metrics     *metrics.Metrics
	sessionTTL  time.Duration
	initTimeout time.Duration
	ready       chan struct{}
	now         func() time.Time
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(
	provider interfaces.IAuthProvider,
	sessions interfaces.ISessionStore,
	events interfaces.ISessionEvents,
	m *metrics.Metrics,
	sessionTTL, initTimeout time.Duration,
) *AuthUseCase {
	return &AuthUseCase{
		provider:    provider,
		sessions:    sessions,
		events:      events,
		metrics:     m,
		sessionTTL:  sessionTTL,
		initTimeout: initTimeout,
		ready:       make(chan struct{}),
		now:         time.Now,
	}
}

// Initialize checks the provider in the background. Failure or timeout ends
// loading all the same; sessions then simply fail to resolve.
func (u *AuthUseCase) Initialize(ctx context.Context) {
	go func() {
		defer close(u.ready)

		ctx, cancel := context.WithTimeout(ctx, u.initTimeout)
		defer cancel()

		errc := make(chan error, 1)
		go func() { errc <- u.provider.Ready(ctx) }()

		select {
		case err := <-errc:
			if err != nil {
				slog.Warn("auth provider unavailable, treating visitors as signed out", "err", err)
				return
			}
			slog.Info("auth provider ready")
		case <-ctx.Done():
			slog.Warn("auth provider init timed out, treating visitors as signed out", "timeout", u.initTimeout)
		}
	}()
}

// Ready is closed once initialization finished.
func (u *AuthUseCase) Ready() <-chan struct{} {
	return u.ready
}

func (u *AuthUseCase) Loading() bool {
	select {
	case <-u.ready:
		return false
	default:
		return true
	}
}

// Subscribe registers listener for session changes.
func (u *AuthUseCase) Subscribe(listener interfaces.SessionListener) (unsubscribe func()) {
	if u.events == nil {
		return func() {}
	}
	return u.events.Subscribe(listener)
}

func (u *AuthUseCase) State(ctx context.Context, sessionID string) (guard.State, entities.AuthSession) {
	if u.Loading() {
		return guard.State{Loading: true}, entities.AuthSession{}
	}
	s, err := u.CurrentSession(ctx, sessionID)
	if err != nil {
		slog.Warn("session lookup failed", "err", err)
		return guard.State{}, entities.AuthSession{}
	}
	return guard.State{Authenticated: s.Authenticated()}, s
}

func (u *AuthUseCase) SignIn(ctx context.Context, email, password string) (string, entities.AuthSession, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return "", entities.AuthSession{}, err
	}
	if password == "" {
		return "", entities.AuthSession{}, ErrInvalidPassword
	}

	s, err := u.provider.SignInWithPassword(ctx, email, password)
	if err != nil {
		slog.Warn("sign in failed", "email", email, "err", err)
		return "", entities.AuthSession{}, err
	}

	id := uuid.NewString()
	if err := u.sessions.Save(ctx, id, s, u.sessionTTL); err != nil {
		slog.Error("session save failed", "user_id", s.User.ID, "err", err)
		return "", entities.AuthSession{}, err
	}

	u.publish(entities.AuthEventSignedIn, &s)
	slog.Info("user signed in", "user_id", s.User.ID)
	return id, s, nil
}

func (u *AuthUseCase) SignUp(ctx context.Context, email, password string) (entities.AuthUser, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return entities.AuthUser{}, err
	}
	if len(password) < MinPasswordLength {
		return entities.AuthUser{}, ErrInvalidPassword
	}

	user, err := u.provider.SignUp(ctx, email, password)
	if err != nil {
		slog.Warn("sign up failed", "email", email, "err", err)
		return entities.AuthUser{}, err
	}
	slog.Info("user signed up", "user_id", user.ID)
	return user, nil
}

// SignOut drops the local session even when the provider call fails.
func (u *AuthUseCase) SignOut(ctx context.Context, sessionID string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil
	}

	s, err := u.sessions.Get(ctx, sessionID)
	if err != nil {
		slog.Warn("session lookup failed on sign out", "err", err)
	}
	if s.AccessToken != "" {
		if err := u.provider.SignOut(ctx, s.AccessToken); err != nil {
			slog.Warn("provider sign out failed", "user_id", s.User.ID, "err", err)
		}
	}
	if err := u.sessions.Delete(ctx, sessionID); err != nil {
		slog.Error("session delete failed", "err", err)
		return err
	}

	u.publish(entities.AuthEventSignedOut, nil)
	return nil
}

// CurrentSession resolves a session id, refreshing the access token when it
// expired. An unknown id or a failed refresh yields a zero session.
func (u *AuthUseCase) CurrentSession(ctx context.Context, sessionID string) (entities.AuthSession, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.AuthSession{}, nil
	}

	s, err := u.sessions.Get(ctx, sessionID)
	if err != nil {
		return entities.AuthSession{}, err
	}
	if !s.Authenticated() {
		return entities.AuthSession{}, nil
	}
	if !s.Expired(u.now()) {
		return s, nil
	}

	if s.RefreshToken != "" {
		refreshed, err := u.provider.RefreshSession(ctx, s.RefreshToken)
		if err == nil {
			if err := u.sessions.Save(ctx, sessionID, refreshed, u.sessionTTL); err != nil {
				return entities.AuthSession{}, err
			}
			u.publish(entities.AuthEventTokenRefreshed, &refreshed)
			return refreshed, nil
		}
		slog.Warn("session refresh failed", "user_id", s.User.ID, "err", err)
	}

	if err := u.sessions.Delete(ctx, sessionID); err != nil {
		slog.Warn("expired session delete failed", "err", err)
	}
	u.publish(entities.AuthEventSignedOut, nil)
	return entities.AuthSession{}, nil
}

func (u *AuthUseCase) VerifyAccessToken(ctx context.Context, accessToken string) (entities.AuthUser, error) {
	accessToken = strings.TrimSpace(accessToken)
	if accessToken == "" {
		return entities.AuthUser{}, ErrMissingToken
	}
	return u.provider.GetUser(ctx, accessToken)
}

func (u *AuthUseCase) RevokeAccessToken(ctx context.Context, accessToken string) error {
	accessToken = strings.TrimSpace(accessToken)
	if accessToken == "" {
		return ErrMissingToken
	}
	if err := u.provider.SignOut(ctx, accessToken); err != nil {
		return err
	}
	u.publish(entities.AuthEventSignedOut, nil)
	return nil
}

func (u *AuthUseCase) publish(event entities.AuthEvent, s *entities.AuthSession) {
	u.metrics.IncrementAuthEvent(string(event))
	if u.events != nil {
		u.events.Publish(event, s)
	}
}

func normalizeEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", ErrInvalidEmail
	}
	return strings.ToLower(email), nil
}
