// Package auth talks to the hosted Supabase auth service (GoTrue).
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"hoa_stickers/internal/config"
	"hoa_stickers/internal/domain/entities"
	"hoa_stickers/internal/usecase/interfaces"

	"github.com/google/uuid"
	gotrue "github.com/supabase-community/gotrue-go"
	"github.com/supabase-community/gotrue-go/types"
)

// SupabaseClient implements IAuthProvider on top of the gotrue-go client.
type SupabaseClient struct {
	client   gotrue.Client
	verifier *TokenVerifier
	now      func() time.Time
}

var _ interfaces.IAuthProvider = (*SupabaseClient)(nil)

// NewSupabaseClient builds a client for cfg. When cfg.JWTSecret is set,
// GetUser verifies tokens locally instead of calling /user.
func NewSupabaseClient(cfg config.SupabaseConfig, httpClient *http.Client) *SupabaseClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	client := gotrue.New("", cfg.AnonKey).
		WithCustomGoTrueURL(strings.TrimRight(cfg.URL, "/") + "/auth/v1").
		WithClient(*httpClient)

	c := &SupabaseClient{client: client, now: time.Now}
	if cfg.JWTSecret != "" {
		c.verifier = NewTokenVerifier(cfg.JWTSecret)
	}
	return c
}

// NewProvider returns a SupabaseClient when cfg is complete and an
// UnconfiguredProvider otherwise.
func NewProvider(cfg config.SupabaseConfig) interfaces.IAuthProvider {
	if cfg.URL == "" || cfg.AnonKey == "" {
		return UnconfiguredProvider{}
	}
	return NewSupabaseClient(cfg, nil)
}

// Ready checks the service answers its public settings endpoint.
func (c *SupabaseClient) Ready(ctx context.Context) error {
	_, err := await(ctx, c.client.GetSettings)
	return mapProviderError(err)
}

func (c *SupabaseClient) SignInWithPassword(ctx context.Context, email, password string) (entities.AuthSession, error) {
	tok, err := await(ctx, func() (*types.TokenResponse, error) {
		return c.client.SignInWithEmailPassword(email, password)
	})
	if err != nil {
		return entities.AuthSession{}, mapProviderError(err)
	}
	return c.toSession(tok.Session), nil
}

func (c *SupabaseClient) SignUp(ctx context.Context, email, password string) (entities.AuthUser, error) {
	out, err := await(ctx, func() (*types.SignupResponse, error) {
		return c.client.Signup(types.SignupRequest{Email: email, Password: password})
	})
	if err != nil {
		return entities.AuthUser{}, mapProviderError(err)
	}
	// A session comes back only when email confirmation is off.
	if out.Session.User.ID != uuid.Nil {
		return toUser(out.Session.User), nil
	}
	return toUser(out.User), nil
}

func (c *SupabaseClient) SignOut(ctx context.Context, accessToken string) error {
	_, err := await(ctx, func() (struct{}, error) {
		return struct{}{}, c.client.WithToken(accessToken).Logout()
	})
	return mapProviderError(err)
}

func (c *SupabaseClient) GetUser(ctx context.Context, accessToken string) (entities.AuthUser, error) {
	if c.verifier != nil {
		return c.verifier.Verify(accessToken)
	}
	out, err := await(ctx, c.client.WithToken(accessToken).GetUser)
	if err != nil {
		return entities.AuthUser{}, mapProviderError(err)
	}
	return toUser(out.User), nil
}

func (c *SupabaseClient) RefreshSession(ctx context.Context, refreshToken string) (entities.AuthSession, error) {
	tok, err := await(ctx, func() (*types.TokenResponse, error) {
		return c.client.RefreshToken(refreshToken)
	})
	if err != nil {
		return entities.AuthSession{}, mapProviderError(err)
	}
	return c.toSession(tok.Session), nil
}

func (c *SupabaseClient) toSession(s types.Session) entities.AuthSession {
	out := entities.AuthSession{
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
	}
	switch {
	case s.ExpiresAt > 0:
		out.ExpiresAt = time.Unix(s.ExpiresAt, 0).UTC()
	case s.ExpiresIn > 0:
		out.ExpiresAt = c.now().Add(time.Duration(s.ExpiresIn) * time.Second).UTC()
	}
	if s.User.ID != uuid.Nil {
		out.User = toUser(s.User)
	}
	return out
}

func toUser(u types.User) entities.AuthUser {
	return entities.AuthUser{ID: u.ID.String(), Email: u.Email}
}

// await runs a gotrue-go call, which takes no context, and stops waiting
// once ctx is done. The call itself is bounded by the http client timeout.
func await[T any](ctx context.Context, fn func() (T, error)) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	type result struct {
		v   T
		err error
	}
	ch := make(chan result, 1)
	go func() {
		v, err := fn()
		ch <- result{v, err}
	}()
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case r := <-ch:
		return r.v, r.err
	}
}

type errorPayload struct {
	ErrorCode        string `json:"error_code"`
	Msg              string `json:"msg"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func (e errorPayload) message() string {
	for _, s := range []string{e.Msg, e.ErrorDescription, e.Error} {
		if s != "" {
			return s
		}
	}
	return "unknown error"
}

// gotrue-go reports non-2xx answers only as "response status code N: <body>".
var statusErrorPattern = regexp.MustCompile(`(?s)^response status code (\d+)(?::\s*(.*))?$`)

func mapProviderError(err error) error {
	if err == nil {
		return nil
	}
	m := statusErrorPattern.FindStringSubmatch(err.Error())
	if m == nil {
		return fmt.Errorf("auth provider: %w", err)
	}
	status, _ := strconv.Atoi(m[1])
	var p errorPayload
	_ = json.Unmarshal([]byte(m[2]), &p)

	switch {
	case p.ErrorCode == "invalid_credentials" || p.Error == "invalid_grant":
		return fmt.Errorf("%w: %s", interfaces.ErrInvalidCredentials, p.message())
	case p.ErrorCode == "user_already_exists" || strings.Contains(strings.ToLower(p.Msg), "already registered"):
		return fmt.Errorf("%w: %s", interfaces.ErrUserAlreadyExists, p.message())
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return fmt.Errorf("%w: %s", interfaces.ErrInvalidToken, p.message())
	}
	return fmt.Errorf("auth provider returned %d: %s", status, p.message())
}
