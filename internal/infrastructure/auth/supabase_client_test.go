package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hoa_stickers/internal/config"
	"hoa_stickers/internal/domain/entities"
	"hoa_stickers/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, secret string) *SupabaseClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewSupabaseClient(config.SupabaseConfig{URL: srv.URL + "/", AnonKey: "anon", JWTSecret: secret}, srv.Client())
}

func TestSupabaseClientSignIn(t *testing.T) {
	t.Run("returns the session", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/v1/token", r.URL.Path)
			assert.Equal(t, "password", r.URL.Query().Get("grant_type"))
			assert.Equal(t, "anon", r.Header.Get("apikey"))

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "admin@hoa.test", body["email"])

			_, _ = w.Write([]byte(`{"access_token":"at","refresh_token":"rt","expires_at":1893456000,"user":{"id":"11111111-1111-4111-8111-111111111111","email":"admin@hoa.test"}}`))
		}, "")

		s, err := c.SignInWithPassword(context.Background(), "admin@hoa.test", "secret1")

		require.NoError(t, err)
		assert.Equal(t, "at", s.AccessToken)
		assert.Equal(t, "rt", s.RefreshToken)
		assert.Equal(t, "11111111-1111-4111-8111-111111111111", s.User.ID)
		assert.Equal(t, time.Unix(1893456000, 0).UTC(), s.ExpiresAt)
	})

	t.Run("falls back to expires_in", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"access_token":"at","expires_in":3600,"user":{"id":"11111111-1111-4111-8111-111111111111"}}`))
		}, "")
		now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		c.now = func() time.Time { return now }

		s, err := c.SignInWithPassword(context.Background(), "a@b.co", "secret1")

		require.NoError(t, err)
		assert.Equal(t, now.Add(time.Hour), s.ExpiresAt)
	})

	t.Run("maps invalid credentials", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"code":400,"error_code":"invalid_credentials","msg":"Invalid login credentials"}`))
		}, "")

		_, err := c.SignInWithPassword(context.Background(), "a@b.co", "wrong")

		assert.ErrorIs(t, err, interfaces.ErrInvalidCredentials)
		assert.ErrorContains(t, err, "Invalid login credentials")
	})

	t.Run("maps legacy invalid_grant", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant","error_description":"Invalid login credentials"}`))
		}, "")

		_, err := c.SignInWithPassword(context.Background(), "a@b.co", "wrong")

		assert.ErrorIs(t, err, interfaces.ErrInvalidCredentials)
	})
}

func TestSupabaseClientSignUp(t *testing.T) {
	t.Run("bare user when confirmation is required", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/v1/signup", r.URL.Path)
			_, _ = w.Write([]byte(`{"id":"22222222-2222-4222-8222-222222222222","email":"new@hoa.test"}`))
		}, "")

		u, err := c.SignUp(context.Background(), "new@hoa.test", "secret1")

		require.NoError(t, err)
		assert.Equal(t, entities.AuthUser{ID: "22222222-2222-4222-8222-222222222222", Email: "new@hoa.test"}, u)
	})

	t.Run("session shape", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"access_token":"at","user":{"id":"33333333-3333-4333-8333-333333333333","email":"x@hoa.test"}}`))
		}, "")

		u, err := c.SignUp(context.Background(), "x@hoa.test", "secret1")

		require.NoError(t, err)
		assert.Equal(t, "33333333-3333-4333-8333-333333333333", u.ID)
	})

	t.Run("existing user", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"code":422,"error_code":"user_already_exists","msg":"User already registered"}`))
		}, "")

		_, err := c.SignUp(context.Background(), "x@hoa.test", "secret1")

		assert.ErrorIs(t, err, interfaces.ErrUserAlreadyExists)
	})
}

func TestSupabaseClientSession(t *testing.T) {
	t.Run("sign out sends the bearer token", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/v1/logout", r.URL.Path)
			assert.Equal(t, "Bearer at", r.Header.Get("Authorization"))
			w.WriteHeader(http.StatusNoContent)
		}, "")

		assert.NoError(t, c.SignOut(context.Background(), "at"))
	})

	t.Run("get user remotely without a secret", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "Bearer good" {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"msg":"invalid JWT"}`))
				return
			}
			_, _ = w.Write([]byte(`{"id":"11111111-1111-4111-8111-111111111111","email":"admin@hoa.test"}`))
		}, "")

		u, err := c.GetUser(context.Background(), "good")
		require.NoError(t, err)
		assert.Equal(t, "11111111-1111-4111-8111-111111111111", u.ID)

		_, err = c.GetUser(context.Background(), "bad")
		assert.ErrorIs(t, err, interfaces.ErrInvalidToken)
	})

	t.Run("get user locally with a secret", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			t.Errorf("unexpected call to %s", r.URL.Path)
		}, "jwt-secret")
		token, err := c.verifier.Sign(entities.AuthUser{ID: "u1", Email: "admin@hoa.test"}, time.Hour)
		require.NoError(t, err)

		u, err := c.GetUser(context.Background(), token)

		require.NoError(t, err)
		assert.Equal(t, entities.AuthUser{ID: "u1", Email: "admin@hoa.test"}, u)
	})

	t.Run("refresh", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "refresh_token", r.URL.Query().Get("grant_type"))
			_, _ = w.Write([]byte(`{"access_token":"at2","refresh_token":"rt2","expires_at":1893456000,"user":{"id":"11111111-1111-4111-8111-111111111111"}}`))
		}, "")

		s, err := c.RefreshSession(context.Background(), "rt")

		require.NoError(t, err)
		assert.Equal(t, "at2", s.AccessToken)
	})

	t.Run("ready checks settings", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/v1/settings", r.URL.Path)
			_, _ = w.Write([]byte(`{"external":{}}`))
		}, "")

		assert.NoError(t, c.Ready(context.Background()))
	})

	t.Run("server errors are reported with status", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}, "")

		err := c.Ready(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "500")
	})
}

func TestNewProvider(t *testing.T) {
	p := NewProvider(config.SupabaseConfig{})
	_, err := p.SignInWithPassword(context.Background(), "a@b.co", "x")
	assert.True(t, errors.Is(err, interfaces.ErrAuthNotConfigured))
	assert.NoError(t, p.Ready(context.Background()))

	_, ok := NewProvider(config.SupabaseConfig{URL: "http://localhost", AnonKey: "k"}).(*SupabaseClient)
	assert.True(t, ok)
}

func TestSupabaseClientStopsWaitingOnContext(t *testing.T) {
	release := make(chan struct{})
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-release
	}, "")
	t.Cleanup(func() { close(release) })

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := c.Ready(ctx)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestMapProviderError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
		text   string
	}{
		{name: "nil", err: nil},
		{name: "invalid credentials", err: errors.New(`response status code 400: {"error_code":"invalid_credentials","msg":"Invalid login credentials"}`), target: interfaces.ErrInvalidCredentials, text: "Invalid login credentials"},
		{name: "already registered", err: errors.New(`response status code 422: {"msg":"User already registered"}`), target: interfaces.ErrUserAlreadyExists},
		{name: "forbidden", err: errors.New(`response status code 403: {"msg":"bad jwt"}`), target: interfaces.ErrInvalidToken},
		{name: "status without body", err: errors.New("response status code 502"), text: "auth provider returned 502: unknown error"},
		{name: "transport", err: errors.New("dial tcp: connection refused"), text: "auth provider: dial tcp: connection refused"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapProviderError(tt.err)
			if tt.err == nil {
				assert.NoError(t, got)
				return
			}
			if tt.target != nil {
				assert.ErrorIs(t, got, tt.target)
			}
			if tt.text != "" {
				assert.ErrorContains(t, got, tt.text)
			}
		})
	}
}
