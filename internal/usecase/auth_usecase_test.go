package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"hoa_stickers/internal/domain/entities"
	"hoa_stickers/internal/usecase/interfaces"
	mock_interfaces "hoa_stickers/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func liveSession() entities.AuthSession {
	return entities.AuthSession{
		AccessToken:  "access",
		RefreshToken: "refresh",
		ExpiresAt:    time.Now().Add(time.Hour),
		User:         entities.AuthUser{ID: "u1", Email: "admin@hoa.test"},
	}
}

func waitReady(t *testing.T, uc *AuthUseCase) {
	t.Helper()
	select {
	case <-uc.Ready():
	case <-time.After(2 * time.Second):
		t.Fatalf("auth use case never became ready")
	}
}

func TestAuthUseCase_Initialize(t *testing.T) {
	t.Run("loading until provider answers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_interfaces.NewMockIAuthProvider(ctrl)
		uc := NewAuthUseCase(provider, nil, nil, nil, time.Hour, time.Second)

		release := make(chan struct{})
		provider.EXPECT().Ready(gomock.Any()).DoAndReturn(func(context.Context) error {
			<-release
			return nil
		})

		if !uc.Loading() {
			t.Fatalf("expected loading before initialize")
		}
		uc.Initialize(context.Background())
		if !uc.Loading() {
			t.Fatalf("expected loading while provider is pending")
		}
		close(release)
		waitReady(t, uc)
		if uc.Loading() {
			t.Fatalf("expected loading to end")
		}
	})

	t.Run("timeout ends loading", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_interfaces.NewMockIAuthProvider(ctrl)
		store := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewAuthUseCase(provider, store, nil, nil, time.Hour, 20*time.Millisecond)

		provider.EXPECT().Ready(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		})
		store.EXPECT().Get(gomock.Any(), "sid").Return(entities.AuthSession{}, nil)

		uc.Initialize(context.Background())
		waitReady(t, uc)

		state, _ := uc.State(context.Background(), "sid")
		if state.Loading || state.Authenticated {
			t.Fatalf("expected unauthenticated state after timeout, got %+v", state)
		}
	})

	t.Run("provider not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_interfaces.NewMockIAuthProvider(ctrl)
		uc := NewAuthUseCase(provider, nil, nil, nil, time.Hour, time.Second)

		provider.EXPECT().Ready(gomock.Any()).Return(interfaces.ErrAuthNotConfigured)

		uc.Initialize(context.Background())
		waitReady(t, uc)
	})
}

func TestAuthUseCase_State(t *testing.T) {
	t.Run("loading state skips the session store", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil, nil, nil, time.Hour, time.Second)
		state, s := uc.State(context.Background(), "sid")
		if !state.Loading || s.Authenticated() {
			t.Fatalf("unexpected state %+v", state)
		}
	})

	t.Run("store error degrades to unauthenticated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewAuthUseCase(nil, store, nil, nil, time.Hour, time.Second)
		close(uc.ready)

		store.EXPECT().Get(gomock.Any(), "sid").Return(entities.AuthSession{}, errors.New("redis down"))

		state, _ := uc.State(context.Background(), "sid")
		if state.Loading || state.Authenticated {
			t.Fatalf("unexpected state %+v", state)
		}
	})

	t.Run("live session is authenticated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewAuthUseCase(nil, store, nil, nil, time.Hour, time.Second)
		close(uc.ready)

		store.EXPECT().Get(gomock.Any(), "sid").Return(liveSession(), nil)

		state, s := uc.State(context.Background(), "sid")
		if !state.Authenticated || s.User.Email != "admin@hoa.test" {
			t.Fatalf("unexpected state %+v session %+v", state, s)
		}
	})
}

func TestAuthUseCase_SignIn(t *testing.T) {
	t.Run("invalid email", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil, nil, nil, time.Hour, time.Second)
		if _, _, err := uc.SignIn(context.Background(), "not-an-email", "secret"); !errors.Is(err, ErrInvalidEmail) {
			t.Fatalf("expected ErrInvalidEmail, got %v", err)
		}
	})

	t.Run("bad credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_interfaces.NewMockIAuthProvider(ctrl)
		uc := NewAuthUseCase(provider, nil, nil, nil, time.Hour, time.Second)

		provider.EXPECT().SignInWithPassword(gomock.Any(), "admin@hoa.test", "wrong").Return(entities.AuthSession{}, interfaces.ErrInvalidCredentials)

		if _, _, err := uc.SignIn(context.Background(), " Admin@HOA.test ", "wrong"); !errors.Is(err, interfaces.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("success stores session and publishes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_interfaces.NewMockIAuthProvider(ctrl)
		store := mock_interfaces.NewMockISessionStore(ctrl)
		events := mock_interfaces.NewMockISessionEvents(ctrl)
		uc := NewAuthUseCase(provider, store, events, nil, 24*time.Hour, time.Second)

		s := liveSession()
		provider.EXPECT().SignInWithPassword(gomock.Any(), "admin@hoa.test", "secret").Return(s, nil)
		store.EXPECT().Save(gomock.Any(), gomock.Any(), s, 24*time.Hour).Return(nil)
		events.EXPECT().Publish(entities.AuthEventSignedIn, gomock.Any())

		id, got, err := uc.SignIn(context.Background(), "admin@hoa.test", "secret")
		if err != nil || id == "" || got.User.ID != "u1" {
			t.Fatalf("unexpected result id=%q session=%+v err=%v", id, got, err)
		}
	})
}

func TestAuthUseCase_SignUp(t *testing.T) {
	t.Run("short password never reaches provider", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil, nil, nil, time.Hour, time.Second)
		if _, err := uc.SignUp(context.Background(), "new@hoa.test", "12345"); !errors.Is(err, ErrInvalidPassword) {
			t.Fatalf("expected ErrInvalidPassword, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_interfaces.NewMockIAuthProvider(ctrl)
		uc := NewAuthUseCase(provider, nil, nil, nil, time.Hour, time.Second)

		provider.EXPECT().SignUp(gomock.Any(), "new@hoa.test", "123456").Return(entities.AuthUser{ID: "u2", Email: "new@hoa.test"}, nil)

		u, err := uc.SignUp(context.Background(), "new@hoa.test", "123456")
		if err != nil || u.ID != "u2" {
			t.Fatalf("unexpected result %+v err=%v", u, err)
		}
	})
}

func TestAuthUseCase_SignOut(t *testing.T) {
	t.Run("provider failure still clears session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_interfaces.NewMockIAuthProvider(ctrl)
		store := mock_interfaces.NewMockISessionStore(ctrl)
		events := mock_interfaces.NewMockISessionEvents(ctrl)
		uc := NewAuthUseCase(provider, store, events, nil, time.Hour, time.Second)

		store.EXPECT().Get(gomock.Any(), "sid").Return(liveSession(), nil)
		provider.EXPECT().SignOut(gomock.Any(), "access").Return(errors.New("network"))
		store.EXPECT().Delete(gomock.Any(), "sid").Return(nil)
		events.EXPECT().Publish(entities.AuthEventSignedOut, nil)

		if err := uc.SignOut(context.Background(), "sid"); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})

	t.Run("no cookie is a no-op", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil, nil, nil, time.Hour, time.Second)
		if err := uc.SignOut(context.Background(), ""); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})
}

func TestAuthUseCase_CurrentSession(t *testing.T) {
	expired := liveSession()
	expired.ExpiresAt = time.Now().Add(-time.Minute)

	t.Run("refreshes expired token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_interfaces.NewMockIAuthProvider(ctrl)
		store := mock_interfaces.NewMockISessionStore(ctrl)
		events := mock_interfaces.NewMockISessionEvents(ctrl)
		uc := NewAuthUseCase(provider, store, events, nil, time.Hour, time.Second)

		refreshed := liveSession()
		refreshed.AccessToken = "access-2"
		store.EXPECT().Get(gomock.Any(), "sid").Return(expired, nil)
		provider.EXPECT().RefreshSession(gomock.Any(), "refresh").Return(refreshed, nil)
		store.EXPECT().Save(gomock.Any(), "sid", refreshed, time.Hour).Return(nil)
		events.EXPECT().Publish(entities.AuthEventTokenRefreshed, gomock.Any())

		got, err := uc.CurrentSession(context.Background(), "sid")
		if err != nil || got.AccessToken != "access-2" {
			t.Fatalf("unexpected result %+v err=%v", got, err)
		}
	})

	t.Run("failed refresh signs out", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_interfaces.NewMockIAuthProvider(ctrl)
		store := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewAuthUseCase(provider, store, nil, nil, time.Hour, time.Second)

		store.EXPECT().Get(gomock.Any(), "sid").Return(expired, nil)
		provider.EXPECT().RefreshSession(gomock.Any(), "refresh").Return(entities.AuthSession{}, interfaces.ErrInvalidToken)
		store.EXPECT().Delete(gomock.Any(), "sid").Return(nil)

		got, err := uc.CurrentSession(context.Background(), "sid")
		if err != nil || got.Authenticated() {
			t.Fatalf("expected zero session, got %+v err=%v", got, err)
		}
	})
}

func TestAuthUseCase_Tokens(t *testing.T) {
	t.Run("missing bearer", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil, nil, nil, time.Hour, time.Second)
		if _, err := uc.VerifyAccessToken(context.Background(), " "); !errors.Is(err, ErrMissingToken) {
			t.Fatalf("expected ErrMissingToken, got %v", err)
		}
	})

	t.Run("verify delegates to provider", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_interfaces.NewMockIAuthProvider(ctrl)
		uc := NewAuthUseCase(provider, nil, nil, nil, time.Hour, time.Second)

		provider.EXPECT().GetUser(gomock.Any(), "tok").Return(entities.AuthUser{ID: "u1"}, nil)

		u, err := uc.VerifyAccessToken(context.Background(), "tok")
		if err != nil || u.ID != "u1" {
			t.Fatalf("unexpected result %+v err=%v", u, err)
		}
	})

	t.Run("subscribe without broadcaster", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil, nil, nil, time.Hour, time.Second)
		unsubscribe := uc.Subscribe(func(entities.AuthEvent, *entities.AuthSession) {})
		unsubscribe()
	})
}
