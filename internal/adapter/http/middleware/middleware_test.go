package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hoa_stickers/internal/adapter/http/handlers/mocks"
	"hoa_stickers/internal/domain/entities"
	"hoa_stickers/internal/domain/guard"
	"hoa_stickers/internal/infrastructure/metrics"
	"hoa_stickers/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/mock/gomock"
)

var signedIn = entities.AuthSession{AccessToken: "at", User: entities.AuthUser{ID: "u1", Email: "admin@hoa.test"}}

func placeholderHandler(c *gin.Context) {
	c.String(http.StatusOK, "loading")
}

func guardedRouter(t *testing.T, section guard.Section, state guard.State, s entities.AuthSession) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	auth := mocks.NewMockIAuthUseCase(ctrl)
	auth.EXPECT().State(gomock.Any(), "sid").Return(state, s).AnyTimes()

	r := gin.New()
	r.GET("/page", RequireSection(auth, "hoa_session", section, placeholderHandler), func(c *gin.Context) {
		u, _ := User(c)
		c.String(http.StatusOK, "page:"+u.Email)
	})
	return r
}

func getWithCookie(r *gin.Engine) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/page", nil)
	req.AddCookie(&http.Cookie{Name: "hoa_session", Value: "sid"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireSection(t *testing.T) {
	cases := []struct {
		name     string
		section  guard.Section
		state    guard.State
		session  entities.AuthSession
		status   int
		location string
		body     string
	}{
		{"app while loading shows placeholder", guard.SectionApp, guard.State{Loading: true}, entities.AuthSession{}, http.StatusOK, "", "loading"},
		{"app signed out redirects", guard.SectionApp, guard.State{}, entities.AuthSession{}, http.StatusSeeOther, "/sign-in", ""},
		{"app signed in renders", guard.SectionApp, guard.State{Authenticated: true}, signedIn, http.StatusOK, "", "page:admin@hoa.test"},
		{"auth signed in redirects home", guard.SectionAuth, guard.State{Authenticated: true}, signedIn, http.StatusSeeOther, "/residents", ""},
		{"auth signed out renders", guard.SectionAuth, guard.State{}, entities.AuthSession{}, http.StatusOK, "", "page:"},
		{"index signed out", guard.SectionIndex, guard.State{}, entities.AuthSession{}, http.StatusSeeOther, "/sign-in", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := getWithCookie(guardedRouter(t, tc.section, tc.state, tc.session))

			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
			if loc := w.Header().Get("Location"); loc != tc.location {
				t.Fatalf("expected location %q, got %q", tc.location, loc)
			}
			if tc.body != "" && w.Body.String() != tc.body {
				t.Fatalf("expected body %q, got %q", tc.body, w.Body.String())
			}
		})
	}
}

func TestRequireBearer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(t *testing.T) (*gin.Engine, *mocks.MockIAuthUseCase) {
		ctrl := gomock.NewController(t)
		auth := mocks.NewMockIAuthUseCase(ctrl)
		r := gin.New()
		r.GET("/v1/x", RequireBearer(auth), func(c *gin.Context) {
			u, _ := User(c)
			c.String(http.StatusOK, u.ID)
		})
		return r, auth
	}

	t.Run("valid token", func(t *testing.T) {
		r, auth := newRouter(t)
		auth.EXPECT().VerifyAccessToken(gomock.Any(), "tok").Return(entities.AuthUser{ID: "u1"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/x", nil)
		req.Header.Set("Authorization", "Bearer tok")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK || w.Body.String() != "u1" {
			t.Fatalf("unexpected response %d %q", w.Code, w.Body.String())
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		r, auth := newRouter(t)
		auth.EXPECT().VerifyAccessToken(gomock.Any(), "bad").Return(entities.AuthUser{}, interfaces.ErrInvalidToken)

		req := httptest.NewRequest(http.MethodGet, "/v1/x", nil)
		req.Header.Set("Authorization", "Bearer bad")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("auth not configured", func(t *testing.T) {
		r, auth := newRouter(t)
		auth.EXPECT().VerifyAccessToken(gomock.Any(), "").Return(entities.AuthUser{}, interfaces.ErrAuthNotConfigured)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/x", nil))

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := metrics.NewWithRegistry(prometheus.NewRegistry())

	r := gin.New()
	r.Use(RequestLogger(m))
	r.GET("/v1/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if n := testutil.CollectAndCount(m.RequestDuration); n != 2 {
		t.Fatalf("expected 2 latency series, got %d", n)
	}
}
