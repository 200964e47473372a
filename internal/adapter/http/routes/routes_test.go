package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hoa_stickers/internal/adapter/http/handlers"
	"hoa_stickers/internal/adapter/http/handlers/mocks"
	"hoa_stickers/internal/adapter/http/web"
	"hoa_stickers/internal/domain/entities"
	"hoa_stickers/internal/domain/guard"
	"hoa_stickers/internal/infrastructure/metrics"
	"hoa_stickers/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/mock/gomock"
)

func newTestRouter(t *testing.T) (*gin.Engine, *mocks.MockIAuthUseCase, *mocks.MockIResidentUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	residents := mocks.NewMockIResidentUseCase(ctrl)
	products := mocks.NewMockIProductUseCase(ctrl)
	purchases := mocks.NewMockIPurchaseUseCase(ctrl)
	reports := mocks.NewMockIReportUseCase(ctrl)
	auth := mocks.NewMockIAuthUseCase(ctrl)

	pages, err := web.NewPages(residents, products, purchases, reports, auth, web.CookieConfig{Name: "hoa_session", TTL: time.Hour})
	if err != nil {
		t.Fatalf("pages: %v", err)
	}

	r := gin.New()
	setMiddlewares(r, metrics.NewWithRegistry(prometheus.NewRegistry()))
	getRoutes(r, Handlers{
		Residents:   handlers.NewResidentHandler(residents),
		Products:    handlers.NewProductHandler(products),
		Purchases:   handlers.NewPurchaseHandler(purchases),
		Reports:     handlers.NewReportHandler(reports),
		Auth:        handlers.NewAuthHandler(auth),
		Pages:       pages,
		AuthUseCase: auth,
		CookieName:  "hoa_session",
	})
	return r, auth, residents
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRoutes_Public(t *testing.T) {
	r, _, _ := newTestRouter(t)

	for _, path := range []string{"/v1/ping", "/about", "/metrics"} {
		w := serve(r, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, w.Code)
		}
	}
}

func TestRoutes_APIRequiresBearer(t *testing.T) {
	r, auth, residents := newTestRouter(t)
	auth.EXPECT().VerifyAccessToken(gomock.Any(), "").Return(entities.AuthUser{}, usecase.ErrMissingToken)
	auth.EXPECT().VerifyAccessToken(gomock.Any(), "good").Return(entities.AuthUser{ID: "u1"}, nil)
	residents.EXPECT().ListWithPurchases(gomock.Any(), entities.ResidentFilter{}).Return(nil, nil)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/v1/residents", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/residents", nil)
	req.Header.Set("Authorization", "Bearer good")
	w = serve(r, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestRoutes_GuardedPages(t *testing.T) {
	t.Run("placeholder while loading", func(t *testing.T) {
		r, auth, _ := newTestRouter(t)
		auth.EXPECT().State(gomock.Any(), "").Return(guard.State{Loading: true}, entities.AuthSession{})

		w := serve(r, httptest.NewRequest(http.MethodGet, "/residents", nil))

		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `http-equiv="refresh"`) {
			t.Fatalf("expected placeholder, got %d", w.Code)
		}
	})

	t.Run("signed out visitors go to sign in", func(t *testing.T) {
		r, auth, _ := newTestRouter(t)
		auth.EXPECT().State(gomock.Any(), "").Return(guard.State{}, entities.AuthSession{}).Times(2)

		for _, path := range []string{"/", "/transactions"} {
			w := serve(r, httptest.NewRequest(http.MethodGet, path, nil))
			if w.Code != http.StatusSeeOther || w.Header().Get("Location") != guard.SignInPath {
				t.Fatalf("%s: expected redirect to sign in, got %d %q", path, w.Code, w.Header().Get("Location"))
			}
		}
	})

	t.Run("signed in users skip the sign in page", func(t *testing.T) {
		r, auth, _ := newTestRouter(t)
		s := entities.AuthSession{AccessToken: "at", User: entities.AuthUser{ID: "u1", Email: "admin@hoa.test"}}
		auth.EXPECT().State(gomock.Any(), "sid").Return(guard.State{Authenticated: true}, s)

		req := httptest.NewRequest(http.MethodGet, "/sign-in", nil)
		req.AddCookie(&http.Cookie{Name: "hoa_session", Value: "sid"})
		w := serve(r, req)

		if w.Code != http.StatusSeeOther || w.Header().Get("Location") != guard.HomePath {
			t.Fatalf("expected redirect home, got %d %q", w.Code, w.Header().Get("Location"))
		}
	})

	t.Run("dashboard shows the user", func(t *testing.T) {
		r, auth, _ := newTestRouter(t)
		s := entities.AuthSession{AccessToken: "at", User: entities.AuthUser{ID: "u1", Email: "admin@hoa.test"}}
		auth.EXPECT().State(gomock.Any(), "sid").Return(guard.State{Authenticated: true}, s)

		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		req.AddCookie(&http.Cookie{Name: "hoa_session", Value: "sid"})
		w := serve(r, req)

		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Your user ID: u1") {
			t.Fatalf("unexpected dashboard %d", w.Code)
		}
	})
}
