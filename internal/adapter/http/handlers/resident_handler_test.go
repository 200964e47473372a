package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hoa_stickers/internal/adapter/http/handlers/mocks"
	"hoa_stickers/internal/domain/entities"
	"hoa_stickers/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newResidentRouter(t *testing.T) (*gin.Engine, *mocks.MockIResidentUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIResidentUseCase(ctrl)
	h := NewResidentHandler(uc)

	r := gin.New()
	r.GET("/v1/residents", h.ListResidents)
	r.POST("/v1/residents", h.CreateResident)
	r.GET("/v1/residents/:id", h.GetResident)
	r.PUT("/v1/residents/:id", h.UpdateResident)
	r.DELETE("/v1/residents/:id", h.DeleteResident)
	r.GET("/v1/residents/:id/purchases", h.ListResidentPurchases)
	return r, uc
}

func TestResidentHandler_ListResidents(t *testing.T) {
	t.Run("passes query filters", func(t *testing.T) {
		r, uc := newResidentRouter(t)
		uc.EXPECT().
			ListWithPurchases(gomock.Any(), entities.ResidentFilter{Phase: "1", Lot: "4"}).
			Return([]entities.ResidentWithPurchases{{Resident: entities.Resident{ID: "r1", Name: "Ana"}}}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/residents?phase=1&lot=4", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if len(body) != 1 || body[0]["name"] != "Ana" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
		if purchases, ok := body[0]["purchases"].([]any); !ok || len(purchases) != 0 {
			t.Fatalf("expected empty purchases array, got %v", body[0]["purchases"])
		}
	})

	t.Run("store failure", func(t *testing.T) {
		r, uc := newResidentRouter(t)
		uc.EXPECT().ListWithPurchases(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/residents", nil))

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if bytes.Contains(w.Body.Bytes(), []byte("boom")) {
			t.Fatalf("internal error leaked: %s", w.Body.String())
		}
	})
}

func TestResidentHandler_CreateResident(t *testing.T) {
	t.Run("missing fields are reported per field", func(t *testing.T) {
		r, _ := newResidentRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/residents", bytes.NewBufferString(`{"name":"Ana"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body struct {
			Code   string            `json:"code"`
			Fields map[string]string `json:"fields"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body.Code != "INVALID_PAYLOAD" || body.Fields["phase"] == "" || body.Fields["lot"] == "" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("created", func(t *testing.T) {
		r, uc := newResidentRouter(t)
		uc.EXPECT().
			Register(gomock.Any(), usecase.ResidentInput{Name: "Ana", Phase: "1", Block: "2", Lot: "3"}).
			Return(entities.Resident{ID: "r1", Name: "Ana", Phase: "1", Block: "2", Lot: "3"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/residents", bytes.NewBufferString(`{"name":"Ana","phase":"1","block":"2","lot":"3"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestResidentHandler_GetUpdateDelete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		r, uc := newResidentRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "nope").Return(entities.Resident{}, usecase.ErrResidentNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/residents/nope", nil))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("update", func(t *testing.T) {
		r, uc := newResidentRouter(t)
		uc.EXPECT().
			Update(gomock.Any(), "r1", usecase.ResidentInput{Name: "Ana Cruz", Phase: "1", Block: "2", Lot: "3"}).
			Return(entities.Resident{ID: "r1", Name: "Ana Cruz"}, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/residents/r1", bytes.NewBufferString(`{"name":"Ana Cruz","phase":"1","block":"2","lot":"3"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("delete", func(t *testing.T) {
		r, uc := newResidentRouter(t)
		uc.EXPECT().Delete(gomock.Any(), "r1").Return(nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/residents/r1", nil))

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("purchases", func(t *testing.T) {
		r, uc := newResidentRouter(t)
		uc.EXPECT().PurchasesOf(gomock.Any(), "r1").Return([]entities.PurchaseDetail{
			{Purchase: entities.Purchase{ID: "a", AmountPaid: 700}},
		}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/residents/r1/purchases", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte(`"product_name":"Unknown"`)) {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})
}
