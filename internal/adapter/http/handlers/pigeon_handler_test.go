package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"pombal/internal/adapter/http/handlers/mocks"
	"pombal/internal/domain/entities"
	"pombal/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPigeonHandler_RegisterPigeon(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPigeonUseCase(ctrl)
		h := NewPigeonHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/pigeons", asOwner("user-1"), h.RegisterPigeon)

		req := httptest.NewRequest(http.MethodPost, "/v1/pigeons", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("gender outside enum", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPigeonUseCase(ctrl)
		h := NewPigeonHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/pigeons", asOwner("user-1"), h.RegisterPigeon)

		req := httptest.NewRequest(http.MethodPost, "/v1/pigeons", bytes.NewBufferString(`{"name":"Apollo","ring_number":"BR-001","gender":"OTHER"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("duplicate ring number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPigeonUseCase(ctrl)
		h := NewPigeonHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/pigeons", asOwner("user-1"), h.RegisterPigeon)

		uc.EXPECT().Register(gomock.Any(), "user-1", gomock.Any()).Return(entities.Pigeon{}, usecase.ErrDuplicateRingNumber)

		req := httptest.NewRequest(http.MethodPost, "/v1/pigeons", bytes.NewBufferString(`{"name":"Apollo","ring_number":"BR-001","gender":"MALE"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPigeonUseCase(ctrl)
		h := NewPigeonHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/pigeons", asOwner("user-1"), h.RegisterPigeon)

		uc.EXPECT().Register(gomock.Any(), "user-1", usecase.RegisterPigeonInput{
			Name:       "Apollo",
			RingNumber: "BR-001",
			Gender:     entities.PigeonGenderMale,
		}).Return(entities.Pigeon{ID: "p-1", Name: "Apollo", RingNumber: "BR-001", Gender: entities.PigeonGenderMale, Status: entities.PigeonStatusAlive}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/pigeons", bytes.NewBufferString(`{"name":"Apollo","ring_number":"BR-001","gender":"MALE"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "p-1" || body["status"] != string(entities.PigeonStatusAlive) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestPigeonHandler_GetAndList(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPigeonUseCase(ctrl)
		h := NewPigeonHandler(uc, nil)

		r := gin.New()
		r.GET("/v1/pigeons/:pigeon_id", asOwner("user-1"), h.GetPigeon)

		uc.EXPECT().GetByID(gomock.Any(), "user-1", "p-404").Return(entities.Pigeon{}, usecase.ErrPigeonNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/pigeons/p-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("list forwards query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPigeonUseCase(ctrl)
		h := NewPigeonHandler(uc, nil)

		r := gin.New()
		r.GET("/v1/pigeons", asOwner("user-1"), h.ListPigeons)

		uc.EXPECT().Search(gomock.Any(), "user-1", "BR-001").Return([]entities.Pigeon{{ID: "p-1"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/pigeons?q=BR-001", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestPigeonHandler_UpdatePigeonStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("status outside enum", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPigeonUseCase(ctrl)
		h := NewPigeonHandler(uc, nil)

		r := gin.New()
		r.PATCH("/v1/pigeons/:pigeon_id/status", asOwner("user-1"), h.UpdatePigeonStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/pigeons/p-1/status", bytes.NewBufferString(`{"status":"MISSING"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPigeonUseCase(ctrl)
		h := NewPigeonHandler(uc, nil)

		r := gin.New()
		r.PATCH("/v1/pigeons/:pigeon_id/status", asOwner("user-1"), h.UpdatePigeonStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), "user-1", "p-1", entities.PigeonStatusSold).Return(entities.Pigeon{ID: "p-1", Status: entities.PigeonStatusSold}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/pigeons/p-1/status", bytes.NewBufferString(`{"status":"SOLD"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestMapPigeonError(t *testing.T) {
	if got := mapPigeonError(usecase.ErrInvalidRingNumber); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapPigeonError(usecase.ErrDuplicateRingNumber); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapPigeonError(usecase.ErrDuplicateDocNumber); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapPigeonError(usecase.ErrPigeonNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapPigeonError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
