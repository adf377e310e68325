package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"servicevale/internal/adapter/http/handlers/mocks"
	"servicevale/internal/domain/entities"
	"servicevale/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func validEngineerBody() string {
	return `{
		"name": "Ramesh Kumar",
		"email": "ramesh@vale.in",
		"contactNo": "9876543210",
		"address": "12 MG Road",
		"aadharNo": "123456789012",
		"panNo": "ABCDE1234F",
		"city": "Pune"
	}`
}

func TestEngineerHandler_Create(t *testing.T) {
	t.Run("invalid aadhar rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEngineerUseCase(ctrl)
		h := NewEngineerHandler(uc)

		r := gin.New()
		r.POST("/v1/engineers", h.Create)

		body := `{"name":"R","email":"r@vale.in","contactNo":"9876543210","address":"x","aadharNo":"1234","panNo":"ABCDE1234F","city":"Pune"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/engineers", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEngineerUseCase(ctrl)
		h := NewEngineerHandler(uc)

		r := gin.New()
		r.POST("/v1/engineers", h.Create)

		uc.EXPECT().Register(gomock.Any(), gomock.Any()).Return(entities.Engineer{}, usecase.ErrEngineerEmailTaken)

		req := httptest.NewRequest(http.MethodPost, "/v1/engineers", bytes.NewBufferString(validEngineerBody()))
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
		uc := mocks.NewMockIEngineerUseCase(ctrl)
		h := NewEngineerHandler(uc)

		r := gin.New()
		r.POST("/v1/engineers", h.Create)

		uc.EXPECT().Register(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, e entities.Engineer) (entities.Engineer, error) {
				if e.Name != "Ramesh Kumar" || e.Email != "ramesh@vale.in" {
					t.Fatalf("unexpected entity: %+v", e)
				}
				e.ID = "eng-1"
				return e, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/engineers", bytes.NewBufferString(validEngineerBody()))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "eng-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestEngineerHandler_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIEngineerUseCase(ctrl)
	h := NewEngineerHandler(uc)

	r := gin.New()
	r.PUT("/v1/engineers/:id", h.Update)

	uc.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, e entities.Engineer) (entities.Engineer, error) {
			if e.ID != "eng-1" {
				t.Fatalf("expected path id on entity, got %q", e.ID)
			}
			return e, nil
		})

	req := httptest.NewRequest(http.MethodPut, "/v1/engineers/eng-1", bytes.NewBufferString(validEngineerBody()))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestEngineerHandler_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEngineerUseCase(ctrl)
		h := NewEngineerHandler(uc)

		r := gin.New()
		r.DELETE("/v1/engineers/:id", h.Delete)

		uc.EXPECT().Delete(gomock.Any(), "nope").Return(usecase.ErrEngineerNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/v1/engineers/nope", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEngineerUseCase(ctrl)
		h := NewEngineerHandler(uc)

		r := gin.New()
		r.DELETE("/v1/engineers/:id", h.Delete)

		uc.EXPECT().Delete(gomock.Any(), "eng-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/engineers/eng-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}
