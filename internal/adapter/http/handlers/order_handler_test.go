package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"servicevale/internal/adapter/http/dto/request"
	"servicevale/internal/adapter/http/handlers/mocks"
	"servicevale/internal/adapter/http/middleware"
	"servicevale/internal/domain/entities"
	"servicevale/internal/domain/listing"
	"servicevale/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	request.RegisterValidations()
	os.Exit(m.Run())
}

// asUser fakes an authenticated caller, the way RequireAuth would.
func asUser(email string, role entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextEmailKey, email)
		c.Set(middleware.ContextRoleKey, role)
	}
}

func validOrderBody() string {
	return `{
		"engineerId": "eng-1",
		"clientName": "Asha Patel",
		"phoneNumber": "9876543210",
		"address": "12 MG Road",
		"billAmount": "450",
		"serviceType": "AC",
		"serviceDate": "2024-03-15",
		"serviceTime": "2:30",
		"servicePeriod": "PM"
	}`
}

func TestOrderHandler_Create(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("bad phone number rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.Create)

		body := `{"engineerId":"eng-1","clientName":"Asha","phoneNumber":"123","address":"x","serviceType":"AC","serviceDate":"2024-03-15","serviceTime":"2:30","servicePeriod":"PM"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase returns mapped error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.Create)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.ServiceOrder{}, usecase.ErrEngineerNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(validOrderBody()))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.Create)

		uc.EXPECT().Create(gomock.Any(), usecase.CreateOrderInput{
			EngineerID:    "eng-1",
			ClientName:    "Asha Patel",
			PhoneNumber:   "9876543210",
			Address:       "12 MG Road",
			BillAmount:    "450",
			ServiceType:   "AC",
			ServiceDate:   "2024-03-15",
			ServiceTime:   "2:30",
			ServicePeriod: "PM",
		}).Return(entities.ServiceOrder{
			ID:          "ord-1",
			ClientName:  "Asha Patel",
			Status:      entities.OrderStatusPending,
			ServiceDate: "2024-03-15",
			ServiceTime: "14:30",
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(validOrderBody()))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "ord-1" || body["displayTime"] != "2:30 PM" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestOrderHandler_ListPending(t *testing.T) {
	t.Run("filter passed through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/pending", h.ListPending)

		day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local)
		uc.EXPECT().ListPending(gomock.Any(), listing.Filter{Assignee: "Ramesh Kumar", Day: day}).Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/pending?serviceBoy=Ramesh+Kumar&date=2024-03-15", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("bad date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/pending", h.ListPending)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/pending?date=15-03-2024", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestOrderHandler_Complete(t *testing.T) {
	t.Run("passes caller identity to usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.PATCH("/v1/orders/:id/complete", asUser("ramesh@vale.in", entities.RoleEngineer), h.Complete)

		uc.EXPECT().Complete(gomock.Any(), "ord-1", "ramesh@vale.in", entities.RoleEngineer).
			Return(entities.ServiceOrder{ID: "ord-1", Status: entities.OrderStatusCompleted}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/ord-1/complete", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.PATCH("/v1/orders/:id/complete", asUser("admin@vale.in", entities.RoleAdmin), h.Complete)

		uc.EXPECT().Complete(gomock.Any(), "nope", "admin@vale.in", entities.RoleAdmin).
			Return(entities.ServiceOrder{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/nope/complete", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestOrderHandler_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOrderUseCase(ctrl)
	h := NewOrderHandler(uc)

	r := gin.New()
	r.DELETE("/v1/orders/:id", h.Delete)

	uc.EXPECT().Delete(gomock.Any(), "ord-1").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/orders/ord-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestOrderHandler_WhatsAppLink(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOrderUseCase(ctrl)
	h := NewOrderHandler(uc)

	r := gin.New()
	r.GET("/v1/orders/:id/whatsapp-link", h.WhatsAppLink)

	uc.EXPECT().WhatsAppLink(gomock.Any(), "ord-1").Return("whatsapp://send?phone=919876543210&text=hi", nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/orders/ord-1/whatsapp-link", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["link"] != "whatsapp://send?phone=919876543210&text=hi" {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}

func TestMapOrderError(t *testing.T) {
	if got := mapOrderError(usecase.ErrInvalidServiceDate); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapOrderError(usecase.ErrInvalidServiceTime); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapOrderError(usecase.ErrEngineerNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapOrderError(usecase.ErrOrderNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapOrderError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
