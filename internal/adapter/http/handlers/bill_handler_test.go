package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"servicevale/internal/adapter/http/handlers/mocks"
	"servicevale/internal/domain/entities"
	"servicevale/internal/domain/listing"
	"servicevale/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func validBillBody() string {
	return `{
		"customerName": "Asha Patel",
		"contactNumber": "9876543210",
		"address": "12 MG Road",
		"serviceType": "AC",
		"serviceBoyName": "Ramesh Kumar",
		"serviceCharge": "400",
		"paymentMethod": "cash",
		"cashGiven": "500"
	}`
}

func TestBillHandler_Create(t *testing.T) {
	t.Run("unknown payment method rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillUseCase(ctrl)
		h := NewBillHandler(uc)

		r := gin.New()
		r.POST("/v1/bills", h.Create)

		body := strings.Replace(validBillBody(), `"cash"`, `"card"`, 1)
		req := httptest.NewRequest(http.MethodPost, "/v1/bills", bytes.NewBufferString(body))
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
		uc := mocks.NewMockIBillUseCase(ctrl)
		h := NewBillHandler(uc)

		r := gin.New()
		r.POST("/v1/bills", h.Create)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Bill{}, usecase.ErrInvalidCashGiven)

		req := httptest.NewRequest(http.MethodPost, "/v1/bills", bytes.NewBufferString(validBillBody()))
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
		uc := mocks.NewMockIBillUseCase(ctrl)
		h := NewBillHandler(uc)

		r := gin.New()
		r.POST("/v1/bills", h.Create)

		uc.EXPECT().Create(gomock.Any(), usecase.CreateBillInput{
			CustomerName:   "Asha Patel",
			ContactNumber:  "9876543210",
			Address:        "12 MG Road",
			ServiceType:    "AC",
			ServiceBoyName: "Ramesh Kumar",
			ServiceCharge:  "400",
			PaymentMethod:  entities.PaymentMethodCash,
			CashGiven:      "500",
		}).Return(entities.Bill{
			BillNumber:    "BILL-20240310-A7K2",
			Total:         "400.00",
			Change:        "100.00",
			PaymentMethod: entities.PaymentMethodCash,
			Status:        entities.BillStatusPaid,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/bills", bytes.NewBufferString(validBillBody()))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["billNumber"] != "BILL-20240310-A7K2" || body["change"] != "100.00" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestBillHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIBillUseCase(ctrl)
	h := NewBillHandler(uc)

	r := gin.New()
	r.GET("/v1/bills", h.List)

	uc.EXPECT().List(gomock.Any(), listing.Filter{Assignee: "Ramesh Kumar"}).Return([]entities.Bill{{BillNumber: "BILL-20240310-A7K2"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/bills?serviceBoy=Ramesh+Kumar", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestBillHandler_Document(t *testing.T) {
	t.Run("renders html", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillUseCase(ctrl)
		h := NewBillHandler(uc)

		r := gin.New()
		r.GET("/v1/bills/:number/document", h.Document)

		uc.EXPECT().Document(gomock.Any(), "BILL-20240310-A7K2").Return("<html><body>Service Vale</body></html>", nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/bills/BILL-20240310-A7K2/document", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
			t.Fatalf("expected html content type, got %q", ct)
		}
		if !strings.Contains(w.Body.String(), "Service Vale") {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillUseCase(ctrl)
		h := NewBillHandler(uc)

		r := gin.New()
		r.GET("/v1/bills/:number/document", h.Document)

		uc.EXPECT().Document(gomock.Any(), "nope").Return("", usecase.ErrBillNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/bills/nope/document", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestBillHandler_Revenue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIBillUseCase(ctrl)
	h := NewBillHandler(uc)

	r := gin.New()
	r.GET("/v1/bills/revenue", h.Revenue)

	uc.EXPECT().Revenue(gomock.Any()).Return(usecase.Revenue{Daily: 400, DailyCount: 1, Monthly: 1200, MonthlyCount: 3}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/bills/revenue", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["daily"] != 400.0 || body["monthlyCount"] != 3.0 {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}
