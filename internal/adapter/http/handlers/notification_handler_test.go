package handlers

import (
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

func TestNotificationHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockINotificationUseCase(ctrl)
	h := NewNotificationHandler(uc)

	r := gin.New()
	r.GET("/v1/notifications", asUser("ramesh@vale.in", entities.RoleEngineer), h.List)

	uc.EXPECT().List(gomock.Any(), "ramesh@vale.in", entities.RoleEngineer).
		Return([]entities.Notification{{ID: "n-1", Description: "New service assigned"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/notifications", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestNotificationHandler_UnreadCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockINotificationUseCase(ctrl)
	h := NewNotificationHandler(uc)

	r := gin.New()
	r.GET("/v1/notifications/unread-count", asUser("admin@vale.in", entities.RoleAdmin), h.UnreadCount)

	uc.EXPECT().UnreadCount(gomock.Any(), "admin@vale.in", entities.RoleAdmin).Return(3, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/notifications/unread-count", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["count"] != 3.0 {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}

func TestNotificationHandler_MarkRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockINotificationUseCase(ctrl)
	h := NewNotificationHandler(uc)

	r := gin.New()
	r.PATCH("/v1/notifications/:id/read", h.MarkRead)

	uc.EXPECT().MarkRead(gomock.Any(), "n-1").Return(nil)

	req := httptest.NewRequest(http.MethodPatch, "/v1/notifications/n-1/read", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestNotificationHandler_BulkDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockINotificationUseCase(ctrl)
	h := NewNotificationHandler(uc)

	r := gin.New()
	r.DELETE("/v1/notifications", asUser("ramesh@vale.in", entities.RoleEngineer), h.BulkDelete)

	uc.EXPECT().DeleteForRecipient(gomock.Any(), "ramesh@vale.in").Return(4, nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/notifications", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["deleted"] != 4.0 {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}

func TestDashboardHandler_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIDashboardUseCase(ctrl)
	h := NewDashboardHandler(uc)

	r := gin.New()
	r.GET("/v1/dashboard", asUser("admin@vale.in", entities.RoleAdmin), h.Summary)

	uc.EXPECT().Summary(gomock.Any(), "admin@vale.in", entities.RoleAdmin).Return(usecase.DashboardSummary{
		Revenue:         usecase.Revenue{Daily: 400, Monthly: 1200},
		PendingOrders:   2,
		CompletedOrders: 5,
		UnreadCount:     1,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["pendingOrders"] != 2.0 || body["unreadCount"] != 1.0 {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}
