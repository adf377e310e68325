package handlers

import (
	"errors"
	"net/http"

	response "servicevale/internal/adapter/http/dto/response"
	"servicevale/internal/adapter/http/middleware"
	"servicevale/internal/usecase"
	"servicevale/pkg"

	"github.com/gin-gonic/gin"
)

// NotificationHandler handles the in-app notification feed. The recipient is
// always the authenticated caller; admins see the whole feed.

type NotificationHandler struct {
	usecase usecase.INotificationUseCase
}

func NewNotificationHandler(uc usecase.INotificationUseCase) *NotificationHandler {
	return &NotificationHandler{usecase: uc}
}

func (h *NotificationHandler) List(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context(), middleware.EmailFrom(c), middleware.RoleFrom(c))
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromNotifications(items))
}

func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	count, err := h.usecase.UnreadCount(c.Request.Context(), middleware.EmailFrom(c), middleware.RoleFrom(c))
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.UnreadCountResponse{Count: count})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	if err := h.usecase.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Notification marked as read"})
}

// BulkDelete clears the caller's whole feed.
func (h *NotificationHandler) BulkDelete(c *gin.Context) {
	deleted, err := h.usecase.DeleteForRecipient(c.Request.Context(), middleware.EmailFrom(c))
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.DeletedCountResponse{Deleted: deleted})
}

func mapNotificationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidNotificationID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotificationNotFound):
		return pkg.NewDomainErrorSimple("NOTIFICATION_NOT_FOUND", "Notification not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
