package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	request "servicevale/internal/adapter/http/dto/request"
	response "servicevale/internal/adapter/http/dto/response"
	"servicevale/internal/adapter/http/middleware"
	"servicevale/internal/domain/entities"
	"servicevale/internal/domain/listing"
	"servicevale/internal/usecase"
	"servicevale/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
	errInvalidListFilter   = pkg.NewDomainErrorSimple("INVALID_FILTER", "Invalid list filter, date must be YYYY-MM-DD", http.StatusBadRequest)
)

// OrderHandler handles the service-order lifecycle.

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

func (h *OrderHandler) Create(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), usecase.CreateOrderInput{
		EngineerID:    payload.EngineerID,
		ClientName:    payload.ClientName,
		PhoneNumber:   payload.PhoneNumber,
		Address:       payload.Address,
		BillAmount:    payload.BillAmount,
		ServiceType:   payload.ServiceType,
		ServiceDate:   payload.ServiceDate,
		ServiceTime:   payload.ServiceTime,
		ServicePeriod: payload.ServicePeriod,
	})
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromServiceOrder(created))
}

func (h *OrderHandler) GetByID(c *gin.Context) {
	o, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(o))
}

func (h *OrderHandler) ListPending(c *gin.Context) {
	h.list(c, h.usecase.ListPending)
}

func (h *OrderHandler) ListCompleted(c *gin.Context) {
	h.list(c, h.usecase.ListCompleted)
}

func (h *OrderHandler) list(c *gin.Context, lister func(ctx context.Context, f listing.Filter) ([]entities.ServiceOrder, error)) {
	f, appErr := parseListFilter(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	items, err := lister(c.Request.Context(), f)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrders(items))
}

func (h *OrderHandler) PendingCounts(c *gin.Context) {
	counts, err := h.usecase.PendingCounts(c.Request.Context())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.PendingCountsResponse{Counts: counts})
}

func (h *OrderHandler) Complete(c *gin.Context) {
	o, err := h.usecase.Complete(c.Request.Context(), c.Param("id"), middleware.EmailFrom(c), middleware.RoleFrom(c))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(o))
}

func (h *OrderHandler) MoveToPending(c *gin.Context) {
	o, err := h.usecase.MoveToPending(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(o))
}

func (h *OrderHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *OrderHandler) WhatsAppLink(c *gin.Context) {
	link, err := h.usecase.WhatsAppLink(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.WhatsAppLinkResponse{Link: link})
}

// parseListFilter reads the optional serviceBoy and date (YYYY-MM-DD) query
// parameters shared by order and bill listings.
func parseListFilter(c *gin.Context) (listing.Filter, *pkg.AppError) {
	f := listing.Filter{Assignee: c.Query("serviceBoy")}
	if raw := c.Query("date"); raw != "" {
		day, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			return listing.Filter{}, errInvalidListFilter
		}
		f.Day = day
	}
	return f, nil
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidServiceDate),
		errors.Is(err, usecase.ErrInvalidServiceTime):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEngineerNotFound):
		return pkg.NewDomainErrorSimple("ENGINEER_NOT_FOUND", "Engineer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
