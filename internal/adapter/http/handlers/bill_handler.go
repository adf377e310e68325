package handlers

import (
	"errors"
	"net/http"

	request "servicevale/internal/adapter/http/dto/request"
	response "servicevale/internal/adapter/http/dto/response"
	"servicevale/internal/domain/entities"
	"servicevale/internal/usecase"
	"servicevale/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidBillPayload = pkg.NewDomainErrorSimple("INVALID_BILL_INPUT", "Invalid bill payload", http.StatusBadRequest)

// BillHandler handles bill creation, listings, the HTML invoice document and
// the revenue windows.

type BillHandler struct {
	usecase usecase.IBillUseCase
}

func NewBillHandler(uc usecase.IBillUseCase) *BillHandler {
	return &BillHandler{usecase: uc}
}

func (h *BillHandler) Create(c *gin.Context) {
	var payload request.CreateBillRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBillPayload.HTTPStatus, errInvalidBillPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), usecase.CreateBillInput{
		CustomerName:   payload.CustomerName,
		ContactNumber:  payload.ContactNumber,
		Address:        payload.Address,
		ServiceType:    payload.ServiceType,
		ServiceBoyName: payload.ServiceBoyName,
		ServiceCharge:  payload.ServiceCharge,
		PaymentMethod:  entities.PaymentMethod(payload.PaymentMethod),
		CashGiven:      payload.CashGiven,
		Notes:          payload.Notes,
		Signature:      payload.Signature,
	})
	if err != nil {
		appErr := mapBillError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBill(created))
}

func (h *BillHandler) List(c *gin.Context) {
	f, appErr := parseListFilter(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	items, err := h.usecase.List(c.Request.Context(), f)
	if err != nil {
		appErr := mapBillError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBills(items))
}

func (h *BillHandler) GetByNumber(c *gin.Context) {
	b, err := h.usecase.GetByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		appErr := mapBillError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBill(b))
}

// Document returns the printable HTML invoice for a bill.
func (h *BillHandler) Document(c *gin.Context) {
	doc, err := h.usecase.Document(c.Request.Context(), c.Param("number"))
	if err != nil {
		appErr := mapBillError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(doc))
}

func (h *BillHandler) Revenue(c *gin.Context) {
	rev, err := h.usecase.Revenue(c.Request.Context())
	if err != nil {
		appErr := mapBillError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, rev)
}

func mapBillError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBillNumber),
		errors.Is(err, usecase.ErrInvalidServiceCharge),
		errors.Is(err, usecase.ErrInvalidCashGiven),
		errors.Is(err, usecase.ErrInvalidPaymentMethod):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBillNotFound):
		return pkg.NewDomainErrorSimple("BILL_NOT_FOUND", "Bill not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
