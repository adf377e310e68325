package handlers

import (
	"errors"
	"net/http"

	request "servicevale/internal/adapter/http/dto/request"
	response "servicevale/internal/adapter/http/dto/response"
	"servicevale/internal/usecase"
	"servicevale/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidEngineerPayload = pkg.NewDomainErrorSimple("INVALID_ENGINEER_INPUT", "Invalid engineer payload", http.StatusBadRequest)

// EngineerHandler handles the admin-side engineer registry.

type EngineerHandler struct {
	usecase usecase.IEngineerUseCase
}

func NewEngineerHandler(uc usecase.IEngineerUseCase) *EngineerHandler {
	return &EngineerHandler{usecase: uc}
}

func (h *EngineerHandler) Create(c *gin.Context) {
	var payload request.EngineerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEngineerPayload.HTTPStatus, errInvalidEngineerPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Register(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapEngineerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEngineer(created))
}

func (h *EngineerHandler) List(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapEngineerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEngineers(items))
}

func (h *EngineerHandler) GetByID(c *gin.Context) {
	e, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEngineerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEngineer(e))
}

func (h *EngineerHandler) Update(c *gin.Context) {
	var payload request.EngineerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEngineerPayload.HTTPStatus, errInvalidEngineerPayload.ToHTTPError())
		return
	}

	e := payload.ToEntity()
	e.ID = c.Param("id")
	updated, err := h.usecase.Update(c.Request.Context(), e)
	if err != nil {
		appErr := mapEngineerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEngineer(updated))
}

func (h *EngineerHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapEngineerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapEngineerError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEngineerID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEngineerEmailTaken):
		return pkg.NewDomainErrorSimple("ENGINEER_ALREADY_EXISTS", "Engineer already registered with this email", http.StatusConflict)
	case errors.Is(err, usecase.ErrEngineerNotFound):
		return pkg.NewDomainErrorSimple("ENGINEER_NOT_FOUND", "Engineer not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
