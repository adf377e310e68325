package handlers

import (
	"errors"
	"net/http"

	request "servicevale/internal/adapter/http/dto/request"
	response "servicevale/internal/adapter/http/dto/response"
	"servicevale/internal/adapter/http/middleware"
	"servicevale/internal/auth"
	"servicevale/internal/domain/entities"
	"servicevale/internal/usecase"
	"servicevale/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidAuthPayload = pkg.NewDomainErrorSimple("INVALID_AUTH_INPUT", "Invalid auth payload", http.StatusBadRequest)

// AuthHandler handles login, account registration and password recovery.

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthPayload.HTTPStatus, errInvalidAuthPayload.ToHTTPError())
		return
	}

	token, account, err := h.usecase.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLogin(token, account))
}

// Register creates a login account. Admin-only; the engineer app never
// self-registers.
func (h *AuthHandler) Register(c *gin.Context) {
	var payload request.RegisterAccountRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthPayload.HTTPStatus, errInvalidAuthPayload.ToHTTPError())
		return
	}

	account, err := h.usecase.Register(c.Request.Context(), payload.Email, payload.Password, entities.Role(payload.Role))
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromAccount(account))
}

// RequestRecovery issues a password-recovery deep link. The response is the
// same whether or not the email has an account.
func (h *AuthHandler) RequestRecovery(c *gin.Context) {
	var payload request.RecoveryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthPayload.HTTPStatus, errInvalidAuthPayload.ToHTTPError())
		return
	}

	if err := h.usecase.RequestRecovery(c.Request.Context(), payload.Email); err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusAccepted, response.MessageResponse{Message: "If the account exists, a recovery link has been issued"})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var payload request.ResetPasswordRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthPayload.HTTPStatus, errInvalidAuthPayload.ToHTTPError())
		return
	}

	if err := h.usecase.ResetPassword(c.Request.Context(), payload.Link, payload.NewPassword); err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Password updated"})
}

func (h *AuthHandler) Profile(c *gin.Context) {
	account, err := h.usecase.Profile(c.Request.Context(), middleware.EmailFrom(c))
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAccount(account))
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid email or password", http.StatusUnauthorized)
	case errors.Is(err, auth.ErrWeakPassword), errors.Is(err, usecase.ErrInvalidAccountEmail), errors.Is(err, usecase.ErrInvalidAccountRole):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRecoveryRejected):
		return pkg.NewDomainErrorSimple("RECOVERY_REJECTED", "Recovery secret invalid or expired", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAccountEmailTaken):
		return pkg.NewDomainErrorSimple("ACCOUNT_ALREADY_EXISTS", "Account already exists for this email", http.StatusConflict)
	case errors.Is(err, usecase.ErrAccountNotFound):
		return pkg.NewDomainErrorSimple("ACCOUNT_NOT_FOUND", "Account not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
