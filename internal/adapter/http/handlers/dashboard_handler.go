package handlers

import (
	"net/http"

	"servicevale/internal/adapter/http/middleware"
	"servicevale/internal/usecase"
	"servicevale/pkg"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the aggregated home-screen summary.

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, err := h.usecase.Summary(c.Request.Context(), middleware.EmailFrom(c), middleware.RoleFrom(c))
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, summary)
}
