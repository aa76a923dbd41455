package handlers

import (
	"net/http"
	"time"

	response "giro_backoffice/internal/adapter/http/dto/response"
	"giro_backoffice/internal/adapter/http/middleware"
	"giro_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the landing-page summary.

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

// Summary godoc
//
//	@Summary  Month aggregates and recent operations
//	@Tags     dashboard
//	@Produce  json
//	@Success  200 {object} response.DashboardSummaryResponse
//	@Failure  401 {object} pkg.HTTPError
//	@Security Bearer
//	@Router   /dashboard/summary [get]
func (h *DashboardHandler) Summary(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		c.JSON(errNoSession.HTTPStatus, errNoSession.ToHTTPError())
		return
	}

	summary, err := h.usecase.Summary(c.Request.Context(), principal.UserID, principal.IsAdmin(), time.Now())
	if err != nil {
		appErr := mapOperationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDashboardSummary(summary))
}
