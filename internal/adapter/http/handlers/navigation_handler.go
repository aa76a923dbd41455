package handlers

import (
	"net/http"

	response "giro_backoffice/internal/adapter/http/dto/response"
	"giro_backoffice/internal/adapter/http/middleware"
	"giro_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
)

const logoutHref = "/v1/auth/logout"

// NavigationHandler serves the role-filtered shell menu.

type NavigationHandler struct{}

func NewNavigationHandler() *NavigationHandler {
	return &NavigationHandler{}
}

// Menu godoc
//
//	@Summary  Navigation entries for the caller's role
//	@Tags     navigation
//	@Produce  json
//	@Success  200 {object} response.NavigationResponse
//	@Failure  401 {object} pkg.HTTPError
//	@Security Bearer
//	@Router   /navigation/menu [get]
func (h *NavigationHandler) Menu(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		c.JSON(errNoSession.HTTPStatus, errNoSession.ToHTTPError())
		return
	}

	items := usecase.MenuForRole(principal.Role)
	c.JSON(http.StatusOK, response.FromMenu(items, logoutHref))
}
