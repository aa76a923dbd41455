package routes

import (
	"giro_backoffice/internal/adapter/http/handlers"
	"giro_backoffice/internal/adapter/http/middleware"
	"giro_backoffice/internal/infrastructure/viewcache"
	"giro_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth       = "/auth"
	PathOperacoes  = "/operacoes"
	PathDashboard  = "/dashboard"
	PathParceiros  = "/parceiros"
	PathNavigation = "/navigation"
)

func addBackofficeRoutes(
	rg *gin.RouterGroup,
	views *viewcache.ViewCache,
	authHandler *handlers.AuthHandler,
	operationHandler *handlers.OperationHandler,
	dashboardHandler *handlers.DashboardHandler,
	navigationHandler *handlers.NavigationHandler,
) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/signup", authHandler.SignUp)
		auth.POST("/logout", authHandler.Logout)
		auth.GET("/me", authHandler.Me)
	}

	operacoes := rg.Group(PathOperacoes)
	{
		operacoes.POST("", operationHandler.Create)
		operacoes.GET("", middleware.ViewETag(views, usecase.ViewOperacoes), operationHandler.List)
		operacoes.GET("/nova/schema", operationHandler.FormSchema)
		operacoes.GET("/:id", operationHandler.GetByID)
	}

	dashboard := rg.Group(PathDashboard)
	{
		dashboard.GET("/summary", middleware.ViewETag(views, usecase.ViewDashboard), dashboardHandler.Summary)
	}

	rg.GET(PathParceiros, operationHandler.ListPartners)

	navigation := rg.Group(PathNavigation)
	{
		navigation.GET("/menu", navigationHandler.Menu)
	}
}
