package routes

import (
	"log"

	_ "giro_backoffice/docs" // This will be auto-generated
	"giro_backoffice/internal/adapter/http/handlers"
	"giro_backoffice/internal/adapter/http/middleware"
	repository2 "giro_backoffice/internal/adapter/persistence/repository"
	"giro_backoffice/internal/auth"
	"giro_backoffice/internal/config"
	"giro_backoffice/internal/infrastructure/banking"
	"giro_backoffice/internal/infrastructure/database"
	"giro_backoffice/internal/infrastructure/identity"
	"giro_backoffice/internal/infrastructure/viewcache"
	"giro_backoffice/internal/usecase"
	"giro_backoffice/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	if err := router.Run(cfg.HTTPAddress()); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config) {
	ddb := database.ConnectDynamoDB()

	operationRepo := repository2.NewOperationDynamoRepository(ddb)
	profileRepo := repository2.NewProfileDynamoRepository(ddb)
	partnerRepo := repository2.NewPartnerDynamoRepository(ddb)

	views := viewcache.New()

	var bankingGateway interfaces.IBankingGateway
	galleriaGateway, err := banking.NewGalleriaGateway(cfg.GalleriaAPIURL, cfg.GalleriaBearerToken)
	if err != nil {
		log.Printf("Galleria Bank gateway not configured: %v", err)
	} else {
		bankingGateway = galleriaGateway
	}

	identityGateway := identity.NewProviderGateway(cfg.IdentityURL, cfg.IdentityAnonKey, cfg.SiteURL)
	verifier := auth.NewTokenVerifier(cfg.SessionJWTSecret)

	authUseCase := usecase.NewAuthUseCase(identityGateway, views)
	operationUseCase := usecase.NewOperationUseCase(operationRepo, bankingGateway, views)
	dashboardUseCase := usecase.NewDashboardUseCase(operationRepo, profileRepo)

	authHandler := handlers.NewAuthHandler(authUseCase, profileRepo)
	operationHandler := handlers.NewOperationHandler(operationUseCase, partnerRepo)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUseCase)
	navigationHandler := handlers.NewNavigationHandler()

	guard := middleware.NewSessionGuard(verifier, profileRepo)
	router.Use(guard.Handle())

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBackofficeRoutes(v1, views, authHandler, operationHandler, dashboardHandler, navigationHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
