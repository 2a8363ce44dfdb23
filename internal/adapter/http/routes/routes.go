package routes

import (
	"log"
	_ "pombal/docs" // This will be auto-generated
	"pombal/internal/adapter/http/handlers"
	"pombal/internal/adapter/http/middleware"
	repository2 "pombal/internal/adapter/persistence/repository"
	"pombal/internal/infrastructure/auth"
	"pombal/internal/infrastructure/database"
	"pombal/internal/infrastructure/i18n"
	"pombal/internal/usecase"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	loc, err := i18n.NewLocalizer(getenvDefault("APP_LANG", "en"))
	if err != nil {
		log.Fatalf("Failed to load locales: %v", err)
	}

	tokens, err := auth.NewJWTIssuerFromEnv()
	if err != nil {
		log.Fatalf("Failed to configure token issuer: %v", err)
	}

	ddb := database.ConnectDynamoDB()

	formulaRepo := repository2.NewFormulaDynamoRepository(ddb)
	pigeonRepo := repository2.NewPigeonDynamoRepository(ddb)
	userRepo := repository2.NewUserDynamoRepository(ddb)

	formulaUseCase := usecase.NewFormulaUseCase(formulaRepo, pigeonRepo, logger)
	pigeonUseCase := usecase.NewPigeonUseCase(pigeonRepo, logger)
	authUseCase := usecase.NewAuthUseCase(userRepo, tokens, logger)

	formulaHandler := handlers.NewFormulaHandler(formulaUseCase, loc)
	pigeonHandler := handlers.NewPigeonHandler(pigeonUseCase, loc)
	authHandler := handlers.NewAuthHandler(authUseCase, loc)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, authHandler, tokens, loc)
	addLoftRoutes(v1, middleware.RequireAuth(tokens, loc), pigeonHandler, formulaHandler)
}

func setMiddlewares() {
	router.Use(middleware.Metrics())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
