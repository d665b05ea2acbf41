package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/powerme/portal-api/internal/api/handler"
	"github.com/powerme/portal-api/internal/api/middleware"
	"github.com/powerme/portal-api/internal/core/ports"
	"github.com/powerme/portal-api/internal/core/service"
	"github.com/powerme/portal-api/internal/infrastructure/config"
	mongodb "github.com/powerme/portal-api/internal/infrastructure/db/mongo"
	redisdb "github.com/powerme/portal-api/internal/infrastructure/db/redis"
	"github.com/powerme/portal-api/internal/infrastructure/salesforce"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, notifier ports.ResetNotifier, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.Origins(),
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("portal"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, notifier, cfg.JWTSecret, cfg.AccessTokenTTL, cfg.ResetTokenTTL, log)

	sfStore, err := salesforce.NewStore(cfg.Salesforce.MockDataDir)
	if err != nil {
		return nil, err
	}
	customerData := redisdb.NewCachedCustomerData(sfStore, rdb)

	documentService := service.NewDocumentService(customerData, log)
	caseService := service.NewCaseService(customerData, log)

	authHandler := handler.NewAuthHandler(authService)
	documentHandler := handler.NewDocumentHandler(documentService)
	caseHandler := handler.NewCaseHandler(caseService)

	authRequired := middleware.Auth(authService)
	owned := middleware.Ownership("customer_id")

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/forgot-password", authHandler.ForgotPassword)
	e.POST("/auth/reset-password", authHandler.ResetPassword)
	e.POST("/auth/change-password", authHandler.ChangePassword, authRequired)
	e.GET("/auth/me", authHandler.Me, authRequired)

	// --- Customer resources (ownership enforced on every route) ---
	customer := e.Group("/customer/:customer_id", authRequired, owned)
	customer.GET("/documents", documentHandler.List)
	customer.POST("/documents", documentHandler.Upload)
	customer.GET("/documents/:document_id/download", documentHandler.Download)
	customer.GET("/cases", caseHandler.List)
	customer.POST("/cases", caseHandler.Create)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, nil
}
