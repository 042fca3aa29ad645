package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/caesarkutaa/AgreeLink/internal/api/handler"
	"github.com/caesarkutaa/AgreeLink/internal/api/middleware"
	"github.com/caesarkutaa/AgreeLink/internal/core/ports"
	"github.com/caesarkutaa/AgreeLink/internal/core/service"
	mongostore "github.com/caesarkutaa/AgreeLink/internal/infrastructure/db/mongo"
	"github.com/caesarkutaa/AgreeLink/internal/infrastructure/storage"
)

// RouterConfig carries everything NewRouter needs beyond the datastores.
type RouterConfig struct {
	APIPrefix string
	JWTSecret string
	TokenTTL  time.Duration
	UploadDir string
	Verifier  middleware.TokenVerifier
	Activity  ports.ActivityRecorder
	Log       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("agreelink"))

	activity := cfg.Activity
	if activity == nil {
		activity = ports.NopActivityRecorder{}
	}

	// --- Dependencies ---
	userRepo := mongostore.NewUserRepository(db)
	proposalRepo := mongostore.NewProposalRepository(db)
	agreementRepo := mongostore.NewAgreementRepository(db)
	signatureRepo := mongostore.NewSignatureRepository(db)
	imageStore := storage.NewDiskImageStore(cfg.UploadDir)

	authService := service.NewAuthService(userRepo, activity, cfg.JWTSecret, cfg.TokenTTL, cfg.Log)
	proposalService := service.NewProposalService(proposalRepo, userRepo, activity, cfg.Log)
	agreementService := service.NewAgreementService(agreementRepo, proposalRepo, userRepo, activity, cfg.Log)
	signatureService := service.NewSignatureService(signatureRepo, agreementRepo, imageStore, activity, cfg.Log)

	authHandler := handler.NewAuthHandler(authService)
	proposalHandler := handler.NewProposalHandler(proposalService)
	agreementHandler := handler.NewAgreementHandler(agreementService)
	signatureHandler := handler.NewSignatureHandler(signatureService)
	authGuard := middleware.Auth(cfg.Verifier)

	// --- Operational endpoints (outside the API prefix) ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewReadinessHandler(db, rdb).Readiness)

	v1 := e.Group(cfg.APIPrefix)

	// --- Auth routes ---
	v1.POST("/auth/register", authHandler.Register)
	v1.POST("/auth/login", authHandler.Login)

	// --- Proposal routes (create and list require the caller's identity) ---
	v1.POST("/proposals", proposalHandler.Create, authGuard)
	v1.GET("/proposals", proposalHandler.List, authGuard)
	v1.GET("/proposals/:id", proposalHandler.Get)
	v1.PATCH("/proposals/:id", proposalHandler.Update)
	v1.DELETE("/proposals/:id", proposalHandler.Delete)

	// --- Agreement routes ---
	v1.POST("/agreements", agreementHandler.Create)
	v1.GET("/agreements", agreementHandler.List)
	v1.GET("/agreements/:id", agreementHandler.Get)
	v1.PATCH("/agreements/:id", agreementHandler.Update)
	v1.DELETE("/agreements/:id", agreementHandler.Delete)

	// --- Signature routes ---
	v1.POST("/signatures", signatureHandler.Create)
	v1.GET("/signatures", signatureHandler.List)
	v1.GET("/signatures/:id", signatureHandler.Get)
	v1.PUT("/signatures/:id", signatureHandler.Update)
	v1.DELETE("/signatures/:id", signatureHandler.Delete)

	return e
}
