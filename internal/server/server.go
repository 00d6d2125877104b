package server

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/kevcourtright-art/boostly-sdr-calculator-new/internal/constants"
	"github.com/kevcourtright-art/boostly-sdr-calculator-new/internal/handlers"
	"github.com/kevcourtright-art/boostly-sdr-calculator-new/internal/helpers"
	"github.com/kevcourtright-art/boostly-sdr-calculator-new/internal/logger"
	"github.com/kevcourtright-art/boostly-sdr-calculator-new/internal/middleware"
	"github.com/kevcourtright-art/boostly-sdr-calculator-new/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handler Definitions
var (
	commissionHandler *handlers.CommissionHandler
	pageHandler       *handlers.PageHandler
	healthHandler     *handlers.HealthHandler

	// Services
	commonServices *handlers.CommonServices
	handlerFactory *handlers.HandlerFactory
)

func InitializeHandlers() {
	// Load environment variables from .env file for local development
	// Note: .env might still set STAGE=local, which is now the preferred way
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err) // Use basic log before logger init
	}

	// --- Determine and Validate Stage ---
	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = helpers.StageLocal // Default to local if not set
		log.Printf("Warning: STAGE environment variable not set, defaulting to '%s'", stage)
	}
	if !helpers.IsValidStage(stage) {
		log.Fatalf("Invalid STAGE environment variable: '%s'. Must be one of: %s, %s, %s",
			stage, helpers.StageProd, helpers.StageDev, helpers.StageLocal)
	}

	// --- Initialize Logger (AFTER stage validation) ---
	logger.InitLogger(stage)
	logger.Info("Initializing handlers for stage", zap.String("stage", stage))

	// --- Commission Configuration ---
	commissionConfig := loadCommissionConfig()
	logger.Info("Commission configuration loaded",
		zap.Float64("commission_at_quota", commissionConfig.CommissionAtQuota),
		zap.Float64s("month_multipliers", commissionConfig.MonthMultipliers[:]),
	)

	// Create the handler factory with all dependencies
	handlerFactory = handlers.CreateDefaultFactory(commissionConfig)

	// Get common services from factory
	commonServices = handlerFactory.GetCommonServices()

	// API Handler initialization using factory
	commissionHandler = handlerFactory.NewCommissionHandler()
	pageHandler = handlerFactory.NewPageHandler()
	healthHandler = handlerFactory.NewHealthHandler()
}

// loadCommissionConfig builds the server commission configuration from the
// environment, falling back to the built-in defaults for any setting that is
// missing or invalid. Configuration problems never stop the server; the
// calculator stays usable with defaults.
func loadCommissionConfig() services.CommissionConfig {
	config := services.DefaultCommissionConfig()

	if raw := os.Getenv(constants.CommissionAtQuotaEnv); raw != "" {
		amount, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil || amount < 0 {
			logger.Warn("Invalid commission at quota setting, using default",
				zap.String("env_var", constants.CommissionAtQuotaEnv),
				zap.String("value", raw),
				zap.Float64("default", config.CommissionAtQuota),
			)
		} else {
			config.CommissionAtQuota = amount
		}
	}

	if raw := os.Getenv(constants.MonthMultipliersEnv); raw != "" {
		multipliers, err := services.ParseMonthMultipliers(raw)
		if err != nil {
			logger.Warn("Invalid month multipliers setting, using defaults",
				zap.String("env_var", constants.MonthMultipliersEnv),
				zap.String("value", raw),
				zap.Error(err),
			)
		} else {
			config.MonthMultipliers = multipliers
		}
	}

	return config
}

func InitializeRoutes(router *gin.Engine) {
	// Logger is now initialized in InitializeHandlers

	// Configure and apply CORS middleware
	router.Use(configureCORS())

	// Add correlation ID middleware for request tracing
	router.Use(middleware.CorrelationIDMiddleware())

	// Apply rate limiting middleware globally
	// This provides a default rate limit for all endpoints
	router.Use(middleware.DefaultRateLimiter.Middleware())

	// Add enhanced logging in development mode
	isDevelopment := os.Getenv("GIN_MODE") != "release"
	router.Use(middleware.EnhancedLoggingMiddleware(isDevelopment))

	// Add basic request logging for production
	if !isDevelopment {
		router.Use(middleware.RequestLoggingMiddleware())
	}

	// Add Swagger endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health for raw lambda url check
	router.GET("/:stage/health", healthHandler.Health)

	router.GET("/health", healthHandler.Health)

	// Calculator page
	router.GET("/", pageHandler.CalculatorPage)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthHandler.Health)

		// Commission calculation endpoints
		// The calculate endpoint is recomputed on every keystroke in the
		// calculator page, so it carries the relaxed rate limit
		commission := v1.Group("/commission")
		{
			commission.POST("/calculate", middleware.RelaxedRateLimiter.Middleware(), commissionHandler.CalculateCommission)
			commission.GET("/config", commissionHandler.GetCommissionConfig)
			commission.GET("/tiers", commissionHandler.GetTierSchedule)
		}
	}
}

// configureCORS returns a configured CORS middleware
func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	// Get allowed origins from environment variable
	originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	if originsEnv == "" {
		// Default to localhost if not set
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	} else {
		// Split and trim the origins
		origins := strings.Split(originsEnv, ",")
		for i, origin := range origins {
			origins[i] = strings.TrimSpace(origin)
		}
		corsConfig.AllowOrigins = origins
	}

	// Get allowed methods from environment variable
	methodsEnv := os.Getenv("CORS_ALLOWED_METHODS")
	if methodsEnv == "" {
		corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	} else {
		methods := strings.Split(methodsEnv, ",")
		for i, method := range methods {
			methods[i] = strings.TrimSpace(method)
		}
		corsConfig.AllowMethods = methods
	}

	// Get allowed headers from environment variable
	headersEnv := os.Getenv("CORS_ALLOWED_HEADERS")
	if headersEnv == "" {
		corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Correlation-ID"}
	} else {
		headers := strings.Split(headersEnv, ",")
		for i, header := range headers {
			headers[i] = strings.TrimSpace(header)
		}
		corsConfig.AllowHeaders = headers
	}

	// Get exposed headers from environment variable
	exposedHeadersEnv := os.Getenv("CORS_EXPOSED_HEADERS")
	if exposedHeadersEnv != "" {
		exposedHeaders := strings.Split(exposedHeadersEnv, ",")
		for i, header := range exposedHeaders {
			exposedHeaders[i] = strings.TrimSpace(header)
		}
		corsConfig.ExposeHeaders = exposedHeaders
	} else {
		// Default exposed headers including rate limit headers
		corsConfig.ExposeHeaders = []string{
			"X-RateLimit-Limit",
			"X-RateLimit-Remaining",
			"X-RateLimit-Reset",
			"Retry-After",
			"X-Correlation-ID",
		}
	}

	// Set credentials allowed
	corsConfig.AllowCredentials = os.Getenv("CORS_ALLOW_CREDENTIALS") == "true"

	return cors.New(corsConfig)
}
