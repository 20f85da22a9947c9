package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	billingapp "github.com/propman/backend/internal/application/billing"
	identityapp "github.com/propman/backend/internal/application/identity"
	propertyapp "github.com/propman/backend/internal/application/property"
	utilityapp "github.com/propman/backend/internal/application/utility"
	"github.com/propman/backend/internal/infrastructure/auth"
	"github.com/propman/backend/internal/infrastructure/cache"
	"github.com/propman/backend/internal/infrastructure/config"
	"github.com/propman/backend/internal/infrastructure/logger"
	"github.com/propman/backend/internal/infrastructure/persistence"
	"github.com/propman/backend/internal/interfaces/http/handler"
	"github.com/propman/backend/internal/interfaces/http/middleware"
	"github.com/propman/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting property management backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Database with zap-backed GORM logging
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Repositories
	apartmentRepo := persistence.NewGormApartmentRepository(db.DB)
	tenantRepo := persistence.NewGormTenantRepository(db.DB)
	priceSheetRepo := persistence.NewGormPriceSheetRepository(db.DB)
	consumptionRepo := persistence.NewGormConsumptionRepository(db.DB)
	billingRepo := persistence.NewGormBillingRecordRepository(db.DB)
	operatorRepo := persistence.NewGormOperatorRepository(db.DB)

	// Infrastructure services
	jwtService := auth.NewJWTService(cfg.JWT)
	summaryCache := cache.NewSummaryCache(cfg.Redis, cfg.Cache.SummaryTTL, log)

	// Application services
	apartmentService := propertyapp.NewApartmentService(apartmentRepo, tenantRepo)
	tenantService := propertyapp.NewTenantService(tenantRepo, apartmentRepo)
	utilityService := utilityapp.NewUtilityService(priceSheetRepo, consumptionRepo, apartmentRepo)
	billingService := billingapp.NewBillingService(
		billingRepo, tenantRepo, apartmentRepo, priceSheetRepo, consumptionRepo, summaryCache, log)
	authService := identityapp.NewAuthService(operatorRepo, jwtService, log)

	// Handlers
	systemHandler := handler.NewSystemHandler()
	authHandler := handler.NewAuthHandler(authService)
	apartmentHandler := handler.NewApartmentHandler(apartmentService)
	tenantHandler := handler.NewTenantHandler(tenantService)
	utilityHandler := handler.NewUtilityHandler(utilityService)
	billingHandler := handler.NewBillingHandler(billingService)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware order: request ID first so recovery and logging carry it
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.DefaultCORSConfig()
	if len(cfg.HTTP.CORSAllowOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	}
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db))

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	jwtConfig := middleware.DefaultJWTConfig(jwtService)
	jwtConfig.Logger = log
	r.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/ping", systemHandler.Ping)
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)

	authRoutes := router.NewDomainGroup("auth", "/auth")
	authRoutes.POST("/login", authHandler.Login)
	authRoutes.POST("/refresh", authHandler.Refresh)
	authRoutes.POST("/logout", authHandler.Logout)
	authRoutes.GET("/profile", authHandler.GetProfile)
	authRoutes.POST("/password", authHandler.ChangePassword)
	authRoutes.POST("/operators", authHandler.CreateOperator)

	propertyRoutes := router.NewDomainGroup("property", "")
	propertyRoutes.POST("/apartments", apartmentHandler.Create)
	propertyRoutes.GET("/apartments", apartmentHandler.List)
	propertyRoutes.GET("/apartments/:id", apartmentHandler.GetByID)
	propertyRoutes.PUT("/apartments/:id", apartmentHandler.Update)
	propertyRoutes.DELETE("/apartments/:id", apartmentHandler.Delete)
	propertyRoutes.POST("/tenants", tenantHandler.Create)
	propertyRoutes.GET("/tenants", tenantHandler.List)
	propertyRoutes.GET("/tenants/:id", tenantHandler.GetByID)
	propertyRoutes.PUT("/tenants/:id", tenantHandler.Update)
	propertyRoutes.POST("/tenants/:id/activate", tenantHandler.Activate)
	propertyRoutes.POST("/tenants/:id/deactivate", tenantHandler.Deactivate)
	propertyRoutes.DELETE("/tenants/:id", tenantHandler.Delete)

	utilityRoutes := router.NewDomainGroup("utility", "/utilities")
	utilityRoutes.GET("/prices", utilityHandler.GetPriceSheet)
	utilityRoutes.PUT("/prices", utilityHandler.UpsertPriceSheet)
	utilityRoutes.GET("/consumption", utilityHandler.ListConsumption)
	utilityRoutes.PUT("/consumption", utilityHandler.UpsertConsumption)

	billingRoutes := router.NewDomainGroup("billing", "/billing")
	billingRoutes.POST("/runs", billingHandler.Run)
	billingRoutes.GET("/records", billingHandler.ListRecords)
	billingRoutes.POST("/records/:id/payments", billingHandler.RecordPayment)
	billingRoutes.GET("/summary", billingHandler.GetSummary)

	r.Register(systemRoutes).
		Register(authRoutes).
		Register(propertyRoutes).
		Register(utilityRoutes).
		Register(billingRoutes)

	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler reports liveness plus database reachability
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
