package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	billingapp "github.com/condo/backend/internal/application/billing"
	residenceapp "github.com/condo/backend/internal/application/residence"
	utilityapp "github.com/condo/backend/internal/application/utility"
	"github.com/condo/backend/internal/infrastructure/config"
	"github.com/condo/backend/internal/infrastructure/logger"
	"github.com/condo/backend/internal/infrastructure/notification"
	"github.com/condo/backend/internal/infrastructure/persistence"
	"github.com/condo/backend/internal/interfaces/http/handler"
	"github.com/condo/backend/internal/interfaces/http/middleware"
	"github.com/condo/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Condo Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	utilityRepo := persistence.NewGormCommunalUtilityRepository(db.DB)
	methodRepo := persistence.NewGormCalculationMethodRepository(db.DB)
	apartmentRepo := persistence.NewGormApartmentRepository(db.DB)
	managerRepo := persistence.NewGormManagerRepository(db.DB)
	apartmentSubBillRepo := persistence.NewGormApartmentSubBillRepository(db.DB)
	managerSubBillRepo := persistence.NewGormManagerSubBillRepository(db.DB)
	apartmentOpRepo := persistence.NewGormApartmentOperationRepository(db.DB)
	spendingOpRepo := persistence.NewGormManagerSpendingOperationRepository(db.DB)
	debtOpRepo := persistence.NewGormDebtPaymentOperationRepository(db.DB)

	// Transaction scopes per bounded context
	billingScope := persistence.NewGormBillingTransactionScope(db.DB)
	utilityScope := persistence.NewGormUtilityTransactionScope(db.DB)

	// Initialize application services
	managerLedger := billingapp.NewManagerSubBillService(
		billingScope, managerSubBillRepo, spendingOpRepo, debtOpRepo, managerRepo,
	)
	settlement := billingapp.NewDebtSettlementCoordinator(managerLedger)
	apartmentLedger := billingapp.NewApartmentSubBillService(
		billingScope, apartmentSubBillRepo, apartmentOpRepo, debtOpRepo,
		apartmentRepo, utilityRepo, settlement,
	)
	provisioner := billingapp.NewSubBillProvisioningService(apartmentLedger, managerLedger)

	notifier := notification.NewSMTPNotifier(cfg.SMTP, apartmentRepo, log)

	utilityService := utilityapp.NewCommunalUtilityService(
		utilityScope, utilityRepo, methodRepo, provisioner, notifier, log,
	)
	apartmentService := residenceapp.NewApartmentService(apartmentRepo, managerRepo, provisioner)

	// Initialize HTTP handlers
	utilityHandler := handler.NewCommunalUtilityHandler(utilityService)
	methodHandler := handler.NewCalculationMethodHandler(utilityService)
	apartmentHandler := handler.NewApartmentHandler(apartmentService, apartmentLedger)
	subBillHandler := handler.NewApartmentSubBillHandler(apartmentLedger)
	managerSubBillHandler := handler.NewManagerSubBillHandler(managerLedger)
	systemHandler := handler.NewSystemHandler()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. Security - Add security headers
	// 5. CORS - Handle cross-origin requests
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db))

	// Setup API routes
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// Utility domain (communal utilities, calculation methods)
	utilityRoutes := router.NewDomainGroup("utility", "/utility")
	utilityRoutes.POST("/utilities", utilityHandler.Create)
	utilityRoutes.GET("/utilities", utilityHandler.List)
	utilityRoutes.GET("/utilities/:id", utilityHandler.GetByID)
	utilityRoutes.PUT("/utilities/:id", utilityHandler.Update)
	utilityRoutes.GET("/utilities/:id/manager-sub-bill", managerSubBillHandler.GetByUtility)

	utilityRoutes.POST("/calculation-methods", methodHandler.Create)
	utilityRoutes.GET("/calculation-methods", methodHandler.List)
	utilityRoutes.GET("/calculation-methods/:id", methodHandler.GetByID)
	utilityRoutes.PUT("/calculation-methods/:id", methodHandler.Update)
	utilityRoutes.DELETE("/calculation-methods/:id", methodHandler.Delete)

	// Residence domain (apartments, manager)
	residenceRoutes := router.NewDomainGroup("residence", "/residence")
	residenceRoutes.POST("/apartments", apartmentHandler.Create)
	residenceRoutes.GET("/apartments", apartmentHandler.List)
	residenceRoutes.GET("/apartments/:id", apartmentHandler.GetByID)
	residenceRoutes.GET("/apartments/:id/sub-bills", apartmentHandler.ListSubBills)
	residenceRoutes.GET("/manager", apartmentHandler.GetManager)

	// Billing domain (sub-bill ledger)
	billingRoutes := router.NewDomainGroup("billing", "/billing")
	billingRoutes.GET("/sub-bills", subBillHandler.List)
	billingRoutes.GET("/sub-bills/:id", subBillHandler.GetByID)
	billingRoutes.POST("/sub-bills/:id/payments", subBillHandler.Pay)
	billingRoutes.POST("/sub-bills/:id/debts", subBillHandler.ChargeDebt)
	billingRoutes.GET("/manager-sub-bills", managerSubBillHandler.List)
	billingRoutes.GET("/manager-sub-bills/:id", managerSubBillHandler.GetByID)
	billingRoutes.POST("/manager-sub-bills/:id/spendings", managerSubBillHandler.Spend)

	// System routes
	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)
	systemRoutes.GET("/ping", systemHandler.Ping)

	r.Register(utilityRoutes).
		Register(residenceRoutes).
		Register(billingRoutes).
		Register(systemRoutes)

	r.Setup()

	// Also keep a simple ping at root API level for basic health checks
	engine.GET("/api/v1/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
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

// healthHandler returns a handler for health check endpoints
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
