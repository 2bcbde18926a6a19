package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hostelops/backend/internal/application/accounts"
	billingapp "github.com/hostelops/backend/internal/application/billing"
	propertyapp "github.com/hostelops/backend/internal/application/property"
	tenancyapp "github.com/hostelops/backend/internal/application/tenancy"
	"github.com/hostelops/backend/internal/infrastructure/auth"
	"github.com/hostelops/backend/internal/infrastructure/cache"
	"github.com/hostelops/backend/internal/infrastructure/config"
	"github.com/hostelops/backend/internal/infrastructure/logger"
	"github.com/hostelops/backend/internal/infrastructure/persistence"
	"github.com/hostelops/backend/internal/interfaces/http/handler"
	"github.com/hostelops/backend/internal/interfaces/http/middleware"
	"github.com/hostelops/backend/internal/interfaces/http/router"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

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

	log.Info("Starting Hostel Ops Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

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
	log.Info("Database connected")

	// Falls back to an in-process cache when Redis is unreachable
	reportCache := cache.NewReportCache(cfg.Redis, log)

	// Repositories
	hostelRepo := persistence.NewGormHostelRepository(db.DB)
	vendorRepo := persistence.NewGormVendorRepository(db.DB)
	tenantRepo := persistence.NewGormTenantRepository(db.DB)
	employeeRepo := persistence.NewGormEmployeeRepository(db.DB)
	bookingRepo := persistence.NewGormBookingRepository(db.DB)
	paymentRepo := persistence.NewGormPaymentRepository(db.DB)
	expenseRepo := persistence.NewGormExpenseRepository(db.DB)
	alertRepo := persistence.NewGormAlertRepository(db.DB)
	campaignRepo := persistence.NewGormCampaignRepository(db.DB)

	// Application services
	jwtService := auth.NewJWTService(cfg.JWT)
	hostelService := propertyapp.NewHostelService(hostelRepo)
	vendorService := propertyapp.NewVendorService(vendorRepo, hostelRepo, reportCache)
	tenantService := tenancyapp.NewTenantService(tenantRepo)
	employeeService := tenancyapp.NewEmployeeService(employeeRepo, jwtService)
	bookingService := tenancyapp.NewBookingService(bookingRepo, tenantRepo)
	paymentService := billingapp.NewPaymentService(paymentRepo, tenantRepo, reportCache, log)
	expenseService := billingapp.NewExpenseService(expenseRepo, vendorRepo, reportCache)
	alertService := billingapp.NewAlertService(alertRepo)
	campaignService := billingapp.NewCampaignService(campaignRepo, tenantRepo)

	reportService := accounts.NewFinancialReportService(
		paymentRepo, expenseRepo, alertRepo, vendorRepo, tenantRepo, reportCache, log,
	)
	reportService.SetCacheTTL(cfg.Report.CacheTTL)
	dashboardService := accounts.NewDashboardService(
		hostelRepo, tenantRepo, bookingRepo, paymentRepo, expenseRepo, alertRepo, log,
	)
	dashboardService.SetTrendMonths(cfg.Report.TrendMonths)

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

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))
	jwtCfg := middleware.DefaultJWTConfig(jwtService)
	jwtCfg.Logger = log
	engine.Use(middleware.JWTAuthMiddlewareWithConfig(jwtCfg))

	systemHandler := handler.NewSystemHandler(db, cfg.App.Name, version)
	engine.GET("/health", systemHandler.Health)

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(
		systemHandler,
		handler.NewAuthHandler(employeeService),
		handler.NewHostelHandler(hostelService),
		handler.NewVendorHandler(vendorService),
		handler.NewTenantHandler(tenantService),
		handler.NewEmployeeHandler(employeeService),
		handler.NewBookingHandler(bookingService),
		handler.NewPaymentHandler(paymentService),
		handler.NewExpenseHandler(expenseService),
		handler.NewAlertHandler(alertService),
		handler.NewCampaignHandler(campaignService),
		handler.NewReportHandler(reportService, dashboardService),
	)
	r.Setup()

	server := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("HTTP server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}

	log.Info("Server stopped")
}
