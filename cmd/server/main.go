package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	catalogapp "github.com/mobiledger/backend/internal/application/catalog"
	identityapp "github.com/mobiledger/backend/internal/application/identity"
	ledgerapp "github.com/mobiledger/backend/internal/application/ledger"
	partnerapp "github.com/mobiledger/backend/internal/application/partner"
	paymentapp "github.com/mobiledger/backend/internal/application/payment"
	reportapp "github.com/mobiledger/backend/internal/application/report"
	tradeapp "github.com/mobiledger/backend/internal/application/trade"
	"github.com/mobiledger/backend/internal/infrastructure/auth"
	"github.com/mobiledger/backend/internal/infrastructure/cache"
	"github.com/mobiledger/backend/internal/infrastructure/config"
	"github.com/mobiledger/backend/internal/infrastructure/event"
	"github.com/mobiledger/backend/internal/infrastructure/logger"
	"github.com/mobiledger/backend/internal/infrastructure/persistence"
	"github.com/mobiledger/backend/internal/interfaces/http/handler"
	"github.com/mobiledger/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting server",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port))

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() { _ = db.Close() }()

	// The report cache is optional: without Redis reports fall back to
	// live queries.
	var profitCache reportapp.ProfitSummaryCache
	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Warn("redis unavailable, profit summary cache disabled", zap.Error(err))
	} else {
		defer func() { _ = redisClient.Close() }()
		profitCache = cache.NewRedisProfitSummaryCache(redisClient, cfg.Cache.ProfitSummaryTTL)
	}

	eventBus := event.NewInMemoryEventBus(log)
	if err := eventBus.Start(context.Background()); err != nil {
		log.Fatal("failed to start event bus", zap.Error(err))
	}

	// Repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	brandRepo := persistence.NewGormBrandRepository(db.DB)
	modelRepo := persistence.NewGormModelRepository(db.DB)
	shopRepo := persistence.NewGormShopRepository(db.DB)
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)
	deviceRepo := persistence.NewGormDeviceRepository(db.DB)
	purchaseRepo := persistence.NewGormPurchaseRecordRepository(db.DB)
	saleRepo := persistence.NewGormSaleRecordRepository(db.DB)
	incentiveRepo := persistence.NewGormIncentiveRepository(db.DB)
	paymentRepo := persistence.NewGormPaymentRepository(db.DB)
	reportRepo := persistence.NewGormReportRepository(db.DB)
	txManager := persistence.NewGormTransactionManager(db.DB)

	// Services
	jwtService := auth.NewJWTService(cfg.JWT)
	hasher := auth.NewPasswordHasher()
	authService := identityapp.NewAuthService(userRepo, jwtService, hasher, log)
	brandService := catalogapp.NewBrandService(brandRepo, modelRepo)
	modelService := catalogapp.NewModelService(modelRepo, brandRepo)
	shopService := partnerapp.NewShopService(shopRepo, saleRepo)
	supplierService := partnerapp.NewSupplierService(supplierRepo, purchaseRepo)
	purchaseService := tradeapp.NewPurchaseService(purchaseRepo, deviceRepo, txManager)
	purchaseService.SetEventBus(eventBus)
	saleService := tradeapp.NewSaleService(saleRepo, deviceRepo, shopRepo, txManager)
	saleService.SetEventBus(eventBus)
	incentiveService := tradeapp.NewIncentiveService(incentiveRepo)
	paymentService := paymentapp.NewPaymentService(paymentRepo, saleRepo, purchaseRepo, txManager)
	deviceService := ledgerapp.NewDeviceService(deviceRepo, saleRepo)
	reportService := reportapp.NewReportService(reportRepo, profitCache, log)

	eventBus.Subscribe(reportapp.NewCacheInvalidator(reportService))

	// HTTP
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	router.Setup(engine, log, jwtService, router.Handlers{
		System:    handler.NewSystemHandler(db),
		Auth:      handler.NewAuthHandler(authService),
		Catalog:   handler.NewCatalogHandler(brandService, modelService),
		Partner:   handler.NewPartnerHandler(shopService, supplierService),
		Trade:     handler.NewTradeHandler(purchaseService, saleService),
		Payment:   handler.NewPaymentHandler(paymentService),
		Incentive: handler.NewIncentiveHandler(incentiveService),
		Device:    handler.NewDeviceHandler(deviceService),
		Report:    handler.NewReportHandler(reportService),
	}, router.Config{
		CORSAllowOrigins: cfg.HTTP.CORSAllowOrigins,
	})

	server := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
	}
	if err := eventBus.Stop(ctx); err != nil {
		log.Error("event bus stop failed", zap.Error(err))
	}
	log.Info("stopped")
}
