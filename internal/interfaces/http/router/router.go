package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mobiledger/backend/internal/infrastructure/auth"
	"github.com/mobiledger/backend/internal/infrastructure/logger"
	"github.com/mobiledger/backend/internal/interfaces/http/handler"
	"github.com/mobiledger/backend/internal/interfaces/http/middleware"
)

// Handlers groups every route registrar the API exposes
type Handlers struct {
	System    *handler.SystemHandler
	Auth      *handler.AuthHandler
	Catalog   *handler.CatalogHandler
	Partner   *handler.PartnerHandler
	Trade     *handler.TradeHandler
	Payment   *handler.PaymentHandler
	Incentive *handler.IncentiveHandler
	Device    *handler.DeviceHandler
	Report    *handler.ReportHandler
}

// Config carries router-level settings
type Config struct {
	CORSAllowOrigins []string
}

// Setup wires middleware and routes onto a gin engine. Auth and health
// endpoints stay open; everything else sits behind JWT tenant scoping.
func Setup(engine *gin.Engine, log *zap.Logger, jwtService *auth.JWTService, handlers Handlers, cfg Config) {
	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log))

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowOrigins = cfg.CORSAllowOrigins
	engine.Use(middleware.CORSWithConfig(corsCfg))

	api := engine.Group("/api/v1")
	handlers.System.RegisterRoutes(api)
	handlers.Auth.RegisterRoutes(api)

	protected := api.Group("")
	protected.Use(middleware.JWTAuth(jwtService))
	handlers.Catalog.RegisterRoutes(protected)
	handlers.Partner.RegisterRoutes(protected)
	handlers.Trade.RegisterRoutes(protected)
	handlers.Payment.RegisterRoutes(protected)
	handlers.Incentive.RegisterRoutes(protected)
	handlers.Device.RegisterRoutes(protected)
	handlers.Report.RegisterRoutes(protected)
}
