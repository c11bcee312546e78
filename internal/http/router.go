package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "scratchcard-backend/docs"
	"scratchcard-backend/internal/common/config"
	"scratchcard-backend/internal/common/metrics"
	"scratchcard-backend/internal/common/middleware"
	adminhttp "scratchcard-backend/internal/features/admin/delivery/http"
	adminservice "scratchcard-backend/internal/features/admin/service"
	offerhttp "scratchcard-backend/internal/features/offer/delivery/http"
	offerservice "scratchcard-backend/internal/features/offer/service"
	playhttp "scratchcard-backend/internal/features/playcounter/delivery/http"
	playservice "scratchcard-backend/internal/features/playcounter/service"
)

const serviceName = "scratchcard-backend"

// Pinger reports whether the state store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps are the components the router exposes.
type Deps struct {
	Config  *config.Config
	Catalog offerservice.CatalogService
	Plays   playservice.PlayCounterService
	Admin   adminservice.AdminService
	Store   Pinger
	Metrics *metrics.Recorder
}

// NewRouter builds the gin engine with middleware, API routes and probes.
func NewRouter(d Deps) *gin.Engine {
	cfg := d.Config

	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(d.Metrics))
	router.Use(middleware.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.Origin}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization", "Accept", middleware.InitDataHeader, middleware.RequestIDHeader}
	router.Use(cors.New(corsConfig))

	offers := offerhttp.NewOfferHandler(d.Catalog)
	plays := playhttp.NewPlayCounterHandler(d.Plays)
	admin := adminhttp.NewAdminHandler(d.Admin, middleware.RequireAdmin(middleware.AdminAuth{
		Token:       cfg.Admin.Token,
		BotToken:    cfg.Admin.BotToken,
		AdminIDs:    cfg.Admin.AdminIDs,
		InitDataTTL: cfg.Admin.InitDataTTL,
	}))

	v1 := router.Group("/api/v1")
	offers.RegisterRoutes(v1)
	plays.RegisterRoutes(v1)
	admin.RegisterRoutes(v1)

	if cfg.Server.LegacyRoutes {
		offers.RegisterLegacyRoutes(router)
		plays.RegisterLegacyRoutes(router)
		admin.RegisterLegacyRoutes(router)
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if cfg.Metrics.Enabled {
		router.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}
	registerProbes(router, d.Store)

	if cfg.Server.StaticDir != "" {
		router.NoRoute(gin.WrapH(http.FileServer(http.Dir(cfg.Server.StaticDir))))
	}

	return router
}

func registerProbes(router *gin.Engine, store Pinger) {
	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC(),
			"service":   serviceName,
		})
	})

	// Liveness probe
	router.GET("/live", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	// Readiness probe
	router.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := store.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unready",
				"error":   "state store unavailable",
				"details": err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "ready",
			"timestamp": time.Now().UTC(),
			"service":   serviceName,
		})
	})
}
