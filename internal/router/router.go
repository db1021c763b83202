package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/aleviannaf/laboratory-app/config"
	"github.com/aleviannaf/laboratory-app/internal/handler"
	"github.com/aleviannaf/laboratory-app/internal/middleware"
)

type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

type Router struct {
	engine *gin.Engine
}

// NewRouter assembles the HTTP surface: middleware chain, health and
// metrics endpoints, then every domain handler under /api/v1.
func NewRouter(cfg *config.Config, handlers ...Handler) *Router {
	gin.SetMode(gin.ReleaseMode)
	middleware.RegisterValidators()
	engine := gin.New()

	engine.Use(middleware.RequestID())
	engine.Use(middleware.Logger())
	engine.Use(middleware.Recovery())
	if cfg.RateLimit.Enabled {
		engine.Use(middleware.RateLimit(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst))
	}

	engine.GET("/health", handler.Health)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := engine.Group("/api/v1")
	for _, h := range handlers {
		h.RegisterRoutes(api)
	}

	return &Router{engine: engine}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
