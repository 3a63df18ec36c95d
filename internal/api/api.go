package api

import (
	"fmt"
	"strings"
	"time"

	api_utils "github.com/ethanbaker/api/pkg/utils"
	"github.com/ethanbaker/notion-records/internal/events"
	"github.com/ethanbaker/notion-records/internal/records"
	"github.com/ethanbaker/notion-records/internal/stores/audit"
	"github.com/ethanbaker/notion-records/pkg/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/ethanbaker/notion-records/internal/api/docs"
	health_module "github.com/ethanbaker/notion-records/internal/api/modules/health"
	records_module "github.com/ethanbaker/notion-records/internal/api/modules/records"
)

// Dependencies are the services the API modules are built on
type Dependencies struct {
	Accessor *records.Accessor
	Audit    audit.Store
	Events   events.Publisher
	Monitor  *health_module.Monitor
	Logger   zerolog.Logger
}

// NewEngine builds the gin engine with every module registered
func NewEngine(cfg *utils.Config, deps Dependencies) *gin.Engine {
	// Add app level settings/routes
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger(deps.Logger))
	engine.NoRoute(api_utils.NoRouteHandler)

	// Add trusted proxies
	engine.SetTrustedProxies(nil)

	// Add CORS using gin-contrib/cors (https://github.com/gin-contrib/cors for documentation)
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.GetWithDefault("CORS_ALLOWED_ORIGINS", "*"), ","),
		AllowMethods:     []string{"OPTIONS", "GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// API documentation
	engine.GET("/api-docs/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL("/api-docs/doc.json"))))

	// Base group '/api' for all API routes
	baseGroup := engine.Group("/api")

	// Adding custom modules
	health_module.RegisterRoutes(baseGroup, deps.Monitor)

	controller := records_module.NewController(deps.Accessor, deps.Audit, deps.Events, deps.Logger)
	records_module.RegisterRoutes(baseGroup, controller)

	return engine
}

// Start runs the API server until it fails
func Start(cfg *utils.Config, deps Dependencies) error {
	port := cfg.GetWithDefault("API_PORT", "3000")

	engine := NewEngine(cfg, deps)

	deps.Logger.Info().Str("port", port).Msg("records API listening")
	if err := engine.Run(":" + port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

// requestLogger logs one line per handled request
func requestLogger(logger zerolog.Logger) gin.HandlerFunc {
	logger = logger.With().Str("module", "api").Logger()

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		event := logger.Info()
		if c.Writer.Status() >= 500 {
			event = logger.Error()
		}
		event.
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request handled")
	}
}
