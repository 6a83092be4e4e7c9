package bootstrap

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/edulab/coursecatalog/internal/app/controllers"
	appRepos "github.com/edulab/coursecatalog/internal/app/repositories"
	appRoutes "github.com/edulab/coursecatalog/internal/app/routes"
	appServices "github.com/edulab/coursecatalog/internal/app/services"
	"github.com/edulab/coursecatalog/internal/config"
	appMiddleware "github.com/edulab/coursecatalog/internal/middleware"
	"github.com/edulab/coursecatalog/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	CatalogRepository *appRepos.CatalogRepository
	CatalogService    *appServices.CatalogService
	CatalogController *appControllers.CatalogController
	Tracer            *appMiddleware.Tracer
	Metrics           *appMiddleware.Metrics
	Registry          *prometheus.Registry
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// BuildDependencies initializes the repository, service, controller and
// middleware graph.
func BuildDependencies(cfg *config.Config, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.CatalogRepository = appRepos.NewCatalogRepository(cfg.Catalog.File)
	deps.CatalogService = appServices.NewCatalogService(deps.CatalogRepository)
	deps.CatalogController = appControllers.NewCatalogController(deps.CatalogService)

	deps.Tracer = appMiddleware.NewTracer(lgr)

	if cfg.Metrics.Enabled {
		deps.Registry = prometheus.NewRegistry()
		deps.Metrics = appMiddleware.NewMetrics(deps.Registry)
	}

	lgr.Info().Str("catalogFile", cfg.Catalog.File).Msg("Catalog storage configured")
	return deps
}

// SetupRouter configures the Gin engine with templates, middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())

	if deps.Metrics != nil {
		router.Use(deps.Metrics.Middleware())
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))
	}

	router.LoadHTMLGlob(cfg.Catalog.Templates)

	appRoutes.SetupRouter(router, deps.CatalogController, deps.Tracer)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
