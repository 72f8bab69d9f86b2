package server

import (
	"context"
	"net/http"
	"time"

	"tunahub/database"
	"tunahub/internal/config"
	"tunahub/internal/microservices/http-api/handler"
	"tunahub/internal/microservices/http-api/middleware"
	"tunahub/internal/microservices/http-api/repository"
	"tunahub/internal/microservices/http-api/service"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Server wires the catalog handlers onto a gin engine.
type Server struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *gorm.DB
	router *gin.Engine
}

func New(cfg *config.Config, logger *zap.Logger, db *gorm.DB) *Server {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	router.Use(ginzap.RecoveryWithZap(logger, true))
	router.Use(cors.New(corsConfig(cfg.CORSOrigins)))

	s := &Server{cfg: cfg, logger: logger, db: db, router: router}

	if cfg.PrometheusEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		router.Use(middleware.NewMetrics(reg).Handler())
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	}

	s.registerRoutes()
	return s
}

// corsConfig allows the configured front-end origins; no origins or "*"
// opens the API to every origin.
func corsConfig(origins []string) cors.Config {
	cc := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cc.AllowAllOrigins = true
	} else {
		cc.AllowOrigins = origins
	}
	return cc
}

func (s *Server) registerRoutes() {
	s.router.GET("/check-conn", s.checkConn)

	api := s.router.Group("")
	api.Use(middleware.Timeout(s.cfg.RequestTimeout))

	artistRepo := repository.NewArtistRepo(s.db)
	songRepo := repository.NewSongRepo(s.db)
	genreRepo := repository.NewGenreRepo(s.db)
	songGenreRepo := repository.NewSongGenreRepo(s.db)

	handler.NewArtistHandler(service.NewArtistService(artistRepo)).
		RegisterRoutes(api.Group("/artists"))
	handler.NewSongHandler(service.NewSongService(songRepo, artistRepo)).
		RegisterRoutes(api.Group("/songs"))
	handler.NewGenreHandler(service.NewGenreService(genreRepo)).
		RegisterRoutes(api.Group("/genres"))
	handler.NewSongGenreHandler(service.NewSongGenreService(songGenreRepo, songRepo, genreRepo)).
		RegisterRoutes(api.Group("/songgenres"))
}

func (s *Server) checkConn(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := database.Ping(ctx, s.db); err != nil {
		s.logger.Warn("database ping failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "database unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "API is alive and database connected"})
}

// Router returns the gin engine, mostly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// HTTPServer builds the net/http server bound to the configured port.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:              s.cfg.HTTPAddr(),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
}
