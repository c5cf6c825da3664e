// Package server exposes the processing pipeline and coaching analyses over
// HTTP for the web frontend.
package server

import (
	"fmt"
	"strings"
	"time"

	"fincoach/internal/advisor"
	"fincoach/internal/config"
	"fincoach/internal/logging"
	"fincoach/internal/processor"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Server wires the document processor and advisor behind a gin router.
type Server struct {
	cfg     *config.Config
	proc    *processor.Processor
	advisor *advisor.Advisor
	logger  logging.Logger
	engine  *gin.Engine
}

// New builds a Server with all middleware and routes registered.
func New(cfg *config.Config, proc *processor.Processor, adv *advisor.Advisor, logger logging.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		cfg:     cfg,
		proc:    proc,
		advisor: adv,
		logger:  logger,
		engine:  gin.New(),
	}

	s.engine.Use(gin.Recovery())
	s.engine.Use(requestID())
	s.engine.Use(requestLogger(logger))
	s.engine.Use(cors.New(corsConfig(cfg)))
	s.engine.MaxMultipartMemory = int64(cfg.Server.MaxUploadMB) << 20

	api := s.engine.Group("/api")
	api.GET("/health", s.handleHealth)
	api.GET("/sample", s.handleSample)
	api.POST("/documents", s.handleDocuments)
	api.POST("/analyze", s.handleAnalyze)

	return s
}

// Router returns the underlying engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.engine
}

// Run starts the HTTP listener and blocks until it fails.
func (s *Server) Run() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Server.Host, s.cfg.Server.Port)
	s.logger.Info("Starting HTTP server", logging.Field{Key: "addr", Value: addr})
	return s.engine.Run(addr)
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	origins := strings.TrimSpace(cfg.Server.AllowedOrigins)
	if origins == "" || origins == "*" {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = strings.Split(origins, ",")
		c.AllowCredentials = true
	}
	return c
}
