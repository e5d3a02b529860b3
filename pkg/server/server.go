// Package server provides the HTTP surface of the event assistant. It is
// thin plumbing over the answer pipeline; sessions and acknowledgements
// are the caller's concern.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fairgate/eventrag"
	"github.com/fairgate/eventrag/pkg/config"
	"github.com/fairgate/eventrag/pkg/server/handlers"
)

// Server represents the HTTP server.
type Server struct {
	config    *config.Config
	router    *gin.Engine
	assistant *eventrag.Assistant
	logger    *slog.Logger
	server    *http.Server
}

// New creates a new server instance.
func New(cfg *config.Config, assistant *eventrag.Assistant, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		config:    cfg,
		assistant: assistant,
		logger:    logger,
	}
}

// Setup sets up the server routes and middleware.
func (s *Server) Setup() {
	gin.SetMode(s.config.Server.Mode)

	s.router = gin.New()
	s.router.Use(gin.Logger())
	s.router.Use(gin.Recovery())
	s.router.Use(corsMiddleware())

	s.setupRoutes()

	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.router,
	}
}

func (s *Server) setupRoutes() {
	kb := s.assistant.Knowledge()

	healthHandler := handlers.NewHealthHandler(kb)
	chatHandler := handlers.NewChatHandler(s.assistant)
	knowledgeHandler := handlers.NewKnowledgeHandler(kb)

	s.router.GET("/health", healthHandler.HealthCheck)
	s.router.GET("/ready", healthHandler.ReadinessCheck)

	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/chat", chatHandler.Chat)
		v1.POST("/knowledge", knowledgeHandler.AddFact)
		v1.GET("/events/search", knowledgeHandler.SearchEvents)
		v1.GET("/events/:key", knowledgeHandler.EventSummary)
		v1.GET("/side-events", knowledgeHandler.SideEvents)
	}
}

// Start starts the server.
func (s *Server) Start() error {
	s.logger.Info("starting server", "addr", s.server.Addr)
	return s.server.ListenAndServe()
}

// Stop stops the server gracefully.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("stopping server")
	return s.server.Shutdown(ctx)
}

// corsMiddleware adds CORS headers.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Header("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
