package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ecommax/weavekit/v1/logger"
	"github.com/ecommax/weavekit/v1/metrics"
)

// Server wraps the gin engine and its http.Server.
type Server struct {
	Engine *gin.Engine
	server *http.Server
	log    *logger.Logger
}

// NewServer builds the gin engine, installs middleware and routes, and
// returns a server ready to Run.
func NewServer(cfg *Config, handler *Handler, log *logger.Logger, m *metrics.Metrics) *Server {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if log == nil {
		log = logger.NewNop()
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type"}
	engine.Use(cors.New(corsConfig))

	engine.Use(requestLogger(log))
	if m != nil {
		engine.Use(requestMetrics(m))
	}

	registerRoutes(engine, handler)

	return &Server{
		Engine: engine,
		server: &http.Server{
			Addr:    cfg.Address,
			Handler: engine,
		},
		log: log,
	}
}

func registerRoutes(engine *gin.Engine, h *Handler) {
	engine.GET("/health", h.Health)
	engine.GET("/status", h.Status)

	engine.POST("/products", h.CreateProducts)
	engine.POST("/products/sample", h.SeedSampleProducts)

	search := engine.Group("/search")
	search.POST("/hybrid", h.SearchHybrid)
	search.POST("/vector", h.SearchVector)
	search.POST("/keyword", h.SearchKeyword)
	search.POST("/rag", h.SearchRAG)
}

// Run starts serving and blocks until the listener fails or the server is
// shut down.
func (s *Server) Run() error {
	s.log.Info("starting HTTP API server", nil, map[string]interface{}{
		"address": s.server.Addr,
	})
	return s.server.ListenAndServe()
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("shutting down HTTP API server", nil, nil)
	return s.server.Shutdown(ctx)
}

// requestLogger logs each request with its latency and status.
func requestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("http request", nil, map[string]interface{}{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		})
	}
}

// requestMetrics feeds the request counter and latency histogram.
func requestMetrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := "success"
		if c.Writer.Status() >= http.StatusBadRequest {
			status = "error"
		}
		m.IncrementRequests(path, status)
		m.RecordRequestDuration(start, path)
	}
}
