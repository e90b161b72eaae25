package ui

import (
	"github.com/gin-gonic/gin"

	"statwizard/app"
	"statwizard/internal/logging"
)

// Server exposes the selector service over HTTP. Route shape mirrors the
// interactive wizard client: a configuration fetch, a resolve/reset pair and
// a liveness probe.
type Server struct {
	router  *gin.Engine
	service *app.SelectorService
	log     *logging.Logger
}

// NewServer creates the web server and registers its routes.
func NewServer(service *app.SelectorService, log *logging.Logger) *Server {
	s := &Server{
		router:  gin.Default(),
		service: service,
		log:     log,
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	s.router.GET("/api/health", s.handleHealth)
	s.router.GET("/api/tree", s.handleTree)
	s.router.POST("/api/reset", s.handleReset)
	s.router.POST("/api/resolve", s.handleResolve)
}

// Router returns the underlying handler, used by tests and by hosts that
// mount the API under their own server.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start starts the web server
func (s *Server) Start(addr string) error {
	s.log.Info("starting test-selector API on http://%s", addr)
	return s.router.Run(addr)
}
