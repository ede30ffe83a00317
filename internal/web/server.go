package web

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mira-care/mira-agent/internal/cache"
	"github.com/mira-care/mira-agent/internal/chat"
	"github.com/mira-care/mira-agent/internal/config"
)

// Server hosts the HTTP surface of the agent.
type Server struct {
	addr string

	httpServer   *http.Server
	httpListener net.Listener
}

// New creates the web server and wires all routes. Does not start
// listening - call Start() for that.
func New(cfg config.ServerConfig, mediator *chat.Mediator, contacts chat.ContactDirectory, transcript *cache.Transcript) *Server {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/api/health", HealthHandler)
	router.POST("/api/mira_chat", ChatHandler(mediator))

	debug := router.Group("/_debug")
	{
		debug.GET("/contact/:user_id", ContactDebugHandler(contacts))
		debug.GET("/transcript/:user_id", TranscriptDebugHandler(transcript))
	}

	return &Server{
		addr: cfg.Addr,
		httpServer: &http.Server{
			Addr:    cfg.Addr,
			Handler: router,
		},
	}
}

// Start begins listening. Non-blocking: the serve loop runs in a
// goroutine and Stop() shuts it down.
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("HTTP listen: %w", err)
	}
	s.httpListener = listener

	// Keep the resolved address (matters for ephemeral ports)
	s.addr = listener.Addr().String()

	go func() {
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			_ = err // server already started; nothing useful to do
		}
	}()

	return nil
}

// Stop performs graceful shutdown bounded by the context.
func (s *Server) Stop(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("HTTP shutdown: %w", err)
	}
	return nil
}

// Addr returns the HTTP listen address.
func (s *Server) Addr() string {
	return s.addr
}
