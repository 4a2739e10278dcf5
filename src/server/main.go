package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"user-analytics-service/src/config"
	"user-analytics-service/src/rabbitmq"
	"user-analytics-service/src/repository"
	"user-analytics-service/src/router"
)

// Server represents the HTTP server
type Server struct {
	config          *config.GlobalConfig
	repo            *repository.UserRepository
	publisher       *rabbitmq.AMQPPublisher
	http            *http.Server
	shutdownHandler ShutdownHandlerInterface
}

// NewServer creates a new server instance. The user repository lives for the
// whole process and is shared by every request handler.
func NewServer(cfg *config.GlobalConfig) (*Server, error) {
	server := &Server{
		config: cfg,
		repo:   repository.NewUserRepository(),
	}

	// Event publishing is optional; without a broker URL the service runs
	// standalone and only serves the HTTP API.
	if cfg.RabbitURL != "" {
		publisher, err := rabbitmq.NewAMQPPublisher(cfg.RabbitURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
		}
		server.publisher = publisher
	}

	// Create and assign shutdown handler
	server.shutdownHandler = NewShutdownHandler(server)

	return server, nil
}

// Run starts the server with graceful shutdown using ShutdownHandler
func (s *Server) Run() error {
	osSignals := make(chan os.Signal, 1)
	signal.Notify(osSignals, syscall.SIGINT, syscall.SIGTERM)

	serverDone := s.startServerGoroutine()

	return s.shutdownHandler.HandleShutdown(serverDone, osSignals)
}

// startServerGoroutine starts the HTTP server in a goroutine and returns a channel for errors
func (s *Server) startServerGoroutine() chan error {
	serverDone := make(chan error, 1)

	go func() {
		var publisher rabbitmq.Publisher
		if s.publisher != nil {
			publisher = s.publisher
		}

		r := router.NewRouter(s.repo, publisher)
		httpServer := &http.Server{
			Addr:    fmt.Sprintf("%s:%s", s.config.Host, s.config.Port),
			Handler: r,
		}
		s.http = httpServer

		slog.Info("Starting user analytics service",
			"host", s.config.Host,
			"port", s.config.Port)

		serverDone <- s.startServer()
	}()

	return serverDone
}

// startServer starts the HTTP server and handles errors
func (s *Server) startServer() error {
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
