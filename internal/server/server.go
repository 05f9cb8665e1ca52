package server

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/dashboard-server/internal/config"
	"github.com/MKhiriev/dashboard-server/internal/logger"
	"github.com/MKhiriev/dashboard-server/internal/workers"
)

type server struct {
	httpServer *httpServer
	background *workers.Workers
	logger     *logger.Logger
}

// NewServer creates the HTTP server. The background workers run for as long
// as the server does and are stopped before Run returns.
func NewServer(router http.Handler, cfg config.Server, logger *logger.Logger, background ...workers.Worker) (Server, error) {
	logger.Info().Msg("creating new server...")

	if router == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(router, cfg, logger),
		background: workers.NewWorkers(background...),
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.Run(ctx); err != nil {
		s.logger.Error().Err(err).Msg("error running server")
	}
}

func (s *server) Run(ctx context.Context) error {
	workersCtx, stopWorkers := context.WithCancel(ctx)
	workersDone := make(chan struct{})
	go func() {
		s.background.Run(workersCtx)
		close(workersDone)
	}()
	defer func() {
		stopWorkers()
		<-workersDone
	}()

	serveErr := make(chan error, 1)

	s.logger.Info().Int("background_workers", s.background.Len()).Msg("Launching HTTP server")
	go func() {
		serveErr <- s.httpServer.RunServer()
	}()

	select {
	case err := <-serveErr:
		// the listener failed before any stop was requested
		return err
	case <-ctx.Done():
	}

	s.Shutdown()
	err := <-serveErr
	s.logger.Info().Msg("server Shutdown gracefully")

	return err
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}
