package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-provenance-keeper/internal/config"
	"github.com/MKhiriev/go-provenance-keeper/internal/handler"
	"github.com/MKhiriev/go-provenance-keeper/internal/logger"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		grpcSrv, err := newGRPCServer(handlers.GRPC, cfg, logger)
		if err != nil {
			return nil, err
		}
		servers.gRPCServer = grpcSrv
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) RunServer(ctx context.Context) {
	if err := s.run(ctx); err != nil {
		s.logger.Error().Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}
	if s.gRPCServer != nil {
		s.gRPCServer.Shutdown()
	}
}

// run starts every configured transport and blocks until ctx is cancelled,
// a termination signal arrives or one of the listeners fails. Either way
// all transports are shut down before it returns.
func (s *server) run(ctx context.Context) error {
	if s.httpServer == nil && s.gRPCServer == nil {
		return errNoServersToRun
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	failed := make(chan error, 2)
	launch := func(name string, serve func() error) {
		s.logger.Info().Str("transport", name).Msg("launching server")
		go func() {
			if err := serve(); err != nil {
				failed <- err
			}
		}()
	}

	if s.httpServer != nil {
		launch("http", s.httpServer.RunServer)
	}
	if s.gRPCServer != nil {
		launch("grpc", s.gRPCServer.RunServer)
	}

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-failed:
	}

	s.Shutdown()
	s.logger.Info().Msg("server shut down gracefully")

	return runErr
}
