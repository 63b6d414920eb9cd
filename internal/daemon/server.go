package daemon

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	parleyv1 "github.com/matheus3301/parley/gen/parley/v1"
	"github.com/matheus3301/parley/internal/api"
	"github.com/matheus3301/parley/internal/config"
	"github.com/matheus3301/parley/internal/identity"
	"github.com/matheus3301/parley/internal/metrics"
)

// Server manages the gRPC server lifecycle for the daemon.
type Server struct {
	grpcServer *grpc.Server
	listeners  []net.Listener
	socketPath string
	logger     *zap.Logger
}

// NewServer creates a gRPC server bound to the instance's Unix domain socket
// and, when configured, to a TCP address.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	svc *api.MessagingService,
	resolver identity.Resolver,
	m *metrics.Metrics,
) (*Server, error) {
	socketPath := cfg.SocketPath()
	if err := os.MkdirAll(filepath.Dir(socketPath), 0700); err != nil {
		return nil, fmt.Errorf("create socket dir: %w", err)
	}

	// Clean stale socket if it exists.
	if _, err := os.Stat(socketPath); err == nil {
		_ = os.Remove(socketPath)
	}

	unixListener, err := net.Listen("unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("listen unix socket: %w", err)
	}

	// Set socket permissions to 0600.
	if err := os.Chmod(socketPath, 0600); err != nil {
		_ = unixListener.Close()
		return nil, fmt.Errorf("chmod socket: %w", err)
	}
	listeners := []net.Listener{unixListener}

	if addr := cfg.Server.ListenAddr; addr != "" {
		tcpListener, err := net.Listen("tcp", addr)
		if err != nil {
			_ = unixListener.Close()
			return nil, fmt.Errorf("listen %s: %w", addr, err)
		}
		listeners = append(listeners, tcpListener)
	}

	srv := grpc.NewServer(
		grpc.MaxRecvMsgSize(cfg.MessageLimit()),
		grpc.ChainUnaryInterceptor(api.UnaryObserve(m, logger), api.UnaryAuth(resolver)),
		grpc.ChainStreamInterceptor(api.StreamObserve(m, logger), api.StreamAuth(resolver)),
	)
	parleyv1.RegisterMessagingServer(srv, svc)

	return &Server{
		grpcServer: srv,
		listeners:  listeners,
		socketPath: socketPath,
		logger:     logger,
	}, nil
}

// Start serves every listener in the background.
func (s *Server) Start() {
	for _, l := range s.listeners {
		l := l
		s.logger.Info("gRPC server starting", zap.String("network", l.Addr().Network()), zap.String("addr", l.Addr().String()))
		go func() {
			if err := s.grpcServer.Serve(l); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
				s.logger.Error("gRPC server error", zap.Error(err))
			}
		}()
	}
}

// Stop performs a graceful shutdown bounded by ctx and removes the socket
// file. Session streams never end on their own, so an expired ctx forces
// the remaining connections closed.
func (s *Server) Stop(ctx context.Context) {
	s.logger.Info("gRPC server stopping")
	done := make(chan struct{})
	go func() {
		s.grpcServer.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		s.grpcServer.Stop()
		<-done
	}
	_ = os.Remove(s.socketPath)
}
