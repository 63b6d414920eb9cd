package daemon

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/matheus3301/parley/internal/config"
	"github.com/matheus3301/parley/internal/metrics"
)

// MetricsServer serves /metrics and /healthz over HTTP.
type MetricsServer struct {
	srv      *http.Server
	listener net.Listener
	logger   *zap.Logger
}

// NewMetricsServer listens on cfg.Metrics.ListenAddr. It returns nil when no
// address is configured.
func NewMetricsServer(cfg *config.Config, m *metrics.Metrics, logger *zap.Logger) (*MetricsServer, error) {
	addr := cfg.Metrics.ListenAddr
	if addr == "" {
		return nil, nil
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen metrics %s: %w", addr, err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return &MetricsServer{
		srv: &http.Server{
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       90 * time.Second,
		},
		listener: ln,
		logger:   logger,
	}, nil
}

// Addr returns the bound address.
func (s *MetricsServer) Addr() net.Addr {
	return s.listener.Addr()
}

// Start serves in the background. Safe to call on nil receiver.
func (s *MetricsServer) Start() {
	if s == nil {
		return
	}
	s.logger.Info("metrics server starting", zap.String("addr", s.listener.Addr().String()))
	go func() {
		if err := s.srv.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("metrics server error", zap.Error(err))
		}
	}()
}

// Stop shuts the server down. Safe to call on nil receiver.
func (s *MetricsServer) Stop(ctx context.Context) error {
	if s == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}
