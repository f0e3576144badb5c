package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/wgomg/ordertrigger/internal/config"
	"github.com/wgomg/ordertrigger/internal/utils"
)

const shutdownTimeout = 5 * time.Second

// Run serves the receiver on the configured port until ctx is done.
func Run(ctx context.Context, cfg *config.Config, logger *utils.Logger, processor Processor) error {
	srv := &http.Server{
		Addr:              net.JoinHostPort("0.0.0.0", cfg.Receiver.Port),
		Handler:           NewRouter(NewHandler(logger, processor)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info(nil, "Starting receiver on %s", srv.Addr)
		logger.Info(nil, "Endpoints:")
		logger.Info(nil, "  GET  /health")
		logger.Info(nil, "  POST /start-orders")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info(nil, "Shutting down receiver")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
