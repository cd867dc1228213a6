package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/paulkoehlerdev/VenueMap/pkg/libraries/metrics"
	"github.com/paulkoehlerdev/VenueMap/pkg/venuemap/application"
)

const shutdownTimeout = 10 * time.Second

// NewHandler wires every route. Open sessions end once ctx is done; wait
// blocks until all of them have returned.
func NewHandler(ctx context.Context, app application.Application, logger *slog.Logger) (handler http.Handler, wait func()) {
	mux := http.NewServeMux()
	sessions := newSessionRoute(ctx, app, logger)

	StaticPageRoute(mux)
	ClientConfigRoute(mux, app)
	MapStyleRoute(mux, app)
	MapTileRoute(mux, app)
	mux.Handle("GET /session", sessions)
	mux.Handle("GET /metrics", metrics.Handler())

	return AccessLog(logger)(mux), sessions.wait
}

// ServeApplication serves on l until ctx is done and then shuts down gracefully.
func ServeApplication(ctx context.Context, l net.Listener, app application.Application, logger *slog.Logger) error {
	handler, wait := NewHandler(ctx, app, logger)

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(l)
	}()

	logger.Info("listening", "addr", l.Addr().String())

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to serve http: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := srv.Shutdown(shutdownCtx)
	wait()
	if err != nil {
		return fmt.Errorf("failed to shut down http server: %w", err)
	}

	return nil
}
