package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bnema/kestrel/internal/domain"
	"github.com/bnema/kestrel/internal/logging"
)

const shutdownTimeout = 10 * time.Second

// Run loads the configuration, prints the startup summary and serves the
// registry until ctx is cancelled or SIGINT/SIGTERM is received.
func Run(ctx context.Context, configPath, version string, stdout io.Writer) error {
	cfg, settings, err := LoadConfig(configPath)
	if err != nil {
		return err
	}

	log, cleanup, err := initLogger(cfg, settings.DataDir)
	if err != nil {
		return err
	}
	if cleanup != nil {
		defer cleanup()
	}

	ctx = logging.WithCtx(ctx, log)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	WriteSummary(stdout, settings, version)

	a, err := New(settings, log)
	if err != nil {
		return err
	}
	if err := a.Start(ctx); err != nil {
		return err
	}
	defer a.Stop()

	return serve(ctx, settings, a.Handler(), log)
}

// serve runs the HTTP server and shuts it down gracefully.
func serve(ctx context.Context, s Settings, handler http.Handler, log logging.Logger) error {
	server := &http.Server{
		Addr:              s.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str(logging.FieldLayer, "app").
			Str("addr", s.Addr).
			Bool("tls", s.TLSCertFile != "").
			Msg("registry listening")

		var err error
		if s.TLSCertFile != "" {
			err = server.ListenAndServeTLS(s.TLSCertFile, s.TLSKeyFile)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-errCh:
		if ok {
			return log.WrapErr(err, "registry server failed")
		}
		return nil
	case <-ctx.Done():
		log.Info().Str(logging.FieldLayer, "app").Msg("context cancelled, shutting down")
	case sig := <-quit:
		log.Info().
			Str(logging.FieldLayer, "app").
			Str("signal", sig.String()).
			Msg("received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("registry server shutdown error")
	}
	log.Info().Str(logging.FieldLayer, "app").Msg("kestrel shutdown complete")
	return nil
}

// CheckConfig validates the configuration and prints the startup summary
// without serving.
func CheckConfig(configPath, version string, stdout io.Writer) error {
	_, settings, err := LoadConfig(configPath)
	if err != nil {
		return err
	}
	WriteSummary(stdout, settings, version)
	fmt.Fprintln(stdout, "Dry run, exiting.")
	return nil
}

// CollectGarbage runs an offline garbage collection pass. A negative grace
// uses the configured registry.gc_grace.
func CollectGarbage(ctx context.Context, configPath string, grace time.Duration) (domain.GCReport, error) {
	cfg, settings, err := LoadConfig(configPath)
	if err != nil {
		return domain.GCReport{}, err
	}

	log, cleanup, err := initLogger(cfg, settings.DataDir)
	if err != nil {
		return domain.GCReport{}, err
	}
	if cleanup != nil {
		defer cleanup()
	}
	ctx = logging.WithCtx(ctx, log)

	if grace < 0 {
		grace = settings.GCGrace
	}

	a, err := New(settings, log)
	if err != nil {
		return domain.GCReport{}, err
	}
	if err := a.eventBus.Start(); err != nil {
		return domain.GCReport{}, log.WrapErr(err, "failed to start event bus")
	}
	defer a.Stop()

	return a.Registry().GarbageCollect(ctx, grace)
}
