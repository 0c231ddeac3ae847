package commands

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/BrandonDHaskell/fingerlock/internal/config"
	"github.com/BrandonDHaskell/fingerlock/internal/httpapi"
)

const shutdownTimeout = 5 * time.Second

// processStart anchors the uptime reported by /health.
var processStart = time.Now()

// NewServeCommand creates the 'serve' subcommand.
func NewServeCommand(version string) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Long: `Run the HTTP server until SIGINT or SIGTERM.

The listen port comes from --port when given, otherwise from $PORT, otherwise 3000.
An out-of-range --port is an error; an unusable $PORT falls back to 3000.
gRPC health checks are answered on the same port.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if cmd.Flags().Changed("port") {
				if !config.ValidPort(port) {
					return fmt.Errorf("invalid --port %d: must be between 1 and 65535", port)
				}
				cfg = config.WithPort(port)
			}
			logger := log.New(cmd.OutOrStdout(), "fingerlock-server ", log.LstdFlags|log.LUTC)
			return runServe(cmd.Context(), cfg, version, logger)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Listen port (overrides $PORT)")

	return cmd
}

func runServe(parent context.Context, cfg config.Config, version string, logger *log.Logger) error {
	if parent == nil {
		parent = context.Background()
	}
	a := newApp(version, processStart)

	srv, err := httpapi.NewServer(httpapi.Dependencies{
		Logger:             logger,
		Addr:               cfg.HTTPAddr,
		PublicDir:          cfg.PublicDir,
		StatusService:      a.status,
		AccessLogService:   a.accessLogs,
		FingerprintService: a.fingerprints,
	})
	if err != nil {
		return fmt.Errorf("build server: %w", err)
	}

	ln, err := srv.Listen()
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.HTTPAddr, err)
	}

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	port := cfg.Port
	if tcp, ok := ln.Addr().(*net.TCPAddr); ok {
		port = tcp.Port
	}
	logger.Printf("IoT Door Lock Demo Server running on port %d", port)
	logger.Printf("Dashboard: http://localhost:%d", port)
	if st := a.data.Status; !st.IsOnline {
		logger.Printf("Device Status: OFFLINE since %s", st.LastSeen)
	}

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	}

	logger.Printf("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
