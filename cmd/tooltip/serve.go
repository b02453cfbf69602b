package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/vango-dev/tooltip/internal/config"
	"github.com/vango-dev/tooltip/pkg/document"
	"github.com/vango-dev/tooltip/pkg/preview"
	"github.com/vango-dev/tooltip/pkg/tooltip"
)

const shutdownTimeout = 5 * time.Second

func serveCmd(g *globals) *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "serve [document]",
		Short: "Serve a live tooltip preview",
		Long: `Start the preview server.

Open the printed URL in a browser; the page updates in place when a
document is PUT to /tooltip or the config is PATCHed at /config.

Examples:
  tooltip serve
  tooltip serve series.yaml --port 8080
  curl -X PUT --data-binary @table.json localhost:7070/tooltip`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.load()
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.Preview.Port = port
			}
			if host != "" {
				cfg.Preview.Host = host
			}
			var source string
			if len(args) == 1 {
				source = args[0]
				if !fileExists(source) {
					return usageError("document %s does not exist", source)
				}
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, cmd, cfg, source)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from config)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from config)")

	return cmd
}

// newServer builds the preview server described by cfg, loading the
// document at source when it is not empty.
func newServer(ctx context.Context, cmd *cobra.Command, cfg *config.Config, source string) (*preview.Server, error) {
	log := logger(cfg, cmd.ErrOrStderr())

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	content := tooltip.NewContent(tooltip.WithLogger(log), tooltip.WithStrict(cfg.Strict))
	content.SetConfig(cfg.Tooltip.Partial())

	srv := preview.New(preview.Options{
		Content:   content,
		Registry:  registry,
		Snapshots: snapshotStore(cfg),
		History:   cfg.Preview.History,
		Logger:    log,
	})

	if source != "" {
		doc, err := document.Load(source)
		if err != nil {
			srv.Close()
			return nil, err
		}
		if err := srv.Load(ctx, doc); err != nil {
			srv.Close()
			return nil, err
		}
	}
	return srv, nil
}

func runServe(ctx context.Context, cmd *cobra.Command, cfg *config.Config, source string) error {
	srv, err := newServer(ctx, cmd, cfg, source)
	if err != nil {
		return err
	}
	defer srv.Close()

	httpServer := &http.Server{
		Addr:              cfg.PreviewAddress(),
		Handler:           srv,
		ReadHeaderTimeout: 10 * time.Second,
	}

	out := cmd.ErrOrStderr()
	success(out, "Preview server running")
	info(out, "Local: %s", cfg.PreviewURL())
	if path := cfg.Path(); path != "" {
		info(out, "Config: %s", path)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	info(out, "Shutting down")
	return httpServer.Shutdown(shutdownCtx)
}
