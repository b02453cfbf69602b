// Command tooltip renders chart tooltip documents and serves a live
// preview of them.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/tooltip/internal/config"
	tterrors "github.com/vango-dev/tooltip/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// globals are the persistent flags shared by every command.
type globals struct {
	configPath string
	logLevel   string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	g := &globals{}

	rootCmd := &cobra.Command{
		Use:   "tooltip",
		Short: "Render chart tooltips",
		Long: `tooltip renders chart tooltip documents to HTML or to the terminal.

A tooltip document names a strategy and a model (or pre-built rows)
and may override the tooltip config:

  strategy: series
  model:
    title: Revenue
    items:
      - {name: North, value: 12, color: "#1f77b4"}

Settings are read from tooltip.yaml and TOOLTIP_* environment variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", "Config file (default ./tooltip.yaml)")
	rootCmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(
		renderCmd(g),
		serveCmd(g),
		strategiesCmd(),
		versionCmd(),
	)
	return rootCmd
}

// load reads the project config and applies global flag overrides.
func (g *globals) load() (*config.Config, error) {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return nil, err
	}
	if g.logLevel != "" {
		cfg.Log.Level = g.logLevel
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// logger builds the process logger. Logs go to stderr so rendered output
// on stdout stays clean.
func logger(cfg *config.Config, w io.Writer) *slog.Logger {
	return cfg.NewLogger(w).With("component", "cli")
}

func usageError(format string, args ...any) error {
	return tterrors.New("T040").WithDetailf(format, args...)
}

func printError(w io.Writer, err error) {
	var te *tterrors.TooltipError
	if errors.As(err, &te) {
		fmt.Fprintln(w, te.Format())
		return
	}
	fmt.Fprintf(w, "\033[31mError:\033[0m %s\n", err)
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}
