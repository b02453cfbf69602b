package main

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/tooltip/internal/config"
	"github.com/vango-dev/tooltip/pkg/document"
	"github.com/vango-dev/tooltip/pkg/mount"
	"github.com/vango-dev/tooltip/pkg/preview"
	"github.com/vango-dev/tooltip/pkg/snapshot"
	"github.com/vango-dev/tooltip/pkg/termview"
	"github.com/vango-dev/tooltip/pkg/tooltip"
)

type renderOptions struct {
	format string
	pretty bool
	out    string
	strict bool
}

func renderCmd(g *globals) *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:   "render <document|->",
		Short: "Render a tooltip document",
		Long: `Render a tooltip document to HTML or to the terminal.

Formats:
  html   the tooltip markup (default)
  page   a standalone HTML page around the markup
  text   a terminal rendering

--out writes the result to a file or to S3 instead of stdout.

Examples:
  tooltip render series.yaml
  tooltip render series.yaml --format text
  cat rows.json | tooltip render - --pretty
  tooltip render series.yaml --format page --out s3://charts/tips/series.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.load()
			if err != nil {
				return err
			}
			return runRender(cmd.Context(), cmd, cfg, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "html", "Output format: html, page, text")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "Indent HTML output")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Write to a path or s3://bucket/key")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Fail on malformed content instead of rendering an empty tooltip")

	return cmd
}

func runRender(ctx context.Context, cmd *cobra.Command, cfg *config.Config, source string, opts renderOptions) error {
	switch opts.format {
	case "html", "page", "text":
	default:
		return usageError("unknown format %q (want html, page or text)", opts.format)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	doc, err := readDocument(cmd.InOrStdin(), source)
	if err != nil {
		return err
	}

	content := tooltip.NewContent(
		tooltip.WithLogger(logger(cfg, cmd.ErrOrStderr())),
		tooltip.WithStrict(cfg.Strict || opts.strict),
	)
	content.SetConfig(cfg.Tooltip.Partial())
	doc.Apply(content)

	var output string
	if opts.format == "text" {
		n, err := content.Normalized()
		if err != nil {
			return err
		}
		output = termview.Render(n, content.Config())
	} else {
		container := mount.NewContainer(mount.Options{Pretty: opts.pretty})
		if err := content.Render(container); err != nil {
			return err
		}
		html, err := container.HTML()
		if err != nil {
			return err
		}
		if opts.format == "page" {
			html = preview.Page(html, container.Revision(), false)
		} else if html != "" && html[len(html)-1] != '\n' {
			html += "\n"
		}
		output = html
	}

	if opts.out == "" {
		_, err := io.WriteString(cmd.OutOrStdout(), output)
		return err
	}
	return publish(ctx, cmd, cfg, opts.out, output)
}

func readDocument(stdin io.Reader, source string) (*document.Document, error) {
	if source == "-" {
		return document.Read(stdin)
	}
	return document.Load(source)
}

func publish(ctx context.Context, cmd *cobra.Command, cfg *config.Config, dest, output string) error {
	target, err := snapshot.ParseTarget(dest)
	if err != nil {
		return err
	}
	store, key, err := snapshot.ForTarget(target, snapshot.Options{
		Region:    cfg.Snapshot.Region,
		Endpoint:  cfg.Snapshot.Endpoint,
		PathStyle: cfg.Snapshot.PathStyle,
	})
	if err != nil {
		return err
	}
	location, err := store.Put(ctx, key, []byte(output))
	if err != nil {
		return err
	}
	success(cmd.ErrOrStderr(), "Wrote %s", location)
	return nil
}

// snapshotStore returns the store the preview server publishes to.
func snapshotStore(cfg *config.Config) snapshot.Store {
	if cfg.Snapshot.Bucket != "" {
		client := snapshot.NewS3Client(snapshot.S3ClientOptions{
			Region:    cfg.Snapshot.Region,
			Endpoint:  cfg.Snapshot.Endpoint,
			PathStyle: cfg.Snapshot.PathStyle,
		})
		return snapshot.NewS3Store(client, cfg.Snapshot.Bucket, cfg.Snapshot.Prefix)
	}
	return snapshot.NewFileStore(cfg.Snapshot.Dir)
}

// fileExists reports whether path names an existing file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
