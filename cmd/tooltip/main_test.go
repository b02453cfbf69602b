package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/tooltip/internal/config"
	tterrors "github.com/vango-dev/tooltip/internal/errors"
)

const revenueDoc = "testdata/revenue.yaml"

func execute(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRenderHTML(t *testing.T) {
	out, _, err := execute(t, "", "render", revenueDoc)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, `<div class="muze-tooltip-content muze-tooltip-content-default"`), out)
	assert.Contains(t, out, ">Revenue<")
	assert.Contains(t, out, "fill: #1f77b4")
	assert.Contains(t, out, "margin-right: 10px")
	assert.NotContains(t, out, "data-hid")
}

func TestRenderFormats(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains []string
	}{
		{"page", []string{"--format", "page"}, []string{"<!DOCTYPE html>", ">North<"}},
		{"text", []string{"--format", "text"}, []string{"Revenue\n", "● ", "■ "}},
		{"pretty", []string{"--pretty"}, []string{"\n  <"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, "", append([]string{"render", revenueDoc}, tt.args...)...)
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestRenderStdin(t *testing.T) {
	out, _, err := execute(t, `{"displayFormat": "table", "rows": [["a", "b"], ["c", "d"]]}`, "render", "-")
	require.NoError(t, err)

	assert.Contains(t, out, "<table")
	assert.Contains(t, out, "muze-tooltip-table-row-1")
}

func TestRenderOut(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "tip.html")

	out, errOut, err := execute(t, "", "render", revenueDoc, "--format", "page", "--out", dest)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "Wrote "+dest)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(data), ">South<")
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		code  string
	}{
		{"unknown format", "", []string{"render", revenueDoc, "--format", "pdf"}, "T040"},
		{"missing document", "", []string{"render", "testdata/nope.yaml"}, "T020"},
		{"unknown strategy", "strategy: pie\n", []string{"render", "-"}, "T001"},
		{"bad destination", "", []string{"render", revenueDoc, "--out", "ftp://x/y"}, "T030"},
		{"bad log level", "", []string{"render", revenueDoc, "--log-level", "loud"}, "T010"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.stdin, tt.args...)
			require.Error(t, err)
			assert.True(t, tterrors.HasCode(err, tt.code), "got %v", err)
		})
	}
}

func TestRenderConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tooltip.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tooltip:\n  classPrefix: acme\n"), 0o644))

	out, _, err := execute(t, "", "render", revenueDoc, "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "acme-tooltip-content")
}

func TestServeLoadsDocument(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetErr(io.Discard)
	cfg := config.New()

	srv, err := newServer(context.Background(), cmd, cfg, revenueDoc)
	require.NoError(t, err)
	defer srv.Close()

	ts := httptest.NewServer(srv)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/tooltip")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), ">Revenue<")

	resp, err = http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	metrics, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(metrics), "go_goroutines")
	assert.Contains(t, string(metrics), "tooltip_renders_total")
}

func TestServeMissingDocument(t *testing.T) {
	_, _, err := execute(t, "", "serve", "testdata/nope.yaml")
	require.Error(t, err)
	assert.True(t, tterrors.HasCode(err, "T040"))
}

func TestStrategies(t *testing.T) {
	out, _, err := execute(t, "", "strategies")
	require.NoError(t, err)

	assert.Contains(t, out, "* keyValue")
	for _, name := range []string{"table", "series", "raw"} {
		assert.Contains(t, out, "  "+name)
	}
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "", "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", out)

	out, _, err = execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Go version:")
}
