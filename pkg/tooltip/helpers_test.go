package tooltip

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vango-dev/tooltip/pkg/render"
	"github.com/vango-dev/tooltip/pkg/vdom"
)

// recordingMount keeps the last tree it was given.
type recordingMount struct {
	node  *vdom.VNode
	calls int
}

func (m *recordingMount) Replace(node *vdom.VNode) {
	m.node = node
	m.calls++
}

func newTestContent(t *testing.T, opts ...Option) (*Content, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return NewContent(append([]Option{WithLogger(logger)}, opts...)...), &logs
}

func html(t *testing.T, node *vdom.VNode) string {
	t.Helper()
	out, err := render.NewRenderer(render.RendererConfig{}).RenderToString(node)
	require.NoError(t, err)
	return out
}
