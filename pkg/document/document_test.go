package document

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	tterrors "github.com/vango-dev/tooltip/internal/errors"
	"github.com/vango-dev/tooltip/pkg/mount"
	"github.com/vango-dev/tooltip/pkg/tooltip"
	"github.com/vango-dev/tooltip/pkg/vdom"
)

func TestLoadSeries(t *testing.T) {
	doc, err := Load(filepath.Join("testdata", "series.yaml"))
	require.NoError(t, err)

	assert.Equal(t, tooltip.StrategySeries, doc.Strategy)
	set, ok := doc.Model.(tooltip.SeriesSet)
	require.True(t, ok, "model is %T", doc.Model)
	assert.Equal(t, "Revenue", set.Title)
	require.Len(t, set.Items, 2)
	assert.Equal(t, 9.5, set.Items[1].Value)
	assert.Equal(t, "square", set.Items[1].Shape)

	assert.Equal(t, map[string]any{"chart": "bar-1"}, doc.Context)
	require.NotNil(t, doc.Config.IconContainerSize)
	assert.Equal(t, 14.0, *doc.Config.IconContainerSize)
	assert.Nil(t, doc.Config.Spacing, "absent keys stay unset")
	assert.Equal(t, "dark", doc.Config.Extra["theme"])
}

func TestLoadJSONRows(t *testing.T) {
	doc, err := Load(filepath.Join("testdata", "table.json"))
	require.NoError(t, err)

	require.Len(t, doc.Rows, 2)
	assert.Equal(t, tooltip.Row{"Region", "Sales"}, doc.Rows[0])
	assert.Equal(t, tooltip.Icon("circle", 40, "red"), doc.Rows[1][0])
	assert.Equal(t, 12, doc.Rows[1][1])

	item := doc.Item()
	require.NotNil(t, item.Formatter)
	c := tooltip.NewContent()
	m := mount.NewContainer(mount.Options{})
	info, err := c.Update(item).RenderInfo(m)
	require.NoError(t, err)
	assert.Equal(t, tooltip.FormatTable, info.Format)
	assert.Equal(t, 2, info.Rows)
	assert.Len(t, vdom.FindAll(m.Tree(), "svg"), 1)
}

func TestParseKeyValueKeepsOrder(t *testing.T) {
	doc, err := Parse([]byte("model:\n  zeta: 1\n  alpha: two\n"))
	require.NoError(t, err)

	rec, ok := doc.Model.(tooltip.Record)
	require.True(t, ok)
	assert.Equal(t, []tooltip.Field{{Key: "zeta", Value: 1}, {Key: "alpha", Value: "two"}}, rec.Fields)
}

func TestParseSequenceModelIsRows(t *testing.T) {
	doc, err := Parse([]byte("strategy: table\nmodel:\n  - [a, b]\n  - [c]\n"))
	require.NoError(t, err)

	assert.Equal(t, []tooltip.Row{{"a", "b"}, {"c"}}, doc.Model)
}

func TestParseRawAndCustom(t *testing.T) {
	doc, err := Parse([]byte("strategy: raw\nmodel: \"<b>hi</b>\"\n"))
	require.NoError(t, err)
	assert.Equal(t, "<b>hi</b>", doc.Model)

	doc, err = Parse([]byte("strategy: pie\nmodel: {slices: 3}\n"))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"slices": 3}, doc.Model)
}

func TestRegisterModelDecoder(t *testing.T) {
	RegisterModelDecoder("upper", func(node *yaml.Node) (any, error) {
		return strings.ToUpper(node.Value), nil
	})
	doc, err := Parse([]byte("strategy: upper\nmodel: shout\n"))
	require.NoError(t, err)
	assert.Equal(t, "SHOUT", doc.Model)
}

func TestParseEmpty(t *testing.T) {
	doc, err := Parse(nil)
	require.NoError(t, err)
	assert.Nil(t, doc.Model)
	assert.Nil(t, doc.Rows)

	item := doc.Item()
	assert.Nil(t, item.Model)
	assert.Nil(t, item.Formatter)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"not yaml", "rows: [[a"},
		{"model does not fit", "strategy: table\nmodel: {rows: 5}\n"},
		{"bad config", "config: [1, 2]\n"},
		{"bad cell", "rows:\n  - [{size: big}]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.in))
			require.Error(t, err)
			assert.True(t, tterrors.HasCode(err, "T020"), "got %v", err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, tterrors.HasCode(err, "T020"))
	var te *tterrors.TooltipError
	assert.True(t, errors.As(err, &te))
}

func TestReadTooLarge(t *testing.T) {
	_, err := Read(strings.NewReader(strings.Repeat("#", MaxSize+1)))
	require.Error(t, err)
	assert.True(t, tterrors.HasCode(err, "T020"))
}

func TestApply(t *testing.T) {
	doc, err := Parse([]byte("strategy: raw\nmodel: x\ncontext: 7\nconfig: {spacing: 9}\n"))
	require.NoError(t, err)

	c := doc.Apply(tooltip.NewContent())
	assert.Equal(t, 9.0, c.Config().Spacing)
	assert.Equal(t, 7, c.State().Context)
	assert.Equal(t, tooltip.StrategyRaw, c.State().StrategyName)
}

func TestParseConfigZeroValues(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, cfg tooltip.Config)
	}{
		{"json spacing", `{"spacing": 0}`, func(t *testing.T, cfg tooltip.Config) {
			assert.Equal(t, 0.0, cfg.Spacing)
			assert.Equal(t, ":", cfg.Separator)
		}},
		{"yaml empty strings", "separator: \"\"\nrowMargin: \"\"\n", func(t *testing.T, cfg tooltip.Config) {
			assert.Empty(t, cfg.Separator)
			assert.Empty(t, cfg.RowMargin)
			assert.Equal(t, 5.0, cfg.Spacing)
		}},
		{"icon size", "iconContainerSize: 0\n", func(t *testing.T, cfg tooltip.Config) {
			assert.Equal(t, 0.0, cfg.IconContainerSize)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			partial, err := ParseConfig([]byte(tt.input))
			require.NoError(t, err)
			c := tooltip.NewContent().SetConfig(partial)
			tt.check(t, c.Config())
		})
	}
}

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(`{"spacing": 9, "theme": "dark"}`))
	require.NoError(t, err)
	require.NotNil(t, cfg.Spacing)
	assert.Equal(t, 9.0, *cfg.Spacing)
	assert.Nil(t, cfg.RowMargin)
	assert.Equal(t, "dark", cfg.Extra["theme"])

	empty, err := ParseConfig(nil)
	require.NoError(t, err)
	assert.True(t, empty.IsZero())

	_, err = ParseConfig([]byte("- a\n- b\n"))
	assert.True(t, tterrors.HasCode(err, "T020"))
}
