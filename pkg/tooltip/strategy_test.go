package tooltip

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	reg := DefaultRegistry()
	assert.Equal(t, DefaultStrategy, reg.Default())
	assert.Equal(t, []string{"keyValue", "raw", "series", "table"}, reg.Names())

	_, err := reg.Lookup("pie")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownStrategy))
	assert.Contains(t, err.Error(), `"pie"`)

	reg.Register("pie", func(any, Config, any) any { return nil })
	_, err = reg.Lookup("pie")
	assert.NoError(t, err)
}

func TestNewRegistryRequiresDefault(t *testing.T) {
	_, err := NewRegistry("missing", map[string]Strategy{"a": KeyValue})
	assert.Error(t, err)

	reg, err := NewRegistry("a", map[string]Strategy{"a": KeyValue})
	require.NoError(t, err)
	assert.Equal(t, "a", reg.Default())
}

func TestResolvePrecedence(t *testing.T) {
	reg := DefaultRegistry()
	strategyCalls, formatterCalls := 0, 0
	reg.Register("count", func(any, Config, any) any {
		strategyCalls++
		return "from strategy"
	})
	formatter := func(any, any) any {
		formatterCalls++
		return "from formatter"
	}

	sequences := []any{
		[][]any{{"a"}},
		[]Row{{"b"}},
		[]any{},
		[2][]int{{1}, {2}},
	}
	for _, model := range sequences {
		got, err := Resolve(State{Model: model, StrategyName: "count", Formatter: formatter}, DefaultConfig(), reg)
		require.NoError(t, err)
		assert.Equal(t, model, got)
	}
	assert.Zero(t, strategyCalls)
	assert.Zero(t, formatterCalls)

	got, err := Resolve(State{Model: "m", StrategyName: "count", Formatter: formatter}, DefaultConfig(), reg)
	require.NoError(t, err)
	assert.Equal(t, "from formatter", got)
	assert.Zero(t, strategyCalls)

	got, err = Resolve(State{Model: "m", StrategyName: "count"}, DefaultConfig(), reg)
	require.NoError(t, err)
	assert.Equal(t, "from strategy", got)
	assert.Equal(t, 1, strategyCalls)
}

func TestResolveFormatterBypassesUnknownStrategy(t *testing.T) {
	got, err := Resolve(State{
		Model:        "m",
		StrategyName: "missing",
		Formatter:    func(model, _ any) any { return model },
	}, DefaultConfig(), DefaultRegistry())
	require.NoError(t, err)
	assert.Equal(t, "m", got)
}

func TestResolveDoesNotShareConfig(t *testing.T) {
	reg := DefaultRegistry()
	reg.Register("mutate", func(_ any, cfg Config, _ any) any {
		cfg.Extra["touched"] = true
		return nil
	})
	cfg := DefaultConfig()
	cfg.Extra = map[string]any{}

	_, err := Resolve(State{StrategyName: "mutate"}, cfg, reg)
	require.NoError(t, err)
	assert.NotContains(t, cfg.Extra, "touched")
}

func TestKeyValue(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("map sorted by key", func(t *testing.T) {
		rows := KeyValue(map[string]any{"b": 2, "a": 1}, cfg, nil).([]Row)
		require.Len(t, rows, 2)
		assert.Equal(t, CellDescriptor{Value: "a:", ClassName: "muze-tooltip-key"}, rows[0][0])
		assert.Equal(t, CellDescriptor{Value: 1, ClassName: "muze-tooltip-value"}, rows[0][1])
		assert.Equal(t, "b:", rows[1][0].(CellDescriptor).Value)
	})

	t.Run("record keeps order", func(t *testing.T) {
		rec := Record{Fields: []Field{{Key: "z", Value: 1}, {Key: "y", Value: 2}}}
		rows := KeyValue(rec, cfg, nil).([]Row)
		require.Len(t, rows, 2)
		assert.Equal(t, "z:", rows[0][0].(CellDescriptor).Value)
	})

	t.Run("nil model", func(t *testing.T) {
		assert.Equal(t, []Row{}, KeyValue(nil, cfg, nil))
	})

	t.Run("scalar model", func(t *testing.T) {
		rows := KeyValue(3.5, cfg, nil).([]Row)
		require.Len(t, rows, 1)
		assert.Equal(t, 3.5, rows[0][0].(CellDescriptor).Value)
	})
}

func TestTableStrategy(t *testing.T) {
	out := TableStrategy(Table{
		Header: []string{"name", "sales"},
		Rows:   [][]any{{"north", 10}, {"south", 12}},
	}, DefaultConfig(), nil)

	s, ok := out.(Structured)
	require.True(t, ok)
	assert.Equal(t, FormatTable, s.DisplayFormat)
	require.Len(t, s.Content, 3)
	assert.Equal(t, "muze-tooltip-header", s.Content[0][0].(CellDescriptor).ClassName)
	assert.Equal(t, Row{"south", 12}, s.Content[2])

	empty := TableStrategy(nil, DefaultConfig(), nil).(Structured)
	assert.Empty(t, empty.Content)
}

func TestSeriesStrategy(t *testing.T) {
	rows := SeriesStrategy(SeriesSet{
		Title: "2024",
		Items: []Series{{Name: "A", Value: 1, Color: "red"}, {Name: "B", Value: 2, Shape: "square", Size: 30}},
	}, DefaultConfig(), nil).([]Row)

	require.Len(t, rows, 3)
	assert.Equal(t, "bold", rows[0][0].(CellDescriptor).Style["font-weight"])

	icon := rows[1][0].(CellDescriptor)
	assert.Equal(t, CellIcon, icon.Type)
	assert.Equal(t, "circle", icon.Shape)
	assert.Equal(t, 50.0, icon.Size)
	assert.Equal(t, "red", icon.Color)

	assert.Equal(t, Icon("square", 30, ""), rows[2][0])
}

type stringer struct{}

func (stringer) String() string { return "<i>s</i>" }

func TestRawStrategy(t *testing.T) {
	d := RawStrategy("<b>x</b>", DefaultConfig(), nil).(Deferred)
	assert.Equal(t, "<b>x</b>", d())

	d = RawStrategy(stringer{}, DefaultConfig(), nil).(Deferred)
	assert.Equal(t, "<i>s</i>", d())

	assert.Equal(t, []Row{}, RawStrategy(nil, DefaultConfig(), nil))
}
