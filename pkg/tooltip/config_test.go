package tooltip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "muze", cfg.ClassPrefix)
	assert.Equal(t, 10.0, cfg.IconContainerSize)
	assert.Equal(t, "3px 0px 3px 0px", cfg.RowMargin)
	assert.Equal(t, 5.0, cfg.Spacing)
	assert.NoError(t, cfg.Validate())

	cfg.Extra = map[string]any{"x": 1}
	assert.Nil(t, DefaultConfig().Extra, "DefaultConfig must return a fresh value")
}

func TestConfigMerge(t *testing.T) {
	tests := []struct {
		name    string
		partial Partial
		check   func(t *testing.T, c Config)
	}{
		{
			name:    "empty partial changes nothing",
			partial: Partial{},
			check: func(t *testing.T, c Config) {
				assert.Equal(t, DefaultConfig(), c)
			},
		},
		{
			name:    "overrides set fields only",
			partial: Partial{ClassPrefix: Ptr("acme"), Spacing: Ptr(8.0)},
			check: func(t *testing.T, c Config) {
				assert.Equal(t, "acme", c.ClassPrefix)
				assert.Equal(t, 8.0, c.Spacing)
				assert.Equal(t, 10.0, c.IconContainerSize)
			},
		},
		{
			name:    "extra passes through",
			partial: Partial{Extra: map[string]any{"theme": "dark"}},
			check: func(t *testing.T, c Config) {
				assert.Equal(t, "dark", c.Extra["theme"])
			},
		},
		{
			name: "zero values are applied",
			partial: Partial{
				Spacing:           Ptr(0.0),
				IconContainerSize: Ptr(0.0),
				RowMargin:         Ptr(""),
				Separator:         Ptr(""),
			},
			check: func(t *testing.T, c Config) {
				assert.Equal(t, 0.0, c.Spacing)
				assert.Equal(t, 0.0, c.IconContainerSize)
				assert.Empty(t, c.RowMargin)
				assert.Empty(t, c.Separator)
				assert.Equal(t, "muze", c.ClassPrefix)
			},
		},
		{
			name:    "full overlay from a config",
			partial: Config{ClassPrefix: "x", Spacing: 0, Separator: "="}.Partial(),
			check: func(t *testing.T, c Config) {
				assert.Equal(t, "x", c.ClassPrefix)
				assert.Equal(t, 0.0, c.Spacing)
				assert.Equal(t, "=", c.Separator)
				assert.Equal(t, 0.0, c.IconContainerSize)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged, err := DefaultConfig().Merge(tt.partial)
			require.NoError(t, err)
			tt.check(t, merged)
		})
	}
}

func TestConfigMergeDoesNotAliasPartial(t *testing.T) {
	partial := Partial{Extra: map[string]any{"a": 1}}
	merged, err := DefaultConfig().Merge(partial)
	require.NoError(t, err)

	merged.Extra["a"] = 2
	assert.Equal(t, 1, partial.Extra["a"])
}

func TestPartialIsZero(t *testing.T) {
	assert.True(t, Partial{}.IsZero())
	assert.False(t, Partial{Spacing: Ptr(0.0)}.IsZero())
	assert.False(t, Partial{Extra: map[string]any{"a": 1}}.IsZero())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"empty prefix", Config{IconContainerSize: 1}},
		{"negative icon size", Config{ClassPrefix: "m", IconContainerSize: -1}},
		{"negative spacing", Config{ClassPrefix: "m", Spacing: -2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.cfg.Validate())
		})
	}
}
