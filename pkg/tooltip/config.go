package tooltip

import (
	"fmt"
	"maps"

	"dario.cat/mergo"
)

// DefaultClassPrefix is the class prefix shared by all chart components.
const DefaultClassPrefix = "muze"

// Config holds the presentation settings read by the layout and cell
// renderers.
type Config struct {
	// ClassPrefix is prepended to every class name ("<prefix>-tooltip-...").
	ClassPrefix string `yaml:"classPrefix" json:"classPrefix" mapstructure:"classPrefix"`

	// IconContainerSize is the side, in pixels, of the square icon box.
	IconContainerSize float64 `yaml:"iconContainerSize" json:"iconContainerSize" mapstructure:"iconContainerSize"`

	// RowMargin is the CSS margin applied to each default-layout row.
	RowMargin string `yaml:"rowMargin" json:"rowMargin" mapstructure:"rowMargin"`

	// Spacing is the right margin, in pixels, after each default-layout cell.
	Spacing float64 `yaml:"spacing" json:"spacing" mapstructure:"spacing"`

	// Separator follows each key in the keyValue strategy.
	Separator string `yaml:"separator" json:"separator" mapstructure:"separator"`

	// Extra carries keys the tooltip does not interpret. They are merged
	// key-wise and handed to strategies untouched.
	Extra map[string]any `yaml:"extra,omitempty" json:"extra,omitempty" mapstructure:"extra"`
}

// DefaultConfig returns a fresh default configuration.
func DefaultConfig() Config {
	return Config{
		ClassPrefix:       DefaultClassPrefix,
		IconContainerSize: 10,
		RowMargin:         "3px 0px 3px 0px",
		Spacing:           5,
		Separator:         ":",
	}
}

// Partial is a config overlay. Nil fields are left alone; a set field
// replaces the current value, zero values included.
type Partial struct {
	ClassPrefix       *string  `yaml:"classPrefix" json:"classPrefix,omitempty"`
	IconContainerSize *float64 `yaml:"iconContainerSize" json:"iconContainerSize,omitempty"`
	RowMargin         *string  `yaml:"rowMargin" json:"rowMargin,omitempty"`
	Spacing           *float64 `yaml:"spacing" json:"spacing,omitempty"`
	Separator         *string  `yaml:"separator" json:"separator,omitempty"`

	// Extra is merged key by key into Config.Extra.
	Extra map[string]any `yaml:"extra,omitempty" json:"extra,omitempty"`
}

// Ptr returns a pointer to v, for filling Partial fields.
func Ptr[T any](v T) *T {
	return &v
}

// Partial returns c as an overlay that sets every field.
func (c Config) Partial() Partial {
	return Partial{
		ClassPrefix:       Ptr(c.ClassPrefix),
		IconContainerSize: Ptr(c.IconContainerSize),
		RowMargin:         Ptr(c.RowMargin),
		Spacing:           Ptr(c.Spacing),
		Separator:         Ptr(c.Separator),
		Extra:             maps.Clone(c.Extra),
	}
}

// IsZero reports whether p sets nothing.
func (p Partial) IsZero() bool {
	return p.ClassPrefix == nil && p.IconContainerSize == nil && p.RowMargin == nil &&
		p.Spacing == nil && p.Separator == nil && len(p.Extra) == 0
}

// Merge returns c with every field set in partial laid over it.
func (c Config) Merge(partial Partial) (Config, error) {
	merged := c.clone()
	overlay(&merged.ClassPrefix, partial.ClassPrefix)
	overlay(&merged.IconContainerSize, partial.IconContainerSize)
	overlay(&merged.RowMargin, partial.RowMargin)
	overlay(&merged.Spacing, partial.Spacing)
	overlay(&merged.Separator, partial.Separator)

	if len(partial.Extra) > 0 {
		if merged.Extra == nil {
			merged.Extra = make(map[string]any, len(partial.Extra))
		}
		if err := mergo.Merge(&merged.Extra, maps.Clone(partial.Extra), mergo.WithOverride); err != nil {
			return c, fmt.Errorf("merge tooltip config: %w", err)
		}
	}
	return merged, nil
}

func overlay[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// Validate reports settings the renderers cannot honor.
func (c Config) Validate() error {
	if c.ClassPrefix == "" {
		return fmt.Errorf("classPrefix must not be empty")
	}
	if c.IconContainerSize < 0 {
		return fmt.Errorf("iconContainerSize must not be negative, got %v", c.IconContainerSize)
	}
	if c.Spacing < 0 {
		return fmt.Errorf("spacing must not be negative, got %v", c.Spacing)
	}
	return nil
}

// Class returns "<prefix>-tooltip-<name>".
func (c Config) Class(name string) string {
	return c.ClassPrefix + "-tooltip-" + name
}

func (c Config) clone() Config {
	out := c
	if c.Extra != nil {
		out.Extra = maps.Clone(c.Extra)
	}
	return out
}
