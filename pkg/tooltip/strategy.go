package tooltip

import (
	"fmt"
	"sort"
	"sync"
)

// Strategy turns a model into a content descriptor. It receives a copy of
// the current config and must not mutate the model.
type Strategy func(model any, cfg Config, ctx any) any

// Formatter is a caller-supplied replacement for the strategy.
type Formatter func(model any, ctx any) any

// Built-in strategy names.
const (
	StrategyKeyValue = "keyValue"
	StrategyTable    = "table"
	StrategySeries   = "series"
	StrategyRaw      = "raw"

	DefaultStrategy = StrategyKeyValue
)

// Registry maps strategy names to functions. One name is the default,
// used when an update does not name a strategy.
type Registry struct {
	mu          sync.RWMutex
	defaultName string
	strategies  map[string]Strategy
}

// NewRegistry creates a registry from entries. defaultName must be one of
// the entries.
func NewRegistry(defaultName string, entries map[string]Strategy) (*Registry, error) {
	if _, ok := entries[defaultName]; !ok {
		return nil, fmt.Errorf("default strategy %q is not among the registry entries", defaultName)
	}
	r := &Registry{
		defaultName: defaultName,
		strategies:  make(map[string]Strategy, len(entries)),
	}
	for name, s := range entries {
		r.strategies[name] = s
	}
	return r, nil
}

// DefaultRegistry returns a new registry holding the built-in strategies
// with keyValue as the default.
func DefaultRegistry() *Registry {
	r, _ := NewRegistry(DefaultStrategy, map[string]Strategy{
		StrategyKeyValue: KeyValue,
		StrategyTable:    TableStrategy,
		StrategySeries:   SeriesStrategy,
		StrategyRaw:      RawStrategy,
	})
	return r
}

// Register adds or replaces a strategy.
func (r *Registry) Register(name string, s Strategy) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.strategies[name] = s
}

// Lookup returns the strategy registered under name.
func (r *Registry) Lookup(name string) (Strategy, error) {
	r.mu.RLock()
	s, ok := r.strategies[name]
	r.mu.RUnlock()
	if !ok {
		return nil, unknownStrategyError(name, r.Names())
	}
	return s, nil
}

// Default returns the default strategy name.
func (r *Registry) Default() string {
	return r.defaultName
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.strategies))
	for name := range r.strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Field is one key/value pair of a Record.
type Field struct {
	Key   string `yaml:"key" json:"key"`
	Value any    `yaml:"value" json:"value"`
}

// Record is an ordered list of fields for the keyValue strategy.
type Record struct {
	Fields []Field `yaml:"fields" json:"fields"`
}

// Table is the model of the table strategy.
type Table struct {
	Header []string `yaml:"header,omitempty" json:"header,omitempty"`
	Rows   [][]any  `yaml:"rows" json:"rows"`
}

// Series is one entry of a legend-like tooltip.
type Series struct {
	Name  string  `yaml:"name" json:"name"`
	Value any     `yaml:"value" json:"value"`
	Color string  `yaml:"color,omitempty" json:"color,omitempty"`
	Shape string  `yaml:"shape,omitempty" json:"shape,omitempty"`
	Size  float64 `yaml:"size,omitempty" json:"size,omitempty"`
}

// SeriesSet is the model of the series strategy.
type SeriesSet struct {
	Title string   `yaml:"title,omitempty" json:"title,omitempty"`
	Items []Series `yaml:"items" json:"items"`
}

// KeyValue renders one row per field: the key followed by the separator,
// then the value. Maps are rendered in key order; scalars become a single
// value cell.
func KeyValue(model any, cfg Config, _ any) any {
	var fields []Field
	switch m := model.(type) {
	case nil:
		return []Row{}
	case Record:
		fields = m.Fields
	case *Record:
		if m == nil {
			return []Row{}
		}
		fields = m.Fields
	case map[string]any:
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fields = append(fields, Field{Key: k, Value: m[k]})
		}
	default:
		return []Row{{CellDescriptor{Value: model, ClassName: cfg.Class("value")}}}
	}

	rows := make([]Row, 0, len(fields))
	for _, f := range fields {
		rows = append(rows, Row{
			CellDescriptor{Value: f.Key + cfg.Separator, ClassName: cfg.Class("key")},
			CellDescriptor{Value: f.Value, ClassName: cfg.Class("value")},
		})
	}
	return rows
}

// TableStrategy lays a Table out in table format, with the header as the
// first row.
func TableStrategy(model any, cfg Config, _ any) any {
	var t Table
	switch m := model.(type) {
	case Table:
		t = m
	case *Table:
		if m != nil {
			t = *m
		}
	case nil:
	default:
		return Structured{
			Content:       []Row{{fmt.Sprint(model)}},
			DisplayFormat: FormatTable,
		}
	}

	rows := make([]Row, 0, len(t.Rows)+1)
	if len(t.Header) > 0 {
		header := make(Row, len(t.Header))
		for i, h := range t.Header {
			header[i] = CellDescriptor{Value: h, ClassName: cfg.Class("header")}
		}
		rows = append(rows, header)
	}
	for _, r := range t.Rows {
		rows = append(rows, Row(r))
	}
	return Structured{Content: rows, DisplayFormat: FormatTable}
}

// SeriesStrategy renders one [icon, name, value] row per series, preceded
// by a bold title row when the set has a title.
func SeriesStrategy(model any, cfg Config, _ any) any {
	var set SeriesSet
	switch m := model.(type) {
	case SeriesSet:
		set = m
	case *SeriesSet:
		if m != nil {
			set = *m
		}
	case nil:
		return []Row{}
	default:
		return []Row{{fmt.Sprint(model)}}
	}

	rows := make([]Row, 0, len(set.Items)+1)
	if set.Title != "" {
		rows = append(rows, Row{CellDescriptor{
			Value:     set.Title,
			ClassName: cfg.Class("title"),
			Style:     map[string]string{"font-weight": "bold"},
		}})
	}
	for _, s := range set.Items {
		shape := s.Shape
		if shape == "" {
			shape = "circle"
		}
		size := s.Size
		if size == 0 {
			size = cfg.IconContainerSize * cfg.IconContainerSize / 2
		}
		rows = append(rows, Row{
			Icon(shape, size, s.Color),
			CellDescriptor{Value: s.Name, ClassName: cfg.Class("key")},
			CellDescriptor{Value: s.Value, ClassName: cfg.Class("value")},
		})
	}
	return rows
}

// RawStrategy passes a string or fmt.Stringer model through as markup.
func RawStrategy(model any, _ Config, _ any) any {
	switch m := model.(type) {
	case nil:
		return []Row{}
	case string:
		return Deferred(func() string { return m })
	case fmt.Stringer:
		return Deferred(m.String)
	default:
		s := fmt.Sprint(model)
		return Deferred(func() string { return s })
	}
}
