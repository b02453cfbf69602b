package tooltip

import (
	"reflect"

	"github.com/vango-dev/tooltip/pkg/symbol"
	"github.com/vango-dev/tooltip/pkg/vdom"
)

// DisplayFormat selects the layout. Unrecognized values lay out as
// FormatDefault but still tag the container with their own name.
type DisplayFormat string

const (
	FormatDefault DisplayFormat = "default"
	FormatTable   DisplayFormat = "table"
)

// CellType discriminates cell descriptors.
type CellType string

// CellIcon marks a descriptor rendered as an SVG symbol.
const CellIcon CellType = "icon"

// Cell is a scalar rendered as markup, a CellDescriptor or a *CellDescriptor.
type Cell = any

// Row is an ordered sequence of cells.
type Row []Cell

// CellDescriptor describes a styled value or an icon.
type CellDescriptor struct {
	Type      CellType     `yaml:"type,omitempty" json:"type,omitempty"`
	Value     any          `yaml:"value,omitempty" json:"value,omitempty"`
	ClassName string       `yaml:"className,omitempty" json:"className,omitempty"`
	Style     vdom.Style   `yaml:"style,omitempty" json:"style,omitempty"`
	Shape     string       `yaml:"shape,omitempty" json:"shape,omitempty"`
	ShapeFunc symbol.Shape `yaml:"-" json:"-"`
	Size      float64      `yaml:"size,omitempty" json:"size,omitempty"`
	Color     string       `yaml:"color,omitempty" json:"color,omitempty"`
}

// Icon returns an icon descriptor for a registered shape.
func Icon(shape string, size float64, color string) CellDescriptor {
	return CellDescriptor{Type: CellIcon, Shape: shape, Size: size, Color: color}
}

// Deferred renders the whole tooltip body as raw markup, bypassing layout.
type Deferred func() string

// Structured pairs rows with the layout to use for them.
type Structured struct {
	Content       []Row         `yaml:"content" json:"content"`
	DisplayFormat DisplayFormat `yaml:"displayFormat,omitempty" json:"displayFormat,omitempty"`
}

// Normalized is a descriptor reduced to one of two outcomes: a deferred
// renderer, or rows with a display format.
type Normalized struct {
	Deferred      Deferred
	Content       []Row
	DisplayFormat DisplayFormat
}

// IsDeferred reports whether the descriptor bypasses layout.
func (n Normalized) IsDeferred() bool {
	return n.Deferred != nil
}

// Normalize classifies a resolved descriptor.
//
//	func() string / Deferred           -> deferred
//	Structured, *Structured            -> its content and format
//	map[string]any with "content"      -> its content and "displayFormat"
//	slice of rows                      -> content with FormatDefault
//	nil                                -> empty content with FormatDefault
//
// Anything else is ErrMalformedDescriptor.
func Normalize(descriptor any) (Normalized, error) {
	switch d := descriptor.(type) {
	case nil:
		return Normalized{DisplayFormat: FormatDefault}, nil
	case Deferred:
		if d == nil {
			return Normalized{DisplayFormat: FormatDefault}, nil
		}
		return Normalized{Deferred: d}, nil
	case func() string:
		if d == nil {
			return Normalized{DisplayFormat: FormatDefault}, nil
		}
		return Normalized{Deferred: d}, nil
	case Structured:
		return structured(d.Content, d.DisplayFormat), nil
	case *Structured:
		if d == nil {
			return Normalized{DisplayFormat: FormatDefault}, nil
		}
		return structured(d.Content, d.DisplayFormat), nil
	case []Row:
		return Normalized{Content: d, DisplayFormat: FormatDefault}, nil
	case map[string]any:
		return normalizeRecord(d)
	}

	rows, ok := rowsOf(descriptor)
	if !ok {
		return Normalized{}, malformedError("descriptor of type %T is not a row sequence", descriptor)
	}
	return Normalized{Content: rows, DisplayFormat: FormatDefault}, nil
}

func structured(rows []Row, format DisplayFormat) Normalized {
	if format == "" {
		format = FormatDefault
	}
	return Normalized{Content: rows, DisplayFormat: format}
}

// normalizeRecord handles decoded documents, e.g. {"content": [...], "displayFormat": "table"}.
func normalizeRecord(m map[string]any) (Normalized, error) {
	raw, ok := m["content"]
	if !ok {
		return Normalized{}, malformedError("structured descriptor has no content field")
	}

	var format DisplayFormat
	switch f := m["displayFormat"].(type) {
	case nil:
	case string:
		format = DisplayFormat(f)
	case DisplayFormat:
		format = f
	default:
		return Normalized{}, malformedError("displayFormat must be a string, got %T", f)
	}

	if raw == nil {
		return structured(nil, format), nil
	}
	rows, ok := rowsOf(raw)
	if !ok {
		return Normalized{}, malformedError("content of %q descriptor is %T, not a row sequence", format, raw)
	}
	return structured(rows, format), nil
}

// rowsOf converts any slice of slices into rows.
func rowsOf(v any) ([]Row, bool) {
	switch rows := v.(type) {
	case []Row:
		return rows, true
	case [][]any:
		out := make([]Row, len(rows))
		for i, r := range rows {
			out[i] = Row(r)
		}
		return out, true
	}

	rv := reflect.ValueOf(v)
	if !isSequence(rv) {
		return nil, false
	}
	out := make([]Row, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		row, ok := rowOf(rv.Index(i))
		if !ok {
			return nil, false
		}
		out = append(out, row)
	}
	return out, true
}

func rowOf(rv reflect.Value) (Row, bool) {
	for rv.Kind() == reflect.Interface || rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	if r, ok := rv.Interface().(Row); ok {
		return r, true
	}
	if !isSequence(rv) {
		return nil, false
	}
	row := make(Row, rv.Len())
	for i := range row {
		row[i] = rv.Index(i).Interface()
	}
	return row, true
}

// isSequence reports whether v is an ordered sequence. Strings and byte
// slices are scalars.
func isSequence(rv reflect.Value) bool {
	if !rv.IsValid() {
		return false
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv.Type().Elem().Kind() != reflect.Uint8
	}
	return false
}
