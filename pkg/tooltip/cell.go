package tooltip

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/vango-dev/tooltip/pkg/symbol"
	"github.com/vango-dev/tooltip/pkg/vdom"
)

// CellRenderer fills cell elements. Its failures are confined to the cell
// being rendered.
type CellRenderer struct {
	symbols *symbol.Registry
	logger  *slog.Logger
}

// NewCellRenderer creates a cell renderer resolving icon names in symbols.
// Nil arguments select symbol.Default() and slog.Default().
func NewCellRenderer(symbols *symbol.Registry, logger *slog.Logger) *CellRenderer {
	if symbols == nil {
		symbols = symbol.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CellRenderer{symbols: symbols, logger: logger}
}

// Render replaces the children of cell with value. The returned error, if
// any, describes an icon that could not be drawn; the cell still holds an
// empty icon container.
func (r *CellRenderer) Render(cell *vdom.VNode, value Cell, cfg Config) error {
	cell.Clear()

	d, ok := AsDescriptor(value)
	if !ok {
		cell.Append(vdom.Raw(markup(value)))
		return nil
	}
	if d.Type == CellIcon {
		return r.renderIcon(cell, d, cfg)
	}

	cell.Append(vdom.Raw(markup(d.Value)))
	if d.ClassName != "" {
		vdom.AddClass(cell, d.ClassName)
	}
	vdom.MergeStyle(cell, d.Style)
	return nil
}

func (r *CellRenderer) renderIcon(cell *vdom.VNode, d CellDescriptor, cfg Config) error {
	side := cfg.IconContainerSize
	px := formatFloat(side) + "px"
	svg := vdom.Svg(
		vdom.X(0),
		vdom.Y(0),
		vdom.Width(side),
		vdom.Height(side),
		vdom.Styles(vdom.Style{"width": px, "height": px}),
	)
	cell.Append(svg)

	shape := d.ShapeFunc
	if shape == nil {
		var err error
		shape, err = r.symbols.Lookup(d.Shape)
		if err != nil {
			err = unknownShapeError(err)
			r.logger.Warn("tooltip icon skipped", "shape", d.Shape, "error", err)
			return err
		}
	}

	center := formatFloat(side / 2)
	path := vdom.Path(
		vdom.D(shape.Path(d.Size)),
		vdom.Transform("translate("+center+", "+center+")"),
	)
	if d.Color != "" {
		vdom.MergeStyle(path, vdom.Style{"fill": d.Color})
	}
	svg.Append(path)
	return nil
}

// AsDescriptor recognizes descriptor values, including decoded maps with
// at least one descriptor key.
func AsDescriptor(value Cell) (CellDescriptor, bool) {
	switch v := value.(type) {
	case CellDescriptor:
		return v, true
	case *CellDescriptor:
		if v == nil {
			return CellDescriptor{}, false
		}
		return *v, true
	case map[string]any:
		return descriptorFromMap(v)
	}
	return CellDescriptor{}, false
}

func descriptorFromMap(m map[string]any) (CellDescriptor, bool) {
	var d CellDescriptor
	found := false
	if t, ok := m["type"].(string); ok {
		d.Type = CellType(t)
		found = true
	}
	if v, ok := m["value"]; ok {
		d.Value = v
		found = true
	}
	if c, ok := m["className"].(string); ok {
		d.ClassName = c
		found = true
	}
	if s, ok := m["shape"].(string); ok {
		d.Shape = s
		found = true
	}
	if c, ok := m["color"].(string); ok {
		d.Color = c
		found = true
	}
	switch size := m["size"].(type) {
	case float64:
		d.Size = size
	case int:
		d.Size = float64(size)
	}
	switch style := m["style"].(type) {
	case map[string]any:
		d.Style = vdom.Style{}
		for k, v := range style {
			d.Style[k] = fmt.Sprint(v)
		}
		found = true
	case map[string]string:
		d.Style = vdom.Style(style)
		found = true
	case string:
		d.Style = vdom.ParseStyle(style)
		found = true
	}
	return d, found
}

// FormatValue renders a scalar cell value as text.
func FormatValue(v any) string {
	return markup(v)
}

// markup renders a scalar as cell content. Scalars are raw markup; callers
// escape user data before it reaches a cell.
func markup(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return formatFloat(val)
	case float32:
		return formatFloat(float64(val))
	}
	return fmt.Sprint(v)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
