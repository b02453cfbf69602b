package tooltip

import (
	"strconv"

	"github.com/vango-dev/tooltip/pkg/vdom"
)

// Layout builds the element tree for n. A deferred descriptor becomes a
// single raw markup node. Otherwise the rows are laid out in a content
// container keyed by the display format, each row keyed by its index so
// that successive trees diff row by row.
//
// Cell failures do not stop the layout; they are returned alongside the
// finished tree.
func Layout(n Normalized, cfg Config, cells *CellRenderer) (*vdom.VNode, []error) {
	if n.IsDeferred() {
		return vdom.Raw(n.Deferred()), nil
	}

	format := n.DisplayFormat
	if format == "" {
		format = FormatDefault
	}
	container := vdom.Div(
		vdom.Key(string(format)),
		vdom.Class(cfg.Class("content"), cfg.Class("content-"+string(format))),
		vdom.Data("display-format", string(format)),
	)

	var errs []error
	fill := func(cell *vdom.VNode, value Cell) {
		if err := cells.Render(cell, value, cfg); err != nil {
			errs = append(errs, err)
		}
	}

	if format == FormatTable {
		container.Append(tableLayout(n.Content, cfg, fill))
	} else {
		container.Append(flowLayout(n.Content, cfg, fill)...)
	}
	return container, errs
}

func tableLayout(rows []Row, cfg Config, fill func(*vdom.VNode, Cell)) *vdom.VNode {
	tbody := vdom.Tbody(vdom.Class(cfg.Class("table-tbody")))
	for i, row := range rows {
		tr := vdom.Tr(
			vdom.Key(rowKey(i)),
			vdom.Class(cfg.Class("table-row"), cfg.Class("table-row-"+strconv.Itoa(i))),
		)
		for _, value := range row {
			td := vdom.Td(vdom.Class(cfg.Class("table-cell")))
			fill(td, value)
			tr.Append(td)
		}
		tbody.Append(tr)
	}
	return vdom.Table(vdom.Class(cfg.Class("table")), tbody)
}

func flowLayout(rows []Row, cfg Config, fill func(*vdom.VNode, Cell)) []*vdom.VNode {
	cellStyle := vdom.Style{
		"display":      "inline-block",
		"margin-right": formatFloat(cfg.Spacing) + "px",
	}

	out := make([]*vdom.VNode, 0, len(rows))
	for i, row := range rows {
		div := vdom.Div(
			vdom.Key(rowKey(i)),
			vdom.Class(cfg.Class("row")),
			vdom.Styles(vdom.Style{"margin": cfg.RowMargin}),
		)
		for _, value := range row {
			span := vdom.Span(vdom.Class(cfg.Class("content")), vdom.Styles(cellStyle))
			fill(span, value)
			div.Append(span)
		}
		out = append(out, div)
	}
	return out
}

func rowKey(i int) string {
	return "row-" + strconv.Itoa(i)
}
