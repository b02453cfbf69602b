// Package tooltip renders the content body of a chart tooltip.
//
// A Content value owns the tooltip state: the data model, the name of the
// strategy that turns the model into rows, an optional formatter that takes
// precedence over the strategy, a caller-supplied context and the tooltip
// Config. Rendering runs a fixed pipeline:
//
//	resolve   model slice  -> the model itself (caller pre-built the rows)
//	          formatter    -> formatter(model, ctx)
//	          otherwise    -> strategy(model, cfg, ctx)
//	normalize descriptor   -> Deferred | Structured | bare rows
//	layout    rows         -> table or default (flow) element tree
//	cells     each cell    -> scalar markup, styled value or SVG icon
//
// The finished tree is handed to a Mount, which the caller owns. The
// pkg/mount package provides a Mount that keeps the current tree and diffs
// consecutive renders so repeated calls update in place.
//
// Content is not safe for concurrent use. Hosts serialize calls, typically
// one render per pointer event.
//
// # Example
//
//	c := tooltip.NewContent()
//	c.Update(tooltip.Item{Model: [][]any{{"a", "b"}, {"c"}}})
//	if err := c.Render(container); err != nil {
//	    return err
//	}
package tooltip
