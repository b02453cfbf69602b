// Package render serializes vdom trees into HTML.
//
// Text nodes and attribute values are escaped. Raw nodes are written
// verbatim, which is how tooltip cells carry caller-supplied markup:
// escaping user data before it reaches a cell is the caller's job.
//
//	r := render.NewRenderer(render.RendererConfig{})
//	html, err := r.RenderToString(node)
//
// Attributes are written in sorted order so the same tree always produces
// the same bytes. Style attribute values (vdom.Style) are serialized as
// sorted CSS declarations.
package render
