// Package symbol generates SVG path data for the small glyphs drawn next to
// tooltip values.
//
// Shapes follow the d3 symbol conventions: the glyph is centered on the
// origin and size is its approximate area in square pixels. Callers translate
// the path to wherever the glyph should sit.
//
//	shape, err := symbol.Default().Lookup("circle")
//	d := shape.Path(64)
package symbol
