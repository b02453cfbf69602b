// Package termview prints a normalized tooltip to a terminal.
//
// Table-format tooltips are drawn with lipgloss/table; default-format
// rows are printed one per line with cells separated by spaces derived
// from the configured spacing. Icons become glyphs colored with their
// fill color when the terminal supports color.
package termview
