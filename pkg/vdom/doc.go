// Package vdom provides the in-memory element tree that tooltip content is
// built into.
//
// A VNode represents an element, a text node, a fragment, or a block of raw
// markup. Element factories take variadic arguments so trees read the way
// they render:
//
//	Div(Class("muze-tooltip-row"), Key("row-0"),
//	    Span(Class("muze-tooltip-content"), Raw("a")),
//	)
//
// # Styles and classes
//
// Style is an attribute value holding CSS declarations. MergeStyle overlays
// declarations onto an element and AddClass appends class names, which is
// how cell descriptors decorate cells after the layout created them.
//
// # Diffing
//
// Diff compares two trees and returns the Patch operations that turn the
// first into the second. Children carrying a Key are reconciled by key, so a
// tooltip that re-renders with the same rows updates in place.
package vdom
