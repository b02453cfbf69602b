package vdom

import (
	"fmt"
	"strings"
)

// attr creates an Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// A creates an arbitrary attribute.
func A(key string, value any) Attr { return attr(key, value) }

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// StyleAttr sets the style attribute from a CSS declaration string.
func StyleAttr(style string) Attr { return attr("style", ParseStyle(style)) }

// Styles sets style declarations from a map.
func Styles(s Style) Attr { return attr("style", s) }

// Data creates a data-* attribute.
// Example: Data("id", "123") → data-id="123"
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Key creates a key attribute for reconciliation.
// The key is converted to a string using fmt.Sprintf.
func Key(key any) Attr {
	return attr("key", fmt.Sprintf("%v", key))
}

// Width sets the width attribute.
func Width(w any) Attr { return attr("width", w) }

// Height sets the height attribute.
func Height(h any) Attr { return attr("height", h) }

// SVG attributes

// D sets the path data of an SVG path.
func D(path string) Attr { return attr("d", path) }

// Transform sets an SVG transform.
func Transform(t string) Attr { return attr("transform", t) }

// X sets the x coordinate of an SVG element.
func X(x any) Attr { return attr("x", x) }

// Y sets the y coordinate of an SVG element.
func Y(y any) Attr { return attr("y", y) }
