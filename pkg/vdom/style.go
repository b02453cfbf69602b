package vdom

import (
	"sort"
	"strings"
)

// Style holds CSS declarations keyed by property name.
type Style map[string]string

// String serializes the declarations sorted by property name.
func (s Style) String() string {
	if len(s) == 0 {
		return ""
	}
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(s[k])
		b.WriteByte(';')
	}
	return b.String()
}

// ParseStyle parses "a: b; c: d" declarations. Malformed declarations are skipped.
func ParseStyle(css string) Style {
	s := Style{}
	for _, decl := range strings.Split(css, ";") {
		name, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		value = strings.TrimSpace(value)
		if name == "" {
			continue
		}
		s[name] = value
	}
	return s
}

// GetStyle returns the element's style declarations, or nil.
func GetStyle(v *VNode) Style {
	if v == nil || v.Props == nil {
		return nil
	}
	switch s := v.Props["style"].(type) {
	case Style:
		return s
	case string:
		return ParseStyle(s)
	}
	return nil
}

// MergeStyle overlays declarations onto the element's existing style.
// An empty value removes the declaration.
func MergeStyle(v *VNode, overlay Style) {
	if v == nil || len(overlay) == 0 {
		return
	}
	if v.Props == nil {
		v.Props = make(Props)
	}
	merged := Style{}
	for k, val := range GetStyle(v) {
		merged[k] = val
	}
	for k, val := range overlay {
		if val == "" {
			delete(merged, k)
			continue
		}
		merged[k] = val
	}
	if len(merged) == 0 {
		delete(v.Props, "style")
		return
	}
	v.Props["style"] = merged
}

// Classes returns the element's class names in order.
func Classes(v *VNode) []string {
	if v == nil || v.Props == nil {
		return nil
	}
	s, _ := v.Props["class"].(string)
	return strings.Fields(s)
}

// HasClass reports whether the element carries the class.
func HasClass(v *VNode, class string) bool {
	for _, c := range Classes(v) {
		if c == class {
			return true
		}
	}
	return false
}

// AddClass appends class names to the element, skipping ones already present.
func AddClass(v *VNode, classes ...string) {
	if v == nil {
		return
	}
	if v.Props == nil {
		v.Props = make(Props)
	}
	current := Classes(v)
	for _, c := range classes {
		for _, name := range strings.Fields(c) {
			if !contains(current, name) {
				current = append(current, name)
			}
		}
	}
	if len(current) > 0 {
		v.Props["class"] = strings.Join(current, " ")
	}
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
