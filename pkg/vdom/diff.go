package vdom

import (
	"fmt"
	"slices"
	"strconv"
)

// Diff returns the patches that turn prev into next. HIDs of matched
// nodes are copied from prev to next, so next can be diffed against in
// turn once its new nodes have IDs (see AssignMissingHIDs).
func Diff(prev, next *VNode) []Patch {
	d := &differ{}
	d.node(prev, next, "")
	return d.patches
}

// differ accumulates patches for one Diff call.
type differ struct {
	patches []Patch
}

func (d *differ) emit(p Patch) {
	d.patches = append(d.patches, p)
}

// node compares a matched pair. enclosing is the HID of the nearest
// element, the target for changes to nodes that have no ID of their own.
func (d *differ) node(prev, next *VNode, enclosing string) {
	switch {
	case prev == nil:
		// Insertions are emitted by the parent, which knows the index.
		return
	case next == nil:
		d.emit(Patch{Op: PatchRemoveNode, HID: prev.HID})
		return
	case replaced(prev, next):
		d.emit(Patch{Op: PatchReplaceNode, HID: prev.HID, Node: next})
		return
	}

	next.HID = prev.HID
	switch prev.Kind {
	case KindElement:
		d.attrs(prev, next)
		if rewrites(prev.Children, next.Children) {
			d.emit(Patch{Op: PatchSetHTML, HID: prev.HID, Node: Fragment(next.Children)})
			return
		}
		d.children(prev, next, prev.HID)
	case KindFragment:
		d.children(prev, next, enclosing)
	case KindText:
		if prev.Text != next.Text && enclosing != "" {
			d.emit(Patch{Op: PatchSetText, HID: enclosing, Value: next.Text})
		}
	case KindRaw:
		d.raw(prev, next, enclosing)
	}
}

// raw handles markup nodes. A raw node has no ID, so a change rewrites
// the enclosing element's inner markup; raw nodes are expected to be
// their parent's only child.
func (d *differ) raw(prev, next *VNode, enclosing string) {
	if prev.Text == next.Text {
		return
	}
	switch {
	case prev.HID != "":
		d.emit(Patch{Op: PatchReplaceNode, HID: prev.HID, Node: next})
	case enclosing != "":
		d.emit(Patch{Op: PatchSetHTML, HID: enclosing, Value: next.Text})
	}
}

// attrs emits attribute changes in key order.
func (d *differ) attrs(prev, next *VNode) {
	keys := make([]string, 0, len(prev.Props)+len(next.Props))
	for k := range prev.Props {
		keys = append(keys, k)
	}
	for k := range next.Props {
		if _, seen := prev.Props[k]; !seen {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)

	for _, k := range keys {
		if k == "key" {
			continue
		}
		before, had := prev.Props[k]
		after, has := next.Props[k]
		switch {
		case !has:
			d.emit(Patch{Op: PatchRemoveAttr, HID: prev.HID, Key: k})
		case !had || AttrValue(before) != AttrValue(after):
			d.emit(Patch{Op: PatchSetAttr, HID: prev.HID, Key: k, Value: AttrValue(after)})
		}
	}
}

// children matches child lists by key when any child is keyed, by
// position otherwise.
func (d *differ) children(prev, next *VNode, enclosing string) {
	if keyed(prev.Children) || keyed(next.Children) {
		d.keyedChildren(prev, next, enclosing)
		return
	}

	for i := 0; i < max(len(prev.Children), len(next.Children)); i++ {
		switch {
		case i >= len(prev.Children):
			d.emit(Patch{Op: PatchInsertNode, ParentID: prev.HID, Index: i, Node: next.Children[i]})
		case i >= len(next.Children):
			d.emit(Patch{Op: PatchRemoveNode, HID: prev.Children[i].HID})
		default:
			d.node(prev.Children[i], next.Children[i], enclosing)
		}
	}
}

func (d *differ) keyedChildren(prev, next *VNode, enclosing string) {
	index := make(map[string]int, len(prev.Children))
	for i, c := range prev.Children {
		if c != nil && c.Key != "" {
			index[c.Key] = i
		}
	}

	used := make([]bool, len(prev.Children))
	for i, c := range next.Children {
		j, found := -1, false
		if c != nil && c.Key != "" {
			j, found = index[c.Key]
		}
		if !found {
			d.emit(Patch{Op: PatchInsertNode, ParentID: prev.HID, Index: i, Node: c})
			continue
		}

		used[j] = true
		if j != i {
			d.emit(Patch{Op: PatchMoveNode, HID: prev.Children[j].HID, ParentID: prev.HID, Index: i})
		}
		d.node(prev.Children[j], c, enclosing)
	}

	for j, c := range prev.Children {
		if !used[j] {
			d.emit(Patch{Op: PatchRemoveNode, HID: c.HID})
		}
	}
}

func replaced(prev, next *VNode) bool {
	return prev.Kind != next.Kind || prev.Key != next.Key ||
		(prev.Kind == KindElement && prev.Tag != next.Tag)
}

// rewrites reports whether a child list changes in a way ID-addressed
// patches cannot express: a node without an ID is replaced, inserted,
// moved or removed, or an element is replaced by a non-element. The
// parent's inner markup is then rewritten as a whole.
func rewrites(prev, next []*VNode) bool {
	if keyed(prev) || keyed(next) {
		return rewritesKeyed(prev, next)
	}
	for i := 0; i < max(len(prev), len(next)); i++ {
		var p, n *VNode
		if i < len(prev) {
			p = prev[i]
		}
		if i < len(next) {
			n = next[i]
		}
		if rewritesPair(p, n) {
			return true
		}
	}
	return false
}

func rewritesKeyed(prev, next []*VNode) bool {
	byKey := make(map[string]*VNode, len(prev))
	for _, p := range prev {
		if p == nil {
			continue
		}
		if p.HID == "" {
			return true
		}
		if p.Key != "" {
			byKey[p.Key] = p
		}
	}
	for _, n := range next {
		if n == nil {
			continue
		}
		p, found := byKey[n.Key]
		if n.Key == "" || !found {
			if n.Kind != KindElement {
				return true
			}
			continue
		}
		if rewritesPair(p, n) {
			return true
		}
	}
	return false
}

func rewritesPair(p, n *VNode) bool {
	switch {
	case p == nil && n == nil:
		return false
	case p == nil:
		return n.Kind != KindElement
	case n == nil:
		return p.HID == ""
	case replaced(p, n):
		return p.HID == "" || n.Kind != KindElement
	case p.Kind == KindFragment:
		return len(p.Children) != len(n.Children) || rewrites(p.Children, n.Children)
	}
	return false
}

func keyed(nodes []*VNode) bool {
	return slices.ContainsFunc(nodes, func(n *VNode) bool {
		return n != nil && n.Key != ""
	})
}

// AttrValue converts an attribute value to the text written to HTML.
func AttrValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case Style:
		return val.String()
	case fmt.Stringer:
		return val.String()
	}
	return fmt.Sprint(v)
}
