package vdom

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement  VKind = iota // <div>, <td>, <svg>, ...
	KindText                  // Plain text node
	KindFragment              // Grouping without wrapper
	KindRaw                   // Raw markup, written verbatim
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// VNode is a node of the element tree.
type VNode struct {
	Kind     VKind    // Node type
	Tag      string   // Element tag name (e.g., "div")
	Props    Props    // Attributes
	Children []*VNode // Child nodes
	Key      string   // Reconciliation key
	Text     string   // For KindText and KindRaw
	HID      string   // Stable node ID assigned by the mount
}

// Props holds element attributes.
type Props map[string]any

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// Clear removes all children of the node.
func (v *VNode) Clear() {
	if v == nil {
		return
	}
	v.Children = v.Children[:0]
}

// Append adds children to the node, skipping nils.
func (v *VNode) Append(children ...*VNode) {
	for _, child := range children {
		if child != nil {
			v.Children = append(v.Children, child)
		}
	}
}

// Walk visits the node and all of its descendants in document order.
// Returning false from fn stops descent into that node's children.
func (v *VNode) Walk(fn func(*VNode) bool) {
	if v == nil {
		return
	}
	if !fn(v) {
		return
	}
	for _, child := range v.Children {
		child.Walk(fn)
	}
}
