package vdom

import "strings"

// Text creates an escaped text node.
func Text(content string) *VNode {
	return &VNode{Kind: KindText, Text: content}
}

// Raw creates a node whose markup is written verbatim.
func Raw(html string) *VNode {
	return &VNode{Kind: KindRaw, Text: html}
}

// Fragment groups children without a wrapper element. Strings become
// text nodes; nils are dropped.
func Fragment(children ...any) *VNode {
	node := &VNode{Kind: KindFragment}
	for _, child := range children {
		switch v := child.(type) {
		case *VNode:
			if v != nil {
				node.Children = append(node.Children, v)
			}
		case []*VNode:
			for _, c := range v {
				if c != nil {
					node.Children = append(node.Children, c)
				}
			}
		case string:
			node.Children = append(node.Children, Text(v))
		}
	}
	return node
}

// TextContent concatenates the text and raw markup beneath the node.
func TextContent(v *VNode) string {
	var b strings.Builder
	v.Walk(func(n *VNode) bool {
		if n.Kind == KindText || n.Kind == KindRaw {
			b.WriteString(n.Text)
		}
		return true
	})
	return b.String()
}

// FindAll returns every element below (and including) root with the tag,
// in document order.
func FindAll(root *VNode, tag string) []*VNode {
	var found []*VNode
	root.Walk(func(n *VNode) bool {
		if n.Kind == KindElement && n.Tag == tag {
			found = append(found, n)
		}
		return true
	})
	return found
}
