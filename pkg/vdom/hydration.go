package vdom

import (
	"strconv"
	"sync/atomic"
)

// HIDGenerator hands out element IDs ("h1", "h2", ...). It is safe for
// concurrent use.
type HIDGenerator struct {
	counter atomic.Uint64
}

// NewHIDGenerator creates a generator starting at h1.
func NewHIDGenerator() *HIDGenerator {
	return &HIDGenerator{}
}

// Next returns a fresh ID.
func (g *HIDGenerator) Next() string {
	return "h" + strconv.FormatUint(g.counter.Add(1), 10)
}

// Reset restarts numbering at h1.
func (g *HIDGenerator) Reset() {
	g.counter.Store(0)
}

// AssignAllHIDs gives every element a fresh ID.
func AssignAllHIDs(node *VNode, gen *HIDGenerator) {
	assignHIDs(node, gen, true)
}

// AssignMissingHIDs gives IDs to elements that have none, leaving IDs
// carried over by Diff untouched.
func AssignMissingHIDs(node *VNode, gen *HIDGenerator) {
	assignHIDs(node, gen, false)
}

func assignHIDs(node *VNode, gen *HIDGenerator, overwrite bool) {
	node.Walk(func(n *VNode) bool {
		if n.Kind == KindElement && (overwrite || n.HID == "") {
			n.HID = gen.Next()
		}
		return true
	})
}

// FindByHID returns the node with the ID, or nil.
func FindByHID(node *VNode, hid string) *VNode {
	var found *VNode
	node.Walk(func(n *VNode) bool {
		if n.HID == hid {
			found = n
		}
		return found == nil
	})
	return found
}

// ClearHIDs removes all IDs from the tree.
func ClearHIDs(node *VNode) {
	node.Walk(func(n *VNode) bool {
		n.HID = ""
		return true
	})
}
