package mount

import (
	"sync"

	"github.com/vango-dev/tooltip/pkg/render"
	"github.com/vango-dev/tooltip/pkg/vdom"
)

// Options configures a Container.
type Options struct {
	// IncludeHIDs adds data-hid attributes to HTML output so that patches
	// can be applied to it.
	IncludeHIDs bool

	// Pretty indents HTML output.
	Pretty bool
}

// Update is published to subscribers after each Replace.
type Update struct {
	Revision uint64
	Patches  []vdom.Patch

	// Full is set when the change cannot be expressed as patches: there
	// was no previous tree, or either root is not an element (deferred
	// markup). Subscribers re-read the whole HTML instead.
	Full bool
}

// Container is a tooltip.Mount that retains the current tree. It is safe
// for concurrent use.
type Container struct {
	mu       sync.Mutex
	tree     *vdom.VNode
	patches  []vdom.Patch
	revision uint64
	hids     *vdom.HIDGenerator
	renderer *render.Renderer
	subs     map[int]func(Update)
	nextSub  int
}

// NewContainer creates an empty container.
func NewContainer(opts Options) *Container {
	return &Container{
		hids: vdom.NewHIDGenerator(),
		renderer: render.NewRenderer(render.RendererConfig{
			Pretty:      opts.Pretty,
			IncludeHIDs: opts.IncludeHIDs,
		}),
		subs: make(map[int]func(Update)),
	}
}

// Replace installs node as the container's content.
func (c *Container) Replace(node *vdom.VNode) {
	c.mu.Lock()
	prev := c.tree
	var u Update
	if isElement(prev) && isElement(node) {
		u.Patches = vdom.Diff(prev, node)
		vdom.AssignMissingHIDs(node, c.hids)
	} else {
		u.Full = true
		vdom.AssignAllHIDs(node, c.hids)
	}
	c.tree = node
	c.patches = u.Patches
	c.revision++
	u.Revision = c.revision

	subs := make([]func(Update), 0, len(c.subs))
	for _, fn := range c.subs {
		subs = append(subs, fn)
	}
	c.mu.Unlock()

	for _, fn := range subs {
		fn(u)
	}
}

// Subscribe registers fn to be called after every Replace, outside the
// container's lock. The returned function removes the subscription.
func (c *Container) Subscribe(fn func(Update)) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}

// Tree returns the current tree. Callers must not modify it.
func (c *Container) Tree() *vdom.VNode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tree
}

// Patches returns the patches computed by the last Replace. It is empty
// after a full replacement.
func (c *Container) Patches() []vdom.Patch {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]vdom.Patch(nil), c.patches...)
}

// Revision counts Replace calls.
func (c *Container) Revision() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.revision
}

// HTML renders the current tree.
func (c *Container) HTML() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.renderer.RenderToString(c.tree)
}

// RenderNode renders a node with the container's options, e.g. the node of
// an insert or replace patch.
func (c *Container) RenderNode(node *vdom.VNode) (string, error) {
	return c.renderer.RenderToString(node)
}

// Reset drops the current tree and restarts node IDs.
func (c *Container) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tree = nil
	c.patches = nil
	c.hids.Reset()
}

func isElement(n *vdom.VNode) bool {
	return n != nil && n.Kind == vdom.KindElement
}
