package render

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/vango-dev/tooltip/pkg/vdom"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty puts block elements on their own indented lines.
	Pretty bool

	// Indent is one level of indentation in pretty mode. Default: two spaces.
	Indent string

	// IncludeHIDs writes node IDs as data-hid attributes so a client can
	// apply patches produced by vdom.Diff.
	IncludeHIDs bool
}

// Renderer renders VNode trees to HTML. It holds no state between calls
// and may be shared.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a Renderer.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// RenderToString renders node to a string.
func (r *Renderer) RenderToString(node *vdom.VNode) (string, error) {
	var b strings.Builder
	if err := r.RenderToWriter(&b, node); err != nil {
		return "", err
	}
	return b.String(), nil
}

// RenderToWriter streams node to w. Rendering stops at the first write
// error.
func (r *Renderer) RenderToWriter(w io.Writer, node *vdom.VNode) error {
	hw := &htmlWriter{w: w, config: r.config}
	hw.node(node, 0)
	return hw.err
}

// htmlWriter keeps the first error so the tree walk stays linear.
type htmlWriter struct {
	w      io.Writer
	config RendererConfig
	err    error
}

func (hw *htmlWriter) write(parts ...string) {
	for _, s := range parts {
		if hw.err != nil {
			return
		}
		_, hw.err = io.WriteString(hw.w, s)
	}
}

func (hw *htmlWriter) indent(depth int) {
	if depth > 0 {
		hw.write(strings.Repeat(hw.config.Indent, depth))
	}
}

func (hw *htmlWriter) node(n *vdom.VNode, depth int) {
	if n == nil || hw.err != nil {
		return
	}
	switch n.Kind {
	case vdom.KindElement:
		hw.element(n, depth)
	case vdom.KindText:
		hw.write(EscapeHTML(n.Text))
	case vdom.KindRaw:
		hw.write(n.Text)
	case vdom.KindFragment:
		for _, c := range n.Children {
			hw.node(c, depth)
		}
	default:
		hw.err = fmt.Errorf("render: unknown node kind %d", n.Kind)
	}
}

func (hw *htmlWriter) element(n *vdom.VNode, depth int) {
	pretty := hw.config.Pretty && !isInlineElement(n.Tag)
	if pretty {
		hw.indent(depth)
	}

	hw.write("<", n.Tag)
	hw.attributes(n)
	hw.write(">")

	if isVoidElement(n.Tag) {
		if pretty {
			hw.write("\n")
		}
		return
	}

	block := pretty && hasElementChildren(n)
	if block {
		hw.write("\n")
	}
	for _, c := range n.Children {
		hw.node(c, depth+1)
	}
	if block {
		hw.indent(depth)
	}

	hw.write("</", n.Tag, ">")
	if pretty {
		hw.write("\n")
	}
}

// attributes writes data-hid first, then the remaining attributes in
// name order. Empty values and false boolean attributes are omitted.
func (hw *htmlWriter) attributes(n *vdom.VNode) {
	if hw.config.IncludeHIDs && n.HID != "" {
		hw.write(` data-hid="`, escapeAttr(n.HID), `"`)
	}

	names := make([]string, 0, len(n.Props))
	for name := range n.Props {
		if name != "key" && !strings.HasPrefix(name, "_") {
			names = append(names, name)
		}
	}
	slices.Sort(names)

	for _, name := range names {
		value := n.Props[name]
		if b, ok := value.(bool); ok && isBooleanAttr(name) {
			if b {
				hw.write(" ", name)
			}
			continue
		}
		if s := vdom.AttrValue(value); s != "" {
			hw.write(" ", name, `="`, escapeAttr(s), `"`)
		}
	}
}

func hasElementChildren(n *vdom.VNode) bool {
	return slices.ContainsFunc(n.Children, func(c *vdom.VNode) bool {
		return c != nil && c.Kind == vdom.KindElement
	})
}
