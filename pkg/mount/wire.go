package mount

import "fmt"

// WirePatch is the JSON form of a patch sent to browsers.
type WirePatch struct {
	Op     string `json:"op"`
	HID    string `json:"hid,omitempty"`
	Key    string `json:"key,omitempty"`
	Value  string `json:"value,omitempty"`
	HTML   string `json:"html,omitempty"`
	Index  int    `json:"index,omitempty"`
	Parent string `json:"parent,omitempty"`
}

// Frame is one message of the live-update stream.
type Frame struct {
	Revision uint64      `json:"revision"`
	Full     bool        `json:"full,omitempty"`
	HTML     string      `json:"html,omitempty"`
	Patches  []WirePatch `json:"patches,omitempty"`
}

// Frame encodes u. Full updates become a snapshot of the current tree;
// other updates carry patches whose nodes are rendered to HTML. A SetHTML
// patch with a node carries the element's new inner markup in HTML.
func (c *Container) Frame(u Update) (Frame, error) {
	if u.Full {
		return c.Snapshot()
	}

	f := Frame{Revision: u.Revision}

	f.Patches = make([]WirePatch, 0, len(u.Patches))
	for _, p := range u.Patches {
		wp := WirePatch{
			Op:     p.Op.String(),
			HID:    p.HID,
			Key:    p.Key,
			Value:  p.Value,
			Index:  p.Index,
			Parent: p.ParentID,
		}
		if p.Node != nil {
			html, err := c.RenderNode(p.Node)
			if err != nil {
				return Frame{}, fmt.Errorf("encode %s patch: %w", wp.Op, err)
			}
			wp.HTML = html
		}
		f.Patches = append(f.Patches, wp)
	}
	return f, nil
}

// Snapshot returns a full frame for the current tree, used when a client
// first connects or cannot be caught up from history.
func (c *Container) Snapshot() (Frame, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	html, err := c.renderer.RenderToString(c.tree)
	if err != nil {
		return Frame{}, err
	}
	return Frame{Revision: c.revision, Full: true, HTML: html}, nil
}
