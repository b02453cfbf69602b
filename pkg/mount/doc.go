// Package mount provides a tooltip mount that keeps the rendered tree.
//
// A Container receives a fresh tree on every tooltip render. It diffs the
// tree against the previous one, carries node IDs over for elements that
// survived (matched by row key), and records the patches needed to bring
// a live copy of the previous tree up to date. The preview server forwards
// those patches to browsers; the CLI only reads HTML.
//
//	c := mount.NewContainer(mount.Options{IncludeHIDs: true})
//	content.Render(c)
//	html, _ := c.HTML()
//	patches := c.Patches()
package mount
