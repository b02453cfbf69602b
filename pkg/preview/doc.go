// Package preview serves a tooltip over HTTP and pushes changes to open
// browsers.
//
// The server owns one tooltip.Content and renders it into a
// mount.Container. Every render is diffed against the previous tree and
// the patches are broadcast as JSON frames over a WebSocket, so an open
// page updates in place when a document is PUT or the config is patched.
//
// Routes:
//
//	GET    /          preview page with live updates
//	GET    /tooltip   current tooltip markup
//	PUT    /tooltip   load a tooltip document (YAML or JSON)
//	DELETE /tooltip   clear the model
//	PATCH  /config    merge a config partial
//	POST   /snapshot  publish the current markup to the snapshot store
//	GET    /ws        live-update stream; ?since=<revision> resumes
//	GET    /metrics   Prometheus metrics
//	GET    /healthz   liveness
//
// A client that reconnects with ?since=N receives the frames it missed
// from a bounded history, or a full frame when the history no longer
// reaches back to N.
package preview
