package preview

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vango-dev/tooltip/pkg/mount"
	"github.com/vango-dev/tooltip/pkg/telemetry"
)

const writeTimeout = 5 * time.Second

// hub fans frames out to connected browsers. Its lock is held while
// frames are written so that every client sees revisions in order.
type hub struct {
	mu        sync.Mutex
	clients   map[*websocket.Conn]bool
	upgrader  websocket.Upgrader
	container *mount.Container
	history   *mount.History
	recorder  *telemetry.Recorder
	logger    *slog.Logger
}

func newHub(container *mount.Container, history *mount.History, recorder *telemetry.Recorder,
	checkOrigin func(*http.Request) bool, logger *slog.Logger) *hub {
	if checkOrigin == nil {
		checkOrigin = SameOriginCheck
	}
	return &hub{
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     checkOrigin,
		},
		container: container,
		history:   history,
		recorder:  recorder,
		logger:    logger,
	}
}

// SameOriginCheck accepts requests without an Origin header and requests
// whose Origin host matches the Host header.
func SameOriginCheck(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	originURL, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return r.Host != "" && originURL.Host == r.Host
}

// publish records f and sends it to every client.
func (h *hub) publish(f mount.Frame) {
	data, err := json.Marshal(f)
	if err != nil {
		h.logger.Error("encode frame", "revision", f.Revision, "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.history.Add(f)
	for conn := range h.clients {
		if err := write(conn, data); err != nil {
			h.logger.Debug("drop live client", "remote", conn.RemoteAddr().String(), "error", err)
			h.removeLocked(conn)
			continue
		}
		h.recorder.RecordPatches(len(f.Patches))
	}
}

// serveWS upgrades the request and streams frames until the client goes
// away.
func (h *hub) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Debug("websocket upgrade failed", "error", err)
		return
	}

	if err := h.attach(conn, r.URL.Query().Get("since")); err != nil {
		h.logger.Debug("websocket catch-up failed", "error", err)
		conn.Close()
		return
	}

	// Clients never send anything meaningful; reading detects closure.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.mu.Lock()
	h.removeLocked(conn)
	h.mu.Unlock()
}

// attach brings conn up to date and registers it. since is the last
// revision the client applied, or empty for a fresh page.
func (h *hub) attach(conn *websocket.Conn, since string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	frames, err := h.catchUp(since)
	if err != nil {
		return err
	}
	for _, f := range frames {
		data, err := json.Marshal(f)
		if err != nil {
			return err
		}
		if err := write(conn, data); err != nil {
			return err
		}
	}

	h.clients[conn] = true
	h.recorder.ClientConnected()
	return nil
}

func (h *hub) catchUp(since string) ([]mount.Frame, error) {
	if since != "" {
		if rev, err := strconv.ParseUint(since, 10, 64); err == nil {
			if frames, ok := h.history.Since(rev); ok {
				return frames, nil
			}
		}
	}
	snap, err := h.container.Snapshot()
	if err != nil {
		return nil, err
	}
	return []mount.Frame{snap}, nil
}

func (h *hub) removeLocked(conn *websocket.Conn) {
	if !h.clients[conn] {
		return
	}
	delete(h.clients, conn)
	h.recorder.ClientDisconnected()
	conn.Close()
}

// count returns the number of connected clients.
func (h *hub) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// close disconnects every client.
func (h *hub) close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		h.removeLocked(conn)
	}
}

func write(conn *websocket.Conn, data []byte) error {
	conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return conn.WriteMessage(websocket.TextMessage, data)
}
