package mount

import "sync"

// History is a ring buffer of recent frames, used to catch up clients
// that reconnect after missing a few revisions.
type History struct {
	mu       sync.RWMutex
	entries  []*Frame
	head     int
	count    int
	capacity int
	minRev   uint64
	maxRev   uint64
}

// DefaultHistorySize is used when NewHistory is given a non-positive capacity.
const DefaultHistorySize = 64

// NewHistory creates a history holding up to capacity frames.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultHistorySize
	}
	return &History{
		entries:  make([]*Frame, capacity),
		capacity: capacity,
	}
}

// Add stores a frame. Full frames reset the history: nothing before them
// can be replayed on top of them.
func (h *History) Add(f Frame) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if f.Full {
		h.clearLocked()
	}

	entry := f
	h.entries[h.head] = &entry
	h.head = (h.head + 1) % h.capacity
	if h.count < h.capacity {
		h.count++
	}

	h.maxRev = f.Revision
	if h.count == 1 {
		h.minRev = f.Revision
	} else if h.count == h.capacity {
		if oldest := h.entries[h.head]; oldest != nil {
			h.minRev = oldest.Revision
		}
	}
}

// Since returns the frames after revision rev, oldest first. ok is false
// when the history cannot bridge the gap and the client needs a snapshot.
func (h *History) Since(rev uint64) (frames []Frame, ok bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if rev == h.maxRev && h.count > 0 {
		return nil, true
	}
	if h.count == 0 || rev > h.maxRev || rev+1 < h.minRev {
		return nil, false
	}

	byRev := make(map[uint64]Frame, h.count)
	for i := 0; i < h.count; i++ {
		idx := (h.head - h.count + i + h.capacity) % h.capacity
		if e := h.entries[idx]; e != nil {
			byRev[e.Revision] = *e
		}
	}

	for r := rev + 1; r <= h.maxRev; r++ {
		f, found := byRev[r]
		if !found {
			return nil, false
		}
		frames = append(frames, f)
	}
	return frames, true
}

// Len returns the number of stored frames.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.count
}

// Clear removes all frames.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clearLocked()
}

func (h *History) clearLocked() {
	for i := range h.entries {
		h.entries[i] = nil
	}
	h.head = 0
	h.count = 0
	h.minRev = 0
	h.maxRev = 0
}
