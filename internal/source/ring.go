package source

import "sync"

// Ring is a bounded record buffer for follow mode: when a tailed file keeps
// growing past the cap, the oldest rows are overwritten and counted as
// dropped.
type Ring struct {
	mu      sync.RWMutex
	buf     []Record
	cap     int
	start   int
	size    int
	total   uint64
	dropped uint64
}

func NewRing(capacity int) *Ring {
	if capacity <= 0 {
		capacity = 1
	}
	return &Ring{cap: capacity, buf: make([]Record, capacity)}
}

func (r *Ring) Cap() int { return r.cap }

func (r *Ring) Push(rec Record) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.size < r.cap {
		r.buf[(r.start+r.size)%r.cap] = rec
		r.size++
	} else {
		r.buf[r.start] = rec
		r.start = (r.start + 1) % r.cap
		r.dropped++
	}
	r.total++
}

// Snapshot returns the buffered records in arrival order plus the total
// ingested and dropped counters.
func (r *Ring) Snapshot() ([]Record, uint64, uint64) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Record, r.size)
	for i := 0; i < r.size; i++ {
		out[i] = r.buf[(r.start+i)%r.cap]
	}
	return out, r.total, r.dropped
}
