package session

import "sync"

// Views hands out a monotonically increasing request sequence per list view so a response
// that settles after a newer request for the same view can be discarded.
type Views struct {
	mu   sync.Mutex
	seqs map[string]uint64
}

// NewViews returns an empty tracker.
func NewViews() *Views {
	return &Views{seqs: make(map[string]uint64)}
}

// Begin issues the next sequence number for view.
func (v *Views) Begin(view string) uint64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.seqs[view]++
	return v.seqs[view]
}

// IsLatest reports whether seq is the newest number issued for view.
func (v *Views) IsLatest(view string, seq uint64) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.seqs[view] == seq
}

// Observe records a sequence number chosen by the browser and reports whether it is still
// the newest seen for view.
func (v *Views) Observe(view string, seq uint64) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if seq < v.seqs[view] {
		return false
	}
	v.seqs[view] = seq
	return true
}
