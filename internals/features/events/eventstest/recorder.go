package eventstest

import (
	"context"
	"sync"

	auditService "halodkm_backend/internals/features/audit/service"
)

// Recorder is an audit sink that keeps every entry in memory.
type Recorder struct {
	mu      sync.Mutex
	entries []auditService.Entry
}

func (r *Recorder) Record(_ context.Context, e auditService.Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
}

func (r *Recorder) Entries() []auditService.Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]auditService.Entry(nil), r.entries...)
}

// Actions returns just the action texts, in recording order.
func (r *Recorder) Actions() []string {
	var out []string
	for _, e := range r.Entries() {
		out = append(out, e.Action)
	}
	return out
}
