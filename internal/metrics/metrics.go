// Package metrics keeps lightweight in-process counters for the generation
// pipeline. Fallback substitutions are the signal that matters most here:
// they are invisible to clients (every fallback response still reports
// success), so this recorder is the only place they surface.
package metrics

import (
	"sync"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
)

const recentEventCap = 64

// Event is one recorded fallback substitution.
type Event struct {
	ID        string    `json:"id"`
	Stage     string    `json:"stage"`
	Reason    string    `json:"reason"`
	Timestamp time.Time `json:"timestamp"`
}

// Snapshot is a point-in-time view of the recorder, shaped for the
// system-health endpoint.
type Snapshot struct {
	FallbacksByStage map[string]int64 `json:"fallbacks_by_stage"`
	RequestsByStage  map[string]int64 `json:"requests_by_stage"`
	RecentFallbacks  []Event          `json:"recent_fallbacks"`
}

// Recorder counts per-stage requests and fallbacks and retains the most
// recent fallback events in a fixed-size LRU so memory stays bounded no
// matter how long the process runs.
type Recorder struct {
	mu        sync.Mutex
	requests  map[string]int64
	fallbacks map[string]int64
	recent    *lru.Cache[string, Event]
}

func NewRecorder() *Recorder {
	// NewLRU only errors on a non-positive size.
	cache, _ := lru.New[string, Event](recentEventCap)
	return &Recorder{
		requests:  make(map[string]int64),
		fallbacks: make(map[string]int64),
		recent:    cache,
	}
}

// RecordRequest counts one stage invocation.
func (r *Recorder) RecordRequest(stage string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.requests[stage]++
	r.mu.Unlock()
}

// RecordFallback counts one fallback substitution and retains the event.
func (r *Recorder) RecordFallback(stage, reason string) {
	if r == nil {
		return
	}
	ev := Event{
		ID:        uuid.NewString(),
		Stage:     stage,
		Reason:    reason,
		Timestamp: time.Now().UTC(),
	}
	r.mu.Lock()
	r.fallbacks[stage]++
	r.recent.Add(ev.ID, ev)
	r.mu.Unlock()
}

// Snapshot copies the current counters and recent events.
func (r *Recorder) Snapshot() Snapshot {
	if r == nil {
		return Snapshot{
			FallbacksByStage: map[string]int64{},
			RequestsByStage:  map[string]int64{},
			RecentFallbacks:  []Event{},
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	snap := Snapshot{
		FallbacksByStage: make(map[string]int64, len(r.fallbacks)),
		RequestsByStage:  make(map[string]int64, len(r.requests)),
		RecentFallbacks:  make([]Event, 0, r.recent.Len()),
	}
	for stage, n := range r.requests {
		snap.RequestsByStage[stage] = n
	}
	for stage, n := range r.fallbacks {
		snap.FallbacksByStage[stage] = n
	}
	for _, key := range r.recent.Keys() {
		if ev, ok := r.recent.Peek(key); ok {
			snap.RecentFallbacks = append(snap.RecentFallbacks, ev)
		}
	}
	return snap
}
