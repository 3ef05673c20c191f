package metrics

import (
	"sync"
	"time"
)

const outcomeSuccess = "success"

type operationStats struct {
	calls       int
	failures    int
	lastOutcome string
	lastLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about catalog operations and
// forwards everything to OpenTelemetry instruments when configured.
type Recorder struct {
	mu     sync.Mutex
	stats  map[string]*operationStats
	logins map[bool]int
	otel   *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats:  make(map[string]*operationStats),
		logins: make(map[bool]int),
		otel:   otel,
	}
}

// RecordOperation counts a use-case execution and its outcome ("success", "validation", "not_found", "unexpected").
func (r *Recorder) RecordOperation(operation, outcome string, duration time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.stats[operation]
	if !ok {
		stats = &operationStats{}
		r.stats[operation] = stats
	}
	stats.calls++
	if outcome != outcomeSuccess {
		stats.failures++
	}
	stats.lastOutcome = outcome
	stats.lastLatency = duration
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordOperation(operation, outcome, duration)
	}
}

// RecordLogin counts login attempts by result.
func (r *Recorder) RecordLogin(success bool) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.logins[success]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordLogin(success)
	}
}

// Logins returns the number of login attempts with the given result.
func (r *Recorder) Logins(success bool) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.logins[success]
}

// Snapshot is a copy of the stats recorded for one operation.
type Snapshot struct {
	Calls       int
	Failures    int
	LastOutcome string
	LastLatency time.Duration
}

// Snapshot returns a copy of the current stats for the operation.
func (r *Recorder) Snapshot(operation string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[operation]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:       stats.calls,
		Failures:    stats.failures,
		LastOutcome: stats.lastOutcome,
		LastLatency: stats.lastLatency,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}
