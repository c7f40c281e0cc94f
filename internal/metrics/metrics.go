package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

type auditStats struct {
	gamesAudited   int
	gamesSkipped   int
	gamesFailed    int
	pitchesGraded  int
	incorrectCalls int
	ejections      int
	pitchesSkipped map[string]int
	skipReasons    map[string]int
}

// Recorder captures in-memory provider and audit stats and mirrors them to OpenTelemetry when configured.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*providerStats
	audit auditStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*providerStats),
		audit: auditStats{
			pitchesSkipped: make(map[string]int),
			skipReasons:    make(map[string]int),
		},
		otel: otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordRateLimit tracks that a provider response hit a rate limit and stores the last Retry-After.
func (r *Recorder) RecordRateLimit(provider string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(provider)
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordRateLimit(provider, retryAfter)
	}
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// RateLimitHits returns the number of rate limit events seen for a provider.
func (r *Recorder) RateLimitHits(provider string) int {
	return r.Snapshot(provider).RateLimitHits
}

// LastRetryAfter returns the most recent Retry-After recorded for a provider.
func (r *Recorder) LastRetryAfter(provider string) time.Duration {
	return r.Snapshot(provider).LastRetryAfter
}

// LastCallLatency returns the last recorded latency for a provider call.
func (r *Recorder) LastCallLatency(provider string) time.Duration {
	return r.Snapshot(provider).LastCallLatency
}

// Snapshot returns a copy of the current stats for the provider.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	stats := r.snapshot(provider)
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordScheduleCycle tracks scheduled audit cycles and errors.
func (r *Recorder) RecordScheduleCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordSchedule(duration, err)
}

// RecordGameAudited counts a fully processed game and its output volumes.
func (r *Recorder) RecordGameAudited(duration time.Duration, graded, incorrect, ejections int) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.audit.gamesAudited++
	r.audit.pitchesGraded += graded
	r.audit.incorrectCalls += incorrect
	r.audit.ejections += ejections
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordGame(OutcomeAudited, "", duration)
		r.otel.recordPitches(graded, incorrect, ejections)
	}
}

// RecordGameSkipped counts a game excluded before grading.
func (r *Recorder) RecordGameSkipped(reason string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.audit.gamesSkipped++
	r.audit.skipReasons[reason]++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordGame(OutcomeSkipped, reason, 0)
	}
}

// RecordGameFailed counts a game whose audit returned an error.
func (r *Recorder) RecordGameFailed(duration time.Duration) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.audit.gamesFailed++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordGame(OutcomeFailed, "", duration)
	}
}

// RecordPitchesSkipped counts pitches dropped before grading, by reason.
func (r *Recorder) RecordPitchesSkipped(reason string, n int) {
	if r == nil || n <= 0 {
		return
	}
	r.mu.Lock()
	r.audit.pitchesSkipped[reason] += n
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordPitchesSkipped(reason, n)
	}
}

// AuditSnapshot is a copy of the audit counters.
type AuditSnapshot struct {
	GamesAudited   int
	GamesSkipped   int
	GamesFailed    int
	PitchesGraded  int
	IncorrectCalls int
	Ejections      int
	PitchesSkipped map[string]int
	SkipReasons    map[string]int
}

// Audit returns the current audit counters.
func (r *Recorder) Audit() AuditSnapshot {
	if r == nil {
		return AuditSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return AuditSnapshot{
		GamesAudited:   r.audit.gamesAudited,
		GamesSkipped:   r.audit.gamesSkipped,
		GamesFailed:    r.audit.gamesFailed,
		PitchesGraded:  r.audit.pitchesGraded,
		IncorrectCalls: r.audit.incorrectCalls,
		Ejections:      r.audit.ejections,
		PitchesSkipped: copyCounts(r.audit.pitchesSkipped),
		SkipReasons:    copyCounts(r.audit.skipReasons),
	}
}

func copyCounts(in map[string]int) map[string]int {
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// ensureStats must be called with r.mu held.
func (r *Recorder) ensureStats(provider string) *providerStats {
	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}

func (r *Recorder) snapshot(provider string) providerStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.stats[provider]; ok && stats != nil {
		return *stats
	}
	return providerStats{}
}
