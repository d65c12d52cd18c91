// Package perf times hot paths of the update loop and logs slow ones.
package perf

import (
	"context"
	"log/slog"
	"math"
	"sync/atomic"
	"time"
)

// DefaultSlowThreshold is the update duration that counts as a dropped frame
const DefaultSlowThreshold = 16 * time.Millisecond

// Timer measures one operation
type Timer struct {
	name      string
	logger    *slog.Logger
	start     time.Time
	threshold time.Duration
	recorder  *Recorder
}

// Stats summarises a Recorder
type Stats struct {
	Name          string
	Count         int64
	TotalDuration time.Duration
	MinDuration   time.Duration
	MaxDuration   time.Duration
	SlowOps       int64
}

// Recorder aggregates durations of one named operation. Safe for concurrent use.
type Recorder struct {
	name      string
	logger    *slog.Logger
	count     int64
	totalDur  int64
	minDur    int64
	maxDur    int64
	slowOps   int64
	threshold time.Duration
}

// NewRecorder creates a recorder; logger may be nil
func NewRecorder(name string, logger *slog.Logger, threshold time.Duration) *Recorder {
	if threshold <= 0 {
		threshold = DefaultSlowThreshold
	}
	return &Recorder{
		name:      name,
		logger:    logger,
		threshold: threshold,
		minDur:    math.MaxInt64,
	}
}

// Start begins timing one operation of kind op
func (r *Recorder) Start(op string) *Timer {
	return &Timer{
		name:      r.name + "." + op,
		logger:    r.logger,
		start:     time.Now(),
		threshold: r.threshold,
		recorder:  r,
	}
}

// Stop ends the timer, records it and logs it when slow
func (t *Timer) Stop() time.Duration {
	elapsed := time.Since(t.start)
	if t.recorder != nil {
		t.recorder.Record(elapsed)
	}
	if t.logger != nil && elapsed >= t.threshold {
		t.logger.Warn(t.name+"_slow", "duration_ms", elapsed.Milliseconds(), "threshold_ms", t.threshold.Milliseconds())
	}
	return elapsed
}

// Record adds one observed duration
func (r *Recorder) Record(elapsed time.Duration) {
	ns := elapsed.Nanoseconds()
	atomic.AddInt64(&r.count, 1)
	atomic.AddInt64(&r.totalDur, ns)

	for {
		cur := atomic.LoadInt64(&r.minDur)
		if ns >= cur || atomic.CompareAndSwapInt64(&r.minDur, cur, ns) {
			break
		}
	}
	for {
		cur := atomic.LoadInt64(&r.maxDur)
		if ns <= cur || atomic.CompareAndSwapInt64(&r.maxDur, cur, ns) {
			break
		}
	}

	if elapsed >= r.threshold {
		atomic.AddInt64(&r.slowOps, 1)
	}
}

// Stats returns a snapshot of the aggregated durations
func (r *Recorder) Stats() Stats {
	minDur := atomic.LoadInt64(&r.minDur)
	if minDur == math.MaxInt64 {
		minDur = 0
	}

	return Stats{
		Name:          r.name,
		Count:         atomic.LoadInt64(&r.count),
		TotalDuration: time.Duration(atomic.LoadInt64(&r.totalDur)),
		MinDuration:   time.Duration(minDur),
		MaxDuration:   time.Duration(atomic.LoadInt64(&r.maxDur)),
		SlowOps:       atomic.LoadInt64(&r.slowOps),
	}
}

// AvgDuration returns the mean duration, or 0 with no samples
func (s Stats) AvgDuration() time.Duration {
	if s.Count == 0 {
		return 0
	}
	return s.TotalDuration / time.Duration(s.Count)
}

// LogStats writes the summary at level. Nothing is logged without samples.
func (r *Recorder) LogStats(level slog.Level) {
	stats := r.Stats()
	if stats.Count == 0 || r.logger == nil {
		return
	}
	r.logger.Log(context.Background(), level, r.name+"_stats",
		"count", stats.Count,
		"total_ms", stats.TotalDuration.Milliseconds(),
		"avg_ms", stats.AvgDuration().Milliseconds(),
		"min_ms", stats.MinDuration.Milliseconds(),
		"max_ms", stats.MaxDuration.Milliseconds(),
		"slow_ops", stats.SlowOps,
	)
}
