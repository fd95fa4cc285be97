// Package metrics records per-operation latency distributions for preview requests.
package metrics

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/DataDog/sketches-go/ddsketch"
	"gitlab.com/tozd/go/errors"
)

// Operation names recorded by the request handler.
const (
	OpReadExcel = "read_excel"
	OpExtract   = "extract"
	OpRender    = "render"
)

// ErrNoData is returned for an operation that has never been recorded.
var ErrNoData = errors.New("no data for operation")

// LatencyTracker tracks latency quantiles using DDSketch.
type LatencyTracker struct {
	mu               sync.Mutex
	sketches         map[string]*ddsketch.DDSketch
	relativeAccuracy float64
}

// NewLatencyTracker creates a tracker whose quantile estimates are within
// relativeAccuracy of the true value (0.01 = 1%).
func NewLatencyTracker(relativeAccuracy float64) *LatencyTracker {
	return &LatencyTracker{
		sketches:         make(map[string]*ddsketch.DDSketch),
		relativeAccuracy: relativeAccuracy,
	}
}

// Record records a duration for the given operation.
func (lt *LatencyTracker) Record(operation string, duration time.Duration) {
	lt.mu.Lock()
	defer lt.mu.Unlock()

	sketch, exists := lt.sketches[operation]
	if !exists {
		var err error
		sketch, err = ddsketch.LogUnboundedDenseDDSketch(lt.relativeAccuracy)
		if err != nil {
			sketch, _ = ddsketch.NewDefaultDDSketch(lt.relativeAccuracy)
		}
		lt.sketches[operation] = sketch
	}

	// milliseconds
	_ = sketch.Add(float64(duration.Microseconds()) / 1000.0)
}

// Since records the time elapsed since start. Meant for use with defer.
func (lt *LatencyTracker) Since(operation string, start time.Time) {
	lt.Record(operation, time.Since(start))
}

// Stats summarizes one operation's latencies in milliseconds.
type Stats struct {
	Operation string
	Count     int64
	Min       float64
	P50       float64
	P90       float64
	P95       float64
	P99       float64
	Max       float64
}

// GetStats returns statistics for the given operation.
func (lt *LatencyTracker) GetStats(operation string) (Stats, error) {
	lt.mu.Lock()
	defer lt.mu.Unlock()

	sketch, exists := lt.sketches[operation]
	if !exists {
		return Stats{}, errors.Errorf("%w: %s", ErrNoData, operation)
	}
	return statsFor(operation, sketch), nil
}

// GetAllStats returns statistics for all tracked operations, sorted by name.
func (lt *LatencyTracker) GetAllStats() []Stats {
	lt.mu.Lock()
	defer lt.mu.Unlock()

	stats := make([]Stats, 0, len(lt.sketches))
	for operation, sketch := range lt.sketches {
		stats = append(stats, statsFor(operation, sketch))
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Operation < stats[j].Operation })
	return stats
}

func statsFor(operation string, sketch *ddsketch.DDSketch) Stats {
	count := sketch.GetCount()
	if count == 0 {
		return Stats{Operation: operation}
	}

	min, _ := sketch.GetMinValue()
	p50, _ := sketch.GetValueAtQuantile(0.50)
	p90, _ := sketch.GetValueAtQuantile(0.90)
	p95, _ := sketch.GetValueAtQuantile(0.95)
	p99, _ := sketch.GetValueAtQuantile(0.99)
	max, _ := sketch.GetMaxValue()

	return Stats{
		Operation: operation,
		Count:     int64(count),
		Min:       min,
		P50:       p50,
		P90:       p90,
		P95:       p95,
		P99:       p99,
		Max:       max,
	}
}

func (s Stats) String() string {
	if s.Count == 0 {
		return fmt.Sprintf("  %s: no data", s.Operation)
	}
	return fmt.Sprintf("  %s (n=%d): min=%.2fms p50=%.2fms p90=%.2fms p95=%.2fms p99=%.2fms max=%.2fms",
		s.Operation, s.Count, s.Min, s.P50, s.P90, s.P95, s.P99, s.Max)
}
