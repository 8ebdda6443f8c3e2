package profiling

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// Lightweight process-wide timing accumulators for generation and meshing.

// Stat is the accumulated time and call count recorded under one name.
type Stat struct {
	Name  string
	Total time.Duration
	Calls int
}

// Mean returns the average duration per call.
func (s Stat) Mean() time.Duration {
	if s.Calls == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Calls)
}

// counter accumulates one name. Fields are updated atomically.
type counter struct {
	total atomic.Int64 // nanoseconds
	calls atomic.Int64
}

var totals sync.Map // name -> *counter

func counterFor(name string) *counter {
	if c, ok := totals.Load(name); ok {
		return c.(*counter)
	}
	c, _ := totals.LoadOrStore(name, &counter{})
	return c.(*counter)
}

// Track returns a stop function that records the elapsed time under the given name.
// Usage: defer profiling.Track("world.Build")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		c := counterFor(name)
		c.total.Add(int64(time.Since(start)))
		c.calls.Add(1)
	}
}

// Reset clears all accumulated totals.
func Reset() {
	totals.Clear()
}

// Snapshot returns a copy of the current totals, largest total first.
func Snapshot() []Stat {
	var out []Stat
	totals.Range(func(k, v any) bool {
		c := v.(*counter)
		out = append(out, Stat{
			Name:  k.(string),
			Total: time.Duration(c.total.Load()),
			Calls: int(c.calls.Load()),
		})
		return true
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// TopN formats the n largest totals.
// Example: "meshing.BuildGreedy:41.2ms/81, world.Build:30.9ms/81"
func TopN(n int) string {
	stats := Snapshot()
	n = max(0, min(n, len(stats)))
	parts := make([]string, 0, n)
	for _, s := range stats[:n] {
		ms := float64(s.Total.Microseconds()) / 1000.0
		parts = append(parts, s.Name+":"+strconv.FormatFloat(ms, 'f', 1, 64)+"ms/"+strconv.Itoa(s.Calls))
	}
	return strings.Join(parts, ", ")
}
