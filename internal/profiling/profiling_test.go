package profiling

import (
	"strings"
	"sync"
	"testing"
	"time"
)

func TestTrackAccumulates(t *testing.T) {
	Reset()
	defer Reset()

	for i := 0; i < 3; i++ {
		Track("test.a")()
	}
	stop := Track("test.b")
	time.Sleep(2 * time.Millisecond)
	stop()

	stats := Snapshot()
	if len(stats) != 2 {
		t.Fatalf("got %d stats, want 2", len(stats))
	}
	if stats[0].Name != "test.b" {
		t.Fatalf("largest total should come first, got %q", stats[0].Name)
	}
	for _, s := range stats {
		if s.Name == "test.a" && s.Calls != 3 {
			t.Fatalf("test.a calls = %d, want 3", s.Calls)
		}
	}
	if stats[0].Mean() < 2*time.Millisecond {
		t.Fatalf("mean %v shorter than the sleep", stats[0].Mean())
	}
}

func TestTopN(t *testing.T) {
	Reset()
	defer Reset()

	if got := TopN(3); got != "" {
		t.Fatalf("TopN on empty totals = %q", got)
	}
	Track("x")()
	Track("y")()
	got := TopN(5)
	if !strings.Contains(got, "x:") || !strings.Contains(got, "y:") || !strings.Contains(got, "ms/1") {
		t.Fatalf("unexpected TopN output %q", got)
	}
	if one := TopN(1); strings.Contains(one, ", ") {
		t.Fatalf("TopN(1) returned more than one entry: %q", one)
	}
}

func TestTrackConcurrent(t *testing.T) {
	Reset()
	defer Reset()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			Track("test.concurrent")()
		}()
	}
	wg.Wait()
	if s := Snapshot(); len(s) != 1 || s[0].Calls != 16 {
		t.Fatalf("got %+v, want one stat with 16 calls", s)
	}
}

func TestTrackConcurrentNames(t *testing.T) {
	Reset()
	defer Reset()

	names := []string{"test.gen", "test.naive", "test.greedy"}
	var wg sync.WaitGroup
	for i := 0; i < 60; i++ {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			stop := Track(name)
			time.Sleep(time.Millisecond)
			stop()
		}(names[i%len(names)])
	}
	wg.Wait()

	stats := Snapshot()
	if len(stats) != len(names) {
		t.Fatalf("got %d stats, want %d", len(stats), len(names))
	}
	for _, s := range stats {
		if s.Calls != 20 {
			t.Errorf("%s calls = %d, want 20", s.Name, s.Calls)
		}
		if s.Total < 20*time.Millisecond {
			t.Errorf("%s total %v shorter than 20 sleeps", s.Name, s.Total)
		}
	}
}
