package diagram

import (
	"sync"
	"testing"
)

func TestTracker(t *testing.T) {
	t.Parallel()

	var tr Tracker
	if tr.Current() != 0 {
		t.Errorf("zero Tracker Current() = %d, want 0", tr.Current())
	}

	first := tr.Next()
	if !tr.IsCurrent(first) {
		t.Error("first generation should be current")
	}
	second := tr.Next()
	if second <= first {
		t.Errorf("generations not increasing: %d then %d", first, second)
	}
	if tr.IsCurrent(first) {
		t.Error("first generation still current after Next")
	}
	if !tr.IsCurrent(second) {
		t.Error("second generation should be current")
	}
}

func TestTracker_Concurrent(t *testing.T) {
	t.Parallel()

	var tr Tracker
	var wg sync.WaitGroup
	seen := make(chan uint64, 100)
	for range 100 {
		wg.Go(func() {
			seen <- tr.Next()
		})
	}
	wg.Wait()
	close(seen)

	unique := make(map[uint64]bool)
	for g := range seen {
		if unique[g] {
			t.Fatalf("generation %d issued twice", g)
		}
		unique[g] = true
	}
	if tr.Current() != 100 {
		t.Errorf("Current() = %d, want 100", tr.Current())
	}
}
