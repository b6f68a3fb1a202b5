package search

import (
	"sync"
	"testing"
)

func TestTracker_StaleResultRejected(t *testing.T) {
	var tr Tracker

	first := tr.Begin()
	second := tr.Begin()

	// the slow first search resolves after the second
	if tr.IsLatest(first) {
		t.Error("first token should be superseded")
	}
	if !tr.IsLatest(second) {
		t.Error("second token should be latest")
	}
}

func TestTracker_ZeroTokenNeverLatest(t *testing.T) {
	var tr Tracker
	if tr.IsLatest(0) {
		t.Error("zero token reported latest before any search")
	}
	if tr.Latest() != 0 {
		t.Errorf("Latest() = %d, want 0", tr.Latest())
	}
}

func TestTracker_ConcurrentBegin(t *testing.T) {
	var tr Tracker
	var wg sync.WaitGroup
	seen := make(chan Token, 100)

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seen <- tr.Begin()
		}()
	}
	wg.Wait()
	close(seen)

	unique := make(map[Token]bool)
	latest := 0
	for tok := range seen {
		if unique[tok] {
			t.Fatalf("token %d issued twice", tok)
		}
		unique[tok] = true
		if tr.IsLatest(tok) {
			latest++
		}
	}
	if latest != 1 {
		t.Errorf("%d tokens report latest, want 1", latest)
	}
	if tr.Latest() != 100 {
		t.Errorf("Latest() = %d, want 100", tr.Latest())
	}
}
