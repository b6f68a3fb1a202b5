// Package search keeps overlapping searches from overwriting each other.
// Every search takes a token when it starts; when its result arrives it is
// applied only if no newer search has started since.
package search

import "sync/atomic"

type Token uint64

type Tracker struct {
	latest atomic.Uint64
}

// Begin issues a new token, superseding every earlier one.
func (t *Tracker) Begin() Token {
	return Token(t.latest.Add(1))
}

func (t *Tracker) IsLatest(tok Token) bool {
	return tok != 0 && uint64(tok) == t.latest.Load()
}

// Latest returns the most recently issued token, or zero if none.
func (t *Tracker) Latest() Token {
	return Token(t.latest.Load())
}
