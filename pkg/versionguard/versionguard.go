// Package versionguard implements a last-request-wins guard for
// async-derived state. Each request takes a monotonically increasing
// token; a result is only committed when its token is still the most
// recent one, so out-of-order completions are silently discarded.
package versionguard

import "sync/atomic"

// Guard hands out request tokens and validates them on completion.
// The zero value is ready to use.
type Guard struct {
	current atomic.Uint64
}

// Token identifies one in-flight request.
type Token uint64

// Begin registers a new request and invalidates all earlier tokens.
func (g *Guard) Begin() Token {
	return Token(g.current.Add(1))
}

// Current reports whether t is still the most recent token. Results
// carrying a stale token must be dropped, not stored.
func (g *Guard) Current(t Token) bool {
	return g.current.Load() == uint64(t)
}
