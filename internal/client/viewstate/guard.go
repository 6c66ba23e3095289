// Package viewstate holds small helpers for per-view transient state.
package viewstate

import "sync/atomic"

// Guard is a per-view request-generation counter. A view takes a new
// generation before issuing a request and applies the response only if that
// generation is still current, so a stale response can never overwrite the
// result of a later request.
type Guard struct {
	gen atomic.Uint64
}

// Begin starts a new request generation and returns its id. Any generation
// issued earlier becomes stale.
func (g *Guard) Begin() uint64 {
	return g.gen.Add(1)
}

// Current reports whether gen is still the latest generation.
func (g *Guard) Current(gen uint64) bool {
	return g.gen.Load() == gen
}
