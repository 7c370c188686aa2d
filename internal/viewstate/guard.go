package viewstate

// Guard numbers fetches so that only the most recently started one may
// apply its result, and drops every result once the view is closed.
// It is not safe for concurrent use; callers hold their own lock.
type Guard struct {
	seq    uint64
	closed bool
}

// Begin starts a new fetch and returns its ticket. Any earlier ticket
// becomes stale.
func (g *Guard) Begin() uint64 {
	g.seq++
	return g.seq
}

// Current reports whether ticket belongs to the latest fetch of an open view.
func (g *Guard) Current(ticket uint64) bool {
	return !g.closed && ticket == g.seq
}

// Close marks the view as unmounted.
func (g *Guard) Close() {
	g.closed = true
}

// Closed reports whether Close was called.
func (g *Guard) Closed() bool {
	return g.closed
}
