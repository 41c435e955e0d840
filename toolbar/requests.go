package toolbar

import "github.com/milk9111/pixeled/mode"

// RequestKind identifies what a queued request asks for.
type RequestKind int

const (
	// RequestSelect switches to Request.Variant.
	RequestSelect RequestKind = iota
	// RequestPrevious switches back to the tool used before the current one.
	RequestPrevious
)

// Request is a mode change asked for outside a button click, e.g. by a hook,
// a script or a hotkey.
type Request struct {
	Kind    RequestKind
	Variant mode.Variant
}

// requestQueue is a simple FIFO queue.
type requestQueue struct {
	items []Request
}

func (q *requestQueue) push(r Request) {
	if q == nil {
		return
	}
	q.items = append(q.items, r)
}

// drain returns all requests and clears the queue.
func (q *requestQueue) drain() []Request {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *requestQueue) len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
