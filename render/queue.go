package render

import "sync"

// Queue is the ordered, append-only buffer of requests submitted between presents
// Push and Drain are mutex-guarded so producers on other goroutines may submit;
// ordering across goroutines is lock acquisition order
type Queue struct {
	mu      sync.Mutex
	pending []Request
}

// NewQueue creates an empty queue with the given initial capacity
func NewQueue(capacity int) *Queue {
	return &Queue{pending: make([]Request, 0, max(capacity, 0))}
}

// Push appends a request, no deduplication
func (q *Queue) Push(r Request) {
	q.mu.Lock()
	q.pending = append(q.pending, r)
	q.mu.Unlock()
}

// Len returns the number of pending requests
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Pending returns a copy of the pending requests in submission order
func (q *Queue) Pending() []Request {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]Request, len(q.pending))
	copy(out, q.pending)
	return out
}

// Drain returns all pending requests and replaces them with a fresh empty buffer
// The returned slice is owned by the caller
func (q *Queue) Drain() []Request {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.pending
	q.pending = make([]Request, 0, cap(out))
	return out
}
