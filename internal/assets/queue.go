package assets

import "sync"

// Queue collects callbacks from loader goroutines for the main thread.
type Queue struct {
	mu    sync.Mutex
	items []func()
}

// NewQueue creates an empty queue.
func NewQueue() *Queue { return &Queue{} }

// Post schedules fn to run on the next Drain. Safe from any goroutine.
func (q *Queue) Post(fn func()) {
	q.mu.Lock()
	q.items = append(q.items, fn)
	q.mu.Unlock()
}

// Drain runs every queued callback in posting order and returns how many
// ran. Callbacks posted while draining wait for the next call.
func (q *Queue) Drain() int {
	q.mu.Lock()
	items := q.items
	q.items = nil
	q.mu.Unlock()

	for _, fn := range items {
		fn()
	}
	return len(items)
}

// Len returns the number of pending callbacks.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
