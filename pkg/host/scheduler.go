package host

// taskQueue holds zero-delay tasks for the next tick. Tasks queued while a
// tick is draining wait for the following tick.
type taskQueue struct {
	pending []func()
}

func (q *taskQueue) push(fn func()) {
	q.pending = append(q.pending, fn)
}

func (q *taskQueue) len() int { return len(q.pending) }

func (q *taskQueue) drain() int {
	tasks := q.pending
	q.pending = nil
	for _, fn := range tasks {
		fn()
	}
	return len(tasks)
}

func (q *taskQueue) clear() { q.pending = nil }
