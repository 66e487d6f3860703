package bus

import (
	"context"
	"errors"
	"sync"
)

var ErrQueueClosed = errors.New("bus: queue closed")

// Queue is an unbounded, strictly FIFO multi-producer single-consumer
// queue. Publish never blocks; growth is bounded only by memory, which is a
// documented non-goal of the core. Producers are expected to self-limit.
type Queue struct {
	mu     sync.Mutex
	items  []Message
	closed bool
	notify chan struct{}
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{notify: make(chan struct{}, 1)}
}

// Publish appends a message without blocking.
func (q *Queue) Publish(m Message) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return ErrQueueClosed
	}
	q.items = append(q.items, m)
	q.mu.Unlock()

	select {
	case q.notify <- struct{}{}:
	default:
	}
	return nil
}

// Len returns the number of queued, undispatched messages.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Close stops the queue from accepting new messages. Messages already
// queued are still delivered to a running consumer.
func (q *Queue) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	q.mu.Unlock()

	select {
	case q.notify <- struct{}{}:
	default:
	}
}

// Run consumes messages in arrival order until the context is done or the
// queue is closed and drained. The in-flight handler call always completes;
// messages still queued when the context ends are dropped.
func (q *Queue) Run(ctx context.Context, handler func(Message)) {
	for {
		q.mu.Lock()
		batch := q.items
		q.items = nil
		closed := q.closed
		q.mu.Unlock()

		if len(batch) == 0 {
			if closed {
				return
			}
			select {
			case <-ctx.Done():
				return
			case <-q.notify:
				continue
			}
		}

		for _, m := range batch {
			select {
			case <-ctx.Done():
				return
			default:
			}
			handler(m)
		}
	}
}
