package streams

import (
	"context"
	"errors"
	"sync"
)

var ErrQueueClosed = errors.New("queue closed")

// Queue is a buffered in-process lane. Messages are delivered in publish order.
type Queue[T any] struct {
	ch chan T

	mu     sync.RWMutex
	closed bool
}

const defaultBuffer = 64

func NewQueue[T any]() *Queue[T] {
	return NewQueueWithBuffer[T](defaultBuffer)
}

func NewQueueWithBuffer[T any](buffer int) *Queue[T] {
	return &Queue[T]{ch: make(chan T, buffer)}
}

// Publish blocks while the buffer is full, until ctx is done.
func (queue *Queue[T]) Publish(ctx context.Context, msg T) error {
	queue.mu.RLock()
	defer queue.mu.RUnlock()
	if queue.closed {
		return ErrQueueClosed
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case queue.ch <- msg:
		return nil
	}
}

// Close stops accepting messages; buffered messages can still be received.
func (queue *Queue[T]) Close() {
	queue.mu.Lock()
	defer queue.mu.Unlock()
	if queue.closed {
		return
	}
	queue.closed = true
	close(queue.ch)
}

func (queue *Queue[T]) Len() int { return len(queue.ch) }

func (queue *Queue[T]) receive() <-chan T { return queue.ch }
