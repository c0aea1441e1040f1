package utils

import (
	"iter"
	"time"

	"github.com/oomph-ac/voxel/assert"
	"github.com/oomph-ac/voxel/game"
)

// CircularQueue keeps the last Cap() items appended to it. Appending to a full queue drops the
// oldest item.
type CircularQueue[T any] struct {
	items []T
	head  int
	size  int
}

func NewCircularQueue[T any](capacity int) *CircularQueue[T] {
	assert.IsTrue(capacity > 0, "circularQueue: capacity must be positive, got %d", capacity)
	return &CircularQueue[T]{items: make([]T, capacity)}
}

// Append adds an item, dropping the oldest one if the queue is full.
func (q *CircularQueue[T]) Append(item T) {
	q.items[(q.head+q.size)%len(q.items)] = item
	if q.size == len(q.items) {
		q.head = (q.head + 1) % len(q.items)
		return
	}
	q.size++
}

// Iter yields the items from oldest to newest.
func (q *CircularQueue[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for index := range q.size {
			if !yield(q.items[(q.head+index)%len(q.items)]) {
				return
			}
		}
	}
}

// Latest returns the newest item. The boolean ok is false if the queue is empty.
func (q *CircularQueue[T]) Latest() (item T, ok bool) {
	if q.size == 0 {
		return item, false
	}
	return q.items[(q.head+q.size-1)%len(q.items)], true
}

// Len returns the amount of items held.
func (q *CircularQueue[T]) Len() int {
	return q.size
}

// Cap returns the maximum number of items the queue can hold.
func (q *CircularQueue[T]) Cap() int {
	return len(q.items)
}

// AverageDuration returns the mean of the durations held by q, or zero if it is empty.
func AverageDuration(q *CircularQueue[time.Duration]) time.Duration {
	samples := make([]float64, 0, q.Len())
	for d := range q.Iter() {
		samples = append(samples, float64(d))
	}
	return time.Duration(game.Mean(samples))
}
