package world

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/exp/slices"
)

// pendingQueue holds the positions of chunks waiting to be created. The ordered map gives both the
// order positions are serviced in and constant time membership checks.
type pendingQueue struct {
	m *orderedmap.OrderedMap[ChunkPos, struct{}]
}

func newPendingQueue() *pendingQueue {
	return &pendingQueue{m: orderedmap.NewOrderedMap[ChunkPos, struct{}]()}
}

// Push queues a position. It returns false if the position was already queued.
func (q *pendingQueue) Push(pos ChunkPos) bool {
	if _, ok := q.m.Get(pos); ok {
		return false
	}
	q.m.Set(pos, struct{}{})
	return true
}

// Contains returns true if the position is queued.
func (q *pendingQueue) Contains(pos ChunkPos) bool {
	_, ok := q.m.Get(pos)
	return ok
}

// Len returns the amount of queued positions.
func (q *pendingQueue) Len() int {
	return q.m.Len()
}

// Sort reorders the queue by ascending squared distance from each chunk's origin to the viewpoint.
func (q *pendingQueue) Sort(dim Dimension, viewpoint mgl32.Vec3) {
	type queued struct {
		pos  ChunkPos
		dist float32
	}
	entries := make([]queued, 0, q.m.Len())
	for el := q.m.Front(); el != nil; el = el.Next() {
		entries = append(entries, queued{pos: el.Key, dist: dim.Origin(el.Key).Sub(viewpoint).LenSqr()})
	}
	slices.SortStableFunc(entries, func(a, b queued) int {
		switch {
		case a.dist < b.dist:
			return -1
		case a.dist > b.dist:
			return 1
		}
		return 0
	})

	q.m = orderedmap.NewOrderedMap[ChunkPos, struct{}]()
	for _, e := range entries {
		q.m.Set(e.pos, struct{}{})
	}
}

// Pop removes and returns the first queued position.
func (q *pendingQueue) Pop() (ChunkPos, bool) {
	el := q.m.Front()
	if el == nil {
		return ChunkPos{}, false
	}
	q.m.Delete(el.Key)
	return el.Key, true
}

// Clear removes every queued position.
func (q *pendingQueue) Clear() {
	q.m = orderedmap.NewOrderedMap[ChunkPos, struct{}]()
}
