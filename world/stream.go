package world

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// Tick installs finished generation results and streams chunks around the viewer: positions around
// the viewer are queued, chunks out of range are unloaded and the queued position nearest to the
// viewer is instantiated. At most one chunk is instantiated per tick.
func (w *World) Tick(time.Duration) {
	w.applyGenerated(false)

	viewpoint := w.viewer.Position()
	centre := w.dim.Centre(viewpoint)
	w.enqueue(centre)
	w.evict(centre)

	pos, ok := w.next(centre, viewpoint)
	if !ok {
		return
	}
	start := time.Now()
	w.instantiate(pos)

	w.mu.Lock()
	w.instantiations.Append(time.Since(start))
	w.mu.Unlock()
}

// enqueue queues every position within the retention radius of the centre that is neither live nor
// queued already.
func (w *World) enqueue(centre ChunkPos) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if centre != w.lastCentre {
		w.logger.Debug("viewer entered chunk", "chunk", centre, "from", w.lastCentre)
		w.lastCentre = centre
	}

	r := w.renderDistance
	for dx := -r; dx <= r; dx++ {
		for dz := -r; dz <= r; dz++ {
			pos := centre.Add(dx, dz)
			if _, live := w.chunks[pos]; live || !w.chunkInRange(pos, centre) {
				continue
			}
			w.queue.Push(pos)
		}
	}
}

// evict unloads every live chunk outside the retention radius of the centre.
func (w *World) evict(centre ChunkPos) {
	w.mu.RLock()
	var stale []*Chunk
	for pos, c := range w.chunks {
		if !w.chunkInRange(pos, centre) {
			stale = append(stale, c)
		}
	}
	w.mu.RUnlock()

	for _, c := range stale {
		w.unload(c)
		w.logger.Debug("unloaded chunk", "chunk", c.Pos(), "centre", centre)
	}
}

// next sorts the queue and pops the position nearest to the viewpoint. Positions that left the
// retention radius since they were queued are dropped.
func (w *World) next(centre ChunkPos, viewpoint mgl32.Vec3) (ChunkPos, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.queue.Len() == 0 {
		return ChunkPos{}, false
	}
	w.queue.Sort(w.dim, viewpoint)
	for {
		pos, ok := w.queue.Pop()
		if !ok {
			return ChunkPos{}, false
		}
		if !w.chunkInRange(pos, centre) {
			w.dropped.Inc()
			w.logger.Debug("dropped queued chunk out of range", "chunk", pos, "centre", centre)
			continue
		}
		if _, live := w.chunks[pos]; live {
			continue
		}
		return pos, true
	}
}

// instantiate creates the chunk at pos. Cached blocks are restored right away, otherwise the blocks
// are generated in the background.
func (w *World) instantiate(pos ChunkPos) *Chunk {
	e := w.registry.Create(w.dim.Origin(pos))
	c := newChunk(w, pos, e)
	e.Attach(c)
	for _, r := range c.Meshes() {
		e.Attach(r)
	}

	w.mu.Lock()
	w.chunks[pos] = c
	w.mu.Unlock()
	w.created.Inc()

	g, ok, err := w.cache.Lookup(pos)
	if err != nil {
		w.logger.Error("failed restoring cached chunk", "chunk", pos, "error", err)
	}
	if ok {
		c.install(g)
		c.Regenerate(false)
		w.logger.Debug("restored chunk from cache", "chunk", pos)
		return c
	}
	w.requestGeneration(c)
	w.logger.Debug("queued chunk generation", "chunk", pos)
	return c
}
