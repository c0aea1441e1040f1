package world

import (
	"time"

	"github.com/oomph-ac/voxel/worker"
	"github.com/oomph-ac/voxel/world/voxel"
)

// generateRequest tracks the generation of a chunk's blocks on a background worker.
type generateRequest struct {
	c       *Chunk
	task    *worker.Task[*voxel.Grid]
	started time.Time
}

// requestGeneration starts generating the blocks of a chunk in the background. The result is
// installed by a later tick.
func (w *World) requestGeneration(c *Chunk) {
	origin := c.Origin()
	req := &generateRequest{
		c: c,
		task: worker.Go(func() (*voxel.Grid, error) {
			return w.generator.Generate(origin, w.dim.Bounds, w.dim.VoxelSize), nil
		}),
		started: time.Now(),
	}

	w.mu.Lock()
	w.requests = append(w.requests, req)
	w.mu.Unlock()
}

// applyGenerated installs the results of finished generation requests. Results for chunks that were
// unloaded in the meantime are dropped.
func (w *World) applyGenerated(wait bool) {
	w.mu.Lock()
	var finished []*generateRequest
	pending := w.requests[:0]
	for _, req := range w.requests {
		if wait || req.task.Finished() {
			finished = append(finished, req)
			continue
		}
		pending = append(pending, req)
	}
	w.requests = pending
	w.mu.Unlock()

	for _, req := range finished {
		g, err := req.task.Result()
		pos := req.c.Pos()
		if err != nil {
			w.logger.Error("chunk generation failed", "chunk", pos, "error", err)
			w.unload(req.c)
			continue
		}
		if req.c.Closed() || w.Chunk(pos) != req.c {
			w.logger.Debug("discarded generation result of unloaded chunk", "chunk", pos)
			continue
		}

		req.c.install(g)
		w.cacheUpdate(pos, g)
		req.c.Regenerate(true)
		w.logger.Debug("generated chunk", "chunk", pos, "took", time.Since(req.started))
	}
}

// Wait blocks until every chunk generation in progress has finished and installs the results.
func (w *World) Wait() {
	w.applyGenerated(true)
}
