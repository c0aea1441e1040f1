package world

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/voxel/entity"
	"github.com/oomph-ac/voxel/game"
	"github.com/oomph-ac/voxel/render"
	"github.com/oomph-ac/voxel/utils"
	"github.com/oomph-ac/voxel/world/gen"
	"github.com/oomph-ac/voxel/world/mesh"
	"github.com/oomph-ac/voxel/world/voxel"
	"github.com/sasha-s/go-deadlock"
	"go.uber.org/atomic"
)

// Viewer is the point the world streams chunks around.
type Viewer interface {
	Position() mgl32.Vec3
}

// Config holds the collaborators and parameters of a World.
type Config struct {
	Dimension Dimension
	// RenderDistance is the radius, in chunks, of the area kept loaded around the viewer.
	RenderDistance int32
	// AtlasTexture is the name of the texture chunk meshes are drawn with.
	AtlasTexture string

	Generator *gen.Generator
	Mesher    *mesh.Mesher
	Registry  *entity.Registry
	Content   render.Content
	Viewer    Viewer
	// Logger receives debug records about streaming. A nil Logger discards all records.
	Logger *slog.Logger
}

// World streams chunks in and out around a viewer. It is the component that owns every live chunk,
// the queue of chunks waiting to be created and the cache of chunks that were generated or edited.
type World struct {
	dim            Dimension
	renderDistance int32
	waterLevel     int

	generator *gen.Generator
	mesher    *mesh.Mesher
	registry  *entity.Registry
	viewer    Viewer
	atlas     *render.Texture
	cache     *Cache

	logger *slog.Logger

	// mu protects all the following fields.
	mu         deadlock.RWMutex
	chunks     map[ChunkPos]*Chunk
	queue      *pendingQueue
	requests   []*generateRequest
	lastCentre ChunkPos
	// instantiations holds the time spent creating each of the last chunks.
	instantiations *utils.CircularQueue[time.Duration]

	created atomic.Int64
	dropped atomic.Int64
}

// New creates a World from the configuration passed.
func New(conf Config) (*World, error) {
	if conf.Registry == nil || conf.Content == nil || conf.Viewer == nil {
		return nil, fmt.Errorf("world: registry, content and viewer must be set")
	}
	if conf.RenderDistance < 0 {
		return nil, fmt.Errorf("world: negative render distance %d", conf.RenderDistance)
	}
	if conf.Dimension == (Dimension{}) {
		conf.Dimension = DefaultDimension
	}
	if conf.Generator == nil {
		conf.Generator = gen.New(gen.DefaultConfig())
	}
	if conf.Mesher == nil {
		mc := mesh.DefaultConfig()
		mc.VoxelSize = conf.Dimension.VoxelSize
		conf.Mesher = mesh.New(mc)
	}
	if conf.Logger == nil {
		conf.Logger = slog.New(slog.DiscardHandler)
	}

	atlas, err := conf.Content.Texture(conf.AtlasTexture)
	if err != nil {
		return nil, fmt.Errorf("world: load atlas: %w", err)
	}
	cache, err := NewCache()
	if err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}

	return &World{
		dim:            conf.Dimension,
		renderDistance: conf.RenderDistance,
		waterLevel:     conf.Generator.WaterLevel(conf.Dimension.Bounds),
		generator:      conf.Generator,
		mesher:         conf.Mesher,
		registry:       conf.Registry,
		viewer:         conf.Viewer,
		atlas:          atlas,
		cache:          cache,
		logger:         conf.Logger,
		chunks:         make(map[ChunkPos]*Chunk),
		queue:          newPendingQueue(),
		instantiations: utils.NewCircularQueue[time.Duration](64),
	}, nil
}

// Dimension returns the dimension of the world.
func (w *World) Dimension() Dimension {
	return w.dim
}

// Cache returns the chunk cache of the world.
func (w *World) Cache() *Cache {
	return w.cache
}

// Generator returns the terrain generator of the world.
func (w *World) Generator() *gen.Generator {
	return w.generator
}

// Chunk returns the live chunk at the position passed, or nil if it is not loaded.
func (w *World) Chunk(pos ChunkPos) *Chunk {
	w.mu.RLock()
	c := w.chunks[pos]
	w.mu.RUnlock()

	return c
}

// Chunks returns every live chunk.
func (w *World) Chunks() []*Chunk {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]*Chunk, 0, len(w.chunks))
	for _, c := range w.chunks {
		out = append(out, c)
	}
	return out
}

// UpdateCache stores the current blocks of a chunk in the cache.
func (w *World) UpdateCache(c *Chunk) {
	w.cacheUpdate(c.Pos(), c.Snapshot())
}

func (w *World) cacheUpdate(pos ChunkPos, g *voxel.Grid) {
	if _, err := w.cache.Update(pos, g); err != nil {
		w.logger.Error("failed updating chunk cache", "chunk", pos, "error", err)
	}
}

// Apply executes a transaction on a chunk, regenerates it together with its neighbours and stores
// the result in the cache.
func (w *World) Apply(c *Chunk, tx SetBlockTransaction) {
	if c.Closed() || !c.Ready() {
		return
	}
	prev := tx.Execute(c)
	c.Regenerate(true)
	w.UpdateCache(c)
	w.logger.Debug("applied block transaction", "chunk", c.Pos(), "pos", tx.BlockPos, "from", prev, "to", tx.Block)
}

// unload removes a chunk from the live set and destroys its entity.
func (w *World) unload(c *Chunk) {
	w.mu.Lock()
	if w.chunks[c.Pos()] == c {
		delete(w.chunks, c.Pos())
	}
	w.mu.Unlock()

	w.registry.Remove(c.Entity())
}

// Purge unloads every chunk and empties the pending queue. The cache is kept.
func (w *World) Purge() {
	w.mu.Lock()
	chunks := make([]*Chunk, 0, len(w.chunks))
	for _, c := range w.chunks {
		chunks = append(chunks, c)
	}
	clear(w.chunks)
	w.queue.Clear()
	w.mu.Unlock()

	for _, c := range chunks {
		w.registry.Remove(c.Entity())
	}
}

// Close waits for generation in progress, unloads every chunk and releases the cache.
func (w *World) Close() error {
	w.Wait()
	w.Purge()
	return w.cache.Close()
}

// Stats is a snapshot of the state of a World.
type Stats struct {
	Live       int
	Queued     int
	Generating int
	Cached     int
	CacheBytes int
	// Created is the amount of chunks instantiated so far.
	Created int64
	// Dropped is the amount of queued chunks dropped because the viewer moved away.
	Dropped int64
	// AverageInstantiation is the mean time spent instantiating one of the last chunks.
	AverageInstantiation time.Duration
	// MedianInstantiation is the median time spent instantiating one of the last chunks.
	MedianInstantiation time.Duration
	// SlowInstantiations is the amount of the last instantiations that took unusually long.
	SlowInstantiations int
}

// Stats returns a snapshot of the state of the world.
func (w *World) Stats() Stats {
	w.mu.RLock()
	s := Stats{
		Live:                 len(w.chunks),
		Queued:               w.queue.Len(),
		Generating:           len(w.requests),
		AverageInstantiation: utils.AverageDuration(w.instantiations),
	}
	samples := make([]float64, 0, w.instantiations.Len())
	for d := range w.instantiations.Iter() {
		samples = append(samples, float64(d))
	}
	w.mu.RUnlock()

	s.MedianInstantiation = time.Duration(game.Median(samples))
	s.SlowInstantiations = game.Outliers(samples)

	s.Cached = w.cache.Len()
	s.CacheBytes = w.cache.Size()
	s.Created = w.created.Load()
	s.Dropped = w.dropped.Load()
	return s
}

// chunkInRange returns true if the chunk is within the retention radius of the centre chunk.
func (w *World) chunkInRange(pos, centre ChunkPos) bool {
	limit := float32(w.renderDistance) * w.dim.TotalSize()
	return game.Vec3HzDistSqr(w.dim.Origin(pos).Sub(w.dim.Origin(centre))) <= limit*limit
}
