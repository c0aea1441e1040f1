package voxel

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/voxel/entity"
	"github.com/oomph-ac/voxel/player"
	"github.com/oomph-ac/voxel/render"
	"github.com/oomph-ac/voxel/settings"
	"github.com/oomph-ac/voxel/world"
	"github.com/oomph-ac/voxel/world/gen"
	"github.com/oomph-ac/voxel/world/mesh"
	grid "github.com/oomph-ac/voxel/world/voxel"
)

// Options holds the collaborators an Engine runs with.
type Options struct {
	// Registry owns the entities of the engine. A new registry is created if nil.
	Registry *entity.Registry
	// Content provides the atlas texture chunk meshes are drawn with.
	Content render.Content
	// Input drives block edits. Without input, the world can not be edited.
	Input player.Input
	// Viewer is the entity chunks stream around and rays are cast from. If nil, a viewer is created
	// above the origin.
	Viewer *entity.Entity
	// Logger receives the records of the engine. A nil Logger discards all records.
	Logger *slog.Logger
}

// Engine represents an instance of the voxel engine: a streamed world around a viewer that the
// viewer can edit.
type Engine struct {
	registry *entity.Registry
	entity   *entity.Entity
	viewer   *entity.Entity

	world  *world.World
	placer *player.Placer
	logger *slog.Logger
}

// New returns a new Engine configured by the settings passed.
func New(s settings.Settings, opts Options) (*Engine, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	if opts.Content == nil {
		return nil, fmt.Errorf("content provider must be set")
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Registry == nil {
		opts.Registry = entity.NewRegistry(opts.Logger)
	}

	dim := world.Dimension{
		Bounds:    grid.Bounds{X: s.Chunk.Width, Y: s.Chunk.Height, Z: s.Chunk.Depth},
		VoxelSize: s.Chunk.VoxelSize,
	}
	if opts.Viewer == nil {
		opts.Viewer = opts.Registry.Create(mgl32.Vec3{0, dim.Height() * 0.75, 0})
	}

	w, err := world.New(world.Config{
		Dimension:      dim,
		RenderDistance: s.Streamer.RenderDistance,
		AtlasTexture:   s.Atlas.Texture,
		Generator: gen.New(gen.Config{
			Seed:            s.Terrain.Seed,
			Frequency:       s.Terrain.Frequency,
			Amplitude:       s.Terrain.Amplitude,
			WaterHeight:     s.Terrain.WaterHeight,
			TreeChance:      s.Terrain.TreeChance,
			TallGrassChance: s.Terrain.TallGrassChance,
		}),
		Mesher: mesh.New(mesh.Config{
			VoxelSize:  dim.VoxelSize,
			AtlasCells: s.Atlas.Cells,
			MaxLight:   grid.MaxSkyLight,
		}),
		Registry: opts.Registry,
		Content:  opts.Content,
		Viewer:   opts.Viewer,
		Logger:   opts.Logger.With("component", "world"),
	})
	if err != nil {
		return nil, err
	}

	eng := &Engine{
		registry: opts.Registry,
		entity:   opts.Registry.Create(mgl32.Vec3{}),
		viewer:   opts.Viewer,
		world:    w,
		logger:   opts.Logger,
	}
	eng.entity.Attach(w)
	if opts.Input != nil {
		eng.placer = player.NewPlacer(w, opts.Input, opts.Viewer, s.Picking.Reach, opts.Logger.With("component", "placer"))
		eng.entity.Attach(eng.placer)
	}
	eng.logger.Info("engine started", "render_distance", s.Streamer.RenderDistance, "chunk", dim.Bounds, "seed", s.Terrain.Seed)
	return eng, nil
}

// World returns the world of the engine.
func (e *Engine) World() *world.World {
	return e.world
}

// Placer returns the component editing the world, or nil if the engine runs without input.
func (e *Engine) Placer() *player.Placer {
	return e.placer
}

// Viewer returns the entity chunks are streamed around.
func (e *Engine) Viewer() *entity.Entity {
	return e.viewer
}

// Registry returns the registry holding every entity of the engine.
func (e *Engine) Registry() *entity.Registry {
	return e.registry
}

// Tick runs one tick of every component in the registry.
func (e *Engine) Tick(dt time.Duration) {
	e.registry.Tick(dt)
}

// Close waits for chunks being generated, unloads every chunk and removes the world entity.
func (e *Engine) Close() error {
	err := e.world.Close()
	e.registry.Remove(e.entity)
	e.logger.Info("engine closed", "stats", e.world.Stats())
	return err
}
