package player

import (
	"log/slog"
	"time"

	"github.com/oomph-ac/voxel/entity"
	"github.com/oomph-ac/voxel/world"
	"github.com/oomph-ac/voxel/world/block"
	"go.uber.org/atomic"
)

// DefaultReach is the distance, in world units, up to which blocks can be edited.
const DefaultReach = 10

// Placer is the component that turns pointer input into block edits. It casts a ray from the eye
// entity along its forward vector each tick: a left press breaks the block hit and a right press
// places the selected block against the face hit.
type Placer struct {
	world *world.World
	input Input
	eye   *entity.Entity
	reach float32

	palette  []block.Type
	selected int
	buttons  buttons

	placed, broken atomic.Int64

	logger *slog.Logger
}

// NewPlacer returns a Placer editing the world passed. A reach of zero uses DefaultReach and a nil
// logger discards all records.
func NewPlacer(w *world.World, input Input, eye *entity.Entity, reach float32, logger *slog.Logger) *Placer {
	if reach <= 0 {
		reach = DefaultReach
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Placer{
		world:   w,
		input:   input,
		eye:     eye,
		reach:   reach,
		palette: block.Palette(),
		logger:  logger,
	}
}

// Selected returns the block type placed on a right press.
func (p *Placer) Selected() block.Type {
	return p.palette[p.selected]
}

// SelectedIndex returns the index of the selected block type in the palette.
func (p *Placer) SelectedIndex() int {
	return p.selected
}

// Placed returns the amount of blocks placed so far.
func (p *Placer) Placed() int64 {
	return p.placed.Load()
}

// Broken returns the amount of blocks broken so far.
func (p *Placer) Broken() int64 {
	return p.broken.Load()
}

// Tick ...
func (p *Placer) Tick(time.Duration) {
	// Presses are tracked even while inactive so a button held through a menu does not edit once
	// the menu closes.
	pressed := p.buttons.update(p.input)
	// One step per tick in the direction scrolled, whatever the size of the delta.
	if d := p.input.ScrollDelta(); d > 0 {
		p.selected = min(p.selected+1, len(p.palette)-1)
	} else if d < 0 {
		p.selected = max(p.selected-1, 0)
	}
	if !p.input.Active() || (!pressed[ButtonLeft] && !pressed[ButtonRight]) {
		return
	}

	t := p.eye.Transform()
	hit, ok := p.world.Raycast(t.Position, t.Forward(), p.reach)
	if !ok {
		return
	}

	if pressed[ButtonRight] {
		p.place(hit)
	}
	if pressed[ButtonLeft] {
		p.breakBlock(hit)
	}
}

// place writes the selected block into the cell next to the face hit, which may lie in a
// neighbouring chunk.
func (p *Placer) place(hit world.RaycastResult) {
	c, pos, ok := p.world.Resolve(hit.Chunk.Pos(), hit.Face.Side(hit.Pos))
	if !ok {
		p.logger.Debug("placement target not loaded", "chunk", hit.Chunk.Pos(), "pos", hit.Pos, "face", hit.Face)
		return
	}
	sel := p.Selected()
	p.world.Apply(c, world.SetBlockTransaction{BlockPos: pos, Block: sel.ID})
	p.placed.Inc()
}

func (p *Placer) breakBlock(hit world.RaycastResult) {
	p.world.Apply(hit.Chunk, world.SetBlockTransaction{BlockPos: hit.Pos, Block: block.Air})
	p.broken.Inc()
}
