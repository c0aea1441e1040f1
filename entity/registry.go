package entity

import (
	"log/slog"
	"time"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sasha-s/go-deadlock"
)

// Ticker is implemented by components that run every tick.
type Ticker interface {
	Tick(dt time.Duration)
}

// Destroyer is implemented by components that release resources when their entity is removed.
type Destroyer interface {
	OnDestroy()
}

// Registry owns a set of entities and dispatches ticks to their components.
type Registry struct {
	mu       deadlock.RWMutex
	next     ID
	entities *orderedmap.OrderedMap[ID, *Entity]

	logger *slog.Logger
}

// NewRegistry returns an empty registry. A nil logger discards all records.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Registry{entities: orderedmap.NewOrderedMap[ID, *Entity](), logger: logger}
}

// Create adds a new entity at the position passed.
func (r *Registry) Create(pos mgl32.Vec3) *Entity {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.next++
	e := &Entity{id: r.next, transform: Transform{Position: pos, Rotation: mgl32.QuatIdent()}}
	r.entities.Set(e.id, e)
	return e
}

// Entity returns the entity with the id passed.
func (r *Registry) Entity(id ID) (*Entity, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.entities.Get(id)
}

// Len returns the amount of entities in the registry.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.entities.Len()
}

// Remove removes the entity from the registry and calls OnDestroy on its components. Removing an
// entity twice does nothing.
func (r *Registry) Remove(e *Entity) {
	r.mu.Lock()
	ok := r.entities.Delete(e.id)
	r.mu.Unlock()
	if !ok || !e.removed.CompareAndSwap(false, true) {
		return
	}
	r.logger.Debug("removed entity", "id", e.id)

	for _, c := range e.Components() {
		if d, ok := c.(Destroyer); ok {
			d.OnDestroy()
		}
	}
}

// Tick calls Tick on every Ticker component, in entity creation order. Entities created or removed
// by a component during the tick are picked up on the next tick.
func (r *Registry) Tick(dt time.Duration) {
	r.mu.RLock()
	entities := make([]*Entity, 0, r.entities.Len())
	for el := r.entities.Front(); el != nil; el = el.Next() {
		entities = append(entities, el.Value)
	}
	r.mu.RUnlock()

	for _, e := range entities {
		if e.Removed() {
			continue
		}
		for _, c := range e.Components() {
			if t, ok := c.(Ticker); ok {
				t.Tick(dt)
			}
		}
	}
}
