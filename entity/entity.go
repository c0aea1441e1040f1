package entity

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sasha-s/go-deadlock"
	"go.uber.org/atomic"
)

// ID uniquely identifies an entity within its registry.
type ID uint64

// Transform is the placement of an entity in the world.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
}

// Forward returns the direction the transform is facing. An unrotated transform faces -Z.
func (t Transform) Forward() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{0, 0, -1})
}

// Entity represents an object in the world carrying a set of components.
type Entity struct {
	id ID

	// mu protects all the following fields.
	mu deadlock.RWMutex
	// transform is the current placement of the entity.
	transform Transform
	// components holds the components attached to the entity, in attachment order.
	components []any

	removed atomic.Bool
}

// ID returns the id of the entity.
func (e *Entity) ID() ID {
	return e.id
}

// Transform returns the current transform of the entity.
func (e *Entity) Transform() Transform {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.transform
}

// SetTransform replaces the transform of the entity.
func (e *Entity) SetTransform(t Transform) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.transform = t
}

// Position returns the current position of the entity.
func (e *Entity) Position() mgl32.Vec3 {
	return e.Transform().Position
}

// SetPosition moves the entity to the position passed.
func (e *Entity) SetPosition(pos mgl32.Vec3) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.transform.Position = pos
}

// Attach adds a component to the entity.
func (e *Entity) Attach(c any) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.components = append(e.components, c)
}

// Components returns a copy of the components attached to the entity.
func (e *Entity) Components() []any {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append([]any(nil), e.components...)
}

// Removed returns true if the entity was removed from its registry.
func (e *Entity) Removed() bool {
	return e.removed.Load()
}

// Get returns the first component of the entity with the type T.
func Get[T any](e *Entity) (T, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	for _, c := range e.components {
		if v, ok := c.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// All returns every component of the entity with the type T.
func All[T any](e *Entity) []T {
	e.mu.RLock()
	defer e.mu.RUnlock()
	var out []T
	for _, c := range e.components {
		if v, ok := c.(T); ok {
			out = append(out, v)
		}
	}
	return out
}
