package render

import (
	"fmt"

	"github.com/sasha-s/go-deadlock"
)

// Texture is a handle to a texture owned by the rendering backend.
type Texture struct {
	Name          string
	Width, Height int
}

// Content loads textures for the engine.
type Content interface {
	Texture(name string) (*Texture, error)
}

// MemoryContent is a Content serving textures registered up front. It is used by headless runs and
// tests that have no rendering backend.
type MemoryContent struct {
	mu       deadlock.RWMutex
	textures map[string]*Texture
}

// NewMemoryContent returns a MemoryContent holding the textures passed.
func NewMemoryContent(textures ...*Texture) *MemoryContent {
	c := &MemoryContent{textures: make(map[string]*Texture, len(textures))}
	for _, t := range textures {
		c.Add(t)
	}
	return c
}

// Add registers a texture, replacing any texture of the same name.
func (c *MemoryContent) Add(t *Texture) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.textures[t.Name] = t
}

// Texture ...
func (c *MemoryContent) Texture(name string) (*Texture, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, ok := c.textures[name]
	if !ok {
		return nil, fmt.Errorf("texture %q not found", name)
	}
	return t, nil
}
