package world

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
	"github.com/oomph-ac/voxel/internal"
	"github.com/oomph-ac/voxel/world/voxel"
	"github.com/sasha-s/go-deadlock"
	"github.com/zeebo/xxh3"
)

// Cache keeps the blocks of every chunk that was generated or edited, keyed by chunk position, so a
// chunk coming back into range is restored instead of generated again. Light is never cached. Grids
// are held zstd compressed in memory only.
type Cache struct {
	mu      deadlock.RWMutex
	entries map[ChunkPos]cacheEntry

	enc *zstd.Encoder
	dec *zstd.Decoder
}

type cacheEntry struct {
	// digest is the xxh3 hash of the uncompressed grid.
	digest uint64
	data   []byte
}

// NewCache returns an empty cache.
func NewCache() (*Cache, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return nil, fmt.Errorf("create cache encoder: %w", err)
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("create cache decoder: %w", err)
	}
	return &Cache{entries: make(map[ChunkPos]cacheEntry), enc: enc, dec: dec}, nil
}

// Update inserts or overwrites the grid stored for a chunk position. It returns false if the grid
// stored was already identical.
func (c *Cache) Update(pos ChunkPos, g *voxel.Grid) (bool, error) {
	buf := internal.GetBuffer()
	defer internal.PutBuffer(buf)

	raw, err := g.AppendBinary(*buf)
	if err != nil {
		return false, fmt.Errorf("encode grid of chunk %v: %w", pos, err)
	}
	*buf = raw
	digest := xxh3.Hash(raw)

	c.mu.RLock()
	existing, ok := c.entries[pos]
	c.mu.RUnlock()
	if ok && existing.digest == digest {
		return false, nil
	}

	entry := cacheEntry{digest: digest, data: c.enc.EncodeAll(raw, nil)}
	c.mu.Lock()
	c.entries[pos] = entry
	c.mu.Unlock()
	return true, nil
}

// Lookup returns a copy of the grid stored for a chunk position.
func (c *Cache) Lookup(pos ChunkPos) (*voxel.Grid, bool, error) {
	c.mu.RLock()
	entry, ok := c.entries[pos]
	c.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}

	buf := internal.GetBuffer()
	defer internal.PutBuffer(buf)

	raw, err := c.dec.DecodeAll(entry.data, *buf)
	if err != nil {
		return nil, false, fmt.Errorf("decompress chunk %v: %w", pos, err)
	}
	*buf = raw
	var g voxel.Grid
	if err := g.UnmarshalBinary(raw); err != nil {
		return nil, false, fmt.Errorf("decode chunk %v: %w", pos, err)
	}
	return &g, true, nil
}

// Contains returns true if a grid is stored for the chunk position.
func (c *Cache) Contains(pos ChunkPos) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.entries[pos]
	return ok
}

// Delete removes the grid stored for a chunk position.
func (c *Cache) Delete(pos ChunkPos) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, pos)
}

// Len returns the amount of chunks cached.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Size returns the compressed size of all cached grids in bytes.
func (c *Cache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var n int
	for _, e := range c.entries {
		n += len(e.data)
	}
	return n
}

// Clear removes every cached grid.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
}

// Close releases the resources of the cache codecs.
func (c *Cache) Close() error {
	c.dec.Close()
	return c.enc.Close()
}
