package settings

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml"
)

// Settings contains everything about the engine that can be configured from the settings file.
type Settings struct {
	Chunk struct {
		// Width and Depth are the horizontal size of a chunk in voxels. They must be equal.
		Width  int
		Height int
		Depth  int
		// VoxelSize is the world size of a single voxel.
		VoxelSize float32
	}
	Terrain struct {
		Seed            int64
		Frequency       float32
		Amplitude       float32
		WaterHeight     int
		TreeChance      float64
		TallGrassChance float64
	}
	Streamer struct {
		// RenderDistance is the radius in chunks of the area kept loaded around the viewer.
		RenderDistance int32
	}
	Picking struct {
		Reach float32
	}
	Atlas struct {
		Texture string
		// Cells is the amount of cells in one row of the texture atlas.
		Cells int
	}
}

// DefaultSettings returns the default settings.
func DefaultSettings() Settings {
	s := Settings{}
	s.Chunk.Width = 16
	s.Chunk.Height = 128
	s.Chunk.Depth = 16
	s.Chunk.VoxelSize = 1

	s.Terrain.Seed = 1
	s.Terrain.Frequency = 0.005
	s.Terrain.Amplitude = 25.5
	s.Terrain.WaterHeight = 10
	s.Terrain.TreeChance = 0.01
	s.Terrain.TallGrassChance = 0.08

	s.Streamer.RenderDistance = 8
	s.Picking.Reach = 10

	s.Atlas.Texture = "atlas"
	s.Atlas.Cells = 16
	return s
}

// Validate returns an error if the settings cannot be used to run the engine.
func (s Settings) Validate() error {
	switch {
	case s.Chunk.Width <= 0 || s.Chunk.Height <= 0 || s.Chunk.Depth <= 0:
		return fmt.Errorf("chunk size must be positive, got %dx%dx%d", s.Chunk.Width, s.Chunk.Height, s.Chunk.Depth)
	case s.Chunk.Width != s.Chunk.Depth:
		return fmt.Errorf("chunks must be square, got width %d and depth %d", s.Chunk.Width, s.Chunk.Depth)
	case s.Chunk.VoxelSize <= 0:
		return fmt.Errorf("voxel size must be positive, got %v", s.Chunk.VoxelSize)
	case s.Terrain.Frequency <= 0:
		return fmt.Errorf("terrain frequency must be positive, got %v", s.Terrain.Frequency)
	case s.Terrain.TreeChance < 0 || s.Terrain.TreeChance > 1 || s.Terrain.TallGrassChance < 0 || s.Terrain.TallGrassChance > 1:
		return errors.New("decoration chances must be between 0 and 1")
	case s.Streamer.RenderDistance < 0:
		return fmt.Errorf("render distance must not be negative, got %d", s.Streamer.RenderDistance)
	case s.Picking.Reach <= 0:
		return fmt.Errorf("reach must be positive, got %v", s.Picking.Reach)
	case s.Atlas.Texture == "":
		return errors.New("atlas texture must be set")
	case s.Atlas.Cells <= 0:
		return fmt.Errorf("atlas cells must be positive, got %d", s.Atlas.Cells)
	}
	return nil
}

// SaveDefault will create and save the default settings file. If the file already exists, it will return an error.
func SaveDefault(path string) error {
	s := DefaultSettings()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if data, err := toml.Marshal(s); err != nil {
			return fmt.Errorf("failed encoding default settings: %v", err)
		} else if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed creating settings file: %v", err)
		}
		return nil
	}
	return errors.New("settings file already exists")
}

// Load will load the settings from your settings file, and return an error if the file does not exist
// or holds invalid settings. Values missing from the file keep their defaults.
func Load(path string) (Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Settings{}, errors.New("settings file doesn't exist")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("error reading config: %v", err)
	}

	settings := DefaultSettings()
	if err = toml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("error decoding config: %v", err)
	}
	if err := settings.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid config: %w", err)
	}
	return settings, nil
}
