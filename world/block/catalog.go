package block

import (
	_ "embed"
	"fmt"

	"github.com/oomph-ac/voxel/assert"
	"github.com/oomph-ac/voxel/oerror"
	"gopkg.in/yaml.v3"
)

// ID is the code stored in a voxel grid cell. Zero is always air.
type ID uint16

const (
	Air ID = iota
	Grass
	Dirt
	Stone
	Sand
	OakLog
	OakLeaves
	OakPlanks
	Water
	Cobblestone
	Glass
	TallGrass
)

// TransparentLayers is the amount of transparent draw layers blocks may be sorted into.
const TransparentLayers = 2

//go:embed blocks.yaml
var catalogData []byte

// Properties describes how a block id is drawn and whether it blocks rays and light.
type Properties struct {
	ID          ID
	Name        string
	Transparent bool
	// Layer is the transparent draw layer of the block, or -1 for opaque blocks.
	Layer     int
	Billboard bool
	Solid     bool

	textures [faceCount]int
}

type entry struct {
	ID          ID     `yaml:"id"`
	Name        string `yaml:"name"`
	Transparent bool   `yaml:"transparent"`
	Layer       int    `yaml:"layer"`
	Billboard   bool   `yaml:"billboard"`
	Solid       bool   `yaml:"solid"`
	Textures    struct {
		All    *int `yaml:"all"`
		Top    *int `yaml:"top"`
		Bottom *int `yaml:"bottom"`
		Side   *int `yaml:"side"`
	} `yaml:"textures"`
}

var (
	table []Properties
	known []bool
)

func init() {
	props, err := parseCatalog(catalogData)
	if err != nil {
		panic(oerror.New("block catalog: %v", err))
	}
	install(props)
}

// parseCatalog decodes a YAML block table into block properties.
func parseCatalog(data []byte) ([]Properties, error) {
	var entries []entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	seen := make(map[ID]struct{}, len(entries))
	props := make([]Properties, 0, len(entries))
	for _, e := range entries {
		if _, ok := seen[e.ID]; ok {
			return nil, fmt.Errorf("duplicate block id %d (%s)", e.ID, e.Name)
		}
		seen[e.ID] = struct{}{}

		if e.Transparent && (e.Layer < 0 || e.Layer >= TransparentLayers) {
			return nil, fmt.Errorf("block %s: layer %d out of range", e.Name, e.Layer)
		}
		p := Properties{
			ID:          e.ID,
			Name:        e.Name,
			Transparent: e.Transparent,
			Layer:       -1,
			Billboard:   e.Billboard,
			Solid:       e.Solid,
		}
		if e.Transparent {
			p.Layer = e.Layer
		}

		tex := e.Textures
		all := int(e.ID)
		if tex.All != nil {
			all = *tex.All
		}
		for i := range p.textures {
			p.textures[i] = all
		}
		if tex.Side != nil {
			for _, f := range HorizontalFaces() {
				p.textures[f] = *tex.Side
			}
		}
		if tex.Top != nil {
			p.textures[FaceTop] = *tex.Top
		}
		if tex.Bottom != nil {
			p.textures[FaceBottom] = *tex.Bottom
		}
		props = append(props, p)
	}
	return props, nil
}

func install(props []Properties) {
	var maxID ID
	for _, p := range props {
		maxID = max(maxID, p.ID)
	}
	table = make([]Properties, int(maxID)+1)
	known = make([]bool, int(maxID)+1)
	for _, p := range props {
		table[p.ID] = p
		known[p.ID] = true
	}
}

// Known returns true if the id has an entry in the block table.
func Known(id ID) bool {
	return int(id) < len(known) && known[id]
}

// Lookup returns the properties of a block id.
func Lookup(id ID) (Properties, bool) {
	if !Known(id) {
		return Properties{ID: id, Name: fmt.Sprintf("unknown_%d", id), Layer: -1, Solid: true}, false
	}
	return table[id], true
}

// TextureIndex returns the atlas cell drawn on the face of a block. Unknown ids use the id itself as
// the cell so new blocks show up with a placeholder texture.
func TextureIndex(id ID, face Face) int {
	assert.IsTrue(face.Valid(), "invalid face %d for block %d", uint8(face), id)
	if !Known(id) {
		return int(id)
	}
	return table[id].textures[face]
}

// Transparent returns true if faces behind the block can be seen through it.
func Transparent(id ID) bool {
	return Known(id) && table[id].Transparent
}

// Layer returns the transparent draw layer of the block, or -1 if it is opaque.
func Layer(id ID) int {
	if !Known(id) {
		return -1
	}
	return table[id].Layer
}

// Billboard returns true if the block is drawn as a crossed pair of quads.
func Billboard(id ID) bool {
	return Known(id) && table[id].Billboard
}

// Solid returns true if the block stops rays and dims light below it. Unknown ids are solid.
func Solid(id ID) bool {
	if !Known(id) {
		return true
	}
	return table[id].Solid
}

// Name returns the catalog name of the block.
func Name(id ID) string {
	p, _ := Lookup(id)
	return p.Name
}
