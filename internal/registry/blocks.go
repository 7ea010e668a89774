package registry

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"voxelview/internal/world"
)

// Atlas layout: a square grid of AtlasCells x AtlasCells texture cells.
// Textured blocks occupy the topmost row, one cell per block, 1-indexed by
// AtlasCell (Air has no cell). This is a fixed convention of the shipped
// atlas, not a runtime parameter.
const (
	AtlasCells = 16
	CellSpan   = 1.0 / AtlasCells
)

// BlockDefinition describes a block's registry entry.
type BlockDefinition struct {
	ID        world.BlockType
	Name      string
	AtlasCell int // 1-indexed cell in the atlas top row; 0 for air
}

var (
	blocks = make(map[world.BlockType]*BlockDefinition)
	byName = make(map[string]world.BlockType)
)

func register(def *BlockDefinition) {
	blocks[def.ID] = def
	byName[def.Name] = def.ID
}

func init() {
	register(&BlockDefinition{ID: world.Air, Name: "air"})
	register(&BlockDefinition{ID: world.Grass, Name: "grass", AtlasCell: 1})
	register(&BlockDefinition{ID: world.Dirt, Name: "dirt", AtlasCell: 2})
	register(&BlockDefinition{ID: world.Stone, Name: "stone", AtlasCell: 3})
}

// Lookup returns the definition for t, or nil when unregistered.
func Lookup(t world.BlockType) *BlockDefinition {
	return blocks[t]
}

// ByName returns the block type registered under name.
func ByName(name string) (world.BlockType, bool) {
	t, ok := byName[name]
	return t, ok
}

// UVsFor returns the UV quad for t's atlas cell, ordered top-left,
// top-right, bottom-right, bottom-left in image space (v grows downward).
// The same quad is used on all six cube faces. Requesting UVs for Air or an
// unregistered type is a caller bug and fails.
func UVsFor(t world.BlockType) ([4]mgl32.Vec2, error) {
	def, ok := blocks[t]
	if !ok {
		return [4]mgl32.Vec2{}, fmt.Errorf("registry: no block definition for type %d", t)
	}
	if def.AtlasCell == 0 {
		return [4]mgl32.Vec2{}, fmt.Errorf("registry: block %q has no atlas cell", def.Name)
	}

	u0 := float32(def.AtlasCell-1) * CellSpan
	u1 := u0 + CellSpan
	return [4]mgl32.Vec2{
		{u0, 0},
		{u1, 0},
		{u1, CellSpan},
		{u0, CellSpan},
	}, nil
}
