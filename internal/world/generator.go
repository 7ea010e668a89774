package world

import (
	"github.com/aquilax/go-perlin"
)

// TerrainGenerator fills one column of a world. Implementations must be
// deterministic: populating the same column twice yields the same blocks.
type TerrainGenerator interface {
	PopulateColumn(w *World, x, z int)
}

// LayeredGenerator produces the fixed flat terrain: grass at y=0, dirt on
// y 1..3, stone on y 4..7, air above. Every column is identical.
type LayeredGenerator struct{}

func NewLayeredGenerator() *LayeredGenerator {
	return &LayeredGenerator{}
}

func (g *LayeredGenerator) PopulateColumn(w *World, x, z int) {
	for y := 0; y < 8; y++ {
		switch {
		case y == 0:
			w.setBlock(x, y, z, Grass)
		case y < 4:
			w.setBlock(x, y, z, Dirt)
		default:
			w.setBlock(x, y, z, Stone)
		}
	}
}

// HillGenerator produces gently rolling terrain from a seeded perlin
// heightmap: grass on the surface, a few dirt layers beneath, stone below.
type HillGenerator struct {
	noise      *perlin.Perlin
	baseHeight int
	amplitude  float64
	scale      float64
}

func NewHillGenerator(seed int64) *HillGenerator {
	return &HillGenerator{
		noise:      perlin.NewPerlin(2, 2, 3, seed),
		baseHeight: 8,
		amplitude:  6,
		scale:      1.0 / 24.0,
	}
}

// HeightAt computes the surface height for column (x, z).
func (g *HillGenerator) HeightAt(x, z int) int {
	n := g.noise.Noise2D(float64(x)*g.scale, float64(z)*g.scale)
	h := g.baseHeight + int(n*g.amplitude)
	if h < 1 {
		h = 1
	}
	if h >= WorldHeight {
		h = WorldHeight - 1
	}
	return h
}

func (g *HillGenerator) PopulateColumn(w *World, x, z int) {
	top := g.HeightAt(x, z)
	for y := 0; y <= top; y++ {
		switch {
		case y == top:
			w.setBlock(x, y, z, Grass)
		case y >= top-3:
			w.setBlock(x, y, z, Dirt)
		default:
			w.setBlock(x, y, z, Stone)
		}
	}
}
