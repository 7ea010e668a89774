package world

const (
	// ChunkSize is the horizontal extent of the world in blocks (one chunk).
	ChunkSize = 16
	// WorldHeight is the vertical extent in blocks.
	WorldHeight = 64
)

// World is one fixed-size chunk of voxels. It is populated once by a
// TerrainGenerator and read-only afterwards; there is no block edit API.
type World struct {
	blocks [ChunkSize][WorldHeight][ChunkSize]BlockType
}

// Generate builds the default flat layered terrain.
func Generate() *World {
	return GenerateWith(NewLayeredGenerator())
}

// GenerateWith populates a fresh world column by column using g.
func GenerateWith(g TerrainGenerator) *World {
	w := &World{}
	for x := 0; x < ChunkSize; x++ {
		for z := 0; z < ChunkSize; z++ {
			g.PopulateColumn(w, x, z)
		}
	}
	return w
}

// BlockAt returns the block at world coordinates (x, y, z).
// Coordinates outside the generated extent are Air, so callers can probe
// neighbours without bounds checks of their own.
func (w *World) BlockAt(x, y, z int) BlockType {
	if x < 0 || x >= ChunkSize || y < 0 || y >= WorldHeight || z < 0 || z >= ChunkSize {
		return Air
	}
	return w.blocks[x][y][z]
}

// SurfaceHeightAt returns the y of the highest solid block in column (x, z),
// or -1 when the column is empty or out of range.
func (w *World) SurfaceHeightAt(x, z int) int {
	if x < 0 || x >= ChunkSize || z < 0 || z >= ChunkSize {
		return -1
	}
	for y := WorldHeight - 1; y >= 0; y-- {
		if w.blocks[x][y][z] != Air {
			return y
		}
	}
	return -1
}

// SolidCount returns the number of non-air voxels.
func (w *World) SolidCount() int {
	n := 0
	for x := 0; x < ChunkSize; x++ {
		for y := 0; y < WorldHeight; y++ {
			for z := 0; z < ChunkSize; z++ {
				if w.blocks[x][y][z] != Air {
					n++
				}
			}
		}
	}
	return n
}

func (w *World) setBlock(x, y, z int, t BlockType) {
	if x < 0 || x >= ChunkSize || y < 0 || y >= WorldHeight || z < 0 || z >= ChunkSize {
		return
	}
	w.blocks[x][y][z] = t
}
