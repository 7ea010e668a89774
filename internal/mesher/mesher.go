package mesher

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"voxelview/internal/registry"
	"voxelview/internal/world"
)

// CubeInstance is one drawable cube: the block-center world position and
// the UV quad applied to all six faces.
type CubeInstance struct {
	Position mgl32.Vec3
	UVs      [4]mgl32.Vec2
	Block    world.BlockType
}

// BuildMesh converts a world into cube instances, one per solid voxel,
// iterating in ascending x, then z, then y so the output order is
// deterministic. Adjacent solid blocks are emitted as full independent
// cubes; no shared faces are culled.
func BuildMesh(w *world.World) ([]CubeInstance, error) {
	// Sized for the default flat terrain; taller worlds grow the slice.
	out := make([]CubeInstance, 0, world.ChunkSize*world.ChunkSize*8)
	for x := 0; x < world.ChunkSize; x++ {
		for z := 0; z < world.ChunkSize; z++ {
			for y := 0; y < world.WorldHeight; y++ {
				t := w.BlockAt(x, y, z)
				if t == world.Air {
					continue
				}
				uvs, err := registry.UVsFor(t)
				if err != nil {
					return nil, fmt.Errorf("mesh voxel (%d,%d,%d): %w", x, y, z, err)
				}
				out = append(out, CubeInstance{
					Position: mgl32.Vec3{float32(x) + 0.5, float32(y) + 0.5, float32(z) + 0.5},
					UVs:      uvs,
					Block:    t,
				})
			}
		}
	}
	return out, nil
}
