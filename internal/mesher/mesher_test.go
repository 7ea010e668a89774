package mesher

import (
	"reflect"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"voxelview/internal/world"
)

func TestBuildMeshCount(t *testing.T) {
	w := world.Generate()
	mesh, err := BuildMesh(w)
	if err != nil {
		t.Fatalf("BuildMesh failed: %v", err)
	}

	// Default terrain: layers 0..7 fully solid, 16*16*8 cubes.
	want := world.ChunkSize * world.ChunkSize * 8
	if len(mesh) != want {
		t.Errorf("Expected %d instances, got %d", want, len(mesh))
	}
}

func TestBuildMeshCorrespondence(t *testing.T) {
	w := world.Generate()
	mesh, err := BuildMesh(w)
	if err != nil {
		t.Fatalf("BuildMesh failed: %v", err)
	}

	seen := make(map[[3]int]world.BlockType, len(mesh))
	for _, inst := range mesh {
		x := int(inst.Position.X() - 0.5)
		y := int(inst.Position.Y() - 0.5)
		z := int(inst.Position.Z() - 0.5)

		if inst.Position.X() != float32(x)+0.5 ||
			inst.Position.Y() != float32(y)+0.5 ||
			inst.Position.Z() != float32(z)+0.5 {
			t.Fatalf("Instance not at a block center: %v", inst.Position)
		}

		key := [3]int{x, y, z}
		if _, dup := seen[key]; dup {
			t.Fatalf("Duplicate instance for voxel %v", key)
		}
		seen[key] = inst.Block

		if got := w.BlockAt(x, y, z); got != inst.Block {
			t.Errorf("Instance at %v has type %v, world has %v", key, inst.Block, got)
		}
	}

	// Every solid voxel must be covered; every air voxel must not.
	for x := 0; x < world.ChunkSize; x++ {
		for y := 0; y < world.WorldHeight; y++ {
			for z := 0; z < world.ChunkSize; z++ {
				_, has := seen[[3]int{x, y, z}]
				solid := w.BlockAt(x, y, z) != world.Air
				if solid && !has {
					t.Errorf("Solid voxel (%d,%d,%d) has no instance", x, y, z)
				}
				if !solid && has {
					t.Errorf("Air voxel (%d,%d,%d) has an instance", x, y, z)
				}
			}
		}
	}
}

func TestBuildMeshOrder(t *testing.T) {
	w := world.Generate()
	mesh, err := BuildMesh(w)
	if err != nil {
		t.Fatalf("BuildMesh failed: %v", err)
	}

	// Ascending x, then z, then y: the first column is (0,*,0), bottom up.
	if mesh[0].Position != (mgl32.Vec3{0.5, 0.5, 0.5}) {
		t.Errorf("Expected first instance at (0.5,0.5,0.5), got %v", mesh[0].Position)
	}
	if mesh[0].Block != world.Grass {
		t.Errorf("Expected Grass first, got %v", mesh[0].Block)
	}
	if mesh[1].Position != (mgl32.Vec3{0.5, 1.5, 0.5}) {
		t.Errorf("Expected second instance at (0.5,1.5,0.5), got %v", mesh[1].Position)
	}
	// Column (0,*,0) has 8 blocks; the 9th instance starts column z=1.
	if mesh[8].Position != (mgl32.Vec3{0.5, 0.5, 1.5}) {
		t.Errorf("Expected instance 8 at (0.5,0.5,1.5), got %v", mesh[8].Position)
	}
}

func TestBuildMeshIdempotent(t *testing.T) {
	w := world.Generate()
	a, err := BuildMesh(w)
	if err != nil {
		t.Fatalf("BuildMesh failed: %v", err)
	}
	b, err := BuildMesh(w)
	if err != nil {
		t.Fatalf("BuildMesh failed: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("Two builds of the same world differ")
	}
}

func TestBuildMeshEmptyWorld(t *testing.T) {
	mesh, err := BuildMesh(world.GenerateWith(emptyGenerator{}))
	if err != nil {
		t.Fatalf("BuildMesh failed: %v", err)
	}
	if len(mesh) != 0 {
		t.Errorf("Expected empty mesh, got %d instances", len(mesh))
	}
}

type emptyGenerator struct{}

func (emptyGenerator) PopulateColumn(w *world.World, x, z int) {}

func BenchmarkBuildMesh(b *testing.B) {
	w := world.Generate()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := BuildMesh(w); err != nil {
			b.Fatal(err)
		}
	}
}
