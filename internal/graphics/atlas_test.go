package graphics

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"voxelview/internal/registry"
)

func TestLoadAtlasImageMissingFileFallsBack(t *testing.T) {
	img, err := loadAtlasImage(filepath.Join(t.TempDir(), "absent.png"))
	if err != nil {
		t.Fatalf("Expected fallback, got error: %v", err)
	}
	if img.Bounds().Dx() != atlasPixels || img.Bounds().Dy() != atlasPixels {
		t.Fatalf("Fallback atlas is %v, expected %dx%d", img.Bounds(), atlasPixels, atlasPixels)
	}

	// Each registered block's cell must be painted, not transparent.
	for _, name := range []string{"grass", "dirt", "stone"} {
		id, ok := registry.ByName(name)
		if !ok {
			t.Fatalf("Block %s not registered", name)
		}
		def := registry.Lookup(id)
		x := (def.AtlasCell-1)*CellPixels + CellPixels/2
		_, _, _, a := img.At(x, CellPixels/2).RGBA()
		if a == 0 {
			t.Errorf("Cell for %s is transparent in fallback atlas", name)
		}
	}

	// Air has no cell; the unused top-row tail stays transparent.
	_, _, _, a := img.At(atlasPixels-1, 0).RGBA()
	if a != 0 {
		t.Error("Unused atlas area is painted")
	}
}

func TestLoadAtlasImageScalesToCellResolution(t *testing.T) {
	// A 32x32 source must come out at the documented atlas resolution.
	src := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			src.Set(x, y, color.RGBA{200, 10, 10, 255})
		}
	}

	path := filepath.Join(t.TempDir(), "atlas.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, src); err != nil {
		t.Fatal(err)
	}
	f.Close()

	img, err := loadAtlasImage(path)
	if err != nil {
		t.Fatalf("loadAtlasImage failed: %v", err)
	}
	if img.Bounds().Dx() != atlasPixels || img.Bounds().Dy() != atlasPixels {
		t.Fatalf("Expected %dx%d, got %v", atlasPixels, atlasPixels, img.Bounds())
	}
	r, _, _, _ := img.At(atlasPixels/2, atlasPixels/2).RGBA()
	if r>>8 != 200 {
		t.Errorf("Expected scaled red channel 200, got %d", r>>8)
	}
}

func TestLoadAtlasImageRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.png")
	if err := os.WriteFile(path, []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadAtlasImage(path); err == nil {
		t.Error("Expected decode error, got none")
	}
}
