package graphics

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/png"
	"log"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
	xdraw "golang.org/x/image/draw"

	"voxelview/internal/registry"
	"voxelview/internal/world"
)

// CellPixels is the side length of one atlas cell in texels. The atlas is
// a square of registry.AtlasCells cells per side.
const CellPixels = 16

const atlasPixels = registry.AtlasCells * CellPixels

// LoadAtlas loads the block texture atlas and uploads it as a 2D texture.
// When the file is absent a flat-color atlas is generated in its place so
// the viewer stays runnable without shipped assets.
func LoadAtlas(path string) (uint32, error) {
	img, err := loadAtlasImage(path)
	if err != nil {
		return 0, err
	}
	return uploadAtlas(img), nil
}

// loadAtlasImage decodes the atlas PNG and normalizes it to RGBA at the
// documented cell resolution, scaling with nearest-neighbor so texel edges
// stay crisp. A missing file falls back to the generated atlas.
func loadAtlasImage(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		log.Printf("atlas %s not found, using generated colors", path)
		return fallbackAtlas(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("open atlas %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode atlas %s: %w", path, err)
	}

	rgba := image.NewRGBA(image.Rect(0, 0, atlasPixels, atlasPixels))
	if img.Bounds().Dx() == atlasPixels && img.Bounds().Dy() == atlasPixels {
		draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	} else {
		xdraw.NearestNeighbor.Scale(rgba, rgba.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	}
	return rgba, nil
}

// fallbackAtlas paints one solid color per registered block into its atlas
// cell on the top row.
func fallbackAtlas() *image.RGBA {
	colors := map[world.BlockType]color.RGBA{
		world.Grass: {106, 170, 64, 255},
		world.Dirt:  {134, 96, 67, 255},
		world.Stone: {125, 125, 125, 255},
	}

	img := image.NewRGBA(image.Rect(0, 0, atlasPixels, atlasPixels))
	for t, c := range colors {
		def := registry.Lookup(t)
		if def == nil || def.AtlasCell == 0 {
			continue
		}
		x0 := (def.AtlasCell - 1) * CellPixels
		cell := image.Rect(x0, 0, x0+CellPixels, CellPixels)
		draw.Draw(img, cell, &image.Uniform{c}, image.Point{}, draw.Src)
	}
	return img
}

func uploadAtlas(img *image.RGBA) uint32 {
	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)

	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA8,
		int32(img.Bounds().Dx()),
		int32(img.Bounds().Dy()),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(img.Pix),
	)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return texture
}
