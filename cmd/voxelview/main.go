package main

import (
	"log"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"voxelview/internal/config"
	"voxelview/internal/game"
	"voxelview/internal/graphics"
	"voxelview/internal/input"
	"voxelview/internal/world"
)

const (
	configPath = "voxelview.yml"
	atlasPath  = "assets/atlas.png"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := config.Load(configPath); err != nil {
		log.Fatalf("load config: %v", err)
	}
	cfg := config.Get()

	if err := glfw.Init(); err != nil {
		log.Fatalf("init glfw: %v", err)
	}
	defer glfw.Terminate()

	window, err := setupWindow(cfg)
	if err != nil {
		log.Fatalf("create window: %v", err)
	}

	atlas, err := graphics.LoadAtlas(atlasPath)
	if err != nil {
		log.Fatalf("load atlas: %v", err)
	}
	renderer, err := graphics.NewRenderer(atlas)
	if err != nil {
		log.Fatalf("init renderer: %v", err)
	}
	defer renderer.Dispose()

	gameWorld := generateWorld(cfg)

	session, err := game.NewSession(renderer, gameWorld, cfg.FOV, cfg.WindowWidth, cfg.WindowHeight)
	if err != nil {
		log.Fatalf("start session: %v", err)
	}

	im := input.NewManager()
	game.NewLoop(window, session, im).Run()
}

func setupWindow(cfg config.Settings) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(cfg.WindowWidth, cfg.WindowHeight, "voxelview", nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return nil, err
	}

	// The FPS limiter paces frames instead of vsync.
	glfw.SwapInterval(0)
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	return window, nil
}

func generateWorld(cfg config.Settings) *world.World {
	switch cfg.Terrain {
	case config.TerrainHills:
		return world.GenerateWith(world.NewHillGenerator(cfg.Seed))
	default:
		return world.Generate()
	}
}
