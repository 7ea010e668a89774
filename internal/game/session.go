package game

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"voxelview/internal/input"
	"voxelview/internal/mesher"
	"voxelview/internal/player"
	"voxelview/internal/world"
)

// RenderBackend receives the static cube list once and a camera pose every
// frame. The GL renderer implements it; tests use a fake.
type RenderBackend interface {
	Submit(instances []mesher.CubeInstance) error
	Render(view, proj mgl32.Mat4)
	SetViewport(width, height int)
}

// InputSource is the slice of input.Manager the session needs.
type InputSource interface {
	IsActive(input.Action) bool
	JustPressed(input.Action) bool
}

// hotbarBlocks maps hotbar slots to selectable block types.
var hotbarBlocks = []world.BlockType{world.Grass, world.Dirt, world.Stone}

// Session owns one running world view: the generated world, its static
// mesh, the movement state and the camera. One tick is
// Update (intent → Step → camera) then Render (pose → backend).
type Session struct {
	backend RenderBackend
	world   *world.World

	state    player.MovementState
	cam      player.Camera
	selected world.BlockType

	paused        bool
	width, height int
	fov           float64
}

// NewSession meshes the world, submits it, and spawns the viewer above the
// center column.
func NewSession(backend RenderBackend, w *world.World, fov float64, width, height int) (*Session, error) {
	mesh, err := mesher.BuildMesh(w)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	if err := backend.Submit(mesh); err != nil {
		return nil, fmt.Errorf("session: submit mesh: %w", err)
	}

	cx, cz := world.ChunkSize/2, world.ChunkSize/2
	spawnY := float32(w.SurfaceHeightAt(cx, cz)) + 3

	s := &Session{
		backend:  backend,
		world:    w,
		selected: hotbarBlocks[0],
		width:    width,
		height:   height,
		fov:      fov,
	}
	s.state.Position = mgl32.Vec3{float32(cx), spawnY, float32(cz)}
	s.cam.Position = s.state.Position
	backend.SetViewport(width, height)
	return s, nil
}

// Update advances one tick: pause handling, hotbar selection, then the
// movement step with the camera applying the resulting position delta in
// its yaw frame.
func (s *Session) Update(dt float64, in InputSource) {
	if in.JustPressed(input.ActionPause) {
		s.paused = !s.paused
	}
	if s.paused {
		return
	}

	s.handleHotbar(in)

	intent := player.InputIntent{
		Forward:  in.IsActive(input.ActionMoveForward),
		Backward: in.IsActive(input.ActionMoveBackward),
		Left:     in.IsActive(input.ActionMoveLeft),
		Right:    in.IsActive(input.ActionMoveRight),
		Jump:     in.JustPressed(input.ActionJump),
	}

	next := player.Step(s.state, intent, dt)
	s.cam.MoveLocal(next.Position.Sub(s.state.Position))
	s.state = next
}

func (s *Session) handleHotbar(in InputSource) {
	for i := range hotbarBlocks {
		if in.JustPressed(input.ActionHotbar1 + input.Action(i)) {
			s.selected = hotbarBlocks[i]
		}
	}
}

// Look applies a mouse look delta in degrees. Ignored while paused.
func (s *Session) Look(dYaw, dPitch float64) {
	if s.paused {
		return
	}
	s.cam.ApplyLookDelta(dYaw, dPitch)
}

// Render submits the current camera pose to the backend.
func (s *Session) Render() {
	aspect := float32(1)
	if s.height > 0 {
		aspect = float32(s.width) / float32(s.height)
	}
	proj := mgl32.Perspective(mgl32.DegToRad(float32(s.fov)), aspect, 0.1, 500)
	s.backend.Render(s.cam.ViewMatrix(), proj)
}

// Resize updates the projection aspect and the backend viewport.
func (s *Session) Resize(width, height int) {
	if width < 1 || height < 1 {
		return
	}
	s.width, s.height = width, height
	s.backend.SetViewport(width, height)
}

// Paused reports whether the simulation is halted.
func (s *Session) Paused() bool {
	return s.paused
}

// SelectedBlock returns the hotbar block chosen for future placement.
func (s *Session) SelectedBlock() world.BlockType {
	return s.selected
}

// State returns the current movement state.
func (s *Session) State() player.MovementState {
	return s.state
}

// Camera returns the camera pose.
func (s *Session) Camera() player.Camera {
	return s.cam
}
