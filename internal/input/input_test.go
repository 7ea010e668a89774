package input

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func TestHoldAndRelease(t *testing.T) {
	m := NewManager()

	m.HandleKeyEvent(glfw.KeyW, glfw.Press)
	if !m.IsActive(ActionMoveForward) {
		t.Error("Expected forward active after press")
	}

	m.HandleKeyEvent(glfw.KeyW, glfw.Release)
	if m.IsActive(ActionMoveForward) {
		t.Error("Expected forward inactive after release")
	}
}

func TestJustPressedEdge(t *testing.T) {
	m := NewManager()

	m.HandleKeyEvent(glfw.KeySpace, glfw.Press)
	if !m.JustPressed(ActionJump) {
		t.Error("Expected jump edge on press")
	}

	// Edge retires at frame end; the held state must survive.
	m.PostUpdate()
	if m.JustPressed(ActionJump) {
		t.Error("Expected edge cleared by PostUpdate")
	}
	if !m.IsActive(ActionJump) {
		t.Error("Expected jump still held")
	}

	// A repeat while held is not a fresh edge.
	m.HandleKeyEvent(glfw.KeySpace, glfw.Repeat)
	if m.JustPressed(ActionJump) {
		t.Error("Expected no edge from key repeat while held")
	}
}

func TestRebinding(t *testing.T) {
	m := NewManager()
	m.UnbindKey(glfw.KeyW)
	m.BindKey(glfw.KeyUp, ActionMoveForward)

	m.HandleKeyEvent(glfw.KeyW, glfw.Press)
	if m.IsActive(ActionMoveForward) {
		t.Error("Expected unbound key to be ignored")
	}

	m.HandleKeyEvent(glfw.KeyUp, glfw.Press)
	if !m.IsActive(ActionMoveForward) {
		t.Error("Expected rebound key to drive the action")
	}
}

func TestUnknownKeyIgnored(t *testing.T) {
	m := NewManager()
	m.HandleKeyEvent(glfw.KeyF12, glfw.Press)
	for a := Action(0); a < ActionCount; a++ {
		if m.IsActive(a) || m.JustPressed(a) {
			t.Fatalf("Unbound key activated action %d", a)
		}
	}
}

func TestOutOfRangeAction(t *testing.T) {
	m := NewManager()
	if m.IsActive(Action(-1)) || m.IsActive(ActionCount) {
		t.Error("Out-of-range action reported active")
	}
	if m.JustPressed(Action(-1)) || m.JustPressed(ActionCount) {
		t.Error("Out-of-range action reported pressed")
	}
}
