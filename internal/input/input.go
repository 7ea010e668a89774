package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action is a logical game action, decoupled from physical keys.
type Action int

const (
	ActionMoveForward Action = iota
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionPause
	ActionHotbar1
	ActionHotbar2
	ActionHotbar3
	ActionHotbar4
	ActionHotbar5
	ActionHotbar6
	ActionHotbar7
	ActionHotbar8
	ActionHotbar9
	ActionCount // sentinel for array sizing
)

// Manager maps physical keys to logical actions and tracks held state plus
// per-frame press edges. GLFW key callbacks feed it; the frame loop calls
// PostUpdate once per tick to retire edge flags.
type Manager struct {
	mu sync.RWMutex

	keyToActions map[glfw.Key][]Action

	currentState [ActionCount]bool
	justPressed  [ActionCount]bool
}

// NewManager creates a Manager with the default bindings.
func NewManager() *Manager {
	m := &Manager{
		keyToActions: make(map[glfw.Key][]Action),
	}

	m.BindKey(glfw.KeyW, ActionMoveForward)
	m.BindKey(glfw.KeyS, ActionMoveBackward)
	m.BindKey(glfw.KeyA, ActionMoveLeft)
	m.BindKey(glfw.KeyD, ActionMoveRight)
	m.BindKey(glfw.KeySpace, ActionJump)
	m.BindKey(glfw.KeyEscape, ActionPause)
	m.BindKey(glfw.Key1, ActionHotbar1)
	m.BindKey(glfw.Key2, ActionHotbar2)
	m.BindKey(glfw.Key3, ActionHotbar3)
	m.BindKey(glfw.Key4, ActionHotbar4)
	m.BindKey(glfw.Key5, ActionHotbar5)
	m.BindKey(glfw.Key6, ActionHotbar6)
	m.BindKey(glfw.Key7, ActionHotbar7)
	m.BindKey(glfw.Key8, ActionHotbar8)
	m.BindKey(glfw.Key9, ActionHotbar9)

	return m
}

// BindKey binds a physical key to an action. One key may drive several
// actions and one action may be reachable from several keys.
func (m *Manager) BindKey(key glfw.Key, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keyToActions[key] = append(m.keyToActions[key], action)
}

// UnbindKey removes all bindings for a key.
func (m *Manager) UnbindKey(key glfw.Key) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.keyToActions, key)
}

// HandleKeyEvent updates action state from a raw key event.
func (m *Manager) HandleKeyEvent(key glfw.Key, state glfw.Action) {
	m.mu.RLock()
	actions, ok := m.keyToActions[key]
	m.mu.RUnlock()
	if !ok {
		return
	}

	pressed := state == glfw.Press || state == glfw.Repeat

	m.mu.Lock()
	for _, a := range actions {
		if pressed && !m.currentState[a] {
			m.justPressed[a] = true
		}
		m.currentState[a] = pressed
	}
	m.mu.Unlock()
}

// SetKeyCallback installs the GLFW key callback feeding this manager.
func (m *Manager) SetKeyCallback(window *glfw.Window) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		m.HandleKeyEvent(key, action)
	})
}

// PostUpdate clears press edges. Call once at the end of every frame,
// after all input checks.
func (m *Manager) PostUpdate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.justPressed {
		m.justPressed[i] = false
	}
}

// IsActive reports whether the action is currently held.
func (m *Manager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentState[action]
}

// JustPressed reports whether the action was pressed this frame.
func (m *Manager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.justPressed[action]
}
