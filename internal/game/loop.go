package game

import (
	"log"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"voxelview/internal/config"
	"voxelview/internal/input"
)

// Loop drives the session from the window's event stream: one tick per
// iteration, dt taken from a monotonic clock between iterations.
type Loop struct {
	window  *glfw.Window
	session *Session
	im      *input.Manager

	limiter  *FPSLimiter
	lastTime time.Time

	lastMouseX float64
	lastMouseY float64
	firstMouse bool
}

// NewLoop wires window callbacks (keys, mouse look, resize) and prepares
// the tick driver.
func NewLoop(window *glfw.Window, session *Session, im *input.Manager) *Loop {
	l := &Loop{
		window:     window,
		session:    session,
		im:         im,
		limiter:    NewFPSLimiter(),
		lastTime:   time.Now(),
		firstMouse: true,
	}

	im.SetKeyCallback(window)

	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		if l.firstMouse {
			l.lastMouseX, l.lastMouseY = xpos, ypos
			l.firstMouse = false
			return
		}
		dx := xpos - l.lastMouseX
		dy := l.lastMouseY - ypos // inverted: screen y grows downward
		l.lastMouseX, l.lastMouseY = xpos, ypos

		sens := config.GetMouseSensitivity()
		l.session.Look(dx*sens, dy*sens)
	})

	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		l.session.Resize(width, height)
	})

	return l
}

// Run ticks until the window closes.
func (l *Loop) Run() {
	for !l.window.ShouldClose() {
		l.tick()
	}
}

func (l *Loop) tick() {
	now := time.Now()
	dt := now.Sub(l.lastTime).Seconds()
	l.lastTime = now

	glfw.PollEvents()

	wasPaused := l.session.Paused()
	l.session.Update(dt, l.im)
	if paused := l.session.Paused(); paused != wasPaused {
		l.setCursorCaptured(!paused)
	}

	l.session.Render()
	l.window.SwapBuffers()

	l.im.PostUpdate()

	if d := time.Since(now); d > 33*time.Millisecond {
		log.Printf("slow frame: %v", d)
	}

	l.limiter.Wait(config.GetFPSLimit())
}

func (l *Loop) setCursorCaptured(captured bool) {
	if captured {
		l.window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
		l.firstMouse = true
	} else {
		l.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
}
