// Package render defines the display host the game runs inside. Backends (ebiten window,
// tcell terminal) implement Engine and InputManager so the game loop never depends on a
// specific graphics library.
package render

import (
	"errors"

	"chosenoffset.com/gridcaster/internal/core/pixel"
)

// ErrQuit is returned from Game.Update to end the loop without an error.
var ErrQuit = errors.New("render: quit")

// InputManager reports the keys held during the current frame.
type InputManager interface {
	IsKeyPressed(key Key) bool
}

// Key represents a keyboard key.
type Key int

// Key constants for the movement and rotation controls.
const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyQ
	KeyE
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEscape
)

// Keys lists every Key, in declaration order.
var Keys = []Key{KeyW, KeyA, KeyS, KeyD, KeyQ, KeyE, KeyUp, KeyDown, KeyLeft, KeyRight, KeyEscape}

// Game is what an Engine drives.
type Game interface {
	// Update advances game state by one frame. Returning ErrQuit stops the engine.
	Update() error

	// Draw renders the frame into fb. fb has the size last returned by Layout.
	Draw(fb *pixel.FrameBuffer)

	// Layout accepts the outside size (window pixels, or terminal cells with two
	// pixels per cell vertically) and returns the frame buffer size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Window is the part of an Engine the game uses while running.
type Window interface {
	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)
}

// Engine runs the loop and presents frames.
type Engine interface {
	Window

	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowResizable enables or disables window resizing.
	SetWindowResizable(resizable bool)

	// Input returns the engine's input manager.
	Input() InputManager

	// RunGame runs the game loop until the game quits or an error occurs.
	RunGame(game Game) error
}
