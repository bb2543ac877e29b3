// Package game ties the map, the player and the scene renderer into the loop a host runs.
package game

import (
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"chosenoffset.com/gridcaster/internal/core/grid"
	"chosenoffset.com/gridcaster/internal/core/pixel"
	"chosenoffset.com/gridcaster/internal/core/texture"
	"chosenoffset.com/gridcaster/internal/render"
	"chosenoffset.com/gridcaster/internal/scene"
)

// TitlePrefix starts every window title.
const TitlePrefix = "gridcaster"

// Options configures a Game.
type Options struct {
	Map       *grid.Map
	Scene     *scene.Renderer
	Input     render.InputManager
	Window    render.Window // May be nil
	Logger    *log.Logger   // May be nil
	Player    Player
	MoveSpeed float64 // Grid units per frame
	TurnSpeed float64 // Radians per frame

	ScreenWidth  int
	ScreenHeight int
	// FollowWindow renders at the host's size instead of ScreenWidth x ScreenHeight.
	FollowWindow bool

	// Inset is blitted into the top-left corner of each frame when set.
	Inset *texture.Texture

	Now func() time.Time // Clock for the FPS counter, defaults to time.Now
}

// Game holds the per-frame state and implements render.Game.
type Game struct {
	ScreenWidth  int
	ScreenHeight int
	Player       Player

	world     *grid.Map
	scene     *scene.Renderer
	input     render.InputManager
	window    render.Window
	logger    *log.Logger
	moveSpeed float64
	turnSpeed float64
	follow    bool
	inset     *texture.Texture
	fps       *FPSCounter

	// Debug
	FrameCount int
}

// New creates a game. The player's angle is wrapped into [0, 2*pi).
func New(opts Options) (*Game, error) {
	if opts.Map == nil || opts.Scene == nil || opts.Input == nil {
		return nil, fmt.Errorf("game: map, scene and input are required")
	}
	if opts.Map.Blocked(opts.Player.X, opts.Player.Y) {
		return nil, fmt.Errorf("game: player at (%v, %v) is inside a wall", opts.Player.X, opts.Player.Y)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	p := opts.Player
	p.Angle = wrapAngle(p.Angle)

	return &Game{
		ScreenWidth:  opts.ScreenWidth,
		ScreenHeight: opts.ScreenHeight,
		Player:       p,
		world:        opts.Map,
		scene:        opts.Scene,
		input:        opts.Input,
		window:       opts.Window,
		logger:       logger,
		moveSpeed:    opts.MoveSpeed,
		turnSpeed:    opts.TurnSpeed,
		follow:       opts.FollowWindow,
		inset:        opts.Inset,
		fps:          NewFPSCounter(opts.Now),
	}, nil
}

// Update applies one frame of input. Escape ends the game with render.ErrQuit.
func (g *Game) Update() error {
	if g.input.IsKeyPressed(render.KeyEscape) {
		return render.ErrQuit
	}

	var forward, strafe, turn float64
	if g.input.IsKeyPressed(render.KeyW) || g.input.IsKeyPressed(render.KeyUp) {
		forward++
	}
	if g.input.IsKeyPressed(render.KeyS) || g.input.IsKeyPressed(render.KeyDown) {
		forward--
	}
	if g.input.IsKeyPressed(render.KeyD) {
		strafe++
	}
	if g.input.IsKeyPressed(render.KeyA) {
		strafe--
	}
	if g.input.IsKeyPressed(render.KeyE) || g.input.IsKeyPressed(render.KeyRight) {
		turn++
	}
	if g.input.IsKeyPressed(render.KeyQ) || g.input.IsKeyPressed(render.KeyLeft) {
		turn--
	}

	if forward != 0 {
		g.Move(g.Player.Angle, forward*g.moveSpeed)
	}
	if strafe != 0 {
		g.Move(g.Player.Angle+math.Pi/2, strafe*g.moveSpeed)
	}
	if turn != 0 {
		g.Player.Turn(turn * g.turnSpeed)
	}
	return nil
}

// Move walks the player dist units along angle. Each axis is tried on its own, so the
// player slides along a wall instead of stopping dead.
func (g *Game) Move(angle, dist float64) {
	nx := g.Player.X + math.Cos(angle)*dist
	ny := g.Player.Y + math.Sin(angle)*dist
	if !g.world.Blocked(nx, g.Player.Y) {
		g.Player.X = nx
	}
	if !g.world.Blocked(g.Player.X, ny) {
		g.Player.Y = ny
	}
}

// View returns the camera for the current player position.
func (g *Game) View() scene.View {
	return scene.View{X: g.Player.X, Y: g.Player.Y, Angle: g.Player.Angle}
}

// Draw renders one frame into fb.
func (g *Game) Draw(fb *pixel.FrameBuffer) {
	g.scene.Render(fb, g.View())
	if g.inset != nil {
		scene.DrawInset(fb, g.inset)
	}

	g.FrameCount++
	if fps, ok := g.fps.Tick(); ok {
		if g.window != nil {
			g.window.SetWindowTitle(Title(fps))
		}
		g.logger.Debug("frame rate", "fps", fps, "x", g.Player.X, "y", g.Player.Y, "angle", g.Player.Angle)
	}
}

// Layout returns the frame buffer size for a host of the given size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.follow {
		g.ScreenWidth = outsideWidth
		g.ScreenHeight = outsideHeight
	}
	return g.ScreenWidth, g.ScreenHeight
}

// Title formats the window title for a frame rate.
func Title(fps int) string {
	return fmt.Sprintf("%s - FPS: %d", TitlePrefix, fps)
}
