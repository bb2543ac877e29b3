// Package terminal runs the game inside a terminal using tcell. Each character cell
// shows two vertically stacked pixels with the upper half block rune: the foreground
// color is the top pixel and the background color the bottom one.
package terminal

import (
	"errors"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/gridcaster/internal/core/pixel"
	"chosenoffset.com/gridcaster/internal/render"
)

const (
	halfBlock = '▀'

	// Terminals report key presses, not releases. A key counts as held for this long
	// after its last press or auto-repeat.
	defaultHold = 150 * time.Millisecond
)

// InputManager tracks recent key presses.
type InputManager struct {
	mu      sync.Mutex
	pressed map[render.Key]time.Time
	hold    time.Duration
	now     func() time.Time
}

// NewInputManager creates an input manager treating a key as held for hold after a
// press. A non-positive hold uses the default.
func NewInputManager(hold time.Duration) *InputManager {
	if hold <= 0 {
		hold = defaultHold
	}
	return &InputManager{
		pressed: make(map[render.Key]time.Time),
		hold:    hold,
		now:     time.Now,
	}
}

// Press records a key press.
func (m *InputManager) Press(key render.Key) {
	m.mu.Lock()
	m.pressed[key] = m.now()
	m.mu.Unlock()
}

// IsKeyPressed returns whether key was pressed within the hold window.
func (m *InputManager) IsKeyPressed(key render.Key) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	at, ok := m.pressed[key]
	return ok && m.now().Sub(at) <= m.hold
}

// keyFromEvent converts a tcell key and rune to a render.Key.
func keyFromEvent(k tcell.Key, ch rune) (render.Key, bool) {
	switch k {
	case tcell.KeyUp:
		return render.KeyUp, true
	case tcell.KeyDown:
		return render.KeyDown, true
	case tcell.KeyLeft:
		return render.KeyLeft, true
	case tcell.KeyRight:
		return render.KeyRight, true
	case tcell.KeyEscape:
		return render.KeyEscape, true
	case tcell.KeyRune:
		switch ch {
		case 'w', 'W':
			return render.KeyW, true
		case 'a', 'A':
			return render.KeyA, true
		case 's', 'S':
			return render.KeyS, true
		case 'd', 'D':
			return render.KeyD, true
		case 'q', 'Q':
			return render.KeyQ, true
		case 'e', 'E':
			return render.KeyE, true
		}
	}
	return 0, false
}

// Engine implements render.Engine on a tcell screen.
type Engine struct {
	input  *InputManager
	logger *log.Logger
	tick   time.Duration

	mu    sync.Mutex
	title string
}

// NewEngine creates a terminal engine running at fps frames per second.
func NewEngine(logger *log.Logger, fps int) *Engine {
	if fps <= 0 {
		fps = 30
	}
	return &Engine{
		input:  NewInputManager(0),
		logger: logger,
		tick:   time.Second / time.Duration(fps),
	}
}

// SetWindowSize is a no-op; the terminal decides the size.
func (e *Engine) SetWindowSize(width, height int) {}

// SetWindowTitle sets the status line drawn over the first row.
func (e *Engine) SetWindowTitle(title string) {
	e.mu.Lock()
	e.title = title
	e.mu.Unlock()
}

// SetWindowResizable is a no-op; terminals always resize.
func (e *Engine) SetWindowResizable(resizable bool) {}

// Input returns the key state tracker.
func (e *Engine) Input() render.InputManager {
	return e.input
}

// RunGame takes over the terminal until the game quits or Ctrl+C is pressed.
func (e *Engine) RunGame(game render.Game) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.HideCursor()
	screen.Clear()

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()
	defer close(quit)

	ticker := time.NewTicker(e.tick)
	defer ticker.Stop()

	var fb *pixel.FrameBuffer
	e.logger.Debug("starting terminal loop", "tick", e.tick)
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC {
					return nil
				}
				if key, ok := keyFromEvent(ev.Key(), ev.Rune()); ok {
					e.input.Press(key)
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			if err := game.Update(); err != nil {
				if errors.Is(err, render.ErrQuit) {
					return nil
				}
				return err
			}

			cols, rows := screen.Size()
			w, h := game.Layout(cols, rows*2)
			if w <= 0 || h <= 0 {
				continue
			}
			if fb == nil || fb.Width != w || fb.Height != h {
				if fb, err = pixel.NewFrameBuffer(w, h); err != nil {
					return err
				}
			}
			game.Draw(fb)
			e.present(screen, fb, cols, rows)
		}
	}
}

// present maps the frame onto the cell grid, nearest-sampling when sizes differ.
func (e *Engine) present(screen tcell.Screen, fb *pixel.FrameBuffer, cols, rows int) {
	for cy := 0; cy < rows; cy++ {
		top := (cy * 2) * fb.Height / (rows * 2)
		bottom := (cy*2 + 1) * fb.Height / (rows * 2)
		for cx := 0; cx < cols; cx++ {
			fx := cx * fb.Width / cols
			style := tcell.StyleDefault.
				Foreground(toTcell(fb.At(fx, top))).
				Background(toTcell(fb.At(fx, bottom)))
			screen.SetContent(cx, cy, halfBlock, nil, style)
		}
	}

	e.mu.Lock()
	title := e.title
	e.mu.Unlock()
	status := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	for i, r := range []rune(title) {
		if i >= cols {
			break
		}
		screen.SetContent(i, 0, r, nil, status)
	}
	screen.Show()
}

func toTcell(p uint32) tcell.Color {
	c := pixel.Unpack(p)
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
