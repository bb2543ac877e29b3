package game

import (
	"math"
	"time"
)

// Player represents the viewer's position in grid units and facing in radians.
type Player struct {
	X, Y  float64
	Angle float64 // Kept in [0, 2*pi)
}

// Turn rotates the player by delta radians.
func (p *Player) Turn(delta float64) {
	p.Angle = wrapAngle(p.Angle + delta)
}

// wrapAngle maps a onto [0, 2*pi).
func wrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	if a >= 2*math.Pi {
		a = 0
	}
	return a
}

// FPSCounter counts frames and reports once per elapsed second.
type FPSCounter struct {
	now    func() time.Time
	start  time.Time
	frames int
	last   int
}

// NewFPSCounter creates a counter starting now.
func NewFPSCounter(now func() time.Time) *FPSCounter {
	if now == nil {
		now = time.Now
	}
	return &FPSCounter{now: now, start: now()}
}

// Tick records a frame. It returns the frame count of the last full second and true
// when a second has elapsed since the previous report.
func (c *FPSCounter) Tick() (int, bool) {
	c.frames++
	if c.now().Sub(c.start) < time.Second {
		return c.last, false
	}
	c.last = c.frames
	c.frames = 0
	c.start = c.now()
	return c.last, true
}

// FPS returns the most recent report.
func (c *FPSCounter) FPS() int { return c.last }
