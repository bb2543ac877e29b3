// Package simulation drives a game headlessly with scripted input. It is used to
// benchmark the casters and to check that scripted walks stay out of walls.
package simulation

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"chosenoffset.com/gridcaster/internal/app"
	"chosenoffset.com/gridcaster/internal/config"
	"chosenoffset.com/gridcaster/internal/core/pixel"
	"chosenoffset.com/gridcaster/internal/core/raycast"
	"chosenoffset.com/gridcaster/internal/game"
	"chosenoffset.com/gridcaster/internal/render"
)

// Segment holds a set of keys for a number of frames.
type Segment struct {
	Keys   []render.Key
	Frames int
}

// Script is played in order and then repeats.
type Script []Segment

// DefaultScript walks forward, turns, strafes and backs up.
var DefaultScript = Script{
	{Keys: []render.Key{render.KeyW}, Frames: 60},
	{Keys: []render.Key{render.KeyE}, Frames: 40},
	{Keys: []render.Key{render.KeyW, render.KeyD}, Frames: 30},
	{Keys: []render.Key{render.KeyQ}, Frames: 80},
	{Keys: []render.Key{render.KeyS}, Frames: 20},
}

// Frames returns the length of one pass of the script.
func (s Script) Frames() int {
	n := 0
	for _, seg := range s {
		n += seg.Frames
	}
	return n
}

// keysAt returns the keys held on frame i.
func (s Script) keysAt(i int) []render.Key {
	total := s.Frames()
	if total == 0 {
		return nil
	}
	i %= total
	for _, seg := range s {
		if i < seg.Frames {
			return seg.Keys
		}
		i -= seg.Frames
	}
	return nil
}

// scriptedInput reports the keys of the current script frame.
type scriptedInput struct {
	held map[render.Key]bool
}

func (in *scriptedInput) IsKeyPressed(key render.Key) bool { return in.held[key] }

func (in *scriptedInput) set(keys []render.Key) {
	clear(in.held)
	for _, k := range keys {
		in.held[k] = true
	}
}

// Result summarizes one run.
type Result struct {
	Caster  raycast.Kind
	Frames  int
	Elapsed time.Duration
	Final   game.Player
}

// FPS returns frames per second of wall-clock time.
func (r Result) FPS() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Frames) / r.Elapsed.Seconds()
}

// Run plays frames of script against a game on world, rendering every frame.
func Run(world *app.World, script Script, frames int, logger *log.Logger) (Result, error) {
	if frames <= 0 {
		return Result{}, fmt.Errorf("simulation: frames must be positive, got %d", frames)
	}
	in := &scriptedInput{held: make(map[render.Key]bool)}
	g, err := world.NewGame(in, nil, logger, false)
	if err != nil {
		return Result{}, err
	}
	fb, err := pixel.NewFrameBuffer(g.Layout(0, 0))
	if err != nil {
		return Result{}, err
	}

	res := Result{Caster: world.Config.Caster.Kind}
	start := time.Now()
	for i := 0; i < frames; i++ {
		in.set(script.keysAt(i))
		if err := g.Update(); err != nil {
			if errors.Is(err, render.ErrQuit) {
				break
			}
			return res, err
		}
		g.Draw(fb)
		res.Frames++
	}
	res.Elapsed = time.Since(start)
	res.Final = g.Player
	logger.Debug("simulation finished", "caster", res.Caster, "frames", res.Frames, "elapsed", res.Elapsed)
	return res, nil
}

// Compare runs the same script once per caster kind.
func Compare(cfg config.Config, kinds []raycast.Kind, script Script, frames int, logger *log.Logger) ([]Result, error) {
	results := make([]Result, 0, len(kinds))
	for _, kind := range kinds {
		c := cfg
		c.Caster.Kind = kind
		world, err := app.LoadWorld(c, logger)
		if err != nil {
			return results, err
		}
		res, err := Run(world, script, frames, logger)
		if err != nil {
			return results, err
		}
		logger.Info("benchmark", "caster", kind, "frames", res.Frames, "fps", fmt.Sprintf("%.1f", res.FPS()))
		results = append(results, res)
	}
	return results, nil
}
