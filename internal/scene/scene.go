// Package scene renders a full frame: one ray and one column per screen x.
package scene

import (
	"math"

	"golang.org/x/sync/errgroup"

	"chosenoffset.com/gridcaster/internal/core/pixel"
	"chosenoffset.com/gridcaster/internal/core/raycast"
	"chosenoffset.com/gridcaster/internal/core/texture"
	"chosenoffset.com/gridcaster/internal/render/column"
)

// DefaultFOV is the horizontal field of view in radians.
const DefaultFOV = math.Pi / 3

// View is the frozen per-frame camera: position in grid units and facing in radians.
type View struct {
	X, Y  float64
	Angle float64
}

// Options configures a Renderer.
type Options struct {
	// FOV is the horizontal field of view in radians; zero means DefaultFOV.
	FOV float64
	// Workers is the number of goroutines splitting the column loop; <= 1 renders
	// sequentially.
	Workers int
	// CorrectFisheye scales each column's distance by the cosine of its angle from the
	// view direction before projecting it.
	CorrectFisheye bool
}

// Renderer casts and draws every column of a frame.
type Renderer struct {
	caster  raycast.Caster
	columns *column.Renderer
	fov     float64
	workers int
	fisheye bool
}

// New creates a frame renderer around a caster and a column renderer.
func New(caster raycast.Caster, columns *column.Renderer, opts Options) *Renderer {
	fov := opts.FOV
	if fov <= 0 || math.IsNaN(fov) {
		fov = DefaultFOV
	}
	return &Renderer{
		caster:  caster,
		columns: columns,
		fov:     fov,
		workers: opts.Workers,
		fisheye: opts.CorrectFisheye,
	}
}

// FOV returns the field of view in radians.
func (r *Renderer) FOV() float64 { return r.fov }

// ColumnAngle returns the ray angle for screen column x of a width-column frame.
func (r *Renderer) ColumnAngle(v View, x, width int) float64 {
	return v.Angle - r.fov/2 + float64(x)*(r.fov/float64(width))
}

// CastColumn casts the ray for column x and applies fisheye correction if enabled.
func (r *Renderer) CastColumn(v View, x, width int) raycast.Result {
	angle := r.ColumnAngle(v, x, width)
	res := r.caster.Cast(raycast.Ray{OriginX: v.X, OriginY: v.Y, Angle: angle})
	if res.Hit && r.fisheye {
		res.Distance *= math.Cos(angle - v.Angle)
	}
	return res
}

// Render draws a whole frame. v must not change until Render returns.
//
// With Workers > 1 the columns are split into contiguous bands, one goroutine each.
// Columns read only immutable state and write only their own pixels, so the bands need
// no locking; Wait is the end-of-frame fence.
func (r *Renderer) Render(fb *pixel.FrameBuffer, v View) {
	width := fb.Width
	if r.workers <= 1 || width < r.workers {
		r.renderBand(fb, v, 0, width)
		return
	}

	var g errgroup.Group
	band := (width + r.workers - 1) / r.workers
	for start := 0; start < width; start += band {
		end := min(start+band, width)
		g.Go(func() error {
			r.renderBand(fb, v, start, end)
			return nil
		})
	}
	_ = g.Wait()
}

func (r *Renderer) renderBand(fb *pixel.FrameBuffer, v View, start, end int) {
	for x := start; x < end; x++ {
		r.columns.RenderColumn(fb, x, r.CastColumn(v, x, fb.Width))
	}
}

// DrawInset copies tex into the top-left corner of fb, clipped to the frame.
func DrawInset(fb *pixel.FrameBuffer, tex *texture.Texture) {
	if tex == nil {
		return
	}
	w := min(tex.Width, fb.Width)
	h := min(tex.Height, fb.Height)
	for y := 0; y < h; y++ {
		copy(fb.Pix[y*fb.Width:y*fb.Width+w], tex.Pix[y*tex.Width:y*tex.Width+w])
	}
}
