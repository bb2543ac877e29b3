// Package column projects raycast results into vertical strips of a frame buffer.
package column

import (
	"math"

	"chosenoffset.com/gridcaster/internal/core/pixel"
	"chosenoffset.com/gridcaster/internal/core/raycast"
	"chosenoffset.com/gridcaster/internal/core/texture"
)

const (
	// DefaultProjection is the camera focal length expressed as a multiple of the
	// screen height: a wall one unit away is drawn DefaultProjection screens tall.
	DefaultProjection = 2.0

	// MinDistance keeps the projection finite for a ray that starts on a wall face.
	MinDistance = 1e-4

	maxWallHeight = 1 << 24
)

// Options configures a Renderer.
type Options struct {
	// Projection scales projected wall height; see DefaultProjection.
	Projection float64
	Ceiling    pixel.Color
	Floor      pixel.Color
	// Wall is used when Texture is nil.
	Wall    pixel.Color
	Texture *texture.Texture
}

// Renderer draws one column at a time. It only reads its own fields, so one Renderer
// can serve many goroutines that draw disjoint columns.
type Renderer struct {
	projection float64
	ceiling    uint32
	floor      uint32
	wall       uint32
	tex        *texture.Texture
}

// New creates a Renderer. A non-positive projection falls back to DefaultProjection.
func New(opts Options) *Renderer {
	proj := opts.Projection
	if proj <= 0 || math.IsNaN(proj) || math.IsInf(proj, 0) {
		proj = DefaultProjection
	}
	return &Renderer{
		projection: proj,
		ceiling:    opts.Ceiling.Pack(),
		floor:      opts.Floor.Pack(),
		wall:       opts.Wall.Pack(),
		tex:        opts.Texture,
	}
}

// Projection returns the focal length in use.
func (r *Renderer) Projection() float64 { return r.projection }

// Textured reports whether walls are sampled from a texture.
func (r *Renderer) Textured() bool { return r.tex != nil }

// WallHeight projects a perpendicular distance to a wall height in rows.
func (r *Renderer) WallHeight(distance float64, screenHeight int) int {
	if distance < MinDistance || math.IsNaN(distance) {
		distance = MinDistance
	}
	h := float64(screenHeight) / distance * r.projection
	if h > maxWallHeight {
		return maxWallHeight
	}
	return int(h)
}

// RenderColumn draws column x for a raycast result. A miss draws no wall, leaving the
// column split between ceiling and floor at mid-screen.
func (r *Renderer) RenderColumn(fb *pixel.FrameBuffer, x int, res raycast.Result) {
	if !res.Hit {
		r.Draw(fb, x, 0, 0)
		return
	}
	r.Draw(fb, x, r.WallHeight(res.Distance, fb.Height), res.U)
}

// Draw fills column x: ceiling above the wall, the wall strip centred vertically, floor
// below. u selects the texture column when the renderer is textured.
func (r *Renderer) Draw(fb *pixel.FrameBuffer, x, wallHeight int, u float64) {
	if x < 0 || x >= fb.Width {
		return
	}
	if wallHeight < 0 {
		wallHeight = 0
	}
	h := fb.Height
	start, end := Span(h, wallHeight)
	visibleEnd := min(end, h)

	for y := 0; y < start; y++ {
		fb.Set(x, y, r.ceiling)
	}

	if r.tex == nil {
		for y := start; y < visibleEnd; y++ {
			fb.Set(x, y, r.wall)
		}
	} else {
		texX := r.tex.Column(u)
		for y := start; y < visibleEnd; y++ {
			texY := TextureRow(y, start, wallHeight, h, r.tex.Height)
			fb.Set(x, y, r.tex.Pix[texY*r.tex.Width+texX])
		}
	}

	for y := end; y < h; y++ {
		fb.Set(x, y, r.floor)
	}
}

// Span returns the first wall row and the row after the last wall row. end may exceed
// screenHeight when the wall is taller than the screen.
func Span(screenHeight, wallHeight int) (start, end int) {
	start = max(0, (screenHeight-wallHeight)/2)
	return start, start + wallHeight
}

// TextureRow maps screen row y of a wall strip to a texture row in [0, texHeight).
// For a wall taller than the screen, half the hidden excess is skipped so the visible
// slice is the middle of the texture.
func TextureRow(y, wallStart, wallHeight, screenHeight, texHeight int) int {
	if wallHeight <= 0 {
		return 0
	}
	wallY := y
	if wallHeight > screenHeight {
		wallY += (wallHeight - screenHeight) / 2
	}
	row := int(float64(wallY-wallStart) / float64(wallHeight) * float64(texHeight))
	if row < 0 {
		return 0
	}
	if row >= texHeight {
		return texHeight - 1
	}
	return row
}
