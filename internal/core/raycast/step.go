package raycast

import (
	"fmt"
	"math"

	"chosenoffset.com/gridcaster/internal/core/grid"
)

// DefaultStepSize is the marching increment used when none is configured.
const DefaultStepSize = 0.01

// Step marches a ray in fixed increments and stops at the first sample that lands in an
// occupied cell.
//
// A step larger than a wall's thickness measured along the ray lets the ray tunnel
// through that wall. That is a property of the method and is kept as is; use DDA for
// exact results.
type Step struct {
	m           *grid.Map
	stepSize    float64
	maxDistance float64
}

// NewStep returns a Step caster. A non-positive maxDistance means width + height of m.
func NewStep(m *grid.Map, stepSize, maxDistance float64) (*Step, error) {
	if stepSize <= 0 || math.IsNaN(stepSize) || math.IsInf(stepSize, 0) {
		return nil, fmt.Errorf("raycast: invalid step size %v", stepSize)
	}
	if maxDistance <= 0 {
		maxDistance = bound(m)
	}
	return &Step{m: m, stepSize: stepSize, maxDistance: maxDistance}, nil
}

// StepSize returns the marching increment.
func (s *Step) StepSize() float64 { return s.stepSize }

// Cast marches until a wall, the map edge or the distance bound.
func (s *Step) Cast(r Ray) Result {
	dirX, dirY := r.Direction()
	dx, dy := dirX*s.stepSize, dirY*s.stepSize

	x, y := r.OriginX, r.OriginY
	prevX, prevY := int(math.Floor(x)), int(math.Floor(y))
	distance := 0.0

	for distance < s.maxDistance {
		if x < 0 || y < 0 {
			return Result{Distance: distance, U: NoHitU}
		}
		gridX, gridY := int(x), int(y)
		if !s.m.InBounds(gridX, gridY) {
			return Result{Distance: distance, U: NoHitU}
		}
		if s.m.Occupied(gridX, gridY) {
			side := entrySide(x, y, dx, dy, gridX != prevX, gridY != prevY)
			u := frac(x)
			if side == Vertical {
				u = frac(y)
			}
			return Result{Distance: distance, U: u, Side: side, Hit: true}
		}

		prevX, prevY = gridX, gridY
		x += dx
		y += dy
		distance += s.stepSize
	}

	return Result{Distance: s.maxDistance, U: NoHitU}
}

// entrySide decides which gridline the last step crossed. When both cell coordinates
// changed, the gridline crossed later (closer to the sample) is the face that was hit.
func entrySide(x, y, dx, dy float64, changedX, changedY bool) Side {
	switch {
	case changedX && !changedY:
		return Vertical
	case changedY && !changedX:
		return Horizontal
	case !changedX && !changedY:
		// Origin cell is itself a wall.
		return Vertical
	}

	backX := penetration(x, dx)
	backY := penetration(y, dy)
	if backX <= backY {
		return Vertical
	}
	return Horizontal
}

// penetration is the fraction of one step travelled since crossing the last gridline on
// an axis.
func penetration(v, d float64) float64 {
	if d == 0 {
		return math.Inf(1)
	}
	var into float64
	if d > 0 {
		into = v - math.Floor(v)
	} else {
		into = math.Ceil(v) - v
	}
	return into / math.Abs(d)
}
