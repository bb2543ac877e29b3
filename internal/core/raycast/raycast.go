// Package raycast finds the first wall a ray meets on a grid.Map.
//
// Two strategies share the Caster contract: DDA walks exactly from gridline to
// gridline and is the one the renderer uses; Step marches in fixed increments and is
// kept as a reference to compare against.
package raycast

import (
	"fmt"
	"math"

	"chosenoffset.com/gridcaster/internal/core/grid"
)

// HugeStep replaces the per-gridline increment of an axis the ray never crosses.
const HugeStep = 1e30

// NoHitU is the texture coordinate reported with a miss.
const NoHitU = -1.0

// Side names the kind of gridline a ray crossed to reach its hit cell.
type Side int

const (
	// Vertical means an x = const gridline was crossed (east or west face).
	Vertical Side = iota
	// Horizontal means a y = const gridline was crossed (north or south face).
	Horizontal
)

func (s Side) String() string {
	switch s {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// Ray is an origin in grid units and a direction angle in radians.
type Ray struct {
	OriginX, OriginY float64
	Angle            float64
}

// Direction returns the unit direction vector of the ray.
func (r Ray) Direction() (dx, dy float64) {
	return math.Cos(r.Angle), math.Sin(r.Angle)
}

// Result describes the first wall along a ray.
//
// When Hit is false the ray left the map or ran out of range; Distance then holds the
// caster's bound and must not be projected, and U is NoHitU.
type Result struct {
	Distance float64
	U        float64
	Side     Side
	Hit      bool
}

// Caster casts one ray against the map it was built with.
type Caster interface {
	Cast(r Ray) Result
}

// Kind selects a Caster implementation by name.
type Kind string

const (
	KindDDA  Kind = "dda"
	KindStep Kind = "step"
)

// New returns the Caster for kind. stepSize and maxDistance only apply to KindStep.
func New(kind Kind, m *grid.Map, stepSize, maxDistance float64) (Caster, error) {
	switch kind {
	case KindDDA, "":
		return NewDDA(m), nil
	case KindStep:
		return NewStep(m, stepSize, maxDistance)
	default:
		return nil, fmt.Errorf("raycast: unknown caster %q", kind)
	}
}

// bound is the implicit range of a map: no straight path inside it is longer.
func bound(m *grid.Map) float64 {
	return float64(m.Width() + m.Height())
}

func frac(v float64) float64 {
	f := v - math.Floor(v)
	if f >= 1 {
		return 0
	}
	return f
}
