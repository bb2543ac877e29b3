package raycast

import (
	"math"

	"chosenoffset.com/gridcaster/internal/core/grid"
)

// DDA casts rays by stepping from one gridline crossing to the next, so it never skips
// a cell.
type DDA struct {
	m     *grid.Map
	bound float64
}

// NewDDA returns a DDA caster for m. Termination via a hit is only guaranteed when m is
// bordered; otherwise rays may leave the map and report a miss.
func NewDDA(m *grid.Map) *DDA {
	return &DDA{m: m, bound: bound(m)}
}

// Cast walks the ray until it enters an occupied cell or leaves the map.
func (d *DDA) Cast(r Ray) Result {
	miss := Result{Distance: d.bound, U: NoHitU}

	mapX := int(math.Floor(r.OriginX))
	mapY := int(math.Floor(r.OriginY))
	if !d.m.InBounds(mapX, mapY) {
		return miss
	}

	dirX, dirY := r.Direction()

	deltaX := HugeStep
	if dirX != 0 {
		deltaX = math.Abs(1 / dirX)
	}
	deltaY := HugeStep
	if dirY != 0 {
		deltaY = math.Abs(1 / dirY)
	}

	var stepX, stepY int
	var sideX, sideY float64
	if dirX < 0 {
		stepX = -1
		sideX = (r.OriginX - float64(mapX)) * deltaX
	} else {
		stepX = 1
		sideX = (float64(mapX) + 1 - r.OriginX) * deltaX
	}
	if dirY < 0 {
		stepY = -1
		sideY = (r.OriginY - float64(mapY)) * deltaY
	} else {
		stepY = 1
		sideY = (float64(mapY) + 1 - r.OriginY) * deltaY
	}

	maxSteps := d.m.Width() + d.m.Height() + 2
	for i := 0; i < maxSteps; i++ {
		var side Side
		if sideX < sideY {
			sideX += deltaX
			mapX += stepX
			side = Vertical
		} else {
			sideY += deltaY
			mapY += stepY
			side = Horizontal
		}

		if !d.m.InBounds(mapX, mapY) {
			return miss
		}
		if !d.m.Occupied(mapX, mapY) {
			continue
		}

		// Distance to the crossed gridline is the accumulated value before the last
		// increment.
		var dist, u float64
		if side == Vertical {
			dist = sideX - deltaX
			u = frac(r.OriginY + dist*dirY)
		} else {
			dist = sideY - deltaY
			u = frac(r.OriginX + dist*dirX)
		}
		if dist < 0 {
			dist = 0
		}
		return Result{Distance: dist, U: u, Side: side, Hit: true}
	}
	return miss
}
