// Package grid provides the immutable occupancy map the raycasters walk.
package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensions is returned when a map has a non-positive size.
	ErrDimensions = errors.New("grid: invalid dimensions")
	// ErrCells is returned when cell data does not match the declared size or holds
	// values other than 0 and 1.
	ErrCells = errors.New("grid: invalid cells")
)

// Map is a width x height row-major occupancy grid. A true cell is a wall.
type Map struct {
	width  int
	height int
	cells  []bool
}

// New builds a Map from 0/1 cells laid out row-major. The slice is copied.
func New(width, height int, cells []uint8) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrDimensions, width, height)
	}
	if len(cells) != width*height {
		return nil, fmt.Errorf("%w: expected %d cells, got %d", ErrCells, width*height, len(cells))
	}

	m := &Map{width: width, height: height, cells: make([]bool, len(cells))}
	for i, v := range cells {
		switch v {
		case 0:
		case 1:
			m.cells[i] = true
		default:
			return nil, fmt.Errorf("%w: value %d at (%d, %d)", ErrCells, v, i%width, i/width)
		}
	}
	return m, nil
}

// Parse builds a Map from text rows. '#' and '1' are walls; '.', '0' and ' ' are empty.
func Parse(rows []string) (*Map, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrDimensions)
	}
	width := len(rows[0])
	cells := make([]uint8, 0, width*len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has width %d, expected %d", ErrCells, y, len(row), width)
		}
		for x := 0; x < len(row); x++ {
			switch row[x] {
			case '#', '1':
				cells = append(cells, 1)
			case '.', '0', ' ':
				cells = append(cells, 0)
			default:
				return nil, fmt.Errorf("%w: unexpected %q at (%d, %d)", ErrCells, row[x], x, y)
			}
		}
	}
	return New(width, len(rows), cells)
}

// Width returns the number of columns.
func (m *Map) Width() int { return m.width }

// Height returns the number of rows.
func (m *Map) Height() int { return m.height }

// InBounds reports whether (col, row) addresses a cell.
func (m *Map) InBounds(col, row int) bool {
	return col >= 0 && col < m.width && row >= 0 && row < m.height
}

// Occupied reports whether (col, row) is a wall. Callers bounds-check with InBounds first.
func (m *Map) Occupied(col, row int) bool {
	return m.cells[row*m.width+col]
}

// Bordered reports whether every cell on the outer edge is a wall. DDA traversal on a
// bordered map always ends on a hit when started from an interior cell.
func (m *Map) Bordered() bool {
	for x := 0; x < m.width; x++ {
		if !m.Occupied(x, 0) || !m.Occupied(x, m.height-1) {
			return false
		}
	}
	for y := 0; y < m.height; y++ {
		if !m.Occupied(0, y) || !m.Occupied(m.width-1, y) {
			return false
		}
	}
	return true
}

// Blocked reports whether a real-valued position lies in a wall or outside the map.
func (m *Map) Blocked(x, y float64) bool {
	if x < 0 || y < 0 {
		return true
	}
	col, row := int(x), int(y)
	if !m.InBounds(col, row) {
		return true
	}
	return m.Occupied(col, row)
}

// Rows renders the map back to '#'/'.' text, one string per row.
func (m *Map) Rows() []string {
	rows := make([]string, m.height)
	buf := make([]byte, m.width)
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if m.Occupied(x, y) {
				buf[x] = '#'
			} else {
				buf[x] = '.'
			}
		}
		rows[y] = string(buf)
	}
	return rows
}
