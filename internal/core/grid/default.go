package grid

// DefaultSize is the edge length of the built-in map.
const DefaultSize = 32

// Default returns the built-in 32x32 arena: a walled border with a short diagonal wall
// run from (12, 6) down to (8, 10).
func Default() *Map {
	cells := make([]uint8, DefaultSize*DefaultSize)
	for i := 0; i < DefaultSize; i++ {
		cells[i] = 1
		cells[(DefaultSize-1)*DefaultSize+i] = 1
		cells[i*DefaultSize] = 1
		cells[i*DefaultSize+DefaultSize-1] = 1
	}
	for i := 0; i < 5; i++ {
		cells[(6+i)*DefaultSize+12-i] = 1
	}

	m, err := New(DefaultSize, DefaultSize, cells)
	if err != nil {
		panic(err)
	}
	return m
}
