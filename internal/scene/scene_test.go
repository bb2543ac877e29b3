package scene

import (
	"math"
	"strings"
	"testing"

	"chosenoffset.com/gridcaster/internal/core/grid"
	"chosenoffset.com/gridcaster/internal/core/pixel"
	"chosenoffset.com/gridcaster/internal/core/raycast"
	"chosenoffset.com/gridcaster/internal/core/texture"
	"chosenoffset.com/gridcaster/internal/render/column"
)

func openRoom(t *testing.T, size int) *grid.Map {
	t.Helper()
	rows := make([]string, size)
	for y := range rows {
		if y == 0 || y == size-1 {
			rows[y] = strings.Repeat("#", size)
		} else {
			rows[y] = "#" + strings.Repeat(".", size-2) + "#"
		}
	}
	m, err := grid.Parse(rows)
	if err != nil {
		t.Fatalf("grid.Parse failed: %v", err)
	}
	return m
}

func columns() *column.Renderer {
	return column.New(column.Options{
		Ceiling: pixel.New(0, 0, 155, 255),
		Floor:   pixel.New(155, 0, 0, 255),
		Wall:    pixel.New(0, 115, 0, 255),
	})
}

func TestColumnAngleSweep(t *testing.T) {
	r := New(raycast.NewDDA(grid.Default()), columns(), Options{})
	if r.FOV() != DefaultFOV {
		t.Fatalf("FOV() = %v, expected DefaultFOV", r.FOV())
	}

	v := View{X: 4, Y: 4, Angle: 1}
	if got := r.ColumnAngle(v, 0, 100); math.Abs(got-(1-DefaultFOV/2)) > 1e-12 {
		t.Errorf("first column angle = %v", got)
	}
	if got := r.ColumnAngle(v, 50, 100); math.Abs(got-1) > 1e-12 {
		t.Errorf("middle column angle = %v, expected view angle", got)
	}
}

func TestFisheyeCorrectionFlattensWall(t *testing.T) {
	m := openRoom(t, 20)
	v := View{X: 10.5, Y: 10.5, Angle: 0}
	const width = 64

	corrected := New(raycast.NewDDA(m), columns(), Options{CorrectFisheye: true})
	raw := New(raycast.NewDDA(m), columns(), Options{})

	for x := 0; x < width; x++ {
		res := corrected.CastColumn(v, x, width)
		if !res.Hit || res.Side != raycast.Vertical {
			t.Fatalf("column %d: expected a hit on the east wall", x)
		}
		if math.Abs(res.Distance-8.5) > 1e-9 {
			t.Errorf("column %d: corrected distance %v, expected 8.5", x, res.Distance)
		}
	}

	edge := raw.CastColumn(v, 0, width)
	if edge.Distance <= 8.5 {
		t.Errorf("uncorrected edge distance %v should exceed the perpendicular 8.5", edge.Distance)
	}
}

func TestParallelRenderMatchesSequential(t *testing.T) {
	m := grid.Default()
	pix := make([]uint32, 8*8)
	for i := range pix {
		pix[i] = pixel.New(uint8(i*3), uint8(i*5), uint8(i*7), 255).Pack()
	}
	tex, err := texture.New(8, 8, pix)
	if err != nil {
		t.Fatalf("texture.New failed: %v", err)
	}
	cols := column.New(column.Options{
		Ceiling: pixel.New(0, 0, 155, 255),
		Floor:   pixel.New(155, 0, 0, 255),
		Texture: tex,
	})
	v := View{X: 4, Y: 4, Angle: 0.7}

	seqFB, _ := pixel.NewFrameBuffer(97, 61)
	New(raycast.NewDDA(m), cols, Options{CorrectFisheye: true}).Render(seqFB, v)

	for _, workers := range []int{2, 3, 8, 200} {
		parFB, _ := pixel.NewFrameBuffer(97, 61)
		New(raycast.NewDDA(m), cols, Options{Workers: workers, CorrectFisheye: true}).Render(parFB, v)
		for i := range seqFB.Pix {
			if seqFB.Pix[i] != parFB.Pix[i] {
				t.Fatalf("workers=%d: pixel %d differs", workers, i)
			}
		}
	}

	for i, p := range seqFB.Pix {
		if p == 0 {
			t.Fatalf("pixel %d was never written", i)
		}
	}
}

func TestDrawInsetClips(t *testing.T) {
	fb, _ := pixel.NewFrameBuffer(3, 2)
	pix := make([]uint32, 4*4)
	for i := range pix {
		pix[i] = uint32(i + 1)
	}
	tex, _ := texture.New(4, 4, pix)

	DrawInset(fb, tex)
	expected := []uint32{1, 2, 3, 5, 6, 7}
	for i, p := range expected {
		if fb.Pix[i] != p {
			t.Errorf("pixel %d = %d, expected %d", i, fb.Pix[i], p)
		}
	}

	DrawInset(fb, nil)
}
