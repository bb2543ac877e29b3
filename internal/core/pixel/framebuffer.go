package pixel

import (
	"fmt"
	"image"
)

// FrameBuffer is a row-major array of packed pixels owned by the render loop.
type FrameBuffer struct {
	Width  int
	Height int
	Pix    []uint32
}

// NewFrameBuffer allocates a width x height buffer.
func NewFrameBuffer(width, height int) (*FrameBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("pixel: invalid frame size %dx%d", width, height)
	}
	return &FrameBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]uint32, width*height),
	}, nil
}

// Set writes a packed pixel. The caller guarantees (x, y) is inside the buffer.
func (f *FrameBuffer) Set(x, y int, p uint32) {
	f.Pix[y*f.Width+x] = p
}

// At returns the packed pixel at (x, y).
func (f *FrameBuffer) At(x, y int) uint32 {
	return f.Pix[y*f.Width+x]
}

// Fill overwrites every pixel with p.
func (f *FrameBuffer) Fill(p uint32) {
	for i := range f.Pix {
		f.Pix[i] = p
	}
}

// RGBA writes the buffer as non-premultiplied RGBA bytes into dst, growing it if needed,
// and returns the written slice.
func (f *FrameBuffer) RGBA(dst []byte) []byte {
	n := len(f.Pix) * 4
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]
	for i, p := range f.Pix {
		j := i * 4
		dst[j] = uint8(p >> 16)
		dst[j+1] = uint8(p >> 8)
		dst[j+2] = uint8(p)
		dst[j+3] = uint8(p >> 24)
	}
	return dst
}

// Image copies the buffer into a new NRGBA image.
func (f *FrameBuffer) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    f.RGBA(nil),
		Stride: f.Width * 4,
		Rect:   image.Rect(0, 0, f.Width, f.Height),
	}
}
