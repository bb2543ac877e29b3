// Package texture decodes wall images into packed pixels and samples them.
package texture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "github.com/ftrvxmtrx/tga"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"chosenoffset.com/gridcaster/internal/core/pixel"
)

// ErrEmpty is returned for images with no pixels.
var ErrEmpty = errors.New("texture: empty image")

// Texture is an immutable row-major grid of packed pixels.
type Texture struct {
	Width  int
	Height int
	Pix    []uint32
}

// New wraps pix as a width x height texture. len(pix) must equal width*height.
func New(width, height int, pix []uint32) (*Texture, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmpty, width, height)
	}
	if len(pix) != width*height {
		return nil, fmt.Errorf("texture: expected %d pixels, got %d", width*height, len(pix))
	}
	return &Texture{Width: width, Height: height, Pix: pix}, nil
}

// Load reads and decodes an image file. Supported formats are png, jpeg, gif, bmp, webp
// and tga.
func Load(path string) (*Texture, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("texture: read %s: %w", path, err)
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", path, err)
	}
	tex, err := FromImage(img)
	if err != nil {
		return nil, fmt.Errorf("texture: %s: %w", path, err)
	}
	return tex, nil
}

// FromImage packs any decoded image into a Texture.
func FromImage(img image.Image) (*Texture, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, ErrEmpty
	}
	pix := make([]uint32, w*h)

	switch src := img.(type) {
	case *image.NRGBA:
		packRows(pix, src.Pix, src.Stride, w, h, false)
	case *image.RGBA:
		packRows(pix, src.Pix, src.Stride, w, h, true)
	default:
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
				pix[y*w+x] = pixel.New(c.R, c.G, c.B, c.A).Pack()
			}
		}
	}
	return &Texture{Width: w, Height: h, Pix: pix}, nil
}

// packRows reads 4-byte pixels straight out of a decoder's Pix slice. Each row is
// re-sliced to exactly w*4 bytes so a short or mis-strided buffer panics on the slice
// expression rather than reading past the row.
func packRows(dst []uint32, src []byte, stride, w, h int, premultiplied bool) {
	for y := 0; y < h; y++ {
		row := src[y*stride : y*stride+w*4]
		out := dst[y*w : (y+1)*w]
		for x := range out {
			p := row[x*4 : x*4+4 : x*4+4]
			r, g, b, a := p[0], p[1], p[2], p[3]
			if premultiplied && a != 0 && a != 255 {
				r = uint8(uint16(r) * 255 / uint16(a))
				g = uint8(uint16(g) * 255 / uint16(a))
				b = uint8(uint16(b) * 255 / uint16(a))
			}
			out[x] = pixel.New(r, g, b, a).Pack()
		}
	}
}

// At returns the packed pixel at (x, y) with both coordinates clamped into range.
func (t *Texture) At(x, y int) uint32 {
	return t.Pix[t.clampY(y)*t.Width+t.clampX(x)]
}

// Column maps a texture coordinate u in [0, 1) to a pixel column in [0, Width).
func (t *Texture) Column(u float64) int {
	return t.clampX(int(u * float64(t.Width)))
}

// Image returns an NRGBA copy of the texture.
func (t *Texture) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, t.Width, t.Height))
	for i, p := range t.Pix {
		c := pixel.Unpack(p)
		j := i * 4
		img.Pix[j] = c.R
		img.Pix[j+1] = c.G
		img.Pix[j+2] = c.B
		img.Pix[j+3] = c.A
	}
	return img
}

func (t *Texture) clampX(x int) int {
	if x < 0 {
		return 0
	}
	if x >= t.Width {
		return t.Width - 1
	}
	return x
}

func (t *Texture) clampY(y int) int {
	if y < 0 {
		return 0
	}
	if y >= t.Height {
		return t.Height - 1
	}
	return y
}
