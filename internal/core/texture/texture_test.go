package texture

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"chosenoffset.com/gridcaster/internal/core/pixel"
)

func writePNG(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wall.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return path
}

func TestLoadPNG(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	img.Set(2, 1, color.NRGBA{B: 200, A: 255})

	tex, err := Load(writePNG(t, img))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if tex.Width != 3 || tex.Height != 2 {
		t.Fatalf("size = %dx%d, expected 3x2", tex.Width, tex.Height)
	}
	if got := pixel.Unpack(tex.At(0, 0)); got != pixel.New(255, 0, 0, 255) {
		t.Errorf("At(0, 0) = %+v", got)
	}
	if got := pixel.Unpack(tex.At(2, 1)); got != pixel.New(0, 0, 200, 255) {
		t.Errorf("At(2, 1) = %+v", got)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("expected error for missing file")
	}

	corrupt := filepath.Join(t.TempDir(), "corrupt.png")
	if err := os.WriteFile(corrupt, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(corrupt); err == nil {
		t.Error("expected error for corrupt file")
	}
}

func TestFromImageSubImageAndFormats(t *testing.T) {
	base := image.NewRGBA(image.Rect(0, 0, 4, 4))
	base.Set(2, 2, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	sub := base.SubImage(image.Rect(2, 2, 4, 4))

	tex, err := FromImage(sub)
	if err != nil {
		t.Fatalf("FromImage failed: %v", err)
	}
	if tex.Width != 2 || tex.Height != 2 {
		t.Fatalf("size = %dx%d, expected 2x2", tex.Width, tex.Height)
	}
	if got := pixel.Unpack(tex.At(0, 0)); got != pixel.New(10, 20, 30, 255) {
		t.Errorf("At(0, 0) = %+v", got)
	}

	gray := image.NewGray(image.Rect(0, 0, 1, 1))
	gray.SetGray(0, 0, color.Gray{Y: 77})
	tex, err = FromImage(gray)
	if err != nil {
		t.Fatalf("FromImage(gray) failed: %v", err)
	}
	if got := pixel.Unpack(tex.At(0, 0)); got != pixel.New(77, 77, 77, 255) {
		t.Errorf("gray At(0, 0) = %+v", got)
	}

	if _, err := FromImage(image.NewNRGBA(image.Rect(0, 0, 0, 5))); !errors.Is(err, ErrEmpty) {
		t.Errorf("empty image error = %v, expected ErrEmpty", err)
	}
}

func TestPremultipliedAlphaIsUndone(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Pix[0], img.Pix[1], img.Pix[2], img.Pix[3] = 50, 0, 0, 100

	tex, err := FromImage(img)
	if err != nil {
		t.Fatalf("FromImage failed: %v", err)
	}
	if got := pixel.Unpack(tex.At(0, 0)); got != pixel.New(127, 0, 0, 100) {
		t.Errorf("At(0, 0) = %+v, expected R=127 A=100", got)
	}
}

func TestColumnAndAtStayInRange(t *testing.T) {
	tex, err := New(64, 32, make([]uint32, 64*32))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	for i := 0; i < 1000; i++ {
		u := float64(i) / 1000
		if c := tex.Column(u); c < 0 || c >= tex.Width {
			t.Fatalf("Column(%v) = %d out of range", u, c)
		}
	}
	if c := tex.Column(0.9999999999); c != 63 {
		t.Errorf("Column(~1) = %d, expected 63", c)
	}
	// Clamped, not panicking.
	_ = tex.At(-5, 1000)
	_ = tex.At(1000, -5)

	if _, err := New(2, 2, make([]uint32, 3)); err == nil {
		t.Error("expected error for mismatched pixel count")
	}
}

func TestImageRoundTrip(t *testing.T) {
	pix := []uint32{pixel.New(1, 2, 3, 4).Pack(), pixel.New(5, 6, 7, 8).Pack()}
	tex, err := New(2, 1, pix)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	back, err := FromImage(tex.Image())
	if err != nil {
		t.Fatalf("FromImage failed: %v", err)
	}
	for i := range pix {
		if back.Pix[i] != pix[i] {
			t.Errorf("pixel %d = %#08x, expected %#08x", i, back.Pix[i], pix[i])
		}
	}
}
