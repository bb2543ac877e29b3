package app

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"

	"chosenoffset.com/gridcaster/internal/core/pixel"
	"chosenoffset.com/gridcaster/internal/placeholders"
	"chosenoffset.com/gridcaster/internal/scene"
)

// Snapshot renders a single frame from view without opening a window.
func (w *World) Snapshot(view scene.View) (*pixel.FrameBuffer, error) {
	fb, err := pixel.NewFrameBuffer(w.Config.Screen.Width, w.Config.Screen.Height)
	if err != nil {
		return nil, err
	}
	w.Scene.Render(fb, view)
	if w.Config.Render.ShowTexture && w.Texture != nil {
		scene.DrawInset(fb, w.Texture)
	}
	return fb, nil
}

// WriteImage encodes img to path, picking the format from the extension (.webp or
// .png). scale > 1 enlarges the image with nearest-neighbour sampling first.
func WriteImage(path string, img image.Image, scale int) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".webp" && ext != ".png" {
		return fmt.Errorf("snapshot: unsupported format %q (want .webp or .png)", ext)
	}
	if scale > 1 {
		img = placeholders.Scale(img, scale)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: create %s: %w", path, err)
	}
	defer f.Close()

	switch ext {
	case ".webp":
		err = nativewebp.Encode(f, img, nil)
	default:
		err = png.Encode(f, img)
	}
	if err != nil {
		return fmt.Errorf("snapshot: encode %s: %w", path, err)
	}
	return f.Close()
}
