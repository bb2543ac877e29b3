// Package placeholders draws procedural wall textures so the renderer has something
// to sample before real art exists.
package placeholders

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/image/draw"
)

// TileSize is the edge length of generated textures.
const TileSize = 32

// BuiltinPrefix marks a texture asset that is generated rather than loaded.
const BuiltinPrefix = "builtin:"

// Pattern names a procedural texture.
type Pattern string

const (
	PatternSolid    Pattern = "solid"
	PatternBordered Pattern = "bordered"
	PatternBrick    Pattern = "brick"
	PatternGrid     Pattern = "grid"
	PatternDiagonal Pattern = "diagonal"
)

// ColorPalette holds the wall colors.
var ColorPalette = struct {
	WallStone color.NRGBA
	WallBrick color.NRGBA
	Mortar    color.NRGBA
	Border    color.NRGBA
	Moss      color.NRGBA
}{
	WallStone: color.NRGBA{130, 125, 115, 255},
	WallBrick: color.NRGBA{150, 70, 50, 255},
	Mortar:    color.NRGBA{200, 195, 185, 255},
	Border:    color.NRGBA{60, 55, 50, 255},
	Moss:      color.NRGBA{0, 115, 0, 255},
}

// Patterns lists every pattern name in sorted order.
func Patterns() []Pattern {
	ps := []Pattern{PatternSolid, PatternBordered, PatternBrick, PatternGrid, PatternDiagonal}
	sort.Slice(ps, func(i, j int) bool { return ps[i] < ps[j] })
	return ps
}

// Generate draws a TileSize square texture.
func Generate(p Pattern) (*image.NRGBA, error) {
	switch p {
	case PatternSolid:
		return CreateSolidTile(ColorPalette.WallStone), nil
	case PatternBordered:
		return CreateBorderedTile(ColorPalette.WallStone, ColorPalette.Border, 2), nil
	case PatternBrick:
		return CreateBrickTile(ColorPalette.WallBrick, ColorPalette.Mortar), nil
	case PatternGrid, PatternDiagonal:
		return CreatePatternedTile(ColorPalette.Moss, ColorPalette.Border, p), nil
	default:
		return nil, fmt.Errorf("unknown texture pattern %q", p)
	}
}

// Builtin resolves an asset name like "builtin:brick". ok is false for names without
// the prefix.
func Builtin(asset string) (img *image.NRGBA, ok bool, err error) {
	name, found := strings.CutPrefix(asset, BuiltinPrefix)
	if !found {
		return nil, false, nil
	}
	img, err = Generate(Pattern(name))
	return img, true, err
}

// CreateSolidTile creates a single-color tile.
func CreateSolidTile(col color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, TileSize, TileSize))
	draw.Draw(img, img.Bounds(), &image.Uniform{col}, image.Point{}, draw.Src)
	return img
}

// CreateBorderedTile creates a tile with a border of borderWidth pixels.
func CreateBorderedTile(fillColor, borderColor color.NRGBA, borderWidth int) *image.NRGBA {
	img := CreateSolidTile(borderColor)
	inner := image.Rect(borderWidth, borderWidth, TileSize-borderWidth, TileSize-borderWidth)
	draw.Draw(img, inner, &image.Uniform{fillColor}, image.Point{}, draw.Src)
	return img
}

// CreateBrickTile lays four courses of bricks, each course offset by half a brick.
// The pattern tiles seamlessly in both directions.
func CreateBrickTile(brick, mortar color.NRGBA) *image.NRGBA {
	const (
		courses   = 4
		perCourse = 2
	)
	img := CreateSolidTile(mortar)
	courseH := TileSize / courses
	brickW := TileSize / perCourse

	for c := 0; c < courses; c++ {
		y0 := c * courseH
		offset := 0
		if c%2 == 1 {
			offset = brickW / 2
		}
		for b := -1; b < perCourse; b++ {
			x0 := b*brickW + offset
			r := image.Rect(x0+1, y0+1, x0+brickW, y0+courseH).Intersect(img.Bounds())
			if !r.Empty() {
				draw.Draw(img, r, &image.Uniform{brick}, image.Point{}, draw.Src)
			}
		}
	}
	return img
}

// CreatePatternedTile draws a line pattern over a solid base.
func CreatePatternedTile(baseColor, patternColor color.NRGBA, pattern Pattern) *image.NRGBA {
	img := CreateSolidTile(baseColor)

	switch pattern {
	case PatternGrid:
		for i := 0; i < TileSize; i += 8 {
			for x := 0; x < TileSize; x++ {
				img.SetNRGBA(x, i, patternColor)
				img.SetNRGBA(i, x, patternColor)
			}
		}
	case PatternDiagonal:
		for i := 0; i < TileSize; i++ {
			img.SetNRGBA(i, i, patternColor)
			img.SetNRGBA(i, TileSize-1-i, patternColor)
		}
	}

	return img
}

// Scale enlarges img by an integer factor with nearest-neighbour sampling.
func Scale(img image.Image, factor int) *image.NRGBA {
	if factor < 1 {
		factor = 1
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// SavePNG saves an image as PNG, creating parent directories.
func SavePNG(img image.Image, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}

// GenerateAndSave writes one PNG per pattern into dir, named <pattern>.png.
func GenerateAndSave(dir string, scale int) ([]string, error) {
	var written []string
	for _, p := range Patterns() {
		img, err := Generate(p)
		if err != nil {
			return written, err
		}
		path := filepath.Join(dir, string(p)+".png")
		if err := SavePNG(Scale(img, scale), path); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}
