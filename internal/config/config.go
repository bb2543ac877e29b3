// Package config holds the runtime settings for gridcaster. Settings are read from YAML
// so a map, a texture and the camera can be changed without rebuilding.
package config

import (
	"errors"
	"fmt"
	"math"

	"chosenoffset.com/gridcaster/internal/core/pixel"
	"chosenoffset.com/gridcaster/internal/core/raycast"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Host names a display backend.
type Host string

const (
	HostEbiten   Host = "ebiten"
	HostTerminal Host = "terminal"
)

// Config holds all runtime settings.
type Config struct {
	Host Host `yaml:"host"`
	FPS  int  `yaml:"fps"` // Frame rate of the terminal host

	Screen ScreenConfig `yaml:"screen"`
	Camera CameraConfig `yaml:"camera"`
	Caster CasterConfig `yaml:"caster"`
	Render RenderConfig `yaml:"render"`
	Colors ColorConfig  `yaml:"colors"`
	Player PlayerConfig `yaml:"player"`
	Assets AssetsConfig `yaml:"assets"`
}

// ScreenConfig is the frame buffer size in pixels.
type ScreenConfig struct {
	Width     int  `yaml:"width"`
	Height    int  `yaml:"height"`
	Resizable bool `yaml:"resizable"`
}

// CameraConfig controls projection.
type CameraConfig struct {
	FOVDegrees     float64 `yaml:"fov_degrees"`
	Projection     float64 `yaml:"projection"`
	CorrectFisheye bool    `yaml:"correct_fisheye"`
}

// CasterConfig selects the raycasting strategy.
type CasterConfig struct {
	Kind        raycast.Kind `yaml:"kind"`
	StepSize    float64      `yaml:"step_size"`    // Step caster only
	MaxDistance float64      `yaml:"max_distance"` // Step caster only, 0 = map width + height
}

// RenderConfig controls the column loop.
type RenderConfig struct {
	Workers     int  `yaml:"workers"`
	ShowTexture bool `yaml:"show_texture"` // Blit the wall texture into the top-left corner
}

// ColorConfig holds "#RRGGBB" or "#RRGGBBAA" strings.
type ColorConfig struct {
	Ceiling string `yaml:"ceiling"`
	Floor   string `yaml:"floor"`
	Wall    string `yaml:"wall"`
}

// PlayerConfig holds movement rates per frame and an optional spawn override.
type PlayerConfig struct {
	MoveSpeed float64     `yaml:"move_speed"` // Grid units per frame
	TurnSpeed float64     `yaml:"turn_speed"` // Radians per frame
	Spawn     SpawnConfig `yaml:"spawn"`
}

// SpawnConfig replaces the map's spawn point field by field. Nil fields keep the map's
// value.
type SpawnConfig struct {
	X     *float64 `yaml:"x"`
	Y     *float64 `yaml:"y"`
	Angle *float64 `yaml:"angle"`
}

// AssetsConfig points at files loaded once at startup.
type AssetsConfig struct {
	Texture string `yaml:"texture"` // Empty draws flat wall color
	Map     string `yaml:"map"`     // Empty uses the built-in map
}

// Palette holds parsed colors.
type Palette struct {
	Ceiling pixel.Color
	Floor   pixel.Color
	Wall    pixel.Color
}

// FOV returns the field of view in radians.
func (c Config) FOV() float64 {
	return c.Camera.FOVDegrees * math.Pi / 180
}

// Palette parses the configured colors.
func (c Config) Palette() (Palette, error) {
	var p Palette
	var err error
	if p.Ceiling, err = pixel.ParseHex(c.Colors.Ceiling); err != nil {
		return p, fmt.Errorf("%w: colors.ceiling: %v", ErrInvalid, err)
	}
	if p.Floor, err = pixel.ParseHex(c.Colors.Floor); err != nil {
		return p, fmt.Errorf("%w: colors.floor: %v", ErrInvalid, err)
	}
	if p.Wall, err = pixel.ParseHex(c.Colors.Wall); err != nil {
		return p, fmt.Errorf("%w: colors.wall: %v", ErrInvalid, err)
	}
	return p, nil
}

// Validate checks every field that would otherwise fail deep inside the render loop.
func (c Config) Validate() error {
	switch c.Host {
	case HostEbiten, HostTerminal:
	default:
		return fmt.Errorf("%w: host %q (want %q or %q)", ErrInvalid, c.Host, HostEbiten, HostTerminal)
	}
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("%w: screen %dx%d", ErrInvalid, c.Screen.Width, c.Screen.Height)
	}
	if c.Camera.FOVDegrees <= 0 || c.Camera.FOVDegrees >= 180 {
		return fmt.Errorf("%w: camera.fov_degrees %v not in (0, 180)", ErrInvalid, c.Camera.FOVDegrees)
	}
	if c.Camera.Projection <= 0 {
		return fmt.Errorf("%w: camera.projection %v must be positive", ErrInvalid, c.Camera.Projection)
	}
	switch c.Caster.Kind {
	case raycast.KindDDA:
	case raycast.KindStep:
		if c.Caster.StepSize <= 0 {
			return fmt.Errorf("%w: caster.step_size %v must be positive", ErrInvalid, c.Caster.StepSize)
		}
	default:
		return fmt.Errorf("%w: caster.kind %q", ErrInvalid, c.Caster.Kind)
	}
	if c.Caster.MaxDistance < 0 {
		return fmt.Errorf("%w: caster.max_distance %v is negative", ErrInvalid, c.Caster.MaxDistance)
	}
	if c.Render.Workers < 0 {
		return fmt.Errorf("%w: render.workers %d is negative", ErrInvalid, c.Render.Workers)
	}
	if c.Player.MoveSpeed < 0 || c.Player.TurnSpeed < 0 {
		return fmt.Errorf("%w: player speeds must not be negative", ErrInvalid)
	}
	if _, err := c.Palette(); err != nil {
		return err
	}
	return nil
}
