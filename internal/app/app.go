// Package app assembles a playable world from configuration: the map, the texture,
// the caster and the scene renderer.
package app

import (
	"fmt"

	"github.com/charmbracelet/log"

	"chosenoffset.com/gridcaster/internal/config"
	"chosenoffset.com/gridcaster/internal/core/grid"
	"chosenoffset.com/gridcaster/internal/core/raycast"
	"chosenoffset.com/gridcaster/internal/core/texture"
	"chosenoffset.com/gridcaster/internal/game"
	"chosenoffset.com/gridcaster/internal/placeholders"
	"chosenoffset.com/gridcaster/internal/render"
	"chosenoffset.com/gridcaster/internal/render/column"
	"chosenoffset.com/gridcaster/internal/scene"
	"chosenoffset.com/gridcaster/internal/world/maploader"
)

// DefaultSpawn is where the player starts on the built-in map.
var DefaultSpawn = game.Player{X: 4, Y: 4, Angle: 0}

// World is everything a frame needs, loaded once at startup.
type World struct {
	Config  config.Config
	Name    string
	Map     *grid.Map
	Spawn   game.Player
	Texture *texture.Texture // nil draws flat wall color
	Caster  raycast.Caster
	Scene   *scene.Renderer
}

// LoadWorld loads the map and the texture named by cfg and builds the renderer. A
// texture that fails to load is an error; there is no silent fallback.
func LoadWorld(cfg config.Config, logger *log.Logger) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	w := &World{Config: cfg, Name: "arena", Map: grid.Default(), Spawn: DefaultSpawn}
	if cfg.Assets.Map != "" {
		m, err := maploader.LoadMap(cfg.Assets.Map)
		if err != nil {
			return nil, err
		}
		w.Name = m.Data.Name
		w.Map = m.Grid
		w.Spawn = game.Player{X: m.Data.PlayerSpawn.X, Y: m.Data.PlayerSpawn.Y, Angle: m.Data.PlayerSpawn.Angle}
	}
	if sp := cfg.Player.Spawn; sp.X != nil || sp.Y != nil || sp.Angle != nil {
		if sp.X != nil {
			w.Spawn.X = *sp.X
		}
		if sp.Y != nil {
			w.Spawn.Y = *sp.Y
		}
		if sp.Angle != nil {
			w.Spawn.Angle = *sp.Angle
		}
		if w.Map.Blocked(w.Spawn.X, w.Spawn.Y) {
			return nil, fmt.Errorf("%w: spawn (%v, %v) is inside a wall", config.ErrInvalid, w.Spawn.X, w.Spawn.Y)
		}
	}
	logger.Info("loaded map", "name", w.Name, "width", w.Map.Width(), "height", w.Map.Height())
	if !w.Map.Bordered() {
		logger.Warn("map has no closed border, rays may leave it", "name", w.Name)
	}

	tex, err := LoadTexture(cfg.Assets.Texture)
	if err != nil {
		return nil, err
	}
	if tex != nil {
		logger.Info("loaded texture", "asset", cfg.Assets.Texture, "width", tex.Width, "height", tex.Height)
	}
	w.Texture = tex

	caster, err := raycast.New(cfg.Caster.Kind, w.Map, cfg.Caster.StepSize, cfg.Caster.MaxDistance)
	if err != nil {
		return nil, err
	}
	w.Caster = caster

	palette, err := cfg.Palette()
	if err != nil {
		return nil, err
	}
	columns := column.New(column.Options{
		Projection: cfg.Camera.Projection,
		Ceiling:    palette.Ceiling,
		Floor:      palette.Floor,
		Wall:       palette.Wall,
		Texture:    tex,
	})
	w.Scene = scene.New(caster, columns, scene.Options{
		FOV:            cfg.FOV(),
		Workers:        cfg.Render.Workers,
		CorrectFisheye: cfg.Camera.CorrectFisheye,
	})
	logger.Debug("renderer ready", "caster", cfg.Caster.Kind, "workers", cfg.Render.Workers, "fov", cfg.FOV())
	return w, nil
}

// LoadTexture resolves a texture asset: empty means none, "builtin:<pattern>" is
// generated, anything else is a file path.
func LoadTexture(asset string) (*texture.Texture, error) {
	if asset == "" {
		return nil, nil
	}
	img, ok, err := placeholders.Builtin(asset)
	if err != nil {
		return nil, fmt.Errorf("texture: %w", err)
	}
	if ok {
		return texture.FromImage(img)
	}
	return texture.Load(asset)
}

// NewGame creates a game on this world, starting at the spawn point.
func (w *World) NewGame(input render.InputManager, window render.Window, logger *log.Logger, followWindow bool) (*game.Game, error) {
	opts := game.Options{
		Map:          w.Map,
		Scene:        w.Scene,
		Input:        input,
		Window:       window,
		Logger:       logger,
		Player:       w.Spawn,
		MoveSpeed:    w.Config.Player.MoveSpeed,
		TurnSpeed:    w.Config.Player.TurnSpeed,
		ScreenWidth:  w.Config.Screen.Width,
		ScreenHeight: w.Config.Screen.Height,
		FollowWindow: followWindow,
	}
	if w.Config.Render.ShowTexture {
		opts.Inset = w.Texture
	}
	return game.New(opts)
}
