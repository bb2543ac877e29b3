// Package maploader reads grid maps from JSON files.
package maploader

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"chosenoffset.com/gridcaster/internal/core/grid"
)

// SpawnPoint defines where the player starts, in grid units. Angle is in radians.
type SpawnPoint struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Angle float64 `json:"angle"`
}

// MapData is the on-disk form of a map.
//
//	{"name": "box", "width": 3, "height": 3,
//	 "rows": ["###", "#.#", "###"],
//	 "player_spawn": {"x": 1.5, "y": 1.5, "angle": 0}}
type MapData struct {
	Name        string     `json:"name"`
	Width       int        `json:"width"`
	Height      int        `json:"height"`
	Rows        []string   `json:"rows"` // One string per row, '#' wall and '.' empty
	PlayerSpawn SpawnPoint `json:"player_spawn"`
}

// Map is a loaded map.
type Map struct {
	Data *MapData
	Grid *grid.Map
}

// LoadMap loads a map from a JSON file.
func LoadMap(mapPath string) (*Map, error) {
	data, err := os.ReadFile(mapPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read map file %s: %w", mapPath, err)
	}

	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid map file %s: %w", mapPath, err)
	}
	return m, nil
}

// Parse decodes and validates map JSON.
func Parse(data []byte) (*Map, error) {
	var mapData MapData
	if err := json.Unmarshal(data, &mapData); err != nil {
		return nil, fmt.Errorf("failed to parse map: %w", err)
	}

	if err := validateMapData(&mapData); err != nil {
		return nil, err
	}

	g, err := grid.Parse(mapData.Rows)
	if err != nil {
		return nil, err
	}
	if g.Blocked(mapData.PlayerSpawn.X, mapData.PlayerSpawn.Y) {
		return nil, fmt.Errorf("player spawn (%v, %v) is inside a wall", mapData.PlayerSpawn.X, mapData.PlayerSpawn.Y)
	}

	return &Map{Data: &mapData, Grid: g}, nil
}

// validateMapData checks the declared shape against the rows.
func validateMapData(data *MapData) error {
	if data.Width <= 0 || data.Height <= 0 {
		return fmt.Errorf("invalid map dimensions: %dx%d", data.Width, data.Height)
	}

	if len(data.Rows) != data.Height {
		return fmt.Errorf("rows height mismatch: expected %d, got %d", data.Height, len(data.Rows))
	}

	for y, row := range data.Rows {
		if len(row) != data.Width {
			return fmt.Errorf("rows width mismatch at row %d: expected %d, got %d", y, data.Width, len(row))
		}
	}

	s := data.PlayerSpawn
	if math.IsNaN(s.X) || math.IsNaN(s.Y) || math.IsNaN(s.Angle) || math.IsInf(s.Angle, 0) {
		return fmt.Errorf("player spawn is not a finite point")
	}

	return nil
}

// FromGrid wraps an in-memory grid as map data, so it can be saved.
func FromGrid(name string, g *grid.Map, spawn SpawnPoint) *Map {
	return &Map{
		Data: &MapData{
			Name:        name,
			Width:       g.Width(),
			Height:      g.Height(),
			Rows:        g.Rows(),
			PlayerSpawn: spawn,
		},
		Grid: g,
	}
}

// Save writes the map as indented JSON.
func (m *Map) Save(path string) error {
	data, err := json.MarshalIndent(m.Data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode map %s: %w", m.Data.Name, err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write map file %s: %w", path, err)
	}
	return nil
}
