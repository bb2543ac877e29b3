// Package gamescanner discovers map files on disk.
package gamescanner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"chosenoffset.com/gridcaster/internal/world/maploader"
)

// MapEntry describes one map file found in a directory.
type MapEntry struct {
	Name   string // Map name, or the file name without extension when the map has none
	Path   string
	Width  int
	Height int
	Err    error // Non-nil when the file failed to load
}

// Valid reports whether the map loaded.
func (e MapEntry) Valid() bool { return e.Err == nil }

// ScanMapsDirectory loads every *.json file in dir. Files that fail to load are still
// listed, with Err set. Subdirectories and dot files are skipped.
func ScanMapsDirectory(dir string) ([]MapEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read maps directory: %w", err)
	}

	var maps []MapEntry
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		if !strings.EqualFold(filepath.Ext(name), ".json") {
			continue
		}

		path := filepath.Join(dir, name)
		me := MapEntry{
			Name: strings.TrimSuffix(name, filepath.Ext(name)),
			Path: path,
		}
		m, err := maploader.LoadMap(path)
		if err != nil {
			me.Err = err
		} else {
			if m.Data.Name != "" {
				me.Name = m.Data.Name
			}
			me.Width = m.Grid.Width()
			me.Height = m.Grid.Height()
		}
		maps = append(maps, me)
	}

	sort.Slice(maps, func(i, j int) bool { return maps[i].Path < maps[j].Path })
	return maps, nil
}
