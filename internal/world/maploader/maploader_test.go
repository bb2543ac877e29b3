package maploader

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"chosenoffset.com/gridcaster/internal/core/grid"
)

const boxJSON = `{
  "name": "box",
  "width": 4,
  "height": 3,
  "rows": ["####", "#..#", "####"],
  "player_spawn": {"x": 1.5, "y": 1.5, "angle": 0.25}
}`

func TestParse(t *testing.T) {
	m, err := Parse([]byte(boxJSON))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if m.Data.Name != "box" {
		t.Errorf("Name = %q", m.Data.Name)
	}
	if m.Grid.Width() != 4 || m.Grid.Height() != 3 {
		t.Errorf("grid %dx%d, expected 4x3", m.Grid.Width(), m.Grid.Height())
	}
	if !m.Grid.Occupied(0, 0) || m.Grid.Occupied(1, 1) {
		t.Error("cells decoded wrong")
	}
	if m.Data.PlayerSpawn != (SpawnPoint{X: 1.5, Y: 1.5, Angle: 0.25}) {
		t.Errorf("PlayerSpawn = %+v", m.Data.PlayerSpawn)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		wantErr string
	}{
		{"malformed", `{"name":`, "failed to parse"},
		{"zero size", `{"width":0,"height":3,"rows":[]}`, "invalid map dimensions"},
		{"row count", `{"width":2,"height":2,"rows":["##"]}`, "rows height mismatch"},
		{"row width", `{"width":2,"height":2,"rows":["##","#"]}`, "rows width mismatch"},
		{"bad cell", `{"width":2,"height":1,"rows":["#x"],"player_spawn":{"x":-1}}`, "invalid cells"},
		{"spawn in wall", `{"width":2,"height":1,"rows":["#."],"player_spawn":{"x":0.5,"y":0.5}}`, "inside a wall"},
		{"spawn outside", `{"width":2,"height":1,"rows":["#."],"player_spawn":{"x":5,"y":0.5}}`, "inside a wall"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.json))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error = %q, expected it to contain %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoadMapMissingFile(t *testing.T) {
	_, err := LoadMap(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil || !strings.Contains(err.Error(), "failed to read map file") {
		t.Errorf("LoadMap() error = %v", err)
	}
}

func TestSaveLoadDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maps", "arena.json")
	src := FromGrid("arena", grid.Default(), SpawnPoint{X: 4, Y: 4})
	if err := src.Save(path); err != nil {
		t.Fatal(err)
	}

	got, err := LoadMap(path)
	if err != nil {
		t.Fatalf("LoadMap() error = %v", err)
	}
	if !reflect.DeepEqual(got.Grid.Rows(), grid.Default().Rows()) {
		t.Error("saved grid differs from the source")
	}
	if got.Data.PlayerSpawn != src.Data.PlayerSpawn {
		t.Errorf("PlayerSpawn = %+v, expected %+v", got.Data.PlayerSpawn, src.Data.PlayerSpawn)
	}
}

func TestShippedMaps(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "..", "..", "data", "maps", "*.json"))
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) == 0 {
		t.Skip("no shipped maps")
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadMap(p); err != nil {
			t.Errorf("%s: %v", p, err)
		}
	}
}
