package gamescanner

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestScanMapsDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.json"),
		`{"name":"Bravo","width":3,"height":3,"rows":["###","#.#","###"],"player_spawn":{"x":1.5,"y":1.5}}`)
	writeFile(t, filepath.Join(dir, "a.json"), `{"width":0}`)
	writeFile(t, filepath.Join(dir, "notes.txt"), "not a map")
	writeFile(t, filepath.Join(dir, ".hidden.json"), "{}")
	if err := os.Mkdir(filepath.Join(dir, "sub.json"), 0o755); err != nil {
		t.Fatal(err)
	}

	maps, err := ScanMapsDirectory(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(maps) != 2 {
		t.Fatalf("found %d maps, expected 2: %+v", len(maps), maps)
	}

	if maps[0].Name != "a" || maps[0].Valid() {
		t.Errorf("maps[0] = %+v, expected invalid entry named after the file", maps[0])
	}
	if maps[1].Name != "Bravo" || !maps[1].Valid() || maps[1].Width != 3 || maps[1].Height != 3 {
		t.Errorf("maps[1] = %+v", maps[1])
	}
}

func TestScanMapsDirectoryMissing(t *testing.T) {
	if _, err := ScanMapsDirectory(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing directory")
	}
}
