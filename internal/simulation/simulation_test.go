package simulation

import (
	"io"
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"chosenoffset.com/gridcaster/internal/app"
	"chosenoffset.com/gridcaster/internal/config"
	"chosenoffset.com/gridcaster/internal/core/raycast"
	"chosenoffset.com/gridcaster/internal/render"
)

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Screen.Width = 48
	cfg.Screen.Height = 32
	cfg.Render.Workers = 1
	return cfg
}

func TestScriptKeysAt(t *testing.T) {
	s := Script{
		{Keys: []render.Key{render.KeyW}, Frames: 2},
		{Keys: nil, Frames: 1},
		{Keys: []render.Key{render.KeyE}, Frames: 1},
	}
	if s.Frames() != 4 {
		t.Fatalf("Frames() = %d", s.Frames())
	}
	tests := []struct {
		frame int
		want  []render.Key
	}{
		{0, []render.Key{render.KeyW}},
		{1, []render.Key{render.KeyW}},
		{2, nil},
		{3, []render.Key{render.KeyE}},
		{4, []render.Key{render.KeyW}},
	}
	for _, tc := range tests {
		if got := s.keysAt(tc.frame); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("keysAt(%d) = %v, expected %v", tc.frame, got, tc.want)
		}
	}
	if got := (Script{}).keysAt(5); got != nil {
		t.Errorf("empty script keysAt = %v", got)
	}
}

func TestRunWalksForward(t *testing.T) {
	logger := log.New(io.Discard)
	world, err := app.LoadWorld(testConfig(), logger)
	if err != nil {
		t.Fatal(err)
	}
	script := Script{{Keys: []render.Key{render.KeyW}, Frames: 10}}

	res, err := Run(world, script, 10, logger)
	if err != nil {
		t.Fatal(err)
	}
	if res.Frames != 10 {
		t.Errorf("Frames = %d", res.Frames)
	}
	if want := app.DefaultSpawn.X + 10*0.1; math.Abs(res.Final.X-want) > 1e-9 {
		t.Errorf("Final.X = %v, expected %v", res.Final.X, want)
	}
}

func TestRunStopsOnQuit(t *testing.T) {
	logger := log.New(io.Discard)
	world, err := app.LoadWorld(testConfig(), logger)
	if err != nil {
		t.Fatal(err)
	}
	script := Script{
		{Keys: nil, Frames: 3},
		{Keys: []render.Key{render.KeyEscape}, Frames: 1},
	}
	res, err := Run(world, script, 100, logger)
	if err != nil {
		t.Fatal(err)
	}
	if res.Frames != 3 {
		t.Errorf("Frames = %d, expected 3", res.Frames)
	}

	if _, err := Run(world, script, 0, logger); err == nil {
		t.Error("expected error for zero frames")
	}
}

func TestCompareStaysOutOfWalls(t *testing.T) {
	logger := log.New(io.Discard)
	kinds := []raycast.Kind{raycast.KindDDA, raycast.KindStep}
	results, err := Compare(testConfig(), kinds, DefaultScript, DefaultScript.Frames(), logger)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results", len(results))
	}
	for i, res := range results {
		if res.Caster != kinds[i] {
			t.Errorf("results[%d].Caster = %q", i, res.Caster)
		}
		if res.Frames != DefaultScript.Frames() {
			t.Errorf("%s ran %d frames", res.Caster, res.Frames)
		}
	}
	// Movement does not depend on the caster.
	if results[0].Final != results[1].Final {
		t.Errorf("final positions differ: %+v vs %+v", results[0].Final, results[1].Final)
	}
}

func TestResultFPS(t *testing.T) {
	if got := (Result{Frames: 30, Elapsed: 500 * time.Millisecond}).FPS(); got != 60 {
		t.Errorf("FPS() = %v", got)
	}
	if got := (Result{Frames: 30}).FPS(); got != 0 {
		t.Errorf("FPS() with no time = %v", got)
	}
}
