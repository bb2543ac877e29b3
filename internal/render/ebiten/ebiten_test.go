package ebiten

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"chosenoffset.com/gridcaster/internal/render"
)

func TestKeyToEbitenKey(t *testing.T) {
	tests := []struct {
		key      render.Key
		expected ebiten.Key
	}{
		{render.KeyW, ebiten.KeyW},
		{render.KeyQ, ebiten.KeyQ},
		{render.KeyLeft, ebiten.KeyArrowLeft},
		{render.KeyEscape, ebiten.KeyEscape},
	}
	for _, tc := range tests {
		got, ok := keyToEbitenKey(tc.key)
		if !ok || got != tc.expected {
			t.Errorf("keyToEbitenKey(%v) = (%v, %v), expected (%v, true)", tc.key, got, ok, tc.expected)
		}
	}

	if _, ok := keyToEbitenKey(render.Key(-1)); ok {
		t.Error("unknown key mapped")
	}
}

func TestEveryKeyIsMapped(t *testing.T) {
	seen := make(map[ebiten.Key]render.Key)
	for _, k := range render.Keys {
		ek, ok := keyToEbitenKey(k)
		if !ok {
			t.Errorf("key %v has no ebiten mapping", k)
			continue
		}
		if prev, dup := seen[ek]; dup {
			t.Errorf("keys %v and %v both map to %v", prev, k, ek)
		}
		seen[ek] = k
	}
}
