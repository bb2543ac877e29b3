package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"chosenoffset.com/gridcaster/internal/core/raycast"
)

//go:embed defaults/gridcaster.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Host: HostEbiten,
		FPS:  30,
		Screen: ScreenConfig{
			Width:     1280,
			Height:    720,
			Resizable: true,
		},
		Camera: CameraConfig{
			FOVDegrees:     60,
			Projection:     2.0,
			CorrectFisheye: true,
		},
		Caster: CasterConfig{
			Kind:     raycast.KindDDA,
			StepSize: raycast.DefaultStepSize,
		},
		Render: RenderConfig{Workers: 4},
		Colors: ColorConfig{
			Ceiling: "#00009b",
			Floor:   "#9b0000",
			Wall:    "#007300",
		},
		Player: PlayerConfig{
			MoveSpeed: 0.1,
			TurnSpeed: 0.03,
		},
	}
}

// Load reads the configuration.
// Search order: customPath -> ~/.gridcaster/config.yaml -> ./configs/gridcaster.yaml -> embedded default.
// Fields missing from a file keep their default values.
func Load(customPath string) (Config, error) {
	cfg := Default()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, cfg.Validate()
			}
			cfg = Default()
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "gridcaster.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, cfg.Validate()
		}
		cfg = Default()
	}

	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil
	}
	return cfg, cfg.Validate()
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gridcaster", filename)
}
