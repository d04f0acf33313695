package config

import (
	_ "embed"
)

//go:embed defaults/presets.yaml
var defaultPresetsYAML []byte

// DefaultConfig returns the built-in presets.
func DefaultConfig() Config {
	return Config{
		Presets: map[string]Preset{
			"classic": {
				Width:    10,
				Height:   10,
				Players:  2,
				MaxAreas: 4,
			},
			"duel": {
				Width:    8,
				Height:   8,
				Players:  2,
				MaxAreas: 2,
			},
			"skirmish": {
				Width:    15,
				Height:   12,
				Players:  4,
				MaxAreas: 6,
			},
			"crowd": {
				Width:    20,
				Height:   20,
				Players:  9,
				MaxAreas: 3,
			},
		},
	}
}
