// Package config loads named board presets so a game can be started
// from a preset name instead of typing the setup line by hand.
package config

// Preset is one named board setup.
type Preset struct {
	Width    uint32 `yaml:"width"`
	Height   uint32 `yaml:"height"`
	Players  uint32 `yaml:"players"`
	MaxAreas uint32 `yaml:"max_areas"`
}

// Valid reports whether every parameter is at least 1, the same
// precondition the engine constructor enforces.
func (p Preset) Valid() bool {
	return p.Width >= 1 && p.Height >= 1 && p.Players >= 1 && p.MaxAreas >= 1
}

// Config is the presets file: a table of named board setups.
type Config struct {
	Presets map[string]Preset `yaml:"presets"`
}

// Get returns the preset with the given name.
func (c Config) Get(name string) (Preset, bool) {
	p, ok := c.Presets[name]
	return p, ok
}

// Names returns the preset names in no particular order.
func (c Config) Names() []string {
	names := make([]string, 0, len(c.Presets))
	for name := range c.Presets {
		names = append(names, name)
	}
	return names
}
