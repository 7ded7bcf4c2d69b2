// Package config holds the tuning knobs for the animation. The zero config
// is unusable; start from Default and optionally layer a TOML file on top.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config defines the simulation and rendering parameters shared by both
// backends. All distances are in surface units (pixels on SDL, braille dots
// in the terminal).
type Config struct {
	// AreaPerParticle controls particle count: one particle per this many
	// square units of surface.
	AreaPerParticle float64 `toml:"area_per_particle"`

	// GridStride is the spacing between grid lines along both axes.
	GridStride float64 `toml:"grid_stride"`

	// ConnectDistance is the cutoff below which particle pairs are joined
	// by a line; line alpha fades to zero at exactly this distance.
	ConnectDistance float64 `toml:"connect_distance"`

	// PointerRadius is the interaction radius: inside it the pointer
	// repels particles and the cursor ring is drawn at this radius.
	PointerRadius float64 `toml:"pointer_radius"`

	// TrailAlpha is the opacity of the per-frame background wash. Lower
	// values leave longer motion trails.
	TrailAlpha float64 `toml:"trail_alpha"`

	// MinDensity and MaxDensity bound the per-particle displacement
	// coefficient drawn at creation.
	MinDensity float64 `toml:"min_density"`
	MaxDensity float64 `toml:"max_density"`

	// MinSize and MaxSize bound the particle radius drawn at creation.
	MinSize float64 `toml:"min_size"`
	MaxSize float64 `toml:"max_size"`

	// CrosshairLen is the cursor crosshair half-length.
	CrosshairLen float64 `toml:"crosshair_len"`

	// FPS is the terminal frame rate; the SDL backend runs at vsync and
	// ignores it except for the cursor spring constant.
	FPS int `toml:"fps"`
}

// Default returns the stock tuning.
func Default() Config {
	return Config{
		AreaPerParticle: 4000,
		GridStride:      60,
		ConnectDistance: 100,
		PointerRadius:   100,
		TrailAlpha:      0.08,
		MinDensity:      10,
		MaxDensity:      40,
		MinSize:         1,
		MaxSize:         3,
		CrosshairLen:    15,
		FPS:             30,
	}
}

// Load reads a TOML file over the defaults. Keys absent from the file keep
// their default values; unknown keys are an error so typos don't silently
// fall back.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, err
	}
	if undec := meta.Undecoded(); len(undec) > 0 {
		return Config{}, fmt.Errorf("unknown config key %q", undec[0].String())
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch {
	case c.AreaPerParticle <= 0:
		return fmt.Errorf("area_per_particle must be positive, got %v", c.AreaPerParticle)
	case c.GridStride <= 0:
		return fmt.Errorf("grid_stride must be positive, got %v", c.GridStride)
	case c.ConnectDistance <= 0:
		return fmt.Errorf("connect_distance must be positive, got %v", c.ConnectDistance)
	case c.PointerRadius <= 0:
		return fmt.Errorf("pointer_radius must be positive, got %v", c.PointerRadius)
	case c.TrailAlpha <= 0 || c.TrailAlpha > 1:
		return fmt.Errorf("trail_alpha must be in (0,1], got %v", c.TrailAlpha)
	case c.MinDensity <= 0 || c.MaxDensity < c.MinDensity:
		return fmt.Errorf("density bounds invalid: [%v,%v)", c.MinDensity, c.MaxDensity)
	case c.MinSize <= 0 || c.MaxSize < c.MinSize:
		return fmt.Errorf("size bounds invalid: [%v,%v)", c.MinSize, c.MaxSize)
	case c.FPS < 1:
		return fmt.Errorf("fps must be at least 1, got %d", c.FPS)
	}
	return nil
}
