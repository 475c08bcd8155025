package platformer

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
)

// Config holds the tunables of the simulation and the window it runs in.
// Positions and speeds in level files are unscaled integer units; Scale
// converts them to on-screen pixels.
type Config struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	TPS    int    `toml:"tps"`

	// Scale is the display density factor applied to level units.
	Scale float64 `toml:"scale"`

	Gravity     int `toml:"gravity"`
	MoveStep    int `toml:"move_step"`
	JumpImpulse int `toml:"jump_impulse"`

	// LowerBound is the unscaled elevation below which the player loses.
	LowerBound int `toml:"lower_bound"`

	// CameraAlpha is the exponential smoothing factor of the camera follow.
	// 1 snaps immediately.
	CameraAlpha float64 `toml:"camera_alpha"`

	Levels    int    `toml:"levels"`
	LevelsDir string `toml:"levels_dir"`
	FontsDir  string `toml:"fonts_dir"`

	Debug bool `toml:"debug"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Title:       "Platformer",
		Width:       1280,
		Height:      720,
		TPS:         60,
		Scale:       1,
		Gravity:     1,
		MoveStep:    4,
		JumpImpulse: 15,
		LowerBound:  -100,
		CameraAlpha: 0.3,
		Levels:      8,
		LevelsDir:   "assets/levels",
		FontsDir:    "assets/fonts",
	}
}

// LoadConfig decodes a TOML file over DefaultConfig. A missing file is not an
// error; the defaults are returned.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("platformer: load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the values that would make the simulation meaningless.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("platformer: invalid window size %dx%d", c.Width, c.Height)
	case c.Scale <= 0:
		return fmt.Errorf("platformer: scale must be positive, got %v", c.Scale)
	case c.CameraAlpha < 0 || c.CameraAlpha > 1:
		return fmt.Errorf("platformer: camera_alpha must be in [0, 1], got %v", c.CameraAlpha)
	case c.Levels < 0:
		return fmt.Errorf("platformer: negative level count %d", c.Levels)
	}
	return nil
}

// Viewport returns the screen rectangle with its origin at the bottom-left.
func (c Config) Viewport() Rect {
	return Rect{Width: float64(c.Width), Height: float64(c.Height), Pivot: AnchorBottomLeft}
}
