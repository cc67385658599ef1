package scene

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Default playback settings.
const (
	DefaultFrameRate  = 60
	DefaultMaxRunTime = 300.0
)

// ErrInvalidConfig is returned for configurations that cannot drive
// playback.
var ErrInvalidConfig = errors.New("scene: invalid config")

// Config holds the playback settings of a Scene.
type Config struct {
	// FrameRate is the number of steps per simulated second.
	FrameRate int `toml:"frame_rate" yaml:"frame_rate"`

	// MaxRunTime is the longest run time, in seconds, Play accepts for a
	// single animation.
	MaxRunTime float64 `toml:"max_run_time" yaml:"max_run_time"`
}

// DefaultConfig returns 60 steps per second and a 300 second ceiling.
func DefaultConfig() Config {
	return Config{
		FrameRate:  DefaultFrameRate,
		MaxRunTime: DefaultMaxRunTime,
	}
}

// Validate reports whether c can drive playback.
func (c Config) Validate() error {
	if c.FrameRate <= 0 {
		return fmt.Errorf("%w: frame rate %d must be positive", ErrInvalidConfig, c.FrameRate)
	}
	if math.IsNaN(c.MaxRunTime) || math.IsInf(c.MaxRunTime, 0) || c.MaxRunTime <= 0 {
		return fmt.Errorf("%w: max run time %v must be finite and positive", ErrInvalidConfig, c.MaxRunTime)
	}
	return nil
}

// LoadConfig reads a Config from a TOML (.toml) or YAML (.yaml, .yml)
// file. Fields missing from the file keep their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("scene: read config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return cfg, fmt.Errorf("%w: unsupported config format %q", ErrInvalidConfig, ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("scene: parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
