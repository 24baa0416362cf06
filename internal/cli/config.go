// SPDX-License-Identifier: MIT
package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvmaze/rng"
	"github.com/katalvlaran/lvmaze/search"
)

var (
	// ErrInvalidConfig wraps every validation failure of Config.
	ErrInvalidConfig = errors.New("cli: invalid configuration")
	// ErrUnsupportedConfig indicates a config file extension other than
	// .toml, .yaml or .yml.
	ErrUnsupportedConfig = errors.New("cli: unsupported config format")
)

// Config is the merged configuration of every command.
type Config struct {
	// Seed is "a,b,c,d"; empty selects rng.DefaultSeed.
	Seed  string      `toml:"seed" yaml:"seed" validate:"omitempty,seed"`
	Maze  MazeConfig  `toml:"maze" yaml:"maze"`
	Noise NoiseConfig `toml:"noise" yaml:"noise"`
	Solve SolveConfig `toml:"solve" yaml:"solve"`
	Play  PlayConfig  `toml:"play" yaml:"play"`
}

// MazeConfig controls the clustering generator.
type MazeConfig struct {
	Width  int `toml:"width" yaml:"width" validate:"gte=3,lte=1001,odd"`
	Height int `toml:"height" yaml:"height" validate:"gte=3,lte=1001,odd"`
	// MergeThreshold overrides the generator's merge bound; 0 keeps the default.
	MergeThreshold uint32 `toml:"merge_threshold" yaml:"merge_threshold"`
}

// NoiseConfig controls noise fields and their thresholding into grids.
type NoiseConfig struct {
	Width      int     `toml:"width" yaml:"width" validate:"gte=1,lte=1000"`
	Height     int     `toml:"height" yaml:"height" validate:"gte=1,lte=1000"`
	Smoothness float64 `toml:"smoothness" yaml:"smoothness" validate:"gt=0"`
	Z          float64 `toml:"z" yaml:"z"`
	// Mode is "seamless" (tileable field) or "plain" (raw noise at x/smoothness).
	Mode string `toml:"mode" yaml:"mode" validate:"oneof=seamless plain"`
	// Tile samples a half-size field and repeats it 2x2.
	Tile bool `toml:"tile" yaml:"tile"`
	// Period > 0 selects the 3D looping variant of the seamless mode.
	Period float64 `toml:"period" yaml:"period" validate:"gte=0"`
	// Cells whose value is above Threshold become passages.
	Threshold float64 `toml:"threshold" yaml:"threshold" validate:"gte=-1,lte=1"`
	// Mean thresholds at the field's mean value instead of Threshold.
	Mean bool `toml:"mean" yaml:"mean"`
}

// SolveConfig selects the grid source, the endpoints and the algorithm.
type SolveConfig struct {
	Algorithm string `toml:"algorithm" yaml:"algorithm" validate:"required,algorithm"`
	// Source is "maze" or "noise"; ignored when Input is set.
	Source string `toml:"source" yaml:"source" validate:"oneof=maze noise"`
	// Input is a grid file in the maze.Grid text format.
	Input string `toml:"input" yaml:"input"`
	// Start and Goal are "x,y"; they snap to the nearest open cell.
	Start string `toml:"start" yaml:"start" validate:"omitempty,point"`
	Goal  string `toml:"goal" yaml:"goal" validate:"omitempty,point"`
}

// PlayConfig paces the interactive replay.
type PlayConfig struct {
	DelayMS int `toml:"delay_ms" yaml:"delay_ms" validate:"gte=1,lte=10000"`
}

// DefaultConfig returns the configuration used when no file or flag sets a
// value.
func DefaultConfig() Config {
	return Config{
		Maze: MazeConfig{Width: 21, Height: 21},
		Noise: NoiseConfig{
			Width:      48,
			Height:     24,
			Smoothness: 8,
			Mode:       "seamless",
		},
		Solve: SolveConfig{Algorithm: search.AlgoDijkstra.String(), Source: "maze"},
		Play:  PlayConfig{DelayMS: 40},
	}
}

// LoadConfig reads path over DefaultConfig. The format follows the file
// extension: .toml, .yaml or .yml. The result is not validated.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return cfg, fmt.Errorf("%w: %q", ErrUnsupportedConfig, ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// SeedValue returns the parsed seed, or rng.DefaultSeed when Seed is empty.
func (c Config) SeedValue() (rng.Seed, error) {
	if strings.TrimSpace(c.Seed) == "" {
		return rng.DefaultSeed, nil
	}
	return rng.ParseSeed(c.Seed)
}

// Validate checks c against its struct tags. Failures wrap both
// ErrInvalidConfig and validator.ValidationErrors.
func (c Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// configValidate carries the custom tags odd, seed, point and algorithm.
var configValidate *validator.Validate

func init() {
	configValidate = validator.New()
	mustRegister("odd", func(fl validator.FieldLevel) bool {
		return fl.Field().Int()%2 == 1
	})
	mustRegister("seed", func(fl validator.FieldLevel) bool {
		_, err := rng.ParseSeed(fl.Field().String())
		return err == nil
	})
	mustRegister("point", func(fl validator.FieldLevel) bool {
		_, err := parsePoint(fl.Field().String())
		return err == nil
	})
	mustRegister("algorithm", func(fl validator.FieldLevel) bool {
		_, err := search.ParseAlgorithm(fl.Field().String())
		return err == nil
	})
}

func mustRegister(tag string, fn validator.Func) {
	if err := configValidate.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}
