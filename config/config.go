// This file is part of Wormy.
//
// Wormy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Wormy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Wormy.  If not, see <https://www.gnu.org/licenses/>.

// Package config holds the settings for a game of Wormy. The settings can be
// loaded from an optional YAML file. Any value missing from the file keeps
// its default. For example:
//
//	display:
//	  multiplier: 12
//	fps: 20
//	joystick:
//	  bus: /dev/i2c-1
//	  address: 0x20
//
// Display dimensions are measured in units of the multiplier. The default
// window is 96 by 54 units, with cells 3 units square, giving a grid of 32 by
// 18 cells.
package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jetsetilly/wormy/curated"
	"github.com/jetsetilly/wormy/hardware/i2c"
	"github.com/jetsetilly/wormy/hardware/joystick"
)

// ConfigError is the curated error pattern for any problem with the
// configuration.
const ConfigError = "config: %v"

// the smallest grid that a game can be played on. the worm is placed at
// least five cells from every edge
const minGrid = 11

// Display settings.
type Display struct {
	Multiplier int `yaml:"multiplier"`
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`
	CellSize   int `yaml:"cell_size"`
}

// WindowWidth returns the width of the window in pixels.
func (d Display) WindowWidth() int {
	return d.Width * d.Multiplier
}

// WindowHeight returns the height of the window in pixels.
func (d Display) WindowHeight() int {
	return d.Height * d.Multiplier
}

// CellPixels returns the size of a single cell in pixels.
func (d Display) CellPixels() int {
	return d.CellSize * d.Multiplier
}

// GridWidth returns the number of columns in the grid.
func (d Display) GridWidth() int {
	return d.Width / d.CellSize
}

// GridHeight returns the number of rows in the grid.
func (d Display) GridHeight() int {
	return d.Height / d.CellSize
}

// Joystick settings.
type Joystick struct {
	// name of the I2C bus. empty string for the first bus found
	Bus      string `yaml:"bus"`
	Address  uint16 `yaml:"address"`
	Register uint8  `yaml:"register"`

	// play with the keyboard only. the bus is never opened
	Disabled bool `yaml:"disabled"`
}

// Assets are the files used by the SDL presenter.
type Assets struct {
	Font   string `yaml:"font"`
	Sprite string `yaml:"sprite"`
}

// Config is the complete configuration.
type Config struct {
	Display  Display  `yaml:"display"`
	Joystick Joystick `yaml:"joystick"`
	Assets   Assets   `yaml:"assets"`
	FPS      int      `yaml:"fps"`
}

// Default returns the configuration used when there is no config file.
func Default() Config {
	return Config{
		Display: Display{
			Multiplier: 18,
			Width:      96,
			Height:     54,
			CellSize:   3,
		},
		Joystick: Joystick{
			Address:  joystick.DefaultAddress,
			Register: joystick.DefaultRegister,
		},
		Assets: Assets{
			Font:   "freesansbold.ttf",
			Sprite: "Pixel-flame.png",
		},
		FPS: 15,
	}
}

// Load the configuration from a YAML file. An empty path returns the default
// configuration.
func Load(path string) (Config, error) {
	cfg := Default()

	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, curated.Errorf(ConfigError, err)
	}

	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, curated.Errorf(ConfigError, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (cfg Config) Validate() error {
	d := cfg.Display

	if d.Multiplier <= 0 || d.Width <= 0 || d.Height <= 0 || d.CellSize <= 0 {
		return curated.Errorf(ConfigError, "display dimensions must be positive")
	}
	if d.Width%d.CellSize != 0 {
		return curated.Errorf(ConfigError, "window width must be a multiple of cell size")
	}
	if d.Height%d.CellSize != 0 {
		return curated.Errorf(ConfigError, "window height must be a multiple of cell size")
	}
	if d.GridWidth() < minGrid || d.GridHeight() < minGrid {
		return curated.Errorf(ConfigError, "grid must be at least 11 cells in each direction")
	}

	if cfg.FPS <= 0 {
		return curated.Errorf(ConfigError, "fps must be positive")
	}

	if cfg.Joystick.Address > i2c.MaxAddress {
		return curated.Errorf(ConfigError, "joystick address is not a 7-bit address")
	}

	return nil
}

// Write the configuration as YAML. Useful as a starting point for a config
// file.
func (cfg Config) Write() ([]byte, error) {
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, curated.Errorf(ConfigError, err)
	}
	return b, nil
}
