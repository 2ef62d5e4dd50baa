package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

var (
	ErrMissingArgument = errors.New("not enough arguments")
	ErrConfig          = errors.New("invalid config")
)

// Config holds the window defaults. It is only ever read.
type Config struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Smooth bool   `toml:"smooth"`
	VSync  bool   `toml:"vsync"`
}

func DefaultConfig() Config {
	return Config{
		Title:  "WebP Viewer",
		Width:  800,
		Height: 600,
		Smooth: true,
		VSync:  true,
	}
}

// LoadConfig overlays the TOML file at path onto DefaultConfig. An empty
// path returns the defaults.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	if path == "" {
		return c, nil
	}

	path, err := homedir.Expand(path)
	if err != nil {
		return c, fmt.Errorf("%w: %v", ErrConfig, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("%w: %v", ErrConfig, err)
	}

	return ParseConfig(data)
}

func ParseConfig(data []byte) (Config, error) {
	c := DefaultConfig()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return c, fmt.Errorf("%w: %v", ErrConfig, err)
	}

	if c.Width <= 0 || c.Height <= 0 {
		return c, fmt.Errorf(
			"%w: window size %dx%d",
			ErrConfig,
			c.Width,
			c.Height,
		)
	}

	return c, nil
}

func (c Config) SwapInterval() int {
	if c.VSync {
		return 1
	}
	return 0
}
