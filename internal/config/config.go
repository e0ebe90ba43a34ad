// Package config loads the application settings from a TOML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"ShapeBoard/internal/editor"
	"ShapeBoard/internal/logx"

	"github.com/pelletier/go-toml/v2"
)

// EnvPath names the environment variable that overrides DefaultPath.
const EnvPath = "SHAPEBOARD_CONFIG"

// DefaultPath is used when EnvPath is unset.
const DefaultPath = "shapeboard.toml"

// File is the whole configuration file.
type File struct {
	Editor editor.Config `toml:"editor"`
	App    App           `toml:"app"`
	Share  Share         `toml:"share"`
	Log    Log           `toml:"log"`
}

// App configures the desktop window.
type App struct {
	Title        string  `toml:"title"`
	WindowWidth  float32 `toml:"window_width"`
	WindowHeight float32 `toml:"window_height"`
	// DrawingsPath is loaded at start and written by Save.
	DrawingsPath string `toml:"drawings_path"`
}

// Share configures live sharing.
type Share struct {
	Port      int  `toml:"port"`
	Advertise bool `toml:"advertise"`
}

type Log struct {
	Level string `toml:"level"`
}

// Default returns the built-in settings.
func Default() File {
	return File{
		Editor: editor.DefaultConfig(),
		App: App{
			Title:        "ShapeBoard",
			WindowWidth:  1024,
			WindowHeight: 768,
			DrawingsPath: "drawings.json",
		},
		Share: Share{Port: 8888, Advertise: true},
		Log:   Log{Level: "info"},
	}
}

// Path returns the config file location.
func Path() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return DefaultPath
}

// Load reads path over the defaults. A missing file yields the defaults;
// unknown keys are an error.
func Load(path string) (File, error) {
	f := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		logx.For("config").Debug("no config file, using defaults", "path", path)
		return f, nil
	}
	if err != nil {
		return f, fmt.Errorf("could not read config: %w", err)
	}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return f, fmt.Errorf("%s: %w", path, err)
	}
	if err := f.Validate(); err != nil {
		return f, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Validate checks the settings the editor does not check itself.
func (f File) Validate() error {
	if f.Share.Port <= 0 || f.Share.Port > 65535 {
		return fmt.Errorf("%w: share port %d out of range", editor.ErrInvalidConfiguration, f.Share.Port)
	}
	if f.App.WindowWidth <= 0 || f.App.WindowHeight <= 0 {
		return fmt.Errorf("%w: window size must be positive", editor.ErrInvalidConfiguration)
	}
	switch f.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", editor.ErrInvalidConfiguration, f.Log.Level)
	}
	return nil
}

// Save writes f to path.
func Save(path string, f File) error {
	data, err := toml.Marshal(f)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("could not write config: %w", err)
	}
	return nil
}

// ErrExists is returned by Init when path is already taken.
var ErrExists = errors.New("config file already exists")

// Init writes the default settings to path. An existing file is left alone.
func Init(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s", ErrExists, path)
	}
	return Save(path, Default())
}
