// Package store reads and writes drawing lists as JSON.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"ShapeBoard/internal/logx"
	"ShapeBoard/internal/shape"
)

// Encode writes list as an indented JSON array. A nil list encodes as [].
func Encode(w io.Writer, list []shape.Drawing) error {
	if list == nil {
		list = []shape.Drawing{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(list); err != nil {
		return fmt.Errorf("encode drawings: %w", err)
	}
	return nil
}

// Decode reads a JSON array of drawings and validates each one.
func Decode(r io.Reader) ([]shape.Drawing, error) {
	var list []shape.Drawing
	if err := json.NewDecoder(r).Decode(&list); err != nil {
		return nil, fmt.Errorf("decode drawings: %w", err)
	}
	for i, d := range list {
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("drawing %d: %w", i, err)
		}
	}
	if list == nil {
		list = []shape.Drawing{}
	}
	return list, nil
}

// Save writes list to path, replacing the file only once the new content is
// fully written.
func Save(path string, list []shape.Drawing) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".drawings-*.json")
	if err != nil {
		return fmt.Errorf("could not create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := Encode(tmp, list); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("could not replace %s: %w", path, err)
	}
	logx.For("store").Debug("saved drawings", "path", path, "count", len(list))
	return nil
}

// Load reads the list stored at path. A missing file yields an empty list.
func Load(path string) ([]shape.Drawing, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return []shape.Drawing{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}
	defer f.Close()

	list, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logx.For("store").Debug("loaded drawings", "path", path, "count", len(list))
	return list, nil
}

// LoadOrSetAside behaves like Load, except that a file which exists but cannot
// be decoded is renamed to path+".bad" so a later Save does not overwrite it.
// aside names the renamed file. It is empty when nothing was moved, including
// when the rename itself failed.
func LoadOrSetAside(path string) (list []shape.Drawing, aside string, err error) {
	list, err = Load(path)
	if err == nil {
		return list, "", nil
	}
	if _, statErr := os.Stat(path); statErr != nil {
		return nil, "", err
	}
	aside = path + ".bad"
	if renameErr := os.Rename(path, aside); renameErr != nil {
		return nil, "", fmt.Errorf("%w (could not move it aside: %w)", err, renameErr)
	}
	logx.For("store").Warn("moved unreadable drawings aside", "path", path, "to", aside, "err", err)
	return nil, aside, err
}
