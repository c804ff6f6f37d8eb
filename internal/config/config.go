package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/marcus/lightbox/internal/models"
)

const configFile = ".lightbox/config.json"

// File is the on-disk shape of the options. Booleans are pointers so an
// explicit false survives a round trip; unset fields keep their defaults.
type File struct {
	Preview    *bool  `json:"preview,omitempty"`
	Preloader  string `json:"preloader,omitempty"`
	Overflow   *bool  `json:"overflow,omitempty"`
	ArrowLeft  string `json:"arrow_left,omitempty"`
	ArrowRight string `json:"arrow_right,omitempty"`
}

// Path returns the config file location under baseDir
func Path(baseDir string) string {
	return filepath.Join(baseDir, configFile)
}

// Options applies the file on top of the defaults
func (f File) Options() models.Options {
	opts := models.DefaultOptions()
	if f.Preview != nil {
		opts.Preview = *f.Preview
	}
	if f.Overflow != nil {
		opts.Overflow = *f.Overflow
	}
	opts.Preloader = f.Preloader
	opts.ArrowLeft = f.ArrowLeft
	opts.ArrowRight = f.ArrowRight
	return opts
}

// FromOptions converts options into the file shape, writing every boolean
func FromOptions(opts models.Options) File {
	preview, overflow := opts.Preview, opts.Overflow
	return File{
		Preview:    &preview,
		Preloader:  opts.Preloader,
		Overflow:   &overflow,
		ArrowLeft:  opts.ArrowLeft,
		ArrowRight: opts.ArrowRight,
	}
}

// Load reads the options from disk. A missing file yields the defaults.
func Load(baseDir string) (models.Options, error) {
	data, err := os.ReadFile(Path(baseDir))
	if err != nil {
		if os.IsNotExist(err) {
			return models.DefaultOptions(), nil
		}
		return models.Options{}, fmt.Errorf("read config: %w", err)
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return models.Options{}, fmt.Errorf("parse %s: %w", configFile, err)
	}
	return f.Options(), nil
}

// Save writes the options to disk
func Save(baseDir string, opts models.Options) error {
	configPath := Path(baseDir)

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(FromOptions(opts), "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// Exists reports whether a config file is present under baseDir
func Exists(baseDir string) bool {
	_, err := os.Stat(Path(baseDir))
	return err == nil
}
