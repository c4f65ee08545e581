// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package config loads polyclass.toml.
package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/wdamron/polyclass/diag"
)

// FileName is the configuration file looked up in the working directory when no path is given.
const FileName = "polyclass.toml"

// ColorMode selects when diagnostics are coloured.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

type Config struct {
	Log         Log         `toml:"log"`
	Diagnostics Diagnostics `toml:"diagnostics"`
}

type Log struct {
	Level    string   `toml:"level"`
	Sections []string `toml:"sections"`
}

type Diagnostics struct {
	Limit int       `toml:"limit"`
	Color ColorMode `toml:"color"`
}

// Default returns the configuration used for settings missing from a file.
func Default() Config {
	return Config{
		Log:         Log{Level: "warn", Sections: []string{"analysis"}},
		Diagnostics: Diagnostics{Limit: diag.DefaultLimit, Color: ColorAuto},
	}
}

// Load reads the configuration at path. If path is empty, FileName is used when it exists and
// the defaults otherwise. Keys that are not recognised are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		if _, err := os.Stat(FileName); err != nil {
			return cfg, nil
		}
		path = FileName
	}
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrapf(err, "%s: failed to parse TOML", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) != 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return Config{}, errors.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.validate(); err != nil {
		return Config{}, errors.Wrap(err, path)
	}
	return cfg, nil
}

func (cfg Config) validate() error {
	if _, err := ParseLevel(cfg.Log.Level); err != nil {
		return err
	}
	if cfg.Diagnostics.Limit < 0 {
		return errors.Errorf("invalid [diagnostics].limit %d: must not be negative", cfg.Diagnostics.Limit)
	}
	switch cfg.Diagnostics.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return errors.Errorf("invalid [diagnostics].color %q: expected auto, always or never", cfg.Diagnostics.Color)
	}
	return nil
}

// ParseLevel parses a log level name: debug, info, warn or error.
func ParseLevel(name string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(name)); err != nil {
		return 0, errors.Errorf("invalid log level %q", name)
	}
	return l, nil
}
