// Copyright 2026 Benoit Pereira da Silva
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package calculator

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// DelimiterMode decides how custom delimiters combine with the configured
// defaults inside a line. Newlines always separate lines.
type DelimiterMode string

const (
	// ModeLayered adds custom delimiters to the defaults.
	ModeLayered DelimiterMode = "layered"
	// ModeReplace uses only the custom delimiters when a directive declares some.
	ModeReplace DelimiterMode = "replace"
)

// DefaultUpperBound is the largest value counted in a sum.
const DefaultUpperBound = 1000

// Config tunes a Calculator.
type Config struct {
	UpperBound int           `yaml:"upper_bound"`
	Delimiters []string      `yaml:"delimiters"`
	Mode       DelimiterMode `yaml:"mode"`
}

// DefaultConfig returns the kata rules: values up to 1000, comma separated,
// custom delimiters layered on top.
func DefaultConfig() Config {
	return Config{
		UpperBound: DefaultUpperBound,
		Delimiters: []string{","},
		Mode:       ModeLayered,
	}
}

// ParseConfig decodes a YAML document over DefaultConfig. Keys that are not
// part of Config are rejected. An empty document yields DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration can be used by a Calculator.
func (c Config) Validate() error {
	if c.UpperBound < 0 {
		return fmt.Errorf("upper_bound must not be negative, got %d", c.UpperBound)
	}
	if len(c.Delimiters) == 0 {
		return errors.New("at least one delimiter is required")
	}
	for _, d := range c.Delimiters {
		if d == "" {
			return errors.New("delimiters must not be empty")
		}
		if strings.ContainsAny(d, "\r\n") {
			return fmt.Errorf("delimiter %q must not contain a line terminator", d)
		}
		if ambiguous(d) {
			return fmt.Errorf("delimiter %q: %w", d, ErrAmbiguousDelimiter)
		}
	}
	switch c.Mode {
	case ModeLayered, ModeReplace:
	default:
		return fmt.Errorf("unknown delimiter mode %q", c.Mode)
	}
	return nil
}

func (c Config) clone() Config {
	c.Delimiters = append([]string(nil), c.Delimiters...)
	return c
}
