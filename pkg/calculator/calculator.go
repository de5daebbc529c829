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

// Package calculator sums the integers of a delimited string.
//
// Input format:
//
//	[//<directive>\n]<line>[\n<line>...]
//
// Lines are separated by "\n" (or "\r\n"). Inside a line numbers are separated
// by a comma or by any custom delimiter declared in the directive:
//
//	Add("1\n2,3")             // 6
//	Add("//;\n1;2")           // 3
//	Add("//[***]\n1***2***3") // 6
//	Add("//[*][%]\n1*2%3")    // 6
//
// Values above 1000 are ignored. Negative values are rejected, all of them at
// once:
//
//	_, err := Add("1,-2,-3") // negatives not allowed: -2, -3
//
// Every call is independent: the package holds no mutable state and a
// Calculator can be shared between goroutines.
package calculator

import (
	"fmt"
	"log/slog"
	"math"
	"slices"
	"unicode/utf8"

	"github.com/benoit-pereira-da-silva/stringcalc/pkg/scan"
)

// Calculator sums delimited integers according to a Config.
// Create one with New; it is immutable afterwards.
type Calculator struct {
	cfg    Config
	logger *slog.Logger
}

// Option configures a Calculator built by New.
type Option func(*Calculator)

// WithConfig replaces DefaultConfig.
func WithConfig(cfg Config) Option {
	return func(c *Calculator) {
		c.cfg = cfg.clone()
	}
}

// WithLogger sets the logger receiving debug traces. Nothing is logged by
// default.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Calculator) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New returns a Calculator using DefaultConfig unless overridden by opts.
func New(opts ...Option) (*Calculator, error) {
	c := &Calculator{
		cfg:    DefaultConfig(),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	if err := c.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("calculator: %w", err)
	}
	return c, nil
}

var std = &Calculator{
	cfg:    DefaultConfig(),
	logger: slog.New(slog.DiscardHandler),
}

// Add sums input with DefaultConfig.
func Add(input string) (int, error) {
	return std.Add(input)
}

// Explain details the sum of input with DefaultConfig.
func Explain(input string) (Breakdown, error) {
	return std.Explain(input)
}

// Config returns a copy of the configuration in use.
func (c *Calculator) Config() Config {
	return c.cfg.clone()
}

// Add returns the sum of the numbers of input that are not above the upper
// bound.
//
// It fails with an *InputError (errors.Is ErrInvalidInput) when input is not
// well formed, with a *NegativesError (errors.Is ErrNegativesNotAllowed)
// listing every negative value, or with ErrSumOverflow. An empty input sums
// to 0.
func (c *Calculator) Add(input string) (int, error) {
	b, err := c.Explain(input)
	if err != nil {
		return 0, err
	}
	return b.Sum, nil
}

// Explain is Add returning every parsed term along with the sum.
func (c *Calculator) Explain(input string) (Breakdown, error) {
	b := Breakdown{
		Input:      input,
		Delimiters: slices.Clone(c.cfg.Delimiters),
		Terms:      make([]Term, 0),
	}
	if input == "" {
		return b, nil
	}

	d, err := resolveDirective(input)
	if err != nil {
		c.logger.Debug("directive rejected", "err", err)
		return Breakdown{}, err
	}
	if d.malformed {
		c.logger.Warn("malformed delimiter directive, using defaults", "directive", d.spec)
	}
	delims := c.cfg.lineDelimiters(d)
	b.Delimiters = slices.Clone(delims)
	c.logger.Debug("delimiters resolved", "delimiters", delims, "custom", d.custom)

	pos := runeCounter{s: input}
	lines, err := scan.Split(d.payload, scan.ScanLines)
	if err != nil {
		return Breakdown{}, &InputError{Pos: pos.at(len(input)), Err: err}
	}

	split := scan.ScanDelimited(delims...)
	var negatives []int
	for _, line := range lines {
		// Blank lines between lines carry no number.
		if line.Text == "" {
			continue
		}
		base := d.offset + line.Offset
		tokens, err := scan.Split(line.Text, split)
		if err != nil {
			return Breakdown{}, &InputError{Pos: pos.at(base + len(line.Text)), Err: err}
		}
		for _, tok := range tokens {
			at := pos.at(base + tok.Offset)
			n, err := parseNumber(tok.Text)
			if err != nil {
				return Breakdown{}, &InputError{Pos: at, Token: tok.Text, Err: err}
			}
			term := Term{
				Text:  tok.Text,
				Value: n,
				Pos:   at,
				Len:   utf8.RuneCountInString(tok.Text),
			}
			switch {
			case n < 0:
				negatives = append(negatives, n)
			case n > c.cfg.UpperBound:
				term.Excluded = true
			default:
				if b.Sum > math.MaxInt-n {
					return Breakdown{}, fmt.Errorf("%w: adding %d at position %d", ErrSumOverflow, n, at)
				}
				b.Sum += n
			}
			b.Terms = append(b.Terms, term)
		}
	}

	if len(negatives) > 0 {
		c.logger.Debug("negatives rejected", "values", negatives)
		return Breakdown{}, &NegativesError{Values: negatives}
	}
	c.logger.Debug("sum computed", "sum", b.Sum, "terms", len(b.Terms))
	return b, nil
}

// runeCounter converts increasing byte offsets of s to rune positions in a
// single pass.
type runeCounter struct {
	s     string
	bytes int
	runes int
}

func (r *runeCounter) at(offset int) int {
	if offset < r.bytes {
		return utf8.RuneCountInString(r.s[:offset])
	}
	r.runes += utf8.RuneCountInString(r.s[r.bytes:offset])
	r.bytes = offset
	return r.runes
}
