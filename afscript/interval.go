package afscript

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// Interval is an inclusive range of Unicode code points.
type Interval struct {
	First rune
	Last  rune
}

// Len returns the number of code points in iv. Invalid intervals have length 0.
func (iv Interval) Len() int {
	if iv.Last < iv.First {
		return 0
	}
	return int(iv.Last-iv.First) + 1
}

// Contains reports whether r is covered by iv.
func (iv Interval) Contains(r rune) bool {
	return iv.First <= r && r <= iv.Last
}

// String returns iv in UCD notation, e.g. "0600..06FF".
func (iv Interval) String() string {
	return fmt.Sprintf("%04X..%04X", iv.First, iv.Last)
}

// Validate checks that iv is a non-empty interval within the Unicode
// code point space.
func (iv Interval) Validate() error {
	if iv.First < 0 || iv.Last > unicode.MaxRune {
		return fmt.Errorf("interval %s exceeds code point space", iv)
	}
	if iv.First > iv.Last {
		return fmt.Errorf("interval %s has first > last", iv)
	}
	return nil
}

// ParseInterval parses an interval given in UCD notation, either "XXXX..YYYY"
// or a single code point "XXXX", with hexadecimal numbers. An optional "U+"
// prefix is accepted. ParseInterval does not check first ≤ last; use Validate.
func ParseInterval(s string) (Interval, error) {
	s = strings.TrimSpace(s)
	first, last, isRange := strings.Cut(s, "..")
	lo, err := parseCodepoint(first)
	if err != nil {
		return Interval{}, fmt.Errorf("interval %q: %w", s, err)
	}
	if !isRange {
		return Interval{First: lo, Last: lo}, nil
	}
	hi, err := parseCodepoint(last)
	if err != nil {
		return Interval{}, fmt.Errorf("interval %q: %w", s, err)
	}
	return Interval{First: lo, Last: hi}, nil
}

func parseCodepoint(s string) (rune, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "U+"), "u+")
	if s == "" {
		return 0, fmt.Errorf("missing code point")
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid code point %q", s)
	}
	return rune(n), nil
}

// UnmarshalYAML reads an interval from a YAML scalar in UCD notation.
// It is lenient with respect to ordering; Build reports inverted intervals.
func (iv *Interval) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: interval must be a scalar", node.Line)
	}
	parsed, err := ParseInterval(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*iv = parsed
	return nil
}

// MarshalYAML writes an interval in UCD notation.
func (iv Interval) MarshalYAML() (interface{}, error) {
	return iv.String(), nil
}
