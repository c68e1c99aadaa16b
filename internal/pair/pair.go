// Package pair converts between a composite "left SEP right" string and its
// two halves.
package pair

import (
	"fmt"
	"strings"
)

// DefaultSeparator is used when no separator is configured
const DefaultSeparator = ","

// Pair is the decomposed form of a composite value
type Pair struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}

// Side selects which half of a Pair a field instance shows and edits
type Side int

const (
	// Left selects the part before the separator
	Left Side = iota
	// Right selects the part after the separator
	Right
)

// String returns the configuration name of the side
func (s Side) String() string {
	if s == Right {
		return "right"
	}
	return "left"
}

// ParseSide parses "left" or "right" (case-insensitive)
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	default:
		return Left, fmt.Errorf("invalid side %q: must be left or right", s)
	}
}

// Get returns the half of p selected by side
func (p Pair) Get(side Side) string {
	if side == Right {
		return p.Right
	}
	return p.Left
}

// With returns a copy of p with the half selected by side replaced
func (p Pair) With(side Side, value string) Pair {
	if side == Right {
		p.Right = value
	} else {
		p.Left = value
	}
	return p
}

// Parse splits composite on the first occurrence of separator and trims both
// halves. The second return value is false when the value is absent: no
// separator, or an empty half after trimming. Additional separators stay in
// the right half.
func Parse(composite, separator string) (Pair, bool) {
	if separator == "" {
		return Pair{}, false
	}
	left, right, found := strings.Cut(composite, separator)
	if !found {
		return Pair{}, false
	}
	left = strings.TrimSpace(left)
	right = strings.TrimSpace(right)
	if left == "" || right == "" {
		return Pair{}, false
	}
	return Pair{Left: left, Right: right}, true
}

// Join encodes p as left + separator + right. No trimming is applied.
func Join(p Pair, separator string) string {
	return p.Left + separator + p.Right
}

// ParseAll parses every composite value, dropping the absent ones.
// Order is preserved.
func ParseAll(composites []string, separator string) []Pair {
	pairs := make([]Pair, 0, len(composites))
	for _, c := range composites {
		if p, ok := Parse(c, separator); ok {
			pairs = append(pairs, p)
		}
	}
	return pairs
}
