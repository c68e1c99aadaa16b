package field

import (
	"strings"

	"github.com/NikitaCOEUR/lookupsep/internal/pair"
)

// DisplayValues maps each pair to the half shown by side
func DisplayValues(pairs []pair.Pair, side pair.Side) []string {
	values := make([]string, 0, len(pairs))
	for _, p := range pairs {
		values = append(values, p.Get(side))
	}
	return values
}

// Filter keeps the values containing query, ignoring case. An empty query
// keeps everything.
func Filter(values []string, query string) []string {
	if query == "" {
		return append([]string{}, values...)
	}
	q := strings.ToLower(query)
	filtered := make([]string, 0, len(values))
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), q) {
			filtered = append(filtered, v)
		}
	}
	return filtered
}

// Suggestions returns the display values of pairs for side, filtered by query
func Suggestions(pairs []pair.Pair, side pair.Side, query string) []string {
	return Filter(DisplayValues(pairs, side), query)
}

// Resolve finds the pair a display value came from. The first match in
// result order wins.
func Resolve(display string, pairs []pair.Pair, side pair.Side) (pair.Pair, bool) {
	for _, p := range pairs {
		if p.Get(side) == display {
			return p, true
		}
	}
	return pair.Pair{}, false
}
