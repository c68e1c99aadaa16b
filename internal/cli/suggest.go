package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/NikitaCOEUR/lookupsep/internal/field"
	"github.com/NikitaCOEUR/lookupsep/internal/pair"
)

// SuggestParams contains parameters for the suggest command
type SuggestParams struct {
	Common
	Query string
	// Composite prints whole stored values instead of the active half
	Composite bool
	JSON      bool
}

// Suggest runs one search and prints the suggestions a field would show
func Suggest(ctx context.Context, params SuggestParams) error {
	comps, err := initializeComponents(params.Common, os.Stderr)
	if err != nil {
		return err
	}
	provider, err := comps.requireProvider()
	if err != nil {
		return err
	}

	cfg := comps.config
	pairs, err := provider.Search(ctx, params.Query, cfg.MinQueryLength)
	if err != nil {
		if field.IsFetchFailure(err) {
			return fmt.Errorf("suggestions unavailable from %s: %w", provider.SearchURL(params.Query), err)
		}
		return fmt.Errorf("search failed: %w", err)
	}

	lines := matching(pairs, cfg.ActiveSide(), cfg.Separator, params.Query, params.Composite)

	if params.JSON {
		out, err := json.MarshalIndent(lines, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode suggestions: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	for _, line := range lines {
		fmt.Println(line)
	}
	return nil
}

// matching returns the suggestions for query, or the composites of the pairs
// behind them when composite is set
func matching(pairs []pair.Pair, side pair.Side, sep, query string, composite bool) []string {
	if !composite {
		return field.Suggestions(pairs, side, query)
	}
	q := strings.ToLower(query)
	lines := make([]string, 0, len(pairs))
	for _, p := range pairs {
		if strings.Contains(strings.ToLower(p.Get(side)), q) {
			lines = append(lines, pair.Join(p, sep))
		}
	}
	return lines
}
