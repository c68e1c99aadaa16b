// Package suggest turns a partial query into pair suggestions fetched from the
// remote records endpoint.
package suggest

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/NikitaCOEUR/lookupsep/internal/derrors"
	"github.com/NikitaCOEUR/lookupsep/internal/logger"
	"github.com/NikitaCOEUR/lookupsep/internal/pair"
)

// RecordsPath is the records search endpoint, relative to the base URL
const RecordsPath = "/api/data/v9.1/records"

var errNoBaseURL = errors.New("base URL not configured")

// Record is one entry of the records response
type Record struct {
	Name string `json:"name"`
}

// RecordsResponse is the body returned by the records endpoint
type RecordsResponse struct {
	Records []Record `json:"records"`
}

// Option configures the provider
type Option func(*Provider)

// WithFetcher injects the fetch capability
func WithFetcher(f Fetcher) Option {
	return func(p *Provider) {
		if f != nil {
			p.fetcher = f
		}
	}
}

// WithToken sends the token as a bearer Authorization header
func WithToken(token string) Option {
	return func(p *Provider) {
		p.token = strings.TrimSpace(token)
	}
}

// WithSeparator sets the separator used to split record names
func WithSeparator(sep string) Option {
	return func(p *Provider) {
		if sep != "" {
			p.separator = sep
		}
	}
}

// WithLogger injects a logger
func WithLogger(log *logger.Logger) Option {
	return func(p *Provider) {
		if log != nil {
			p.log = log
		}
	}
}

// Provider fetches records and maps their names to pairs
type Provider struct {
	baseURL   string
	token     string
	separator string
	fetcher   Fetcher
	log       *logger.Logger
}

// New creates a provider for the given base URL
func New(baseURL string, opts ...Option) (*Provider, error) {
	p := &Provider{
		baseURL:   strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		separator: pair.DefaultSeparator,
		log:       logger.Discard(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.baseURL == "" {
		return nil, errNoBaseURL
	}
	if p.fetcher == nil {
		p.fetcher = NewHTTPFetcher()
	}
	p.log = p.log.With("suggest")
	return p, nil
}

// SearchURL builds the request URL for query
func (p *Provider) SearchURL(query string) string {
	return p.baseURL + RecordsPath + "?search=" + url.QueryEscape(query)
}

// Search returns the pairs matching query. Queries shorter than minLength
// (in runes) return an empty result without any request. Every failure of the
// request is reported as a *derrors.FetchError with an empty result.
func (p *Provider) Search(ctx context.Context, query string, minLength int) ([]pair.Pair, error) {
	if utf8.RuneCountInString(query) < minLength {
		return []pair.Pair{}, nil
	}

	target := p.SearchURL(query)
	header := http.Header{}
	if p.token != "" {
		header.Set("Authorization", "Bearer "+p.token)
	}

	start := time.Now()
	var resp RecordsResponse
	if err := p.fetcher.FetchJSON(ctx, target, header, &resp); err != nil {
		status := 0
		var se *StatusError
		if errors.As(err, &se) {
			status = se.StatusCode
		}
		p.log.Warn().
			Str("query", query).
			Int("status", status).
			Err(err).
			Msg("Suggestion request failed")
		return []pair.Pair{}, derrors.NewFetchError(target, status, "suggestion request failed", err)
	}

	names := make([]string, 0, len(resp.Records))
	for _, r := range resp.Records {
		names = append(names, r.Name)
	}
	pairs := pair.ParseAll(names, p.separator)

	p.log.Debug().
		Str("query", query).
		Dur("duration_ms", time.Since(start)).
		Int("records", len(resp.Records)).
		Int("pairs", len(pairs)).
		Msg("Suggestions fetched")

	return pairs, nil
}
