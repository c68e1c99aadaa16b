package suggest

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDoer struct {
	req  *http.Request
	resp *http.Response
	err  error
}

func (s *stubDoer) Do(req *http.Request) (*http.Response, error) {
	s.req = req
	return s.resp, s.err
}

func response(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     http.Header{},
	}
}

func TestHTTPFetcher_FetchJSON(t *testing.T) {
	doer := &stubDoer{resp: response(http.StatusOK, `{"records":[{"name":"a,b"}]}`)}
	f := NewHTTPFetcher(WithHTTPClient(doer))

	var out RecordsResponse
	header := http.Header{}
	header.Set("X-Trace", "1")
	err := f.FetchJSON(context.Background(), "http://crm.local/x", header, &out)
	require.NoError(t, err)

	require.Len(t, out.Records, 1)
	assert.Equal(t, "a,b", out.Records[0].Name)
	assert.Equal(t, http.MethodGet, doer.req.Method)
	assert.Equal(t, "application/json", doer.req.Header.Get("Accept"))
	assert.Equal(t, "1", doer.req.Header.Get("X-Trace"))
}

func TestHTTPFetcher_Non2xx(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{"not found", http.StatusNotFound},
		{"unauthorized", http.StatusUnauthorized},
		{"server error", http.StatusInternalServerError},
		{"redirect not followed", http.StatusMultipleChoices},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doer := &stubDoer{resp: response(tt.status, "nope")}
			f := NewHTTPFetcher(WithHTTPClient(doer))

			var out RecordsResponse
			err := f.FetchJSON(context.Background(), "http://crm.local/x", nil, &out)

			var se *StatusError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, tt.status, se.StatusCode)
			assert.Contains(t, err.Error(), "nope")
		})
	}
}

func TestHTTPFetcher_TransportError(t *testing.T) {
	doer := &stubDoer{err: errors.New("dial tcp: refused")}
	f := NewHTTPFetcher(WithHTTPClient(doer))

	var out RecordsResponse
	err := f.FetchJSON(context.Background(), "http://crm.local/x", nil, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "refused")
}

func TestHTTPFetcher_BadJSON(t *testing.T) {
	doer := &stubDoer{resp: response(http.StatusOK, `not json`)}
	f := NewHTTPFetcher(WithHTTPClient(doer))

	var out RecordsResponse
	err := f.FetchJSON(context.Background(), "http://crm.local/x", nil, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding response")
}

func TestHTTPFetcher_InvalidURL(t *testing.T) {
	f := NewHTTPFetcher()

	var out RecordsResponse
	err := f.FetchJSON(context.Background(), "://bad", nil, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating request")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab...", truncate("abcdef", 2))
}
