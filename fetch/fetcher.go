package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// maxDocumentSize caps response bodies; the ontology is a few megabytes at
// most and an unbounded read would let a misbehaving server exhaust memory.
const maxDocumentSize = 64 << 20 // 64 MB

// Error reports a failed retrieval: unreachable host, timeout, or non-2xx
// response. StatusCode is zero for transport-level failures.
type Error struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-attempt HTTP timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) { f.client.Timeout = d }
}

// WithRetries sets how many additional attempts follow a transport failure.
// Non-2xx responses are not retried; the server answered.
func WithRetries(n int) Option {
	return func(f *Fetcher) { f.retries = n }
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) { f.userAgent = ua }
}

// WithAllowLocal permits localhost and private-IP URLs. Intended for tests
// and air-gapped mirrors.
func WithAllowLocal(allow bool) Option {
	return func(f *Fetcher) { f.allowLocal = allow }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Fetcher) { f.logger = logger }
}

// Fetcher retrieves ontology documents with URL validation and bounded
// retry.
type Fetcher struct {
	client     *http.Client
	retries    int
	backoff    time.Duration
	userAgent  string
	allowLocal bool
	logger     *slog.Logger
}

// New returns a Fetcher with a 30s timeout, two retries, and flat 1s
// backoff.
func New(opts ...Option) *Fetcher {
	f := &Fetcher{
		client:    &http.Client{Timeout: 30 * time.Second},
		retries:   2,
		backoff:   time.Second,
		userAgent: "hpvco-toolkit/" + Version,
		logger:    slog.Default(),
	}
	for _, o := range opts {
		o(f)
	}
	return f
}

// Version is the toolkit version reported in the User-Agent header.
const Version = "0.1.0"

// Fetch retrieves the document at rawURL. It validates the URL before
// dialing and returns the response body on any 2xx status. All failures
// are *Error.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	if err := ValidateURL(rawURL, f.allowLocal); err != nil {
		return nil, &Error{URL: rawURL, Err: err}
	}

	var lastErr error
	for attempt := 0; attempt <= f.retries; attempt++ {
		if attempt > 0 {
			f.logger.Debug("Retrying fetch", "url", rawURL, "attempt", attempt)
			select {
			case <-ctx.Done():
				return nil, &Error{URL: rawURL, Err: ctx.Err()}
			case <-time.After(f.backoff):
			}
		}

		data, err := f.fetchOnce(ctx, rawURL)
		if err == nil {
			return data, nil
		}
		lastErr = err

		// A served status code is authoritative; only transport-level
		// failures are worth retrying.
		if fe, ok := err.(*Error); ok && fe.StatusCode != 0 {
			return nil, err
		}
		if ctx.Err() != nil {
			return nil, lastErr
		}
	}
	return nil, lastErr
}

func (f *Fetcher) fetchOnce(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &Error{URL: rawURL, Err: err}
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "application/rdf+xml, application/xml;q=0.9, */*;q=0.1")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &Error{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{URL: rawURL, StatusCode: resp.StatusCode}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		return nil, &Error{URL: rawURL, Err: fmt.Errorf("read body: %w", err)}
	}

	f.logger.Debug("Fetched ontology document",
		"url", rawURL,
		"bytes", len(data),
		"status", resp.StatusCode)
	return data, nil
}
