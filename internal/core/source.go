package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/JonMunkholm/leaderboard/internal/config"
	"golang.org/x/sync/singleflight"
)

// Source retrieves the raw sheet text.
type Source interface {
	Fetch(ctx context.Context) (string, error)
}

// DefaultFetchTimeout applies when the configured timeout is zero.
const DefaultFetchTimeout = 10 * time.Second

// HTTPSource fetches a published CSV over HTTP.
// Concurrent fetches share one request; each caller gets the full result.
type HTTPSource struct {
	url      string
	client   *http.Client
	timeout  time.Duration
	maxBytes int64

	group singleflight.Group
}

// NewHTTPSource creates a source for cfg.URL. An empty URL is accepted here
// and reported as ErrConfigurationMissing on every Fetch.
func NewHTTPSource(cfg config.SheetConfig) *HTTPSource {
	timeout := cfg.FetchTimeout
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return &HTTPSource{
		url:      cfg.URL,
		client:   &http.Client{},
		timeout:  timeout,
		maxBytes: cfg.MaxBytes,
	}
}

// WithClient replaces the HTTP client, e.g. with one that trusts a test server.
func (s *HTTPSource) WithClient(c *http.Client) *HTTPSource {
	s.client = c
	return s
}

// Fetch implements Source.
func (s *HTTPSource) Fetch(ctx context.Context) (string, error) {
	if s.url == "" {
		return "", ErrConfigurationMissing
	}

	// The shared request must not die with whichever caller started it.
	fetchCtx := context.WithoutCancel(ctx)
	ch := s.group.DoChan(s.url, func() (any, error) {
		return s.fetch(fetchCtx)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (s *HTTPSource) fetch(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return "", fmt.Errorf("build sheet request: %w", err)
	}
	req.Header.Set("Accept", "text/csv, text/plain;q=0.9, */*;q=0.1")

	resp, err := s.client.Do(req)
	if err != nil {
		if ctx.Err() != nil || isTimeout(err) {
			return "", fmt.Errorf("fetch sheet: %w", err)
		}
		return "", fmt.Errorf("fetch sheet: %w: %w", ErrSheetUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &FetchError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	return readLimited(resp.Body, s.maxBytes)
}

func isTimeout(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// FileSource reads the sheet from a local CSV export.
type FileSource struct {
	Path     string
	MaxBytes int64
}

// Fetch implements Source.
func (s FileSource) Fetch(ctx context.Context) (string, error) {
	if s.Path == "" {
		return "", ErrConfigurationMissing
	}
	f, err := os.Open(s.Path)
	if err != nil {
		return "", fmt.Errorf("open sheet file: %w", err)
	}
	defer f.Close()

	return readLimited(f, s.MaxBytes)
}

// readLimited reads at most maxBytes (unlimited when <= 0) and sanitizes the text.
func readLimited(r io.Reader, maxBytes int64) (string, error) {
	if maxBytes > 0 {
		r = io.LimitReader(r, maxBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read sheet: %w", err)
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return "", fmt.Errorf("%w: more than %d bytes", ErrSheetTooLarge, maxBytes)
	}
	return SanitizeText(data), nil
}
