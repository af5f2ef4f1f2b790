package core

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/JonMunkholm/leaderboard/internal/config"
)

func TestHTTPSource_Fetch(t *testing.T) {
	body := "\xEF\xBB\xBFName,Wins\nAlice,3\n"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte(body))
	}))
	defer srv.Close()

	src := NewHTTPSource(config.SheetConfig{URL: srv.URL, FetchTimeout: time.Second, MaxBytes: 1024})
	got, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if got != "Name,Wins\nAlice,3\n" {
		t.Errorf("Fetch() = %q, want BOM stripped body", got)
	}
}

func TestHTTPSource_MissingURL(t *testing.T) {
	src := NewHTTPSource(config.SheetConfig{})
	_, err := src.Fetch(context.Background())
	if !errors.Is(err, ErrConfigurationMissing) {
		t.Errorf("Fetch() error = %v, want ErrConfigurationMissing", err)
	}
}

func TestHTTPSource_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	src := NewHTTPSource(config.SheetConfig{URL: srv.URL, FetchTimeout: time.Second})
	_, err := src.Fetch(context.Background())

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("Fetch() error = %v, want *FetchError", err)
	}
	if fetchErr.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want 404", fetchErr.StatusCode)
	}
	if fetchErr.Error() != "failed to fetch sheet: 404 Not Found" {
		t.Errorf("Error() = %q", fetchErr.Error())
	}
}

func TestHTTPSource_TooLarge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Name,Wins\nAlice,3\nBob,4\n"))
	}))
	defer srv.Close()

	src := NewHTTPSource(config.SheetConfig{URL: srv.URL, FetchTimeout: time.Second, MaxBytes: 8})
	_, err := src.Fetch(context.Background())
	if !errors.Is(err, ErrSheetTooLarge) {
		t.Errorf("Fetch() error = %v, want ErrSheetTooLarge", err)
	}
}

func TestHTTPSource_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	src := NewHTTPSource(config.SheetConfig{URL: srv.URL, FetchTimeout: 50 * time.Millisecond})
	_, err := src.Fetch(context.Background())
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Fetch() error = %v, want deadline exceeded", err)
	}
	if errors.Is(err, ErrSheetUnreachable) {
		t.Error("a timeout should not be reported as unreachable")
	}
}

func TestHTTPSource_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	src := NewHTTPSource(config.SheetConfig{URL: url, FetchTimeout: time.Second})
	_, err := src.Fetch(context.Background())
	if !errors.Is(err, ErrSheetUnreachable) {
		t.Fatalf("Fetch() error = %v, want ErrSheetUnreachable", err)
	}
	if got := MapError(err).Code; got != "FETCH002" {
		t.Errorf("MapError() code = %q, want FETCH002", got)
	}
}

func TestHTTPSource_CoalescesConcurrentFetches(t *testing.T) {
	var hits atomic.Int32
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		<-release
		w.Write([]byte("Name\nAlice\n"))
	}))
	defer srv.Close()

	src := NewHTTPSource(config.SheetConfig{URL: srv.URL, FetchTimeout: 5 * time.Second})

	const callers = 5
	var wg sync.WaitGroup
	results := make([]string, callers)
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = src.Fetch(context.Background())
		}(i)
	}

	// Give every caller time to join the in-flight request.
	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()

	for i := 0; i < callers; i++ {
		if errs[i] != nil || results[i] != "Name\nAlice\n" {
			t.Errorf("caller %d got %q, %v", i, results[i], errs[i])
		}
	}
	if n := hits.Load(); n != 1 {
		t.Errorf("server hits = %d, want 1", n)
	}
}

func TestHTTPSource_CallerCancel(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		w.Write([]byte("Name\nAlice\n"))
	}))
	defer srv.Close()
	defer close(release)

	src := NewHTTPSource(config.SheetConfig{URL: srv.URL, FetchTimeout: 5 * time.Second})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := src.Fetch(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Fetch() error = %v, want context.Canceled", err)
	}
}

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "board.csv")
	if err := os.WriteFile(path, []byte("Name\nAlice\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := FileSource{Path: path}.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if got != "Name\nAlice\n" {
		t.Errorf("Fetch() = %q", got)
	}

	if _, err := (FileSource{}).Fetch(context.Background()); !errors.Is(err, ErrConfigurationMissing) {
		t.Errorf("empty path error = %v, want ErrConfigurationMissing", err)
	}
	if _, err := (FileSource{Path: filepath.Join(dir, "missing.csv")}).Fetch(context.Background()); err == nil {
		t.Error("missing file should fail")
	}
}
