package core

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/JonMunkholm/leaderboard/internal/config"
	"github.com/JonMunkholm/leaderboard/internal/logging"
	"github.com/google/uuid"
)

// Service runs loads and holds the most recent successful snapshot.
type Service struct {
	source       Source
	poolTotal    float64
	defaultSort  SortState
	retryBackoff time.Duration
	now          func() time.Time

	mu         sync.RWMutex
	current    *Snapshot
	lastErr    error     // Most recent failed load, cleared by a success
	lastFailAt time.Time // When lastErr was recorded
}

// NewService creates a Service reading from source with the board settings in cfg.
func NewService(source Source, cfg config.BoardConfig) (*Service, error) {
	key, err := ParseSortKey(cfg.DefaultSort)
	if err != nil {
		return nil, fmt.Errorf("default sort: %w", err)
	}
	dir, err := ParseDirection(cfg.DefaultDir)
	if err != nil {
		return nil, fmt.Errorf("default sort: %w", err)
	}

	return &Service{
		source:       source,
		poolTotal:    cfg.PoolTotal,
		defaultSort:  SortState{Key: key, Dir: dir},
		retryBackoff: cfg.RetryBackoff,
		now:          time.Now,
	}, nil
}

// Load fetches and parses the sheet. On success the result becomes the
// current snapshot; on failure the current snapshot is left untouched.
// Overlapping loads both run to completion and the last to succeed wins.
func (s *Service) Load(ctx context.Context) (*Snapshot, error) {
	loadID := uuid.NewString()
	ctx = logging.ContextWithLoadID(ctx, loadID)
	logger := logging.FromContext(ctx)
	start := s.now()

	logger.Debug("leaderboard load started")

	text, err := s.source.Fetch(ctx)
	if err != nil {
		logger.Error("leaderboard load failed", "stage", "fetch", "error", err)
		return nil, s.fail(fmt.Errorf("load leaderboard: %w", err))
	}

	snap, err := BuildSnapshot(text)
	if err != nil {
		logger.Error("leaderboard load failed", "stage", "parse", "error", err)
		return nil, s.fail(fmt.Errorf("load leaderboard: %w", err))
	}
	snap.LoadID = loadID
	snap.LoadedAt = s.now()

	s.mu.Lock()
	s.current = snap
	s.lastErr = nil
	s.mu.Unlock()

	logger.Info("leaderboard loaded",
		"records", len(snap.Records),
		"discarded", snap.Discarded,
		"duration_ms", snap.LoadedAt.Sub(start).Milliseconds(),
	)
	return snap, nil
}

// fail records err for the retry backoff and returns it. Cancellations by the
// caller are not recorded.
func (s *Service) fail(err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}
	s.mu.Lock()
	s.lastErr = err
	s.lastFailAt = s.now()
	s.mu.Unlock()
	return err
}

// Ensure returns the current snapshot, loading one first if none exists yet.
// While no snapshot exists and the last load failed less than the retry
// backoff ago, that failure is returned without contacting the source.
func (s *Service) Ensure(ctx context.Context) (*Snapshot, error) {
	if snap := s.Current(); snap != nil {
		return snap, nil
	}
	if retryIn, err := s.recentFailure(); err != nil {
		logging.FromContext(ctx).Debug("leaderboard load skipped", "retry_in", retryIn.String())
		return nil, err
	}
	return s.Load(ctx)
}

// recentFailure returns the time left in the backoff and the last load error,
// or a nil error once the backoff has passed.
func (s *Service) recentFailure() (time.Duration, error) {
	if s.retryBackoff <= 0 {
		return 0, nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.lastErr == nil {
		return 0, nil
	}
	left := s.retryBackoff - s.now().Sub(s.lastFailAt)
	if left <= 0 {
		return 0, nil
	}
	return left, s.lastErr
}

// Current returns the latest successful snapshot, or nil before the first one.
func (s *Service) Current() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// DefaultSort returns the sort state used when a request names none.
func (s *Service) DefaultSort() SortState {
	return s.defaultSort
}

// Board ranks snap under state using the configured pool total.
func (s *Service) Board(snap *Snapshot, state SortState) Board {
	return NewBoard(snap, state, s.poolTotal)
}

// BuildSnapshot parses text into an unpublished snapshot.
func BuildSnapshot(text string) (*Snapshot, error) {
	rows, err := ParseCSV(text)
	if err != nil {
		return nil, err
	}
	records, discarded := BuildRecords(rows)
	return &Snapshot{Records: records, Discarded: discarded}, nil
}
