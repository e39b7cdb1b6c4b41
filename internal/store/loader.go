package store

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/maxviazov/cricket-stats-service/internal/model"
)

// Source is the contract with the external document storage: it can list the
// available raw match documents and fetch one by key.
type Source interface {
	List(ctx context.Context) ([]string, error)
	Fetch(ctx context.Context, key string) ([]byte, error)
}

// ErrLoadInProgress is returned when a reload is requested while one is
// already running.
var ErrLoadInProgress = errors.New("load already in progress")

// Loader fills the store in the background: it downloads and parses every
// document with bounded concurrency, then publishes the complete collection
// in one swap. A document that fails to fetch or parse is logged and counted,
// never aborts the load.
type Loader struct {
	store   *Store
	src     Source
	workers int
	maxDocs int
	log     zerolog.Logger

	mu      sync.Mutex
	loading bool

	total    atomic.Int64
	loaded   atomic.Int64
	failures atomic.Int64
	matches  atomic.Int64
}

func NewLoader(store *Store, src Source, workers, maxDocs int, logger zerolog.Logger) *Loader {
	if workers <= 0 {
		workers = 16
	}
	l := logger.With().Str("module", "store").Str("component", "loader").Logger()
	return &Loader{store: store, src: src, workers: workers, maxDocs: maxDocs, log: l}
}

// Start kicks off a background load. Only one load runs at a time.
func (l *Loader) Start(ctx context.Context) error {
	l.mu.Lock()
	if l.loading {
		l.mu.Unlock()
		return ErrLoadInProgress
	}
	l.loading = true
	l.mu.Unlock()

	go func() {
		defer func() {
			l.mu.Lock()
			l.loading = false
			l.mu.Unlock()
		}()
		if err := l.load(ctx); err != nil {
			l.log.Error().Err(err).Msg("background load failed")
		}
	}()
	return nil
}

func (l *Loader) load(ctx context.Context) error {
	keys, err := l.src.List(ctx)
	if err != nil {
		return err
	}
	if l.maxDocs > 0 && len(keys) > l.maxDocs {
		keys = keys[:l.maxDocs]
	}
	l.total.Store(int64(len(keys)))
	l.loaded.Store(0)
	l.failures.Store(0)
	l.log.Info().Int("documents", len(keys)).Int("workers", l.workers).Msg("loading match documents")

	var mu sync.Mutex
	matches := make([]model.Match, 0, len(keys))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.workers)
	for _, key := range keys {
		key := key
		g.Go(func() error {
			data, err := l.src.Fetch(gctx, key)
			if err != nil {
				// one retry covers transient storage hiccups
				data, err = l.src.Fetch(gctx, key)
			}
			if err != nil {
				l.failures.Add(1)
				l.log.Warn().Str("key", key).Err(err).Msg("fetch failed")
				return nil
			}
			m, err := model.ParseMatch(key, data)
			if err != nil {
				l.failures.Add(1)
				l.log.Warn().Str("key", key).Err(err).Msg("document rejected")
				return nil
			}
			mu.Lock()
			matches = append(matches, m)
			mu.Unlock()
			l.loaded.Add(1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	snap := l.store.Replace(matches)
	l.matches.Store(int64(len(matches)))
	l.log.Info().
		Int("matches", len(matches)).
		Int64("failures", l.failures.Load()).
		Uint64("version", snap.Version).
		Msg("snapshot published")
	return nil
}

// Status reports background loading progress.
func (l *Loader) Status() model.LoadStatus {
	l.mu.Lock()
	loading := l.loading
	l.mu.Unlock()
	return model.LoadStatus{
		Loading:       loading,
		FilesLoaded:   int(l.loaded.Load()),
		TotalFiles:    int(l.total.Load()),
		ParseFailures: int(l.failures.Load()),
		MatchesLoaded: int(l.matches.Load()),
	}
}

// Reload starts a fresh wholesale load; current readers keep the snapshot
// they hold until the new one is published.
func (l *Loader) Reload(ctx context.Context) error { return l.Start(ctx) }
