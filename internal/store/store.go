// Package store owns the in-memory match collection. The loader publishes
// whole snapshots; queries read one immutable snapshot for their duration, so
// there is no torn state to guard against and no read-side locking.
package store

import (
	"context"
	"errors"
	"sort"
	"sync/atomic"
	"time"

	"github.com/maxviazov/cricket-stats-service/internal/model"
)

// ErrNotReady is returned while no snapshot has been published yet. It is
// distinct from "no matching data" so clients can tell "try later" from
// "filters too narrow".
var ErrNotReady = errors.New("match data not yet available")

// Snapshot is one immutable, fully populated view of the dataset plus the
// catalogs the metadata endpoints serve. Never mutated after Publish.
type Snapshot struct {
	Matches  []model.Match
	LoadedAt time.Time
	Version  uint64

	players    map[string]struct{}
	Teams      []string
	Venues     []string
	Years      []string
	Categories []string
}

// HasPlayer reports whether a player appears anywhere in the snapshot.
func (s *Snapshot) HasPlayer(name string) bool {
	_, ok := s.players[name]
	return ok
}

// HasTeam reports whether a team appears anywhere in the snapshot.
func (s *Snapshot) HasTeam(name string) bool { return containsSorted(s.Teams, name) }

// HasVenue reports whether a venue appears anywhere in the snapshot.
func (s *Snapshot) HasVenue(name string) bool { return containsSorted(s.Venues, name) }

func containsSorted(sorted []string, name string) bool {
	i := sort.SearchStrings(sorted, name)
	return i < len(sorted) && sorted[i] == name
}

// Players returns the sorted player catalog.
func (s *Snapshot) Players() []string {
	out := make([]string, 0, len(s.players))
	for p := range s.players {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Store publishes snapshots with a single atomic pointer swap. One writer
// (the loader), any number of readers.
type Store struct {
	snap    atomic.Pointer[Snapshot]
	version atomic.Uint64
}

func New() *Store { return &Store{} }

// Replace builds a snapshot from a complete match collection and publishes
// it wholesale. Readers keep whichever snapshot they already hold.
func (st *Store) Replace(matches []model.Match) *Snapshot {
	snap := &Snapshot{
		Matches:  matches,
		LoadedAt: time.Now(),
		Version:  st.version.Add(1),
		players:  make(map[string]struct{}),
	}
	teams := map[string]struct{}{}
	venues := map[string]struct{}{}
	years := map[string]struct{}{}
	categories := map[string]struct{}{}
	for i := range matches {
		m := &matches[i]
		for _, t := range m.Teams {
			teams[t] = struct{}{}
		}
		if m.Venue != "" {
			venues[m.Venue] = struct{}{}
		}
		if m.Year != "" {
			years[m.Year] = struct{}{}
		}
		categories[m.Category.String()] = struct{}{}
		for _, squad := range m.Squads {
			for _, p := range squad {
				snap.players[p] = struct{}{}
			}
		}
	}
	snap.Teams = sortedKeys(teams)
	snap.Venues = sortedKeys(venues)
	snap.Years = sortedKeys(years)
	snap.Categories = sortedKeys(categories)

	st.snap.Store(snap)
	return snap
}

// Snapshot returns the current published snapshot, or ErrNotReady before the
// first publish.
func (st *Store) Snapshot() (*Snapshot, error) {
	if s := st.snap.Load(); s != nil {
		return s, nil
	}
	return nil, ErrNotReady
}

// Ready reports whether a snapshot has been published.
func (st *Store) Ready() bool { return st.snap.Load() != nil }

// Ping satisfies the readiness-probe contract the health handler expects.
func (st *Store) Ping(_ context.Context) error {
	if !st.Ready() {
		return ErrNotReady
	}
	return nil
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
