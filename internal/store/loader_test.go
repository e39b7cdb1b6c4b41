package store_test

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/maxviazov/cricket-stats-service/internal/store"
)

// fakeSource serves match documents from memory and can fail the first fetch
// of chosen keys to exercise the retry.
type fakeSource struct {
	docs       map[string][]byte
	keys       []string
	flakyKey   string
	flakyFails atomic.Int32
}

func (s *fakeSource) List(ctx context.Context) ([]string, error) { return s.keys, nil }

func (s *fakeSource) Fetch(ctx context.Context, key string) ([]byte, error) {
	if key == s.flakyKey && s.flakyFails.Add(1) == 1 {
		return nil, errors.New("transient storage error")
	}
	doc, ok := s.docs[key]
	if !ok {
		return nil, fmt.Errorf("no document %s", key)
	}
	return doc, nil
}

func matchDoc(team1, team2 string) []byte {
	return []byte(fmt.Sprintf(`{
		"info": {
			"match_type": "T20I",
			"dates": ["2023-11-19"],
			"teams": [%q, %q],
			"players": {%q: ["A"], %q: ["B"]}
		},
		"innings": [{"team": %q, "overs": [{"over": 0, "deliveries": [
			{"batter": "A", "bowler": "B", "non_striker": "C", "runs": {"batter": 1, "extras": 0, "total": 1}}
		]}]}]
	}`, team1, team2, team1, team2, team1))
}

func waitForSnapshot(t *testing.T, st *store.Store) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !st.Ready() {
		if time.Now().After(deadline) {
			t.Fatal("loader did not publish a snapshot in time")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func waitForIdle(t *testing.T, l *store.Loader) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for l.Status().Loading {
		if time.Now().After(deadline) {
			t.Fatal("loader did not finish in time")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestLoader_PublishesDespiteBadDocuments(t *testing.T) {
	src := &fakeSource{
		docs: map[string][]byte{
			"a": matchDoc("India", "Australia"),
			"b": []byte(`{"info": null}`),
			"c": matchDoc("England", "Pakistan"),
		},
		keys:     []string{"a", "b", "c"},
		flakyKey: "c",
	}
	st := store.New()
	l := store.NewLoader(st, src, 4, 0, zerolog.Nop())

	if err := l.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	waitForSnapshot(t, st)
	waitForIdle(t, l)

	snap, err := st.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot(): %v", err)
	}
	if len(snap.Matches) != 2 {
		t.Errorf("matches = %d; want 2, the malformed document is skipped", len(snap.Matches))
	}

	status := l.Status()
	if status.Loading {
		t.Error("status still loading after publish")
	}
	if status.TotalFiles != 3 || status.FilesLoaded != 2 || status.ParseFailures != 1 {
		t.Errorf("status = %+v; want 2 of 3 loaded with 1 failure", status)
	}
	if status.MatchesLoaded != 2 {
		t.Errorf("matches loaded = %d; want 2", status.MatchesLoaded)
	}
}

func TestLoader_MaxDocsBoundsTheLoad(t *testing.T) {
	src := &fakeSource{
		docs: map[string][]byte{
			"a": matchDoc("India", "Australia"),
			"b": matchDoc("England", "Pakistan"),
		},
		keys: []string{"a", "b"},
	}
	st := store.New()
	l := store.NewLoader(st, src, 2, 1, zerolog.Nop())

	if err := l.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	waitForSnapshot(t, st)

	snap, _ := st.Snapshot()
	if len(snap.Matches) != 1 {
		t.Errorf("matches = %d; want the load capped at 1 document", len(snap.Matches))
	}
}

func TestLoader_SingleLoadAtATime(t *testing.T) {
	block := make(chan struct{})
	src := &blockingSource{release: block}
	st := store.New()
	l := store.NewLoader(st, src, 1, 0, zerolog.Nop())

	if err := l.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := l.Reload(context.Background()); !errors.Is(err, store.ErrLoadInProgress) {
		t.Errorf("Reload during load = %v; want ErrLoadInProgress", err)
	}
	close(block)
	waitForIdle(t, l)

	if err := l.Reload(context.Background()); err != nil {
		t.Errorf("Reload after load = %v; want it accepted", err)
	}
	waitForIdle(t, l)
}

type blockingSource struct {
	release chan struct{}
}

func (s *blockingSource) List(ctx context.Context) ([]string, error) {
	<-s.release
	return nil, nil
}

func (s *blockingSource) Fetch(ctx context.Context, key string) ([]byte, error) {
	return nil, errors.New("unreachable")
}
