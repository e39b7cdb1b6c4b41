package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/maxviazov/cricket-stats-service/internal/model"
	"github.com/maxviazov/cricket-stats-service/internal/stats"
	"github.com/maxviazov/cricket-stats-service/internal/store"
)

type playerService struct {
	store *store.Store
	log   zerolog.Logger
}

func NewPlayerService(st *store.Store, logger zerolog.Logger) PlayerService {
	l := logger.With().Str("module", "service").Str("component", "player").Logger()
	return &playerService{store: st, log: l}
}

func (s *playerService) GetPlayerStats(ctx context.Context, name string, f model.Filters) (*model.PlayerStatsResult, error) {
	start := time.Now()
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, NewInvalidInputError([]FieldError{{Field: "player_name", Message: "must not be empty"}})
	}
	snap, err := s.store.Snapshot()
	if err != nil {
		return nil, err
	}
	res, ok := stats.BuildPlayerStats(snap.Matches, name, f)
	if !ok {
		return nil, s.notFound(snap, name)
	}
	s.log.Debug().
		Str("player", name).
		Int("matches", res.TotalMatches).
		Dur("took", time.Since(start)).
		Msg("player stats computed")
	return res, nil
}

func (s *playerService) GetRivalries(ctx context.Context, name string, f model.Filters, granularity string, limit int) (*model.RivalryAnalysis, error) {
	name = strings.TrimSpace(name)
	var ferrs []FieldError
	if name == "" {
		ferrs = append(ferrs, FieldError{Field: "player_name", Message: "must not be empty"})
	}
	gran, ok := stats.ParseGranularity(granularity)
	if !ok {
		ferrs = append(ferrs, FieldError{Field: "granularity", Message: "must be player or team"})
	}
	if limit < 0 {
		ferrs = append(ferrs, FieldError{Field: "limit", Message: "must be >= 0"})
	}
	if err := NewInvalidInputError(ferrs); err != nil {
		return nil, err
	}
	snap, err := s.store.Snapshot()
	if err != nil {
		return nil, err
	}
	q := stats.Compile(f)
	pm := stats.CollectPlayerMatches(snap.Matches, name, q)
	if len(pm) == 0 {
		return nil, s.notFound(snap, name)
	}
	res := stats.ComputeRivalries(pm, name, q, gran, limit)
	return &res, nil
}

// notFound picks the right flavor of not-found: unknown player versus
// filters that left nothing.
func (s *playerService) notFound(snap *store.Snapshot, name string) error {
	return &NotFoundError{Player: name, Filtered: snap.HasPlayer(name)}
}
