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

type comparisonService struct {
	store *store.Store
	log   zerolog.Logger
}

func NewComparisonService(st *store.Store, logger zerolog.Logger) ComparisonService {
	l := logger.With().Str("module", "service").Str("component", "comparison").Logger()
	return &comparisonService{store: st, log: l}
}

func (s *comparisonService) ComparePlayers(ctx context.Context, player1, player2 string, f model.Filters) (*model.ComparisonResult, error) {
	start := time.Now()
	player1 = strings.TrimSpace(player1)
	player2 = strings.TrimSpace(player2)

	var ferrs []FieldError
	if player1 == "" {
		ferrs = append(ferrs, FieldError{Field: "player1", Message: "must not be empty"})
	}
	if player2 == "" {
		ferrs = append(ferrs, FieldError{Field: "player2", Message: "must not be empty"})
	}
	if player1 != "" && player1 == player2 {
		ferrs = append(ferrs, FieldError{Field: "player2", Message: "must differ from player1"})
	}
	if err := NewInvalidInputError(ferrs); err != nil {
		return nil, err
	}

	snap, err := s.store.Snapshot()
	if err != nil {
		return nil, err
	}

	res := &model.ComparisonResult{
		Player1:        model.PlayerSlot{Name: player1},
		Player2:        model.PlayerSlot{Name: player2},
		FiltersApplied: f,
	}

	// A player with no qualifying data keeps their slot with an explanatory
	// error; the request as a whole still succeeds.
	stats1, ok1 := stats.BuildPlayerStats(snap.Matches, player1, f)
	if ok1 {
		res.Player1.Stats = stats1
	} else {
		res.Player1.Error = s.notFound(snap, player1).Error()
	}
	stats2, ok2 := stats.BuildPlayerStats(snap.Matches, player2, f)
	if ok2 {
		res.Player2.Stats = stats2
	} else {
		res.Player2.Error = s.notFound(snap, player2).Error()
	}

	if ok1 && ok2 {
		h2h := stats.ComputeHeadToHead(snap.Matches, player1, player2, stats.Compile(f))
		res.HeadToHead = &h2h
		metrics := stats.CompareMetrics(stats1, stats2)
		res.ComparisonMetrics = &metrics
	}

	s.log.Debug().
		Str("player1", player1).
		Str("player2", player2).
		Bool("both_resolved", ok1 && ok2).
		Dur("took", time.Since(start)).
		Msg("comparison computed")
	return res, nil
}

func (s *comparisonService) notFound(snap *store.Snapshot, name string) error {
	return &NotFoundError{Player: name, Filtered: snap.HasPlayer(name)}
}
