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

type teamService struct {
	store *store.Store
	log   zerolog.Logger
}

func NewTeamService(st *store.Store, logger zerolog.Logger) TeamService {
	l := logger.With().Str("module", "service").Str("component", "team").Logger()
	return &teamService{store: st, log: l}
}

func (s *teamService) GetTeamStats(ctx context.Context, name string, f model.Filters) (*model.TeamStatsResult, error) {
	start := time.Now()
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, NewInvalidInputError([]FieldError{{Field: "team_name", Message: "must not be empty"}})
	}
	snap, err := s.store.Snapshot()
	if err != nil {
		return nil, err
	}
	res, ok := stats.BuildTeamStats(snap.Matches, name, f)
	if !ok {
		return nil, s.notFound(snap, name)
	}
	s.log.Debug().
		Str("team", name).
		Int("matches", res.TotalMatches).
		Dur("took", time.Since(start)).
		Msg("team stats computed")
	return res, nil
}

func (s *teamService) CompareTeams(ctx context.Context, team1, team2 string, f model.Filters) (*model.TeamComparisonResult, error) {
	team1 = strings.TrimSpace(team1)
	team2 = strings.TrimSpace(team2)

	var ferrs []FieldError
	if team1 == "" {
		ferrs = append(ferrs, FieldError{Field: "team1", Message: "must not be empty"})
	}
	if team2 == "" {
		ferrs = append(ferrs, FieldError{Field: "team2", Message: "must not be empty"})
	}
	if team1 != "" && team1 == team2 {
		ferrs = append(ferrs, FieldError{Field: "team2", Message: "must differ from team1"})
	}
	if err := NewInvalidInputError(ferrs); err != nil {
		return nil, err
	}

	snap, err := s.store.Snapshot()
	if err != nil {
		return nil, err
	}

	res := &model.TeamComparisonResult{
		Team1:          model.TeamSlot{Name: team1},
		Team2:          model.TeamSlot{Name: team2},
		FiltersApplied: f,
	}

	stats1, ok1 := stats.BuildTeamStats(snap.Matches, team1, f)
	if ok1 {
		res.Team1.Stats = stats1
	} else {
		res.Team1.Error = s.notFound(snap, team1).Error()
	}
	stats2, ok2 := stats.BuildTeamStats(snap.Matches, team2, f)
	if ok2 {
		res.Team2.Stats = stats2
	} else {
		res.Team2.Error = s.notFound(snap, team2).Error()
	}

	if ok1 && ok2 {
		q := stats.Compile(f)
		h2h := stats.ComputeTeamHeadToHead(stats.CollectTeamMatches(snap.Matches, team1, q), team1, team2)
		res.HeadToHead = &h2h
	}
	return res, nil
}

func (s *teamService) notFound(snap *store.Snapshot, name string) error {
	return &TeamNotFoundError{Team: name, Filtered: snap.HasTeam(name)}
}
