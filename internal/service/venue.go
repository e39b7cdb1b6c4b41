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

type venueService struct {
	store *store.Store
	log   zerolog.Logger
}

func NewVenueService(st *store.Store, logger zerolog.Logger) VenueService {
	l := logger.With().Str("module", "service").Str("component", "venue").Logger()
	return &venueService{store: st, log: l}
}

func (s *venueService) GetVenueStats(ctx context.Context, name string, f model.Filters) (*model.VenueStatsResult, error) {
	start := time.Now()
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, NewInvalidInputError([]FieldError{{Field: "venue_name", Message: "must not be empty"}})
	}
	snap, err := s.store.Snapshot()
	if err != nil {
		return nil, err
	}
	res, ok := stats.BuildVenueStats(snap.Matches, name, f)
	if !ok {
		return nil, &VenueNotFoundError{Venue: name, Filtered: snap.HasVenue(name)}
	}
	s.log.Debug().
		Str("venue", name).
		Int("matches", res.TotalMatches).
		Dur("took", time.Since(start)).
		Msg("venue stats computed")
	return res, nil
}
