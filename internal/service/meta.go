package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/maxviazov/cricket-stats-service/internal/model"
	"github.com/maxviazov/cricket-stats-service/internal/store"
)

type metaService struct {
	store  *store.Store
	loader *store.Loader
	log    zerolog.Logger
}

func NewMetaService(st *store.Store, loader *store.Loader, logger zerolog.Logger) MetaService {
	l := logger.With().Str("module", "service").Str("component", "meta").Logger()
	return &metaService{store: st, loader: loader, log: l}
}

func (s *metaService) Players(ctx context.Context) ([]string, error) {
	snap, err := s.store.Snapshot()
	if err != nil {
		return nil, err
	}
	return snap.Players(), nil
}

func (s *metaService) Teams(ctx context.Context) ([]string, error) {
	snap, err := s.store.Snapshot()
	if err != nil {
		return nil, err
	}
	return snap.Teams, nil
}

func (s *metaService) Venues(ctx context.Context) ([]string, error) {
	snap, err := s.store.Snapshot()
	if err != nil {
		return nil, err
	}
	return snap.Venues, nil
}

func (s *metaService) Years(ctx context.Context) ([]string, error) {
	snap, err := s.store.Snapshot()
	if err != nil {
		return nil, err
	}
	return snap.Years, nil
}

func (s *metaService) Categories(ctx context.Context) ([]string, error) {
	snap, err := s.store.Snapshot()
	if err != nil {
		return nil, err
	}
	return snap.Categories, nil
}

func (s *metaService) LoadStatus(ctx context.Context) model.LoadStatus {
	return s.loader.Status()
}

func (s *metaService) Reload(ctx context.Context) error {
	s.log.Info().Msg("wholesale reload requested")
	return s.loader.Reload(context.WithoutCancel(ctx))
}
