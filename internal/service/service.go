// Package service holds business logic orchestration across the match store
// and the aggregation core. Kept intentionally lean: only use-case
// coordination, validation and domain error shaping.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/maxviazov/cricket-stats-service/internal/model"
)

// ErrInvalidInput is the marker error for aggregated validation failures
// (maps to HTTP 400). Field-level details are retrieved via FieldErrors(err).
var ErrInvalidInput = errors.New("invalid input")

// ErrNotFound marks a player with zero qualifying deliveries (maps to 404).
var ErrNotFound = errors.New("not found")

// FieldError describes a single invalid field in a client request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// invalidInputError aggregates multiple FieldError instances and unwraps to ErrInvalidInput.
type invalidInputError struct {
	fields []FieldError
}

func (e *invalidInputError) Error() string        { return ErrInvalidInput.Error() }
func (e *invalidInputError) Unwrap() error        { return ErrInvalidInput }
func (e *invalidInputError) Fields() []FieldError { return e.fields }

// NewInvalidInputError builds an aggregated validation error if any field
// errors are present.
func NewInvalidInputError(fe []FieldError) error {
	if len(fe) == 0 { // protective case
		return nil
	}
	return &invalidInputError{fields: fe}
}

// FieldErrors extracts field errors from an aggregated validation error.
func FieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}
	type feIface interface{ Fields() []FieldError }
	if v, ok := err.(feIface); ok && errors.Is(err, ErrInvalidInput) {
		return v.Fields()
	}
	return nil
}

// NotFoundError distinguishes a player absent from the dataset from one
// filtered down to nothing; clients get different guidance for each.
type NotFoundError struct {
	Player   string
	Filtered bool
}

func (e *NotFoundError) Error() string {
	if e.Filtered {
		return fmt.Sprintf("no matches found for player %q with the applied filters", e.Player)
	}
	return fmt.Sprintf("player %q not found in the dataset", e.Player)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// TeamNotFoundError mirrors NotFoundError for team-scoped queries.
type TeamNotFoundError struct {
	Team     string
	Filtered bool
}

func (e *TeamNotFoundError) Error() string {
	if e.Filtered {
		return fmt.Sprintf("no matches found for team %q with the applied filters", e.Team)
	}
	return fmt.Sprintf("team %q not found in the dataset", e.Team)
}

func (e *TeamNotFoundError) Unwrap() error { return ErrNotFound }

// VenueNotFoundError mirrors NotFoundError for venue-scoped queries.
type VenueNotFoundError struct {
	Venue    string
	Filtered bool
}

func (e *VenueNotFoundError) Error() string {
	if e.Filtered {
		return fmt.Sprintf("no matches found at venue %q with the applied filters", e.Venue)
	}
	return fmt.Sprintf("venue %q not found in the dataset", e.Venue)
}

func (e *VenueNotFoundError) Unwrap() error { return ErrNotFound }

// PlayerService defines single-player statistics use cases.
type PlayerService interface {
	GetPlayerStats(ctx context.Context, name string, f model.Filters) (*model.PlayerStatsResult, error)
	GetRivalries(ctx context.Context, name string, f model.Filters, granularity string, limit int) (*model.RivalryAnalysis, error)
}

// ComparisonService defines the two-player comparison use case.
type ComparisonService interface {
	ComparePlayers(ctx context.Context, player1, player2 string, f model.Filters) (*model.ComparisonResult, error)
}

// TeamService defines team-level statistics use cases.
type TeamService interface {
	GetTeamStats(ctx context.Context, name string, f model.Filters) (*model.TeamStatsResult, error)
	CompareTeams(ctx context.Context, team1, team2 string, f model.Filters) (*model.TeamComparisonResult, error)
}

// VenueService defines venue-level statistics use cases.
type VenueService interface {
	GetVenueStats(ctx context.Context, name string, f model.Filters) (*model.VenueStatsResult, error)
}

// MetaService exposes the dataset catalogs and loader control.
type MetaService interface {
	Players(ctx context.Context) ([]string, error)
	Teams(ctx context.Context) ([]string, error)
	Venues(ctx context.Context) ([]string, error)
	Years(ctx context.Context) ([]string, error)
	Categories(ctx context.Context) ([]string, error)
	LoadStatus(ctx context.Context) model.LoadStatus
	Reload(ctx context.Context) error
}
