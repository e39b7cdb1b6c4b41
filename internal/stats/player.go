package stats

import "github.com/maxviazov/cricket-stats-service/internal/model"

// BuildPlayerStats runs the full pipeline for one player: filter, aggregate,
// phase-bucket, derive, rank rivals. The boolean is false when the player has
// no qualifying match under the given filters; the caller decides how to
// report that.
func BuildPlayerStats(matches []model.Match, player string, f model.Filters) (*model.PlayerStatsResult, bool) {
	q := Compile(f)
	pm := CollectPlayerMatches(matches, player, q)
	if len(pm) == 0 {
		return nil, false
	}
	res := &model.PlayerStatsResult{
		PlayerName:      player,
		TotalMatches:    len(pm),
		Batting:         DeriveBatting(pm),
		Bowling:         DeriveBowling(pm),
		PhaseAnalysis:   ComputePhaseAnalysis(pm, player, q),
		RivalryAnalysis: ComputeRivalries(pm, player, q, GranularityPlayer, DefaultRivalryLimit),
		Matches:         DeriveMatchSplit(pm),
		FiltersApplied:  f,
	}
	return res, true
}
