package stats_test

import (
	"testing"

	"github.com/maxviazov/cricket-stats-service/internal/model"
	"github.com/maxviazov/cricket-stats-service/internal/stats"
)

func buildStats(t *testing.T, player string) *model.PlayerStatsResult {
	t.Helper()
	res, ok := stats.BuildPlayerStats(fixtureMatches(), player, model.Filters{})
	if !ok {
		t.Fatalf("no qualifying matches for %s", player)
	}
	return res
}

func TestCompareMetrics(t *testing.T) {
	kohli := buildStats(t, "V Kohli")
	bumrah := buildStats(t, "JJ Bumrah")
	cm := stats.CompareMetrics(kohli, bumrah)

	cases := []struct {
		table  map[string]model.MetricComparison
		metric string
		want   model.Winner
	}{
		{cm.BattingComparison, "runs", model.WinnerPlayer1},
		{cm.BattingComparison, "strike_rate", model.WinnerPlayer1},
		// Neither has a defined batting average; undefined never wins.
		{cm.BattingComparison, "average", model.WinnerEqual},
		{cm.BattingComparison, "hundreds", model.WinnerEqual},
		{cm.BowlingComparison, "wickets", model.WinnerPlayer2},
		{cm.BowlingComparison, "average", model.WinnerPlayer2},
		// Kohli has no overs, so his 0.00 economy is undefined, not best.
		{cm.BowlingComparison, "economy", model.WinnerPlayer2},
		{cm.BowlingComparison, "strike_rate", model.WinnerPlayer2},
	}
	for _, tc := range cases {
		t.Run(tc.metric, func(t *testing.T) {
			mc, ok := tc.table[tc.metric]
			if !ok {
				t.Fatalf("metric %s missing", tc.metric)
			}
			if mc.Better != tc.want {
				t.Errorf("better = %v; want %v (player1=%v player2=%v)", mc.Better, tc.want, mc.Player1, mc.Player2)
			}
		})
	}

	if econ := cm.BowlingComparison["economy"]; econ.Player1 != nil {
		t.Errorf("player1 economy = %v; want null without a legal ball bowled", *econ.Player1)
	}
}

// Swapping the request order must mirror every winner tag exactly.
func TestCompareMetrics_AntiSymmetric(t *testing.T) {
	kohli := buildStats(t, "V Kohli")
	bumrah := buildStats(t, "JJ Bumrah")
	forward := stats.CompareMetrics(kohli, bumrah)
	backward := stats.CompareMetrics(bumrah, kohli)

	check := func(name string, fwd, bwd map[string]model.MetricComparison) {
		for metric, mc := range fwd {
			if got := bwd[metric].Better; got != mc.Better.Swapped() {
				t.Errorf("%s %s: forward %v, backward %v", name, metric, mc.Better, got)
			}
		}
	}
	check("batting", forward.BattingComparison, backward.BattingComparison)
	check("bowling", forward.BowlingComparison, backward.BowlingComparison)
}

func TestCompareMetrics_ExactTieStaysEqual(t *testing.T) {
	kohli := buildStats(t, "V Kohli")
	cm := stats.CompareMetrics(kohli, kohli)
	for metric, mc := range cm.BattingComparison {
		if mc.Better != model.WinnerEqual {
			t.Errorf("batting %s vs self = %v; want equal", metric, mc.Better)
		}
	}
	for metric, mc := range cm.BowlingComparison {
		if mc.Better != model.WinnerEqual {
			t.Errorf("bowling %s vs self = %v; want equal", metric, mc.Better)
		}
	}
}
