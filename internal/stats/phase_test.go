package stats_test

import (
	"testing"

	"github.com/maxviazov/cricket-stats-service/internal/model"
	"github.com/maxviazov/cricket-stats-service/internal/stats"
)

func TestComputePhaseAnalysis_Buckets(t *testing.T) {
	q := stats.Compile(model.Filters{})
	pm := collect(t, "JJ Bumrah", model.Filters{})
	pa := stats.ComputePhaseAnalysis(pm, "JJ Bumrah", q)

	t20p1 := pa.T20Phases["phase1"]
	if t20p1.Conceded != 7 || t20p1.Wickets != 1 || t20p1.BowlingInnings != 1 {
		t.Errorf("t20 phase1 = %+v; want 7 conceded, 1 wicket, 1 bowling innings", t20p1)
	}
	for _, key := range []string{"phase2", "phase3", "phase4"} {
		if ph := pa.T20Phases[key]; *ph != (model.PhaseStats{}) {
			t.Errorf("t20 %s = %+v; want empty", key, ph)
		}
	}

	odip1 := pa.ODIPhases["phase1"]
	if odip1.Conceded != 7 || odip1.Wickets != 0 {
		t.Errorf("odi phase1 = %+v; want 7 conceded and no wicket", odip1)
	}
	// The 15th over lands in the 11-20 window.
	odip2 := pa.ODIPhases["phase2"]
	if odip2.Conceded != 6 || odip2.Wickets != 1 || odip2.BowlingInnings != 1 {
		t.Errorf("odi phase2 = %+v; want 6 conceded, 1 wicket, 1 bowling innings", odip2)
	}
}

func TestComputePhaseAnalysis_BattingSide(t *testing.T) {
	q := stats.Compile(model.Filters{})
	pm := collect(t, "V Kohli", model.Filters{})
	pa := stats.ComputePhaseAnalysis(pm, "V Kohli", q)

	t20p1 := pa.T20Phases["phase1"]
	if t20p1.Runs != 6 || t20p1.Balls != 4 || t20p1.BattingInnings != 1 {
		t.Errorf("t20 phase1 = %+v; want 6 off 4 in one innings", t20p1)
	}
	if t20p1.StrikeRate != 150 {
		t.Errorf("t20 phase1 strike rate = %v; want 150.00", t20p1.StrikeRate)
	}
	odip1 := pa.ODIPhases["phase1"]
	if odip1.Runs != 11 || odip1.Balls != 5 || odip1.Dismissals != 0 {
		t.Errorf("odi phase1 = %+v; want 11 off 5 undismissed", odip1)
	}
}

// Summing a player's figures across every phase must reproduce the unphased
// totals exactly: each delivery lands in exactly one phase bucket.
func TestPhasePartition(t *testing.T) {
	for _, player := range []string{"V Kohli", "RG Sharma", "JJ Bumrah", "MA Starc", "SPD Smith"} {
		t.Run(player, func(t *testing.T) {
			q := stats.Compile(model.Filters{})
			pm := collect(t, player, model.Filters{})
			pa := stats.ComputePhaseAnalysis(pm, player, q)

			var runs, balls, conceded, wickets int
			for _, phases := range []map[string]*model.PhaseStats{pa.T20Phases, pa.ODIPhases} {
				for _, ph := range phases {
					runs += ph.Runs
					balls += ph.Balls
					conceded += ph.Conceded
					wickets += ph.Wickets
				}
			}

			bat := stats.DeriveBatting(pm)
			bowl := stats.DeriveBowling(pm)
			if runs != bat.Runs || balls != bat.Balls {
				t.Errorf("phase batting sum %d/%d; totals %d/%d", runs, balls, bat.Runs, bat.Balls)
			}
			if conceded != bowl.Runs || wickets != bowl.Wickets {
				t.Errorf("phase bowling sum %d/%d; totals %d/%d", conceded, wickets, bowl.Runs, bowl.Wickets)
			}
		})
	}
}

func TestComputePhaseAnalysis_TestCricketUnphased(t *testing.T) {
	test := t20Fixture()
	test.ID = "m3"
	test.Format = model.FormatTest

	q := stats.Compile(model.Filters{})
	pm := stats.CollectPlayerMatches([]model.Match{test}, "V Kohli", q)
	pa := stats.ComputePhaseAnalysis(pm, "V Kohli", q)

	for _, phases := range []map[string]*model.PhaseStats{pa.T20Phases, pa.ODIPhases} {
		for key, ph := range phases {
			if *ph != (model.PhaseStats{}) {
				t.Errorf("%s = %+v; Test deliveries must stay out of phase buckets", key, ph)
			}
		}
	}
}

func TestComputePhaseAnalysis_RespectsPhaseWindow(t *testing.T) {
	f := model.Filters{Phase: "odi_11_20", PhaseRole: "bowler"}
	q := stats.Compile(f)
	pm := collect(t, "JJ Bumrah", f)
	pa := stats.ComputePhaseAnalysis(pm, "JJ Bumrah", q)

	if ph := pa.ODIPhases["phase1"]; *ph != (model.PhaseStats{}) {
		t.Errorf("odi phase1 = %+v; want empty, the first over sits outside the window", ph)
	}
	if ph := pa.ODIPhases["phase2"]; ph.Conceded != 6 || ph.Wickets != 1 {
		t.Errorf("odi phase2 = %+v; want the 15th-over figures only", ph)
	}
}
