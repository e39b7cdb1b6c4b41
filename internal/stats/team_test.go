package stats_test

import (
	"testing"

	"github.com/maxviazov/cricket-stats-service/internal/model"
	"github.com/maxviazov/cricket-stats-service/internal/stats"
)

func TestBuildTeamStats(t *testing.T) {
	res, ok := stats.BuildTeamStats(fixtureMatches(), "India", model.Filters{})
	if !ok {
		t.Fatal("expected qualifying matches for India")
	}
	if res.TeamName != "India" || res.TotalMatches != 2 {
		t.Errorf("team/total = %q/%d; want India/2", res.TeamName, res.TotalMatches)
	}

	g := res.General
	if g.Wins != 1 || g.Losses != 1 || g.Draws != 0 {
		t.Errorf("results = %d/%d/%d; want 1 win, 1 loss, 0 draws", g.Wins, g.Losses, g.Draws)
	}
	if g.WinPercentage != 50 {
		t.Errorf("win percentage = %v; want 50.00", g.WinPercentage)
	}
	if g.BattingFirst != (model.WinRecord{Matches: 1, Wins: 1, WinPercentage: 100}) {
		t.Errorf("batting first = %+v; India won the match they batted first", g.BattingFirst)
	}
	if g.BowlingFirst != (model.WinRecord{Matches: 1, Wins: 0, WinPercentage: 0}) {
		t.Errorf("bowling first = %+v; India lost chasing", g.BowlingFirst)
	}
	if fp := g.FormatPerformance["T20I"]; fp != (model.WinRecord{Matches: 1, Wins: 1, WinPercentage: 100}) {
		t.Errorf("T20I performance = %+v; want the single win", fp)
	}
	if fp := g.FormatPerformance["ODI"]; fp != (model.WinRecord{Matches: 1, Wins: 0, WinPercentage: 0}) {
		t.Errorf("ODI performance = %+v; want the single loss", fp)
	}

	b := res.Batting
	if b.Innings != 2 || b.TotalRuns != 34 {
		t.Errorf("batting = %d innings, %d runs; want 2 and 34", b.Innings, b.TotalRuns)
	}
	if b.AverageScore != 17 || b.HighestScore != 22 || b.LowestScore != 12 {
		t.Errorf("scores = avg %v, high %d, low %d; want 17/22/12", b.AverageScore, b.HighestScore, b.LowestScore)
	}
	if b.ScoresUnder150 != 2 || b.ScoresOver300 != 0 {
		t.Errorf("score bands = %d under, %d over; want 2 and 0", b.ScoresUnder150, b.ScoresOver300)
	}

	bw := res.Bowling
	if bw.Innings != 2 || bw.RunsConceded != 21 {
		t.Errorf("bowling = %d innings, %d conceded; want 2 and 21", bw.Innings, bw.RunsConceded)
	}
	if bw.AverageConceded != 10.5 || bw.BestDefense != 8 || bw.WorstDefense != 13 {
		t.Errorf("conceded = avg %v, best %d, worst %d; want 10.5/8/13", bw.AverageConceded, bw.BestDefense, bw.WorstDefense)
	}
	if bw.RestrictedUnder200 != 2 {
		t.Errorf("restricted under 200 = %d; want 2", bw.RestrictedUnder200)
	}

	want := model.OpponentRecord{Opponent: "Australia", Matches: 2, Wins: 1, Losses: 1, WinPercentage: 50}
	if len(res.Opponents) != 1 || res.Opponents[0] != want {
		t.Errorf("opponents = %+v; want %+v", res.Opponents, want)
	}
}

func TestBuildTeamStats_Filtered(t *testing.T) {
	res, ok := stats.BuildTeamStats(fixtureMatches(), "Australia", model.Filters{Format: "ODI"})
	if !ok {
		t.Fatal("expected the ODI to qualify for Australia")
	}
	if res.TotalMatches != 1 || res.General.Wins != 1 || res.General.WinPercentage != 100 {
		t.Errorf("filtered result = %+v; want the single ODI win", res.General)
	}
	if res.Batting.TotalRuns != 13 {
		t.Errorf("batting runs = %d; want 13", res.Batting.TotalRuns)
	}
}

func TestBuildTeamStats_NoQualifyingMatch(t *testing.T) {
	cases := []struct {
		name    string
		team    string
		filters model.Filters
	}{
		{"absent team", "England", model.Filters{}},
		{"impossible filter", "India", model.Filters{Format: "T15"}},
		{"no match in year", "India", model.Filters{Years: []string{"2021"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if res, ok := stats.BuildTeamStats(fixtureMatches(), tc.team, tc.filters); ok {
				t.Errorf("expected no result, got %+v", res)
			}
		})
	}
}

func TestComputeTeamHeadToHead(t *testing.T) {
	q := stats.Compile(model.Filters{})
	tm := stats.CollectTeamMatches(fixtureMatches(), "India", q)
	h := stats.ComputeTeamHeadToHead(tm, "India", "Australia")

	if h.TotalMatches != 2 || h.Team1Wins != 1 || h.Team2Wins != 1 || h.Draws != 0 {
		t.Errorf("head to head = %+v; want 2 matches split 1-1", h)
	}
	if h.Team1WinPercentage != 50 || h.Team2WinPercentage != 50 {
		t.Errorf("percentages = %v/%v; want 50/50", h.Team1WinPercentage, h.Team2WinPercentage)
	}

	if h := stats.ComputeTeamHeadToHead(tm, "India", "England"); h.TotalMatches != 0 {
		t.Errorf("head to head against an absent team = %+v; want zero matches", h)
	}
}

func TestTeamInningsTypePredicate(t *testing.T) {
	// innings_type=first anchors on the team itself: India batted first only
	// in the T20I.
	q := stats.Compile(model.Filters{InningsType: "first"})
	tm := stats.CollectTeamMatches(fixtureMatches(), "India", q)
	if len(tm) != 1 || tm[0].ID != "m1" {
		t.Fatalf("innings_type=first should keep only m1 for India, got %d matches", len(tm))
	}
	tm = stats.CollectTeamMatches(fixtureMatches(), "Australia", q)
	if len(tm) != 1 || tm[0].ID != "m2" {
		t.Fatalf("innings_type=first should keep only m2 for Australia, got %d matches", len(tm))
	}
}
