package stats_test

import (
	"testing"

	"github.com/maxviazov/cricket-stats-service/internal/model"
	"github.com/maxviazov/cricket-stats-service/internal/stats"
)

func TestBuildVenueStats(t *testing.T) {
	res, ok := stats.BuildVenueStats(fixtureMatches(), "Melbourne Cricket Ground", model.Filters{})
	if !ok {
		t.Fatal("expected the T20I at the MCG to qualify")
	}
	if res.TotalMatches != 1 || res.TeamsPlayed != 2 {
		t.Errorf("matches/teams = %d/%d; want 1 and 2", res.TotalMatches, res.TeamsPlayed)
	}
	if res.Formats["T20I"] != 1 || len(res.Formats) != 1 {
		t.Errorf("formats = %+v; want only the T20I", res.Formats)
	}

	b := res.Batting
	if b.Innings != 2 || b.AverageScore != 15 || b.HighestScore != 22 || b.LowestScore != 8 {
		t.Errorf("batting = %+v; want 2 innings averaging 15, high 22, low 8", b)
	}
	if b.Fours != 3 || b.Sixes != 1 {
		t.Errorf("boundaries = %d fours, %d sixes; want 3 and 1", b.Fours, b.Sixes)
	}
	// 4 boundaries off 26 deliveries bowled.
	if b.BoundaryPercentage != 15.38 {
		t.Errorf("boundary percentage = %v; want 15.38", b.BoundaryPercentage)
	}

	bw := res.Bowling
	if bw.TotalWickets != 3 || bw.WicketsPerMatch != 3 {
		t.Errorf("wickets = %+v; want 3 in the single match", bw)
	}
	// 30 runs in the match for 3 wickets.
	if bw.BowlingAverage == nil || *bw.BowlingAverage != 10 {
		t.Errorf("bowling average = %v; want 10.00", bw.BowlingAverage)
	}
	for _, kind := range []string{"bowled", "caught", "run out"} {
		if bw.WicketTypes[kind] != 1 {
			t.Errorf("wicket types = %+v; want one %s", bw.WicketTypes, kind)
		}
		if bw.WicketTypesPct[kind] != 33.33 {
			t.Errorf("wicket type pct[%s] = %v; want 33.33", kind, bw.WicketTypesPct[kind])
		}
	}

	// The fixture carries no toss record, so the toss split stays at the
	// no-evidence prior while the first-innings split is decided.
	if res.Toss.TossWinPercentage != 50 {
		t.Errorf("toss win percentage = %v; want 50 with no toss data", res.Toss.TossWinPercentage)
	}
	if res.Toss.BatFirstWinPercentage != 100 || res.Toss.BowlFirstWinPercentage != 0 {
		t.Errorf("first-innings split = %v/%v; India won batting first", res.Toss.BatFirstWinPercentage, res.Toss.BowlFirstWinPercentage)
	}

	want := []model.VenueTeamRecord{
		{Team: "Australia", Matches: 1, Wins: 0, Losses: 1, WinPercentage: 0},
		{Team: "India", Matches: 1, Wins: 1, Losses: 0, WinPercentage: 100},
	}
	if len(res.Teams) != len(want) {
		t.Fatalf("team records = %+v; want %+v", res.Teams, want)
	}
	for i := range want {
		if res.Teams[i] != want[i] {
			t.Errorf("team records[%d] = %+v; want %+v", i, res.Teams[i], want[i])
		}
	}
}

func TestBuildVenueStats_TossAdvantage(t *testing.T) {
	m := t20Fixture()
	m.TossWinner = "India"
	m.TossDecision = "bat"

	res, ok := stats.BuildVenueStats([]model.Match{m}, "Melbourne Cricket Ground", model.Filters{})
	if !ok {
		t.Fatal("expected the match to qualify")
	}
	if res.Toss.Decisions["bat"] != 1 {
		t.Errorf("decisions = %+v; want one bat-first call", res.Toss.Decisions)
	}
	if res.Toss.TossWinPercentage != 100 {
		t.Errorf("toss win percentage = %v; India won toss and match", res.Toss.TossWinPercentage)
	}
}

func TestBuildVenueStats_NoQualifyingMatch(t *testing.T) {
	cases := []struct {
		name    string
		venue   string
		filters model.Filters
	}{
		{"absent venue", "Lord's", model.Filters{}},
		{"wrong format", "Eden Gardens", model.Filters{Format: "T20I"}},
		{"conflicting venue filter", "Eden Gardens", model.Filters{Venue: "Melbourne Cricket Ground"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if res, ok := stats.BuildVenueStats(fixtureMatches(), tc.venue, tc.filters); ok {
				t.Errorf("expected no result, got %+v", res)
			}
		})
	}
}
