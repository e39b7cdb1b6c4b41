package stats

import (
	"sort"

	"github.com/maxviazov/cricket-stats-service/internal/model"
)

// CollectVenueMatches resolves the filtered view for one venue. A venue key
// inside the filters still applies, so a conflicting one empties the set.
func CollectVenueMatches(matches []model.Match, venue string, q *Query) []*model.Match {
	if q.Impossible() {
		return nil
	}
	var out []*model.Match
	for i := range matches {
		m := &matches[i]
		if m.Venue != venue {
			continue
		}
		if !q.MatchQualifies(m, "") {
			continue
		}
		out = append(out, m)
	}
	return out
}

// BuildVenueStats derives the full venue record over the filtered match set.
// The boolean is false when no qualifying match was played at the venue.
func BuildVenueStats(matches []model.Match, venue string, f model.Filters) (*model.VenueStatsResult, bool) {
	q := Compile(f)
	vm := CollectVenueMatches(matches, venue, q)
	if len(vm) == 0 {
		return nil, false
	}
	formats := make(map[string]int)
	teams := make(map[string]struct{})
	for _, m := range vm {
		formats[m.Format.String()]++
		teams[m.Teams[0]] = struct{}{}
		teams[m.Teams[1]] = struct{}{}
	}
	res := &model.VenueStatsResult{
		VenueName:      venue,
		TotalMatches:   len(vm),
		Formats:        formats,
		TeamsPlayed:    len(teams),
		Batting:        deriveVenueBatting(vm),
		Bowling:        deriveVenueBowling(vm),
		Toss:           deriveVenueToss(vm),
		Teams:          deriveVenueTeamRecords(vm),
		FiltersApplied: f,
	}
	return res, true
}

func deriveVenueBatting(vm []*model.Match) model.VenueBattingStats {
	var st model.VenueBattingStats
	balls := 0
	for _, m := range vm {
		for i := range m.Innings {
			inn := &m.Innings[i]
			total := inningsTotal(inn)
			if st.Innings == 0 || total > st.HighestScore {
				st.HighestScore = total
			}
			if st.Innings == 0 || total < st.LowestScore {
				st.LowestScore = total
			}
			st.Innings++
			st.AverageScore += float64(total)
			if total >= 300 {
				st.ScoresOver300++
			}
			if total <= 150 {
				st.ScoresUnder150++
			}
			for j := range inn.Overs {
				for k := range inn.Overs[j].Deliveries {
					d := &inn.Overs[j].Deliveries[k]
					balls++
					switch d.BatterRuns {
					case 4:
						st.Fours++
					case 6:
						st.Sixes++
					}
				}
			}
		}
	}
	if st.Innings > 0 {
		st.AverageScore = round2(st.AverageScore / float64(st.Innings))
	}
	if balls > 0 {
		st.BoundaryPercentage = round2(float64(st.Fours+st.Sixes) / float64(balls) * 100)
	}
	return st
}

func deriveVenueBowling(vm []*model.Match) model.VenueBowlingStats {
	st := model.VenueBowlingStats{
		WicketTypes:    make(map[string]int),
		WicketTypesPct: make(map[string]float64),
	}
	runs := 0
	for _, m := range vm {
		for i := range m.Innings {
			inn := &m.Innings[i]
			for j := range inn.Overs {
				for k := range inn.Overs[j].Deliveries {
					d := &inn.Overs[j].Deliveries[k]
					runs += d.TotalRuns()
					for _, w := range d.Wickets {
						st.TotalWickets++
						st.WicketTypes[w.Kind.String()]++
					}
				}
			}
		}
	}
	if st.TotalWickets > 0 {
		st.BowlingAverage = ptr(round2(float64(runs) / float64(st.TotalWickets)))
		for kind, count := range st.WicketTypes {
			st.WicketTypesPct[kind] = pct(count, st.TotalWickets)
		}
	}
	st.WicketsPerMatch = round2(float64(st.TotalWickets) / float64(len(vm)))
	return st
}

func deriveVenueToss(vm []*model.Match) model.VenueTossStats {
	st := model.VenueTossStats{Decisions: make(map[string]int)}
	tossWinnerWon, tossDecided := 0, 0
	batFirstWon, firstDecided := 0, 0
	for _, m := range vm {
		if m.TossDecision != "" {
			st.Decisions[m.TossDecision]++
		}
		winner := m.Outcome.Winner
		if winner == "" {
			continue
		}
		if m.TossWinner != "" {
			tossDecided++
			if m.TossWinner == winner {
				tossWinnerWon++
			}
		}
		if len(m.Innings) >= 2 {
			firstDecided++
			if m.BattedFirst(winner) {
				batFirstWon++
			}
		}
	}
	// 50 is the no-evidence prior: with no decided match the venue shows no
	// advantage either way.
	st.TossWinPercentage = 50
	if tossDecided > 0 {
		st.TossWinPercentage = pct(tossWinnerWon, tossDecided)
	}
	st.BatFirstWinPercentage = 50
	if firstDecided > 0 {
		st.BatFirstWinPercentage = pct(batFirstWon, firstDecided)
	}
	st.BowlFirstWinPercentage = round2(100 - st.BatFirstWinPercentage)
	return st
}

func deriveVenueTeamRecords(vm []*model.Match) []model.VenueTeamRecord {
	byName := make(map[string]*model.VenueTeamRecord)
	for _, m := range vm {
		for _, team := range m.Teams {
			rec := byName[team]
			if rec == nil {
				rec = &model.VenueTeamRecord{Team: team}
				byName[team] = rec
			}
			rec.Matches++
			switch resultFor(m, team) {
			case resultWin:
				rec.Wins++
			case resultLoss:
				rec.Losses++
			}
		}
	}
	out := make([]model.VenueTeamRecord, 0, len(byName))
	for _, rec := range byName {
		rec.WinPercentage = pct(rec.Wins, rec.Wins+rec.Losses)
		out = append(out, *rec)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Matches != out[j].Matches {
			return out[i].Matches > out[j].Matches
		}
		return out[i].Team < out[j].Team
	})
	return out
}
