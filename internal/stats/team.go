package stats

import (
	"sort"

	"github.com/maxviazov/cricket-stats-service/internal/model"
)

// CollectTeamMatches resolves the filtered view for one team: every match the
// team played that passes the match-scoped predicates. The innings_type
// predicate reads as "the team batted first/second".
func CollectTeamMatches(matches []model.Match, team string, q *Query) []*model.Match {
	if q.Impossible() {
		return nil
	}
	var out []*model.Match
	for i := range matches {
		m := &matches[i]
		if m.Opponent(team) == "" {
			continue
		}
		if !q.MatchQualifies(m, team) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// inningsTotal is the full total of one innings, extras included.
func inningsTotal(inn *model.Innings) int {
	total := 0
	for i := range inn.Overs {
		for j := range inn.Overs[i].Deliveries {
			total += inn.Overs[i].Deliveries[j].TotalRuns()
		}
	}
	return total
}

// teamResult classifies one match from the team's point of view.
type teamResult uint8

const (
	resultWin teamResult = iota
	resultLoss
	resultDraw
)

func resultFor(m *model.Match, team string) teamResult {
	switch m.Outcome.Winner {
	case team:
		return resultWin
	case "":
		return resultDraw
	default:
		return resultLoss
	}
}

func pct(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return round2(float64(part) / float64(whole) * 100)
}

// BuildTeamStats derives the full team record over the filtered match set.
// The boolean is false when the team has no qualifying match.
func BuildTeamStats(matches []model.Match, team string, f model.Filters) (*model.TeamStatsResult, bool) {
	q := Compile(f)
	tm := CollectTeamMatches(matches, team, q)
	if len(tm) == 0 {
		return nil, false
	}
	res := &model.TeamStatsResult{
		TeamName:       team,
		TotalMatches:   len(tm),
		General:        deriveTeamGeneral(tm, team),
		Batting:        deriveTeamBatting(tm, team),
		Bowling:        deriveTeamBowling(tm, team),
		Opponents:      deriveOpponentRecords(tm, team),
		FiltersApplied: f,
	}
	return res, true
}

func deriveTeamGeneral(tm []*model.Match, team string) model.TeamGeneralStats {
	g := model.TeamGeneralStats{FormatPerformance: make(map[string]model.WinRecord)}
	for _, m := range tm {
		won := false
		switch resultFor(m, team) {
		case resultWin:
			g.Wins++
			won = true
		case resultLoss:
			g.Losses++
		case resultDraw:
			g.Draws++
		}
		if m.TossWinner == team {
			g.TossWins++
		}
		if m.BattedFirst(team) {
			g.BattingFirst.Matches++
			if won {
				g.BattingFirst.Wins++
			}
		} else {
			g.BowlingFirst.Matches++
			if won {
				g.BowlingFirst.Wins++
			}
		}
		fp := g.FormatPerformance[m.Format.String()]
		fp.Matches++
		if won {
			fp.Wins++
		}
		g.FormatPerformance[m.Format.String()] = fp
	}
	g.WinPercentage = pct(g.Wins, g.Wins+g.Losses)
	g.TossWinPercentage = pct(g.TossWins, len(tm))
	g.BattingFirst.WinPercentage = pct(g.BattingFirst.Wins, g.BattingFirst.Matches)
	g.BowlingFirst.WinPercentage = pct(g.BowlingFirst.Wins, g.BowlingFirst.Matches)
	for key, fp := range g.FormatPerformance {
		fp.WinPercentage = pct(fp.Wins, fp.Matches)
		g.FormatPerformance[key] = fp
	}
	return g
}

func deriveTeamBatting(tm []*model.Match, team string) model.TeamBattingStats {
	var st model.TeamBattingStats
	for _, m := range tm {
		for i := range m.Innings {
			inn := &m.Innings[i]
			if inn.BattingTeam != team {
				continue
			}
			total := inningsTotal(inn)
			if st.Innings == 0 || total > st.HighestScore {
				st.HighestScore = total
			}
			if st.Innings == 0 || total < st.LowestScore {
				st.LowestScore = total
			}
			st.Innings++
			st.TotalRuns += total
			if total >= 300 {
				st.ScoresOver300++
			}
			if total <= 150 {
				st.ScoresUnder150++
			}
		}
	}
	if st.Innings > 0 {
		st.AverageScore = round2(float64(st.TotalRuns) / float64(st.Innings))
	}
	return st
}

func deriveTeamBowling(tm []*model.Match, team string) model.TeamBowlingStats {
	var st model.TeamBowlingStats
	for _, m := range tm {
		for i := range m.Innings {
			inn := &m.Innings[i]
			if inn.BattingTeam == team {
				continue
			}
			total := inningsTotal(inn)
			if st.Innings == 0 || total < st.BestDefense {
				st.BestDefense = total
			}
			if st.Innings == 0 || total > st.WorstDefense {
				st.WorstDefense = total
			}
			st.Innings++
			st.RunsConceded += total
			if total < 200 {
				st.RestrictedUnder200++
			}
			if total >= 300 {
				st.ConcededOver300++
			}
		}
	}
	if st.Innings > 0 {
		st.AverageConceded = round2(float64(st.RunsConceded) / float64(st.Innings))
	}
	return st
}

// deriveOpponentRecords builds one win/loss ledger per opponent, most-played
// first, names breaking ties.
func deriveOpponentRecords(tm []*model.Match, team string) []model.OpponentRecord {
	byName := make(map[string]*model.OpponentRecord)
	for _, m := range tm {
		opp := m.Opponent(team)
		rec := byName[opp]
		if rec == nil {
			rec = &model.OpponentRecord{Opponent: opp}
			byName[opp] = rec
		}
		rec.Matches++
		switch resultFor(m, team) {
		case resultWin:
			rec.Wins++
		case resultLoss:
			rec.Losses++
		}
	}
	out := make([]model.OpponentRecord, 0, len(byName))
	for _, rec := range byName {
		rec.WinPercentage = pct(rec.Wins, rec.Wins+rec.Losses)
		out = append(out, *rec)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Matches != out[j].Matches {
			return out[i].Matches > out[j].Matches
		}
		return out[i].Opponent < out[j].Opponent
	})
	return out
}

// ComputeTeamHeadToHead tallies fixtures between the two teams inside team1's
// filtered match set. Zero fixtures is a valid result, not an error.
func ComputeTeamHeadToHead(tm []*model.Match, team1, team2 string) model.TeamHeadToHead {
	var h model.TeamHeadToHead
	for _, m := range tm {
		if m.Opponent(team1) != team2 {
			continue
		}
		h.TotalMatches++
		switch resultFor(m, team1) {
		case resultWin:
			h.Team1Wins++
		case resultLoss:
			h.Team2Wins++
		case resultDraw:
			h.Draws++
		}
	}
	decided := h.Team1Wins + h.Team2Wins
	h.Team1WinPercentage = pct(h.Team1Wins, decided)
	if decided > 0 {
		h.Team2WinPercentage = round2(100 - h.Team1WinPercentage)
	}
	return h
}
