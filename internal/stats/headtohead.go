package stats

import "github.com/maxviazov/cricket-stats-service/internal/model"

// ComputeHeadToHead restricts the snapshot to matches containing both players
// and folds every direct confrontation, each direction through the same
// extractors as the overall aggregates. Match results are the one place a
// winner is resolved from team identity: each player's team is looked up per
// match and the outcome credited accordingly.
//
// Player-relative predicates (innings_type, batting_order) are ambiguous
// between the two names and do not restrict the common-match subset; the
// match-metadata predicates and the phase window apply as usual.
func ComputeHeadToHead(matches []model.Match, player1, player2 string, q *Query) model.HeadToHead {
	h := model.HeadToHead{}
	var p1vp2, p2vp1 []PlayerMatchData

	for i := range matches {
		m := &matches[i]
		if !q.MatchQualifies(m, "") {
			continue
		}
		t1 := m.TeamOf(player1)
		if t1 == "" {
			continue
		}
		t2 := m.TeamOf(player2)
		if t2 == "" {
			continue
		}
		h.TotalEncounters++

		switch m.Outcome.Winner {
		case "":
			h.MatchResults.Ties++
		case t1:
			h.MatchResults.Player1Wins++
		case t2:
			h.MatchResults.Player2Wins++
		}

		d12 := PlayerMatchData{Match: m, Team: t1}
		d21 := PlayerMatchData{Match: m, Team: t2}
		for j := range m.Innings {
			inn := &m.Innings[j]
			if b := battingInningsFor(inn, player1, player2, q); b != nil {
				d12.Batting = append(d12.Batting, *b)
			}
			if sp := bowlingInningsFor(inn, player2, player1, q); sp != nil {
				d21.Bowling = append(d21.Bowling, *sp)
			}
			if b := battingInningsFor(inn, player2, player1, q); b != nil {
				d21.Batting = append(d21.Batting, *b)
			}
			if sp := bowlingInningsFor(inn, player1, player2, q); sp != nil {
				d12.Bowling = append(d12.Bowling, *sp)
			}
		}
		p1vp2 = append(p1vp2, d12)
		p2vp1 = append(p2vp1, d21)
	}

	h.Player1VsPlayer2 = model.DirectRecord{
		AsBatsman: DeriveBatting(p1vp2),
		AsBowler:  DeriveBowling(p1vp2),
	}
	h.Player2VsPlayer1 = model.DirectRecord{
		AsBatsman: DeriveBatting(p2vp1),
		AsBowler:  DeriveBowling(p2vp1),
	}
	return h
}
