package stats

import "github.com/maxviazov/cricket-stats-service/internal/model"

// BattingInnings accumulates one player's batting figures for one innings.
// Counts stay exact integers; ratios are derived later.
type BattingInnings struct {
	Runs     int
	Balls    int
	Dots     int
	Ones     int
	Twos     int
	Fours    int
	Sixes    int
	Out      bool
	Kind     model.DismissalKind
	Position int // 1-based rank of first appearance at the crease
}

// BowlingInnings accumulates one player's bowling figures for one innings.
type BowlingInnings struct {
	Balls      int // deliveries bowled, legal or not
	LegalBalls int
	Conceded   int
	Wickets    int
	Maidens    int
	Dots       int
	Kinds      []model.DismissalKind
}

// PlayerMatchData is everything one qualifying match contributes to a
// player's aggregates.
type PlayerMatchData struct {
	Match   *model.Match
	Team    string
	Batting []BattingInnings
	Bowling []BowlingInnings
}

// CollectPlayerMatches resolves the filtered view for one player: every match
// the player appears in that passes the match-scoped predicates, with
// per-innings batting and bowling accumulators built from the deliveries that
// pass the delivery-scoped predicates.
func CollectPlayerMatches(matches []model.Match, player string, q *Query) []PlayerMatchData {
	if q.Impossible() {
		return nil
	}
	var out []PlayerMatchData
	for i := range matches {
		m := &matches[i]
		team := m.TeamOf(player)
		if team == "" {
			continue
		}
		if !q.MatchQualifies(m, team) {
			continue
		}
		pm := PlayerMatchData{Match: m, Team: team}
		for j := range m.Innings {
			inn := &m.Innings[j]
			if inn.BattingTeam == team {
				if !q.RoleAllows(RoleBatter) {
					continue
				}
				if b := battingInningsFor(inn, player, "", q); b != nil && q.OrderQualifies(b.Position) {
					pm.Batting = append(pm.Batting, *b)
				}
			} else {
				if !q.RoleAllows(RoleBowler) {
					continue
				}
				if b := bowlingInningsFor(inn, player, "", q); b != nil {
					pm.Bowling = append(pm.Bowling, *b)
				}
			}
		}
		// A match only counts once the delivery-scoped predicates left the
		// player with something in it; otherwise a phase or role filter
		// would report zero-filled aggregates instead of not-found.
		if len(pm.Batting)+len(pm.Bowling) == 0 {
			continue
		}
		out = append(out, pm)
	}
	return out
}

// battingPosition is the 1-based rank of the player's first appearance at the
// crease, striker or non-striker end, over the whole innings. 0 when the
// player never batted.
func battingPosition(inn *model.Innings, player string) int {
	seen := make(map[string]int)
	appear := func(name string) {
		if name != "" {
			if _, ok := seen[name]; !ok {
				seen[name] = len(seen) + 1
			}
		}
	}
	for i := range inn.Overs {
		for j := range inn.Overs[i].Deliveries {
			d := &inn.Overs[i].Deliveries[j]
			appear(d.Batter)
			appear(d.NonStriker)
		}
	}
	return seen[player]
}

// battingInningsFor folds the innings into a batting accumulator for the
// player. A non-empty bowler restricts the fold to deliveries bowled by that
// bowler, which is how head-to-head reuses the same scoring rules. Returns
// nil when the player neither faced a qualifying ball nor was dismissed.
func battingInningsFor(inn *model.Innings, player, bowler string, q *Query) *BattingInnings {
	st := BattingInnings{Position: battingPosition(inn, player)}
	for i := range inn.Overs {
		over := &inn.Overs[i]
		if !q.OverInWindow(over.Number + 1) {
			continue
		}
		for j := range over.Deliveries {
			d := &over.Deliveries[j]
			if bowler != "" && d.Bowler != bowler {
				continue
			}
			if d.Batter == player {
				st.Runs += d.BatterRuns
				switch d.BatterRuns {
				case 4:
					st.Fours++
				case 6:
					st.Sixes++
				}
				if d.CountsAsBallFaced() {
					st.Balls++
					switch d.BatterRuns {
					case 0:
						st.Dots++
					case 1:
						st.Ones++
					case 2:
						st.Twos++
					}
				}
			}
			// A run out can fall at either end, so the dismissal check is
			// not gated on being on strike.
			for _, w := range d.Wickets {
				if w.PlayerOut == player {
					st.Out = true
					st.Kind = w.Kind
				}
			}
		}
	}
	if st.Balls == 0 && st.Runs == 0 && !st.Out {
		return nil
	}
	return &st
}

// bowlingInningsFor folds the innings into a bowling accumulator for the
// player. A non-empty batter restricts the fold to deliveries faced by that
// batter (head-to-head). Returns nil when the player bowled no qualifying
// delivery.
func bowlingInningsFor(inn *model.Innings, player, batter string, q *Query) *BowlingInnings {
	var st BowlingInnings
	for i := range inn.Overs {
		over := &inn.Overs[i]
		if !q.OverInWindow(over.Number + 1) {
			continue
		}
		overLegal, overConceded, overByes := 0, 0, 0
		for j := range over.Deliveries {
			d := &over.Deliveries[j]
			if d.Bowler != player {
				continue
			}
			if batter != "" && d.Batter != batter {
				continue
			}
			st.Balls++
			if d.Legal() {
				st.LegalBalls++
				overLegal++
				if d.TotalRuns() == 0 {
					st.Dots++
				}
			}
			st.Conceded += d.Conceded()
			overConceded += d.Conceded()
			overByes += d.Byes + d.LegByes
			for _, w := range d.Wickets {
				if !w.Kind.CreditedToBowler() {
					continue
				}
				if batter != "" && w.PlayerOut != batter {
					continue
				}
				st.Wickets++
				st.Kinds = append(st.Kinds, w.Kind)
			}
		}
		if overLegal == 6 && overConceded == 0 && overByes == 0 {
			st.Maidens++
		}
	}
	if st.Balls == 0 {
		return nil
	}
	return &st
}
