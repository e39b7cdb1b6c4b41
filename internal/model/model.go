// Package model contains domain entities and DTOs used across layers.
// I keep it lean and focused on data shapes without behavior beyond
// small scoring helpers the aggregation core leans on.
package model

import "time"

// Wicket records one batter falling on a delivery.
type Wicket struct {
	PlayerOut string
	Kind      DismissalKind
}

// Delivery is the canonical in-memory form of one ball bowled.
// Over is 0-based, Ball is 1-based within the over and may exceed 6 when
// wides or no-balls were re-bowled.
type Delivery struct {
	Over       int
	Ball       int
	Batter     string
	NonStriker string
	Bowler     string
	BatterRuns int
	Wides      int
	NoBalls    int
	Byes       int
	LegByes    int
	Wickets    []Wicket
}

// Legal reports whether the delivery counts toward the 6-ball over.
func (d *Delivery) Legal() bool { return d.Wides == 0 && d.NoBalls == 0 }

// Extras is the total of all extra runs on the delivery.
func (d *Delivery) Extras() int { return d.Wides + d.NoBalls + d.Byes + d.LegByes }

// TotalRuns is batter runs plus all extras; the per-delivery run invariant.
func (d *Delivery) TotalRuns() int { return d.BatterRuns + d.Extras() }

// Conceded is what the bowler is debited for this delivery: batter runs plus
// wide and no-ball extras. Byes and leg-byes are not the bowler's fault.
func (d *Delivery) Conceded() int { return d.BatterRuns + d.Wides + d.NoBalls }

// CountsAsBallFaced reports whether the striker is debited a ball for this
// delivery: legal balls and deliveries scored as byes/leg-byes count, wides
// and pure no-balls do not.
func (d *Delivery) CountsAsBallFaced() bool {
	return d.Legal() || d.Byes > 0 || d.LegByes > 0
}

// Over groups the deliveries bowled under one over number. Number is 0-based
// as recorded in the source documents.
type Over struct {
	Number     int
	Deliveries []Delivery
}

// Innings is one team's turn at bat within a match.
type Innings struct {
	BattingTeam string
	Overs       []Over
}

// Outcome captures how a match ended. Winner is empty for ties and
// no-results; Result then carries the raw outcome tag.
type Outcome struct {
	Winner string
	Result string
}

// Match is one fully parsed ball-by-ball match document. Owned exclusively by
// the store and immutable after load.
type Match struct {
	ID           string
	Format       Format
	Date         time.Time
	Year         string
	Venue        string
	City         string
	Event        string
	Category     MatchCategory
	Teams        [2]string
	TossWinner   string
	TossDecision string
	Outcome      Outcome
	Squads       map[string][]string
	Innings      []Innings
}

// TeamOf resolves which team a player belongs to in this match, first via the
// squad lists and otherwise by scanning deliveries. Empty when absent.
func (m *Match) TeamOf(player string) string {
	for team, names := range m.Squads {
		for _, n := range names {
			if n == player {
				return team
			}
		}
	}
	for i := range m.Innings {
		inn := &m.Innings[i]
		for j := range inn.Overs {
			for k := range inn.Overs[j].Deliveries {
				d := &inn.Overs[j].Deliveries[k]
				switch player {
				case d.Batter, d.NonStriker:
					return inn.BattingTeam
				case d.Bowler:
					return m.Opponent(inn.BattingTeam)
				}
			}
		}
	}
	return ""
}

// Opponent returns the other team of the fixture.
func (m *Match) Opponent(team string) string {
	if m.Teams[0] == team {
		return m.Teams[1]
	}
	if m.Teams[1] == team {
		return m.Teams[0]
	}
	return ""
}

// HasPlayer reports whether the player appears in this match.
func (m *Match) HasPlayer(player string) bool { return m.TeamOf(player) != "" }

// BattedFirst reports whether the given team batted the first innings.
func (m *Match) BattedFirst(team string) bool {
	return len(m.Innings) > 0 && m.Innings[0].BattingTeam == team
}
