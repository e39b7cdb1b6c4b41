package stats

import (
	"sort"

	"github.com/maxviazov/cricket-stats-service/internal/model"
)

// Granularity selects whether rivalry rankings group by opponent player or
// opponent team.
type Granularity uint8

const (
	GranularityPlayer Granularity = iota
	GranularityTeam
)

// ParseGranularity maps the wire value; empty defaults to player.
func ParseGranularity(s string) (Granularity, bool) {
	switch s {
	case "", "player":
		return GranularityPlayer, true
	case "team":
		return GranularityTeam, true
	default:
		return GranularityPlayer, false
	}
}

// DefaultRivalryLimit is how many opponents each ranking carries unless the
// caller asks for more.
const DefaultRivalryLimit = 5

type rivalryAcc struct {
	figure  int
	matches map[string]struct{} // match IDs contributing to the figure
}

type rivalryTable map[string]*rivalryAcc

func (t rivalryTable) add(opponent, matchID string, figure int) {
	if opponent == "" {
		return
	}
	acc := t[opponent]
	if acc == nil {
		acc = &rivalryAcc{matches: make(map[string]struct{})}
		t[opponent] = acc
	}
	acc.figure += figure
	acc.matches[matchID] = struct{}{}
}

type rankedEntry struct {
	opponent string
	figure   int
	matches  int
}

// rank orders opponents by figure descending, breaking ties by fewer
// contributing matches (the better rate) and then by name, and keeps the
// top limit entries. Zero figures are dropped.
func (t rivalryTable) rank(limit int) []rankedEntry {
	entries := make([]rankedEntry, 0, len(t))
	for opp, acc := range t {
		if acc.figure == 0 {
			continue
		}
		entries = append(entries, rankedEntry{opponent: opp, figure: acc.figure, matches: len(acc.matches)})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].figure != entries[j].figure {
			return entries[i].figure > entries[j].figure
		}
		if entries[i].matches != entries[j].matches {
			return entries[i].matches < entries[j].matches
		}
		return entries[i].opponent < entries[j].opponent
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// ComputeRivalries ranks the opponents a player has scored most against,
// taken most wickets against, conceded most to and been dismissed most by.
// The match set is already filtered, but the deliveries are walked raw here,
// so the delivery-scoped predicates apply again: an over outside the phase
// window or a side excluded by role or batting order contributes nothing.
func ComputeRivalries(matches []PlayerMatchData, player string, q *Query, gran Granularity, limit int) model.RivalryAnalysis {
	if limit <= 0 {
		limit = DefaultRivalryLimit
	}
	runsAgainst := rivalryTable{}
	wicketsAgainst := rivalryTable{}
	concededTo := rivalryTable{}
	dismissalsBy := rivalryTable{}

	for i := range matches {
		pm := &matches[i]
		m := pm.Match
		opposingTeam := m.Opponent(pm.Team)
		for j := range m.Innings {
			inn := &m.Innings[j]
			batting := inn.BattingTeam == pm.Team
			if batting {
				if !q.RoleAllows(RoleBatter) || !q.OrderQualifies(battingPosition(inn, player)) {
					continue
				}
			} else if !q.RoleAllows(RoleBowler) {
				continue
			}
			for k := range inn.Overs {
				over := &inn.Overs[k]
				if !q.OverInWindow(over.Number + 1) {
					continue
				}
				for l := range over.Deliveries {
					d := &over.Deliveries[l]
					if batting && d.Batter == player && d.Bowler != "" {
						opp := d.Bowler
						if gran == GranularityTeam {
							opp = opposingTeam
						}
						runsAgainst.add(opp, m.ID, d.BatterRuns)
						for _, w := range d.Wickets {
							if w.PlayerOut == player && w.Kind.CreditedToBowler() {
								dismissalsBy.add(opp, m.ID, 1)
							}
						}
					}
					if !batting && d.Bowler == player && d.Batter != "" {
						opp := d.Batter
						if gran == GranularityTeam {
							opp = opposingTeam
						}
						concededTo.add(opp, m.ID, d.Conceded())
						for _, w := range d.Wickets {
							if w.PlayerOut == d.Batter && w.Kind.CreditedToBowler() {
								wicketsAgainst.add(opp, m.ID, 1)
							}
						}
					}
				}
			}
		}
	}

	out := model.RivalryAnalysis{
		MostRunsAgainst:    []model.RivalryRuns{},
		MostWicketsAgainst: []model.RivalryWickets{},
		MostRunsConcededTo: []model.RivalryRuns{},
		MostDismissalsBy:   []model.RivalryDismissals{},
	}
	for _, e := range runsAgainst.rank(limit) {
		out.MostRunsAgainst = append(out.MostRunsAgainst, model.RivalryRuns{Opponent: e.opponent, Runs: e.figure, Matches: e.matches})
	}
	for _, e := range wicketsAgainst.rank(limit) {
		out.MostWicketsAgainst = append(out.MostWicketsAgainst, model.RivalryWickets{Opponent: e.opponent, Wickets: e.figure, Matches: e.matches})
	}
	for _, e := range concededTo.rank(limit) {
		out.MostRunsConcededTo = append(out.MostRunsConcededTo, model.RivalryRuns{Opponent: e.opponent, Runs: e.figure, Matches: e.matches})
	}
	for _, e := range dismissalsBy.rank(limit) {
		out.MostDismissalsBy = append(out.MostDismissalsBy, model.RivalryDismissals{Opponent: e.opponent, Dismissals: e.figure, Matches: e.matches})
	}
	return out
}
