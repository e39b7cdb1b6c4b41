package stats

import "github.com/maxviazov/cricket-stats-service/internal/model"

// PhaseID is the closed set of phase windows; the wire keys ("phase1"…) are
// produced only at the JSON boundary.
type PhaseID uint8

const (
	Phase1 PhaseID = iota + 1
	Phase2
	Phase3
	Phase4
	Phase5
)

func (p PhaseID) Key() string {
	switch p {
	case Phase1:
		return "phase1"
	case Phase2:
		return "phase2"
	case Phase3:
		return "phase3"
	case Phase4:
		return "phase4"
	default:
		return "phase5"
	}
}

// phaseFor buckets a 1-based over number into the format's phase window.
// Test cricket has no windows; overs past the scheduled allotment (super
// overs) belong to no phase either.
func phaseFor(f model.Format, overNumber int) (PhaseID, bool) {
	if f.ShortFormat() {
		switch {
		case overNumber >= 1 && overNumber <= 6:
			return Phase1, true
		case overNumber <= 12:
			return Phase2, true
		case overNumber <= 16:
			return Phase3, true
		case overNumber <= 20:
			return Phase4, true
		}
		return 0, false
	}
	if f == model.FormatODI {
		switch {
		case overNumber >= 1 && overNumber <= 10:
			return Phase1, true
		case overNumber <= 20:
			return Phase2, true
		case overNumber <= 30:
			return Phase3, true
		case overNumber <= 40:
			return Phase4, true
		case overNumber <= 50:
			return Phase5, true
		}
	}
	return 0, false
}

func emptyPhases(ids ...PhaseID) map[string]*model.PhaseStats {
	out := make(map[string]*model.PhaseStats, len(ids))
	for _, id := range ids {
		out[id.Key()] = &model.PhaseStats{}
	}
	return out
}

// ComputePhaseAnalysis re-buckets the already filtered delivery set by phase.
// It applies the same delivery-scoped predicates as the innings aggregator,
// so summing a player's phase figures reproduces the unphased totals exactly.
func ComputePhaseAnalysis(matches []PlayerMatchData, player string, q *Query) model.PhaseAnalysis {
	pa := model.PhaseAnalysis{
		T20Phases: emptyPhases(Phase1, Phase2, Phase3, Phase4),
		ODIPhases: emptyPhases(Phase1, Phase2, Phase3, Phase4, Phase5),
	}

	for i := range matches {
		pm := &matches[i]
		m := pm.Match
		var target map[string]*model.PhaseStats
		switch {
		case m.Format.ShortFormat():
			target = pa.T20Phases
		case m.Format == model.FormatODI:
			target = pa.ODIPhases
		default:
			continue // Tests are unphased
		}

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

			battedIn := map[PhaseID]bool{}
			bowledIn := map[PhaseID]bool{}
			for k := range inn.Overs {
				over := &inn.Overs[k]
				overNumber := over.Number + 1
				if !q.OverInWindow(overNumber) {
					continue
				}
				id, ok := phaseFor(m.Format, overNumber)
				if !ok {
					continue
				}
				ph := target[id.Key()]
				for l := range over.Deliveries {
					d := &over.Deliveries[l]
					if batting {
						if d.Batter == player {
							ph.Runs += d.BatterRuns
							if d.CountsAsBallFaced() {
								ph.Balls++
							}
							if !battedIn[id] {
								battedIn[id] = true
								ph.BattingInnings++
							}
						}
						for _, w := range d.Wickets {
							if w.PlayerOut == player {
								ph.Dismissals++
							}
						}
					} else if d.Bowler == player {
						ph.Conceded += d.Conceded()
						if !bowledIn[id] {
							bowledIn[id] = true
							ph.BowlingInnings++
						}
						for _, w := range d.Wickets {
							if w.Kind.CreditedToBowler() {
								ph.Wickets++
							}
						}
					}
				}
			}
		}
	}

	for _, phases := range []map[string]*model.PhaseStats{pa.T20Phases, pa.ODIPhases} {
		for _, ph := range phases {
			if ph.Balls > 0 {
				ph.StrikeRate = round2(float64(ph.Runs) / float64(ph.Balls) * 100)
			}
		}
	}
	return pa
}
