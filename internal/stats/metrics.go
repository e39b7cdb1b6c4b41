package stats

import (
	"fmt"
	"math"

	"github.com/maxviazov/cricket-stats-service/internal/model"
)

// round2 rounds for display only; everything upstream stays integral.
func round2(v float64) float64 { return math.Round(v*100) / 100 }

func ptr(v float64) *float64 { return &v }

// DeriveBatting converts per-innings batting accumulators into the reported
// batting record. Zero-denominator policy: average is null when the player
// was never dismissed; strike rate and percentages are 0.00 when the
// denominator is zero.
func DeriveBatting(matches []PlayerMatchData) model.BattingStats {
	var innings []BattingInnings
	matchCount := 0
	for i := range matches {
		if len(matches[i].Batting) > 0 {
			matchCount++
			innings = append(innings, matches[i].Batting...)
		}
	}
	st := model.BattingStats{
		Matches:   matchCount,
		Innings:   len(innings),
		HighScore: "0",
	}
	if len(innings) == 0 {
		return st
	}

	dismissals := 0
	high, highNotOut := -1, false
	for _, inn := range innings {
		st.Runs += inn.Runs
		st.Balls += inn.Balls
		st.Fours += inn.Fours
		st.Sixes += inn.Sixes
		st.RunDistribution.Dots += inn.Dots
		st.RunDistribution.Ones += inn.Ones
		st.RunDistribution.Twos += inn.Twos
		if inn.Out {
			dismissals++
		}
		switch {
		case inn.Runs >= 200:
			st.DoubleHundreds++
		case inn.Runs >= 100:
			st.Hundreds++
		case inn.Runs >= 50:
			st.Fifties++
		}
		if inn.Runs > high {
			high = inn.Runs
			highNotOut = !inn.Out
		} else if inn.Runs == high && !inn.Out {
			highNotOut = true
		}
	}
	st.RunDistribution.Fours = st.Fours
	st.RunDistribution.Sixes = st.Sixes
	st.NotOuts = st.Innings - dismissals

	if dismissals > 0 {
		st.Average = ptr(round2(float64(st.Runs) / float64(dismissals)))
	}
	if st.Balls > 0 {
		st.StrikeRate = round2(float64(st.Runs) / float64(st.Balls) * 100)
		st.BoundaryPct = round2(float64(st.Fours+st.Sixes) * 100 / float64(st.Balls))
		st.RunDistributionPct = model.RunDistributionPct{
			Dots:  round2(float64(st.RunDistribution.Dots) * 100 / float64(st.Balls)),
			Ones:  round2(float64(st.RunDistribution.Ones) * 100 / float64(st.Balls)),
			Twos:  round2(float64(st.RunDistribution.Twos) * 100 / float64(st.Balls)),
			Fours: round2(float64(st.RunDistribution.Fours) * 100 / float64(st.Balls)),
			Sixes: round2(float64(st.RunDistribution.Sixes) * 100 / float64(st.Balls)),
		}
	}
	st.HighScore = fmt.Sprintf("%d", high)
	if highNotOut {
		st.HighScore += "*"
	}
	return st
}

// DeriveBowling converts per-innings bowling accumulators into the reported
// bowling record. Average and bowling strike rate are null without a wicket;
// economy is 0.00 without a legal ball.
func DeriveBowling(matches []PlayerMatchData) model.BowlingStats {
	var spells []BowlingInnings
	matchCount := 0
	for i := range matches {
		if len(matches[i].Bowling) > 0 {
			matchCount++
			spells = append(spells, matches[i].Bowling...)
		}
	}
	st := model.BowlingStats{
		Matches:        matchCount,
		Innings:        len(spells),
		Overs:          "0.0",
		BestBowling:    "0/0",
		WicketTypes:    map[string]int{},
		WicketTypesPct: map[string]float64{},
	}
	if len(spells) == 0 {
		return st
	}

	legal, dots := 0, 0
	bestW, bestR := -1, 0
	for _, sp := range spells {
		legal += sp.LegalBalls
		st.Runs += sp.Conceded
		st.Wickets += sp.Wickets
		st.Maidens += sp.Maidens
		if sp.Wickets >= 3 {
			st.ThreeWickets++
		}
		if sp.Wickets >= 5 {
			st.FiveWickets++
		}
		if sp.Wickets > bestW || (sp.Wickets == bestW && sp.Conceded < bestR) {
			bestW, bestR = sp.Wickets, sp.Conceded
		}
		for _, k := range sp.Kinds {
			st.WicketTypes[k.String()]++
		}
		dots += sp.Dots
	}

	st.Overs = fmt.Sprintf("%d.%d", legal/6, legal%6)
	if legal > 0 {
		st.Economy = round2(float64(st.Runs) * 6 / float64(legal))
		st.DotBallPct = round2(float64(dots) * 100 / float64(legal))
	}
	if st.Wickets > 0 {
		st.Average = ptr(round2(float64(st.Runs) / float64(st.Wickets)))
		st.StrikeRate = ptr(round2(float64(legal) / float64(st.Wickets)))
	}
	if bestW >= 0 {
		st.BestBowling = fmt.Sprintf("%d/%d", bestW, bestR)
	}
	total := 0
	for _, c := range st.WicketTypes {
		total += c
	}
	if total > 0 {
		for k, c := range st.WicketTypes {
			st.WicketTypesPct[k] = round2(float64(c) * 100 / float64(total))
		}
	}
	return st
}

// winPercentage reports how often the player's team won across the given
// matches, 0.00 for an empty set.
func winPercentage(matches []PlayerMatchData) float64 {
	if len(matches) == 0 {
		return 0
	}
	wins := 0
	for i := range matches {
		if matches[i].Match.Outcome.Winner == matches[i].Team {
			wins++
		}
	}
	return round2(float64(wins) * 100 / float64(len(matches)))
}

// DeriveMatchSplit divides the player's qualifying matches by whether their
// team batted first and derives the full record for each half.
func DeriveMatchSplit(matches []PlayerMatchData) model.MatchSplit {
	var first, second []PlayerMatchData
	for i := range matches {
		if len(matches[i].Match.Innings) < 2 {
			continue
		}
		if matches[i].Match.BattedFirst(matches[i].Team) {
			first = append(first, matches[i])
		} else {
			second = append(second, matches[i])
		}
	}
	return model.MatchSplit{
		BattingFirst: model.InningsSplit{
			Matches:       len(first),
			BattingStats:  DeriveBatting(first),
			BowlingStats:  DeriveBowling(first),
			WinPercentage: winPercentage(first),
		},
		BowlingFirst: model.InningsSplit{
			Matches:       len(second),
			BattingStats:  DeriveBatting(second),
			BowlingStats:  DeriveBowling(second),
			WinPercentage: winPercentage(second),
		},
	}
}
