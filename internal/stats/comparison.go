package stats

import "github.com/maxviazov/cricket-stats-service/internal/model"

// metric builds one side-by-side metric entry. A nil value is the undefined
// sentinel and never wins; exact ties are tagged equal, never broken.
func metric(p1, p2 *float64, lowerBetter bool) model.MetricComparison {
	mc := model.MetricComparison{Player1: p1, Player2: p2, Better: model.WinnerEqual}
	switch {
	case p1 == nil && p2 == nil:
	case p1 == nil:
		mc.Better = model.WinnerPlayer2
	case p2 == nil:
		mc.Better = model.WinnerPlayer1
	case *p1 == *p2:
	case lowerBetter == (*p1 < *p2):
		mc.Better = model.WinnerPlayer1
	default:
		mc.Better = model.WinnerPlayer2
	}
	return mc
}

func intVal(v int) *float64 { return ptr(float64(v)) }

// definedOrNil folds a zero-denominator rate into the undefined sentinel so
// a 0.00 economy off zero overs can never be tagged as the better value.
func definedOrNil(v float64, defined bool) *float64 {
	if !defined {
		return nil
	}
	return ptr(v)
}

// CompareMetrics assembles two players' derived metrics side by side and
// tags each with its winner under the metric-specific comparator:
// higher-is-better for runs, average, strike rate, hundreds and wickets;
// lower-is-better for bowling average, economy and bowling strike rate.
func CompareMetrics(s1, s2 *model.PlayerStatsResult) model.ComparisonMetrics {
	b1, b2 := s1.Batting, s2.Batting
	w1, w2 := s1.Bowling, s2.Bowling
	return model.ComparisonMetrics{
		BattingComparison: map[string]model.MetricComparison{
			"runs":        metric(intVal(b1.Runs), intVal(b2.Runs), false),
			"average":     metric(b1.Average, b2.Average, false),
			"strike_rate": metric(ptr(b1.StrikeRate), ptr(b2.StrikeRate), false),
			"hundreds":    metric(intVal(b1.Hundreds), intVal(b2.Hundreds), false),
		},
		BowlingComparison: map[string]model.MetricComparison{
			"wickets":     metric(intVal(w1.Wickets), intVal(w2.Wickets), false),
			"average":     metric(w1.Average, w2.Average, true),
			"economy":     metric(definedOrNil(w1.Economy, w1.Overs != "0.0"), definedOrNil(w2.Economy, w2.Overs != "0.0"), true),
			"strike_rate": metric(w1.StrikeRate, w2.StrikeRate, true),
		},
	}
}
