package stats_test

import (
	"time"

	"github.com/maxviazov/cricket-stats-service/internal/model"
)

// Delivery builders keep the fixtures readable: every test match below is
// assembled from these instead of raw struct literals.

func ball(batter, nonStriker, bowler string, runs int) model.Delivery {
	return model.Delivery{Batter: batter, NonStriker: nonStriker, Bowler: bowler, BatterRuns: runs}
}

func wide(batter, nonStriker, bowler string) model.Delivery {
	d := ball(batter, nonStriker, bowler, 0)
	d.Wides = 1
	return d
}

func noBall(batter, nonStriker, bowler string, runs int) model.Delivery {
	d := ball(batter, nonStriker, bowler, runs)
	d.NoBalls = 1
	return d
}

func byes(batter, nonStriker, bowler string, n int) model.Delivery {
	d := ball(batter, nonStriker, bowler, 0)
	d.Byes = n
	return d
}

func legByes(batter, nonStriker, bowler string, n int) model.Delivery {
	d := ball(batter, nonStriker, bowler, 0)
	d.LegByes = n
	return d
}

func out(d model.Delivery, playerOut string, kind model.DismissalKind) model.Delivery {
	d.Wickets = append(d.Wickets, model.Wicket{PlayerOut: playerOut, Kind: kind})
	return d
}

func over(number int, ds ...model.Delivery) model.Over {
	for i := range ds {
		ds[i].Over = number
		ds[i].Ball = i + 1
	}
	return model.Over{Number: number, Deliveries: ds}
}

func innings(team string, overs ...model.Over) model.Innings {
	return model.Innings{BattingTeam: team, Overs: overs}
}

// t20Fixture is a complete two-innings T20I between India and Australia,
// won by India. India bat first.
//
// India innings: Kohli 6 off 4 (one four), Rohit 8 off 4 (one six, bowled by
// Cummins), Gill 4 off 4 faced (a four off a no-ball, two byes off one ball).
// Australia innings: Bumrah bowls both overs, a maiden first up, then takes
// Warner caught; Smith is run out, which credits nobody.
func t20Fixture() model.Match {
	return model.Match{
		ID:       "m1",
		Format:   model.FormatT20I,
		Date:     time.Date(2023, 11, 19, 0, 0, 0, 0, time.UTC),
		Year:     "2023",
		Venue:    "Melbourne Cricket Ground",
		City:     "Melbourne",
		Event:    "Australia tour of India",
		Category: model.CategoryInternational,
		Teams:    [2]string{"India", "Australia"},
		Outcome:  model.Outcome{Winner: "India"},
		Squads: map[string][]string{
			"India":     {"V Kohli", "RG Sharma", "S Gill", "JJ Bumrah"},
			"Australia": {"MA Starc", "PJ Cummins", "DA Warner", "SPD Smith", "UT Khawaja"},
		},
		Innings: []model.Innings{
			innings("India",
				over(0,
					ball("V Kohli", "RG Sharma", "MA Starc", 0),
					ball("V Kohli", "RG Sharma", "MA Starc", 4),
					wide("V Kohli", "RG Sharma", "MA Starc"),
					ball("V Kohli", "RG Sharma", "MA Starc", 1),
					ball("RG Sharma", "V Kohli", "MA Starc", 6),
					ball("RG Sharma", "V Kohli", "MA Starc", 0),
					ball("RG Sharma", "V Kohli", "MA Starc", 2),
				),
				over(1,
					ball("V Kohli", "RG Sharma", "PJ Cummins", 1),
					out(ball("RG Sharma", "V Kohli", "PJ Cummins", 0), "RG Sharma", model.DismissalBowled),
					byes("S Gill", "V Kohli", "PJ Cummins", 2),
					ball("S Gill", "V Kohli", "PJ Cummins", 0),
					noBall("S Gill", "V Kohli", "PJ Cummins", 4),
					ball("S Gill", "V Kohli", "PJ Cummins", 0),
					ball("S Gill", "V Kohli", "PJ Cummins", 0),
				),
			),
			innings("Australia",
				over(0,
					ball("DA Warner", "SPD Smith", "JJ Bumrah", 0),
					ball("DA Warner", "SPD Smith", "JJ Bumrah", 0),
					ball("DA Warner", "SPD Smith", "JJ Bumrah", 0),
					ball("DA Warner", "SPD Smith", "JJ Bumrah", 0),
					ball("DA Warner", "SPD Smith", "JJ Bumrah", 0),
					ball("DA Warner", "SPD Smith", "JJ Bumrah", 0),
				),
				over(1,
					ball("DA Warner", "SPD Smith", "JJ Bumrah", 4),
					out(ball("DA Warner", "SPD Smith", "JJ Bumrah", 0), "DA Warner", model.DismissalCaught),
					ball("SPD Smith", "UT Khawaja", "JJ Bumrah", 1),
					legByes("UT Khawaja", "SPD Smith", "JJ Bumrah", 1),
					out(ball("SPD Smith", "UT Khawaja", "JJ Bumrah", 0), "SPD Smith", model.DismissalRunOut),
					ball("UT Khawaja", "SPD Smith", "JJ Bumrah", 2),
				),
			),
		},
	}
}

// odiFixture is a two-innings ODI between the same sides, won by Australia.
// Australia bat first; Bumrah bowls the 1st and 15th overs and bowls Smith
// lbw in the second of them. India's reply has Kohli 11 off 5 against Starc.
func odiFixture() model.Match {
	return model.Match{
		ID:       "m2",
		Format:   model.FormatODI,
		Date:     time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC),
		Year:     "2024",
		Venue:    "Eden Gardens",
		City:     "Kolkata",
		Event:    "Australia tour of India",
		Category: model.CategoryInternational,
		Teams:    [2]string{"India", "Australia"},
		Outcome:  model.Outcome{Winner: "Australia"},
		Squads: map[string][]string{
			"India":     {"V Kohli", "RG Sharma", "JJ Bumrah"},
			"Australia": {"MA Starc", "DA Warner", "SPD Smith", "MR Marsh"},
		},
		Innings: []model.Innings{
			innings("Australia",
				over(0,
					ball("DA Warner", "SPD Smith", "JJ Bumrah", 1),
					ball("DA Warner", "SPD Smith", "JJ Bumrah", 1),
					ball("DA Warner", "SPD Smith", "JJ Bumrah", 1),
					ball("DA Warner", "SPD Smith", "JJ Bumrah", 0),
					ball("DA Warner", "SPD Smith", "JJ Bumrah", 0),
					ball("DA Warner", "SPD Smith", "JJ Bumrah", 4),
				),
				over(14,
					ball("SPD Smith", "DA Warner", "JJ Bumrah", 6),
					ball("SPD Smith", "DA Warner", "JJ Bumrah", 0),
					out(ball("SPD Smith", "DA Warner", "JJ Bumrah", 0), "SPD Smith", model.DismissalLBW),
					ball("MR Marsh", "DA Warner", "JJ Bumrah", 0),
					ball("MR Marsh", "DA Warner", "JJ Bumrah", 0),
					ball("MR Marsh", "DA Warner", "JJ Bumrah", 0),
				),
			),
			innings("India",
				over(0,
					ball("V Kohli", "RG Sharma", "MA Starc", 4),
					ball("V Kohli", "RG Sharma", "MA Starc", 4),
					ball("V Kohli", "RG Sharma", "MA Starc", 1),
					ball("RG Sharma", "V Kohli", "MA Starc", 1),
					ball("V Kohli", "RG Sharma", "MA Starc", 2),
					ball("V Kohli", "RG Sharma", "MA Starc", 0),
				),
			),
		},
	}
}

func fixtureMatches() []model.Match {
	return []model.Match{t20Fixture(), odiFixture()}
}
