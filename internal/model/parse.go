package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Raw document shapes as they appear in the ball-by-ball JSON feed. They are
// confined to this file; nothing above the parser ever touches an untyped map.
type rawMatch struct {
	Info    *rawInfo     `json:"info"`
	Innings []rawInnings `json:"innings"`
}

type rawInfo struct {
	MatchType string              `json:"match_type"`
	Dates     []string            `json:"dates"`
	Venue     string              `json:"venue"`
	City      string              `json:"city"`
	Teams     []string            `json:"teams"`
	Event     rawEvent            `json:"event"`
	Toss      rawToss             `json:"toss"`
	Outcome   rawOutcome          `json:"outcome"`
	Players   map[string][]string `json:"players"`
}

type rawEvent struct {
	Name string `json:"name"`
}

type rawToss struct {
	Winner   string `json:"winner"`
	Decision string `json:"decision"`
}

type rawOutcome struct {
	Winner string `json:"winner"`
	Result string `json:"result"`
}

type rawInnings struct {
	Team  string    `json:"team"`
	Overs []rawOver `json:"overs"`
}

type rawOver struct {
	Over       int           `json:"over"`
	Deliveries []rawDelivery `json:"deliveries"`
}

type rawDelivery struct {
	Batter     string     `json:"batter"`
	Bowler     string     `json:"bowler"`
	NonStriker string     `json:"non_striker"`
	Runs       rawRuns    `json:"runs"`
	Extras     *rawExtras `json:"extras"`
	Wickets    []rawWkt   `json:"wickets"`
}

type rawRuns struct {
	Batter int `json:"batter"`
	Extras int `json:"extras"`
	Total  int `json:"total"`
}

type rawExtras struct {
	Wides   int `json:"wides"`
	NoBalls int `json:"noballs"`
	Byes    int `json:"byes"`
	LegByes int `json:"legbyes"`
	Penalty int `json:"penalty"`
}

type rawWkt struct {
	PlayerOut string `json:"player_out"`
	Kind      string `json:"kind"`
}

// leagueMarkers identify franchise-league events; everything else is treated
// as an international fixture.
var leagueMarkers = []string{
	"indian premier league",
	"ipl",
	"big bash",
	"pakistan super league",
	"caribbean premier league",
	"vitality blast",
	"the hundred",
	"super smash",
}

// ParseMatch validates and converts one raw match document into the typed
// model. A malformed document yields an error for that document only; the
// loader decides what to do with it.
func ParseMatch(id string, data []byte) (Match, error) {
	var raw rawMatch
	if err := json.Unmarshal(data, &raw); err != nil {
		return Match{}, fmt.Errorf("match %s: malformed JSON: %w", id, err)
	}
	if raw.Info == nil {
		return Match{}, fmt.Errorf("match %s: missing info block", id)
	}
	if len(raw.Info.Teams) != 2 {
		return Match{}, fmt.Errorf("match %s: expected 2 teams, got %d", id, len(raw.Info.Teams))
	}
	if len(raw.Innings) == 0 {
		return Match{}, fmt.Errorf("match %s: no innings recorded", id)
	}
	format := ParseFormat(raw.Info.MatchType)
	if format == FormatUnknown {
		return Match{}, fmt.Errorf("match %s: unrecognized match_type %q", id, raw.Info.MatchType)
	}

	m := Match{
		ID:           id,
		Format:       format,
		Venue:        raw.Info.Venue,
		City:         raw.Info.City,
		Event:        raw.Info.Event.Name,
		Category:     categoryOf(raw.Info.Event.Name),
		Teams:        [2]string{raw.Info.Teams[0], raw.Info.Teams[1]},
		TossWinner:   raw.Info.Toss.Winner,
		TossDecision: raw.Info.Toss.Decision,
		Outcome:      Outcome{Winner: raw.Info.Outcome.Winner, Result: raw.Info.Outcome.Result},
		Squads:       raw.Info.Players,
	}
	if len(raw.Info.Dates) > 0 {
		date, err := time.Parse("2006-01-02", raw.Info.Dates[0])
		if err != nil {
			return Match{}, fmt.Errorf("match %s: bad date %q: %w", id, raw.Info.Dates[0], err)
		}
		m.Date = date
		m.Year = raw.Info.Dates[0][:4]
	}

	m.Innings = make([]Innings, 0, len(raw.Innings))
	for i, ri := range raw.Innings {
		if ri.Team == "" {
			return Match{}, fmt.Errorf("match %s: innings %d has no batting team", id, i+1)
		}
		inn := Innings{BattingTeam: ri.Team, Overs: make([]Over, 0, len(ri.Overs))}
		for _, ro := range ri.Overs {
			over := Over{Number: ro.Over, Deliveries: make([]Delivery, 0, len(ro.Deliveries))}
			for bi, rd := range ro.Deliveries {
				d := Delivery{
					Over:       ro.Over,
					Ball:       bi + 1,
					Batter:     rd.Batter,
					NonStriker: rd.NonStriker,
					Bowler:     rd.Bowler,
					BatterRuns: rd.Runs.Batter,
				}
				if rd.Extras != nil {
					d.Wides = rd.Extras.Wides
					d.NoBalls = rd.Extras.NoBalls
					d.Byes = rd.Extras.Byes
					d.LegByes = rd.Extras.LegByes
				}
				for _, rw := range rd.Wickets {
					d.Wickets = append(d.Wickets, Wicket{
						PlayerOut: rw.PlayerOut,
						Kind:      ParseDismissal(rw.Kind),
					})
				}
				over.Deliveries = append(over.Deliveries, d)
			}
			inn.Overs = append(inn.Overs, over)
		}
		m.Innings = append(m.Innings, inn)
	}
	return m, nil
}

func categoryOf(eventName string) MatchCategory {
	name := strings.ToLower(eventName)
	for _, marker := range leagueMarkers {
		if strings.Contains(name, marker) {
			return CategoryLeague
		}
	}
	return CategoryInternational
}
