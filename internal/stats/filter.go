// Package stats implements the aggregation core: filtering, innings
// aggregation, phase bucketing, metric derivation, head-to-head, comparison
// and rivalry analysis. Everything here is a pure function of an immutable
// match snapshot; no I/O, no shared state.
package stats

import (
	"strconv"
	"strings"

	"github.com/maxviazov/cricket-stats-service/internal/model"
)

// Role names which side of the ball a phase-scoped query cares about.
type Role uint8

const (
	RoleAny Role = iota
	RoleBatter
	RoleBowler
)

type phaseFamily uint8

const (
	familyNone phaseFamily = iota
	familyT20
	familyODI
)

// phaseWindows maps the wire phase tokens onto 1-based inclusive over ranges.
var phaseWindows = map[string]struct {
	family phaseFamily
	lo, hi int
}{
	"t20_1_6":   {familyT20, 1, 6},
	"t20_7_12":  {familyT20, 7, 12},
	"t20_13_16": {familyT20, 13, 16},
	"t20_17_20": {familyT20, 17, 20},
	"odi_1_10":  {familyODI, 1, 10},
	"odi_11_20": {familyODI, 11, 20},
	"odi_21_30": {familyODI, 21, 30},
	"odi_31_40": {familyODI, 31, 40},
	"odi_41_50": {familyODI, 41, 50},
}

// Query is a filter specification compiled into typed predicates. A spec with
// any unrecognized value compiles to a query that matches nothing: filters
// fail closed instead of erroring.
type Query struct {
	impossible bool

	format      model.Format
	hasFormat   bool
	inningsType string // "", "first" or "second"
	venue       string
	country     string
	category    model.MatchCategory
	hasCategory bool
	years       map[string]struct{}

	orderLo, orderHi int // 1-based batting order window, 0 = unrestricted

	family         phaseFamily
	overLo, overHi int // 1-based inclusive over window, 0 = unrestricted

	role Role
}

// Compile turns a wire filter spec into a Query. It never returns an error:
// per the fail-closed contract, malformed values produce an impossible query.
func Compile(f model.Filters) *Query {
	q := &Query{}

	if f.Format != "" {
		q.format = model.ParseFormat(f.Format)
		q.hasFormat = true
		if q.format == model.FormatUnknown {
			q.impossible = true
		}
	}
	switch f.InningsType {
	case "", "first", "second":
		q.inningsType = f.InningsType
	default:
		q.impossible = true
	}
	q.venue = f.Venue
	q.country = f.Country
	if f.MatchCategory != "" {
		q.category = model.ParseCategory(f.MatchCategory)
		q.hasCategory = true
		if q.category == model.CategoryUnknown {
			q.impossible = true
		}
	}
	if len(f.Years) > 0 {
		q.years = make(map[string]struct{}, len(f.Years))
		for _, y := range f.Years {
			y = strings.TrimSpace(y)
			if len(y) != 4 {
				q.impossible = true
				continue
			}
			if _, err := strconv.Atoi(y); err != nil {
				q.impossible = true
				continue
			}
			q.years[y] = struct{}{}
		}
	}
	if f.BattingOrder != "" {
		lo, hi, ok := parseOrderRange(f.BattingOrder)
		if !ok {
			q.impossible = true
		}
		q.orderLo, q.orderHi = lo, hi
	}
	if f.Phase != "" {
		w, ok := phaseWindows[strings.ToLower(strings.TrimSpace(f.Phase))]
		if !ok {
			q.impossible = true
		} else {
			q.family = w.family
			q.overLo, q.overHi = w.lo, w.hi
			// A phase window from one format cannot coexist with a filter
			// pinning the other format.
			if q.hasFormat {
				switch w.family {
				case familyT20:
					if !q.format.ShortFormat() {
						q.impossible = true
					}
				case familyODI:
					if q.format != model.FormatODI {
						q.impossible = true
					}
				}
			}
		}
	}
	switch strings.ToLower(strings.TrimSpace(f.PhaseRole)) {
	case "":
		q.role = RoleAny
	case "batter", "batsman":
		q.role = RoleBatter
	case "bowler":
		q.role = RoleBowler
	default:
		q.impossible = true
	}
	return q
}

// parseOrderRange accepts an exact slot ("4") or an inclusive range ("1-3").
func parseOrderRange(s string) (lo, hi int, ok bool) {
	s = strings.TrimSpace(s)
	if a, b, found := strings.Cut(s, "-"); found {
		loV, err1 := strconv.Atoi(strings.TrimSpace(a))
		hiV, err2 := strconv.Atoi(strings.TrimSpace(b))
		if err1 != nil || err2 != nil || loV < 1 || hiV < loV {
			return 0, 0, false
		}
		return loV, hiV, true
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 {
		return 0, 0, false
	}
	return v, v, true
}

// Impossible reports whether the filter set can never match anything.
func (q *Query) Impossible() bool { return q.impossible }

// MatchQualifies applies every match-scoped predicate. playerTeam carries the
// named player's team for the innings_type predicate; pass "" when the query
// is not anchored to a single player and innings_type should not apply.
func (q *Query) MatchQualifies(m *model.Match, playerTeam string) bool {
	if q.impossible {
		return false
	}
	if q.hasFormat && m.Format != q.format {
		return false
	}
	if q.venue != "" && m.Venue != q.venue {
		return false
	}
	if q.country != "" && m.City != q.country {
		return false
	}
	if q.hasCategory && m.Category != q.category {
		return false
	}
	if q.years != nil {
		if _, ok := q.years[m.Year]; !ok {
			return false
		}
	}
	switch q.family {
	case familyT20:
		if !m.Format.ShortFormat() {
			return false
		}
	case familyODI:
		if m.Format != model.FormatODI {
			return false
		}
	}
	if q.inningsType != "" && playerTeam != "" {
		battedFirst := m.BattedFirst(playerTeam)
		if q.inningsType == "first" && !battedFirst {
			return false
		}
		if q.inningsType == "second" && battedFirst {
			return false
		}
	}
	return true
}

// OverInWindow reports whether a 1-based over number falls inside the phase
// window, if any.
func (q *Query) OverInWindow(overNumber int) bool {
	if q.overLo == 0 {
		return true
	}
	return overNumber >= q.overLo && overNumber <= q.overHi
}

// OrderQualifies reports whether a 1-based batting position passes the
// batting_order predicate. Position 0 means the player never came to the
// crease, which only passes when the predicate is absent.
func (q *Query) OrderQualifies(position int) bool {
	if q.orderLo == 0 {
		return true
	}
	return position >= q.orderLo && position <= q.orderHi
}

// RoleAllows reports whether the phase_role predicate admits the given role.
func (q *Query) RoleAllows(r Role) bool {
	return q.role == RoleAny || q.role == r
}
