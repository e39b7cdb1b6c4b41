package model

import "strings"

// Format is the closed set of match formats the service understands.
type Format uint8

const (
	FormatUnknown Format = iota
	FormatTest
	FormatODI
	FormatT20
	FormatT20I
)

// ParseFormat maps the raw match_type strings found in ball-by-ball documents
// (and in filter specifications) onto the closed Format set.
// ODM scorecards are folded into ODI, IT20 into T20I.
func ParseFormat(s string) Format {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TEST":
		return FormatTest
	case "ODI", "ODM":
		return FormatODI
	case "T20":
		return FormatT20
	case "T20I", "IT20":
		return FormatT20I
	default:
		return FormatUnknown
	}
}

func (f Format) String() string {
	switch f {
	case FormatTest:
		return "Test"
	case FormatODI:
		return "ODI"
	case FormatT20:
		return "T20"
	case FormatT20I:
		return "T20I"
	default:
		return "unknown"
	}
}

func (f Format) MarshalJSON() ([]byte, error) {
	return []byte(`"` + f.String() + `"`), nil
}

// ShortFormat reports whether the format uses T20 phase windows.
func (f Format) ShortFormat() bool { return f == FormatT20 || f == FormatT20I }

// MatchCategory tags a match as part of a franchise league or as an
// international fixture. Derived from the event name at parse time.
type MatchCategory uint8

const (
	CategoryUnknown MatchCategory = iota
	CategoryInternational
	CategoryLeague
)

func ParseCategory(s string) MatchCategory {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "international":
		return CategoryInternational
	case "league", "ipl":
		return CategoryLeague
	default:
		return CategoryUnknown
	}
}

func (c MatchCategory) String() string {
	switch c {
	case CategoryInternational:
		return "international"
	case CategoryLeague:
		return "league"
	default:
		return "unknown"
	}
}

func (c MatchCategory) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.String() + `"`), nil
}

// DismissalKind is the closed set of ways a batter can be out.
type DismissalKind uint8

const (
	DismissalOther DismissalKind = iota
	DismissalBowled
	DismissalCaught
	DismissalLBW
	DismissalStumped
	DismissalRunOut
	DismissalRetired
)

// ParseDismissal normalizes raw wicket kinds. Anything unrecognized becomes
// DismissalOther, which still counts against the batter.
func ParseDismissal(s string) DismissalKind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bowled":
		return DismissalBowled
	case "caught", "caught and bowled":
		return DismissalCaught
	case "lbw":
		return DismissalLBW
	case "stumped":
		return DismissalStumped
	case "run out":
		return DismissalRunOut
	case "retired hurt", "retired out", "retired not out":
		return DismissalRetired
	default:
		return DismissalOther
	}
}

// CreditedToBowler reports whether the dismissal counts as the bowler's
// wicket. Run outs and retirements never do.
func (k DismissalKind) CreditedToBowler() bool {
	return k != DismissalRunOut && k != DismissalRetired
}

func (k DismissalKind) String() string {
	switch k {
	case DismissalBowled:
		return "bowled"
	case DismissalCaught:
		return "caught"
	case DismissalLBW:
		return "lbw"
	case DismissalStumped:
		return "stumped"
	case DismissalRunOut:
		return "run out"
	case DismissalRetired:
		return "retired"
	default:
		return "other"
	}
}

func (k DismissalKind) MarshalJSON() ([]byte, error) {
	return []byte(`"` + k.String() + `"`), nil
}

// Winner tags which side of a two-player comparison holds the better value.
type Winner uint8

const (
	WinnerEqual Winner = iota
	WinnerPlayer1
	WinnerPlayer2
)

func (w Winner) String() string {
	switch w {
	case WinnerPlayer1:
		return "player1"
	case WinnerPlayer2:
		return "player2"
	default:
		return "equal"
	}
}

func (w Winner) MarshalJSON() ([]byte, error) {
	return []byte(`"` + w.String() + `"`), nil
}

// Swapped returns the tag as seen from the opposite request order.
func (w Winner) Swapped() Winner {
	switch w {
	case WinnerPlayer1:
		return WinnerPlayer2
	case WinnerPlayer2:
		return WinnerPlayer1
	default:
		return WinnerEqual
	}
}
