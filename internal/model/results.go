package model

// Filters is the wire-level filter specification accepted by every query
// endpoint. All keys are optional; unrecognized values make the query match
// nothing rather than fail.
type Filters struct {
	Format        string   `json:"format,omitempty"`
	InningsType   string   `json:"innings_type,omitempty"`
	Venue         string   `json:"venue,omitempty"`
	MatchCategory string   `json:"match_category,omitempty"`
	BattingOrder  string   `json:"batting_order,omitempty"`
	Country       string   `json:"country,omitempty"`
	Years         []string `json:"years,omitempty"`
	Phase         string   `json:"phase,omitempty"`
	PhaseRole     string   `json:"phase_role,omitempty"`
}

// IsZero reports whether no filter key is set.
func (f Filters) IsZero() bool {
	return f.Format == "" && f.InningsType == "" && f.Venue == "" &&
		f.MatchCategory == "" && f.BattingOrder == "" && f.Country == "" &&
		len(f.Years) == 0 && f.Phase == "" && f.PhaseRole == ""
}

// RunDistribution breaks balls faced down by the runs scored off them.
type RunDistribution struct {
	Dots  int `json:"dots"`
	Ones  int `json:"ones"`
	Twos  int `json:"twos"`
	Fours int `json:"fours"`
	Sixes int `json:"sixes"`
}

// RunDistributionPct is RunDistribution as percentages of balls faced.
type RunDistributionPct struct {
	Dots  float64 `json:"dots"`
	Ones  float64 `json:"ones"`
	Twos  float64 `json:"twos"`
	Fours float64 `json:"fours"`
	Sixes float64 `json:"sixes"`
}

// BattingStats is the derived batting record over a filtered delivery set.
// Average is null when the player was never dismissed; the presentation layer
// decides how to render an undefined ratio.
type BattingStats struct {
	Matches            int                `json:"matches"`
	Innings            int                `json:"innings"`
	Runs               int                `json:"runs"`
	Balls              int                `json:"balls"`
	Average            *float64           `json:"average"`
	StrikeRate         float64            `json:"strike_rate"`
	HighScore          string             `json:"high_score"`
	NotOuts            int                `json:"not_outs"`
	Fours              int                `json:"fours"`
	Sixes              int                `json:"sixes"`
	Fifties            int                `json:"fifties"`
	Hundreds           int                `json:"hundreds"`
	DoubleHundreds     int                `json:"double_hundreds"`
	RunDistribution    RunDistribution    `json:"run_distribution"`
	RunDistributionPct RunDistributionPct `json:"run_distribution_percentage"`
	BoundaryPct        float64            `json:"boundary_percentage"`
}

// BowlingStats is the derived bowling record over a filtered delivery set.
// Average and StrikeRate are null when no wicket was taken. Overs uses the
// non-decimal over notation ("24.3" = 24 overs and 3 legal balls).
type BowlingStats struct {
	Matches        int                `json:"matches"`
	Innings        int                `json:"innings"`
	Overs          string             `json:"overs"`
	Runs           int                `json:"runs"`
	Wickets        int                `json:"wickets"`
	Average        *float64           `json:"average"`
	Economy        float64            `json:"economy"`
	StrikeRate     *float64           `json:"strike_rate"`
	BestBowling    string             `json:"best_bowling"`
	Maidens        int                `json:"maidens"`
	ThreeWickets   int                `json:"three_wickets"`
	FiveWickets    int                `json:"five_wickets"`
	WicketTypes    map[string]int     `json:"wicket_types"`
	WicketTypesPct map[string]float64 `json:"wicket_types_percentage"`
	DotBallPct     float64            `json:"dot_ball_percentage"`
}

// PhaseStats is one player's record inside a single phase window, batting and
// bowling sides together, independent of the player's role elsewhere.
type PhaseStats struct {
	Runs           int     `json:"runs"`
	Balls          int     `json:"balls"`
	Dismissals     int     `json:"dismissals"`
	BattingInnings int     `json:"batting_innings"`
	StrikeRate     float64 `json:"strike_rate"`
	Wickets        int     `json:"wickets"`
	Conceded       int     `json:"conceded"`
	BowlingInnings int     `json:"bowling_innings"`
}

// PhaseAnalysis buckets a player's figures into format phase windows. Test
// cricket has no windows, so both maps stay empty for pure Test queries.
type PhaseAnalysis struct {
	T20Phases map[string]*PhaseStats `json:"t20_phases"`
	ODIPhases map[string]*PhaseStats `json:"odi_phases"`
}

// RivalryRuns ranks an opponent by runs scored against (or conceded to) them.
type RivalryRuns struct {
	Opponent string `json:"opponent"`
	Runs     int    `json:"runs"`
	Matches  int    `json:"matches"`
}

// RivalryWickets ranks an opponent by wickets taken against them.
type RivalryWickets struct {
	Opponent string `json:"opponent"`
	Wickets  int    `json:"wickets"`
	Matches  int    `json:"matches"`
}

// RivalryDismissals ranks an opponent by times they dismissed the player.
type RivalryDismissals struct {
	Opponent   string `json:"opponent"`
	Dismissals int    `json:"dismissals"`
	Matches    int    `json:"matches"`
}

// RivalryAnalysis is the four independently sorted opponent rankings.
type RivalryAnalysis struct {
	MostRunsAgainst    []RivalryRuns       `json:"most_runs_against"`
	MostWicketsAgainst []RivalryWickets    `json:"most_wickets_against"`
	MostRunsConcededTo []RivalryRuns       `json:"most_runs_conceded_to"`
	MostDismissalsBy   []RivalryDismissals `json:"most_dismissals_by"`
}

// InningsSplit carries a player's figures restricted to matches where their
// team batted (or bowled) first.
type InningsSplit struct {
	Matches       int          `json:"matches"`
	BattingStats  BattingStats `json:"batting_stats"`
	BowlingStats  BowlingStats `json:"bowling_stats"`
	WinPercentage float64      `json:"win_percentage"`
}

// MatchSplit divides a player's matches by whether their team batted first.
type MatchSplit struct {
	BattingFirst InningsSplit `json:"batting_first"`
	BowlingFirst InningsSplit `json:"bowling_first"`
}

// PlayerStatsResult is the full derived-statistics answer for one player.
type PlayerStatsResult struct {
	PlayerName      string          `json:"player_name"`
	TotalMatches    int             `json:"total_matches"`
	Batting         BattingStats    `json:"batting"`
	Bowling         BowlingStats    `json:"bowling"`
	PhaseAnalysis   PhaseAnalysis   `json:"phase_analysis"`
	RivalryAnalysis RivalryAnalysis `json:"rivalry_analysis"`
	Matches         MatchSplit      `json:"matches"`
	FiltersApplied  Filters         `json:"filters_applied"`
}

// DirectRecord is one direction of a head-to-head confrontation, in the same
// shape as the overall batting/bowling records.
type DirectRecord struct {
	AsBatsman BattingStats `json:"as_batsman"`
	AsBowler  BowlingStats `json:"as_bowler"`
}

// MatchResults tallies decisive outcomes across the common-match subset.
type MatchResults struct {
	Player1Wins int `json:"player1_wins"`
	Player2Wins int `json:"player2_wins"`
	Ties        int `json:"ties"`
}

// HeadToHead is the direct-confrontation record between two players.
// TotalEncounters counts distinct matches containing both; zero encounters is
// a valid result, not an error.
type HeadToHead struct {
	TotalEncounters  int          `json:"total_encounters"`
	MatchResults     MatchResults `json:"match_results"`
	Player1VsPlayer2 DirectRecord `json:"player1_vs_player2"`
	Player2VsPlayer1 DirectRecord `json:"player2_vs_player1"`
}

// MetricComparison is one metric side by side with its winner tag. Values are
// null when the underlying ratio is undefined; an undefined value never wins.
type MetricComparison struct {
	Player1 *float64 `json:"player1"`
	Player2 *float64 `json:"player2"`
	Better  Winner   `json:"better"`
}

// ComparisonMetrics tags, per metric, which player holds the better value.
type ComparisonMetrics struct {
	BattingComparison map[string]MetricComparison `json:"batting_comparison"`
	BowlingComparison map[string]MetricComparison `json:"bowling_comparison"`
}

// PlayerSlot is one side of a comparison. A player with no qualifying data
// keeps their slot with an explanatory error instead of stats.
type PlayerSlot struct {
	Name  string             `json:"name"`
	Stats *PlayerStatsResult `json:"stats,omitempty"`
	Error string             `json:"error,omitempty"`
}

// ComparisonResult is the full two-player comparison answer. HeadToHead and
// ComparisonMetrics are present only when both players resolved.
type ComparisonResult struct {
	Player1           PlayerSlot         `json:"player1"`
	Player2           PlayerSlot         `json:"player2"`
	HeadToHead        *HeadToHead        `json:"head_to_head,omitempty"`
	ComparisonMetrics *ComparisonMetrics `json:"comparison_metrics,omitempty"`
	FiltersApplied    Filters            `json:"filters_applied"`
}

// WinRecord is a matches/wins split with its derived percentage, used for
// the batting-first, bowling-first and per-format team breakdowns.
type WinRecord struct {
	Matches       int     `json:"matches"`
	Wins          int     `json:"wins"`
	WinPercentage float64 `json:"win_percentage"`
}

// TeamGeneralStats covers results and toss outcomes for one team.
// WinPercentage is over decided matches only; draws and no-results are
// excluded from the denominator. TossWinPercentage is over all matches.
type TeamGeneralStats struct {
	Wins              int                  `json:"wins"`
	Losses            int                  `json:"losses"`
	Draws             int                  `json:"draws"`
	WinPercentage     float64              `json:"win_percentage"`
	TossWins          int                  `json:"toss_wins"`
	TossWinPercentage float64              `json:"toss_win_percentage"`
	BattingFirst      WinRecord            `json:"batting_first"`
	BowlingFirst      WinRecord            `json:"bowling_first"`
	FormatPerformance map[string]WinRecord `json:"format_performance"`
}

// TeamBattingStats summarizes the team's innings totals.
type TeamBattingStats struct {
	Innings        int     `json:"innings"`
	TotalRuns      int     `json:"total_runs"`
	AverageScore   float64 `json:"average_score"`
	HighestScore   int     `json:"highest_score"`
	LowestScore    int     `json:"lowest_score"`
	ScoresOver300  int     `json:"scores_300_plus"`
	ScoresUnder150 int     `json:"scores_150_minus"`
}

// TeamBowlingStats summarizes what opponents scored against the team.
// BestDefense is the lowest total the team held an opponent to.
type TeamBowlingStats struct {
	Innings            int     `json:"innings"`
	RunsConceded       int     `json:"runs_conceded"`
	AverageConceded    float64 `json:"average_runs_conceded"`
	BestDefense        int     `json:"best_defense"`
	WorstDefense       int     `json:"worst_defense"`
	RestrictedUnder200 int     `json:"restricted_under_200"`
	ConcededOver300    int     `json:"conceded_300_plus"`
}

// OpponentRecord is the team's win/loss ledger against one opponent.
type OpponentRecord struct {
	Opponent      string  `json:"opponent"`
	Matches       int     `json:"matches"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	WinPercentage float64 `json:"win_percentage"`
}

// TeamStatsResult is the full derived-statistics answer for one team.
type TeamStatsResult struct {
	TeamName       string           `json:"team_name"`
	TotalMatches   int              `json:"total_matches"`
	General        TeamGeneralStats `json:"general"`
	Batting        TeamBattingStats `json:"batting"`
	Bowling        TeamBowlingStats `json:"bowling"`
	Opponents      []OpponentRecord `json:"opponents"`
	FiltersApplied Filters          `json:"filters_applied"`
}

// TeamSlot is one side of a team comparison, mirroring PlayerSlot.
type TeamSlot struct {
	Name  string           `json:"name"`
	Stats *TeamStatsResult `json:"stats,omitempty"`
	Error string           `json:"error,omitempty"`
}

// TeamHeadToHead tallies the fixtures the two teams played against each
// other inside the filtered set. Percentages are over decided matches.
type TeamHeadToHead struct {
	TotalMatches       int     `json:"total_matches"`
	Team1Wins          int     `json:"team1_wins"`
	Team2Wins          int     `json:"team2_wins"`
	Draws              int     `json:"draws"`
	Team1WinPercentage float64 `json:"team1_win_percentage"`
	Team2WinPercentage float64 `json:"team2_win_percentage"`
}

// TeamComparisonResult is the two-team comparison answer. HeadToHead is
// present only when both teams resolved.
type TeamComparisonResult struct {
	Team1          TeamSlot        `json:"team1"`
	Team2          TeamSlot        `json:"team2"`
	HeadToHead     *TeamHeadToHead `json:"head_to_head,omitempty"`
	FiltersApplied Filters         `json:"filters_applied"`
}

// VenueBattingStats describes how the venue scores: per-innings totals plus
// boundary frequency across every delivery bowled there.
type VenueBattingStats struct {
	Innings            int     `json:"innings"`
	AverageScore       float64 `json:"average_score"`
	HighestScore       int     `json:"highest_score"`
	LowestScore        int     `json:"lowest_score"`
	ScoresOver300      int     `json:"scores_300_plus"`
	ScoresUnder150     int     `json:"scores_150_minus"`
	Fours              int     `json:"fours"`
	Sixes              int     `json:"sixes"`
	BoundaryPercentage float64 `json:"boundary_percentage"`
}

// VenueBowlingStats describes how wickets fall at the venue. BowlingAverage
// is null while no wicket has fallen there.
type VenueBowlingStats struct {
	TotalWickets    int                `json:"total_wickets"`
	BowlingAverage  *float64           `json:"bowling_average"`
	WicketsPerMatch float64            `json:"wickets_per_match"`
	WicketTypes     map[string]int     `json:"wicket_types"`
	WicketTypesPct  map[string]float64 `json:"wicket_types_percentage"`
}

// VenueTossStats captures whether winning the toss, or batting first,
// correlates with winning at the venue. Both fall back to 50 when no match
// there was decided.
type VenueTossStats struct {
	Decisions              map[string]int `json:"decisions"`
	TossWinPercentage      float64        `json:"toss_win_percentage"`
	BatFirstWinPercentage  float64        `json:"bat_first_win_percentage"`
	BowlFirstWinPercentage float64        `json:"bowl_first_win_percentage"`
}

// VenueTeamRecord is one team's record at the venue.
type VenueTeamRecord struct {
	Team          string  `json:"team"`
	Matches       int     `json:"matches"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	WinPercentage float64 `json:"win_percentage"`
}

// VenueStatsResult is the full derived-statistics answer for one venue.
type VenueStatsResult struct {
	VenueName      string            `json:"venue_name"`
	TotalMatches   int               `json:"total_matches"`
	Formats        map[string]int    `json:"formats"`
	TeamsPlayed    int               `json:"teams_played"`
	Batting        VenueBattingStats `json:"batting"`
	Bowling        VenueBowlingStats `json:"bowling"`
	Toss           VenueTossStats    `json:"toss"`
	Teams          []VenueTeamRecord `json:"teams"`
	FiltersApplied Filters           `json:"filters_applied"`
}

// LoadStatus reports background loader progress.
type LoadStatus struct {
	Loading       bool `json:"loading"`
	FilesLoaded   int  `json:"files_loaded"`
	TotalFiles    int  `json:"total_files"`
	ParseFailures int  `json:"parse_failures"`
	MatchesLoaded int  `json:"matches_loaded"`
}
