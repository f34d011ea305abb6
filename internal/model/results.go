package model

import "time"

// SkinsHole records how one completed hole resolved in a skins game
type SkinsHole struct {
	Hole    int    `json:"hole"`             // 1-based
	Winner  string `json:"winner,omitempty"` // Empty when the hole was tied
	Value   int    `json:"value"`            // Skins at stake on the hole
	Carried bool   `json:"carried"`
}

// SkinsResult is the state of a skins game
type SkinsResult struct {
	Skins     map[string]int `json:"skins"`
	Carryover int            `json:"carryover"` // Skins at stake on the next unplayed hole
	Holes     []SkinsHole    `json:"holes"`
}

// Total returns the number of skins awarded so far
func (r SkinsResult) Total() int {
	total := 0
	for _, n := range r.Skins {
		total += n
	}
	return total
}

// NassauPoints is one player's points across the three Nassau bets
type NassauPoints struct {
	Front9  int `json:"front9"`
	Back9   int `json:"back9"`
	Overall int `json:"overall"`
}

// Total returns the sum of the three bets
func (p NassauPoints) Total() int {
	return p.Front9 + p.Back9 + p.Overall
}

// SegmentResult is the outcome of one Nassau bet
type SegmentResult struct {
	Decided bool           `json:"decided"`          // The segment has been evaluated
	Winner  string         `json:"winner,omitempty"` // Empty when tied or undecided
	Totals  map[string]int `json:"totals,omitempty"`
}

// NassauResult is the state of a Nassau game
type NassauResult struct {
	Points  map[string]NassauPoints `json:"points"`
	Front   SegmentResult           `json:"front"`
	Back    SegmentResult           `json:"back"`
	Overall SegmentResult           `json:"overall"`
}

// SixPointPattern names a per-hole allocation in the six point system
type SixPointPattern string

const (
	SixPointAllTied     SixPointPattern = "2-2-2"
	SixPointTopTied     SixPointPattern = "3-3-0"
	SixPointBottomTied  SixPointPattern = "3-1-1"
	SixPointAllDistinct SixPointPattern = "4-2-0"
)

// SixPointHole records the allocation made on one hole
type SixPointHole struct {
	Hole    int             `json:"hole"`
	Pattern SixPointPattern `json:"pattern"`
	Points  map[string]int  `json:"points"`
}

// SixPointResult is the state of a six point game
type SixPointResult struct {
	Applicable bool           `json:"applicable"`
	Totals     map[string]int `json:"totals"`    // After the lowest total is reduced to zero
	Raw        map[string]int `json:"raw"`       // Before reduction
	Reduction  int            `json:"reduction"` // Amount subtracted from every player
	Holes      []SixPointHole `json:"holes"`
}

// HoleOutcome records which side won a hole in a match. An empty winner is a halved hole.
type HoleOutcome struct {
	Hole   int    `json:"hole"`
	Winner string `json:"winner,omitempty"`
}

// TeamStanding is one side's position in a team match
type TeamStanding struct {
	Name     string    `json:"name"`
	Players  [2]string `json:"players"`
	HolesWon int       `json:"holes_won"`
}

// TeamMatchResult is the state of a Fourball or Foursomes match
type TeamMatchResult struct {
	Applicable  bool          `json:"applicable"`
	TeamA       TeamStanding  `json:"team_a"`
	TeamB       TeamStanding  `json:"team_b"`
	HolesPlayed int           `json:"holes_played"`
	Holes       []HoleOutcome `json:"holes"`
}

// TeamStrokeStanding is one side's running total in a Scramble
type TeamStrokeStanding struct {
	Name       string    `json:"name"`
	Players    [2]string `json:"players"`
	TotalScore int       `json:"total_score"`
}

// TeamStrokeResult is the state of a Scramble
type TeamStrokeResult struct {
	Applicable  bool               `json:"applicable"`
	TeamA       TeamStrokeStanding `json:"team_a"`
	TeamB       TeamStrokeStanding `json:"team_b"`
	HolesPlayed int                `json:"holes_played"`
}

// MatchPlayResult is the state of a two-player singles match
type MatchPlayResult struct {
	Applicable  bool          `json:"applicable"`
	Players     [2]string     `json:"players"`
	HolesWon    [2]int        `json:"holes_won"`
	HolesPlayed int           `json:"holes_played"`
	Holes       []HoleOutcome `json:"holes"`
}

// FormatResults bundles the latest result of every selected format
type FormatResults struct {
	MatchPlay *MatchPlayResult  `json:"matchplay,omitempty"`
	Skins     *SkinsResult      `json:"skins,omitempty"`
	Nassau    *NassauResult     `json:"nassau,omitempty"`
	SixPoint  *SixPointResult   `json:"sixpoint,omitempty"`
	Fourball  *TeamMatchResult  `json:"fourball,omitempty"`
	Foursomes *TeamMatchResult  `json:"foursomes,omitempty"`
	Scramble  *TeamStrokeResult `json:"scramble,omitempty"`
}

// PlayerTotal is a player's running totals through the current hole
type PlayerTotal struct {
	Name            string `json:"name"`
	GrossTotal      int    `json:"gross_total"`
	StablefordTotal int    `json:"stableford_total"`
	HolesCompleted  int    `json:"holes_completed"`
	SixPointTotal   int    `json:"six_point_total"`
}

// SegmentTotals sums one stretch of a scorecard
type SegmentTotals struct {
	Gross      int `json:"gross"`
	Net        int `json:"net"`
	Stableford int `json:"stableford"`
}

// ScorecardTotals is a player's front nine, back nine and full-round totals
type ScorecardTotals struct {
	Name   string        `json:"name"`
	Team   string        `json:"team,omitempty"`
	Front9 SegmentTotals `json:"front9"`
	Back9  SegmentTotals `json:"back9"`
	Total  SegmentTotals `json:"total"`
}

// Settlement is the final record of a completed round
type Settlement struct {
	RoundID     RoundID                `json:"round_id"`
	CourseID    string                 `json:"course_id"`
	CourseName  string                 `json:"course_name"`
	Players     []Player               `json:"players"`
	Teams       *Teams                 `json:"teams,omitempty"`
	Formats     []Format               `json:"formats"`
	Scores      map[string][]HoleScore `json:"scores"`
	Totals      []ScorecardTotals      `json:"totals"`
	Results     FormatResults          `json:"results"`
	StatusLines []string               `json:"status_lines"`
	Winners     []string               `json:"winners"`
	CompletedAt time.Time              `json:"completed_at"`
}
