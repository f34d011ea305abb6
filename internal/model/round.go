package model

import "time"

// MaxGrossScore is the highest gross score accepted for a hole
const MaxGrossScore = 15

// RoundID uniquely identifies a round
type RoundID string

// RoundStatus represents the lifecycle of a round
type RoundStatus string

const (
	RoundStatusInProgress RoundStatus = "in_progress"
	RoundStatusComplete   RoundStatus = "complete"
)

// HoleScore is one player's result on one hole. Net and Stableford are
// derived from Gross and are never entered directly.
type HoleScore struct {
	Gross      *int `json:"gross"`
	Net        *int `json:"net"`
	Stableford int  `json:"stableford"`
}

// NewHoleScore builds an entered hole score
func NewHoleScore(gross, net, stableford int) HoleScore {
	return HoleScore{Gross: &gross, Net: &net, Stableford: stableford}
}

// HasGross reports whether a gross score has been entered
func (s HoleScore) HasGross() bool {
	return s.Gross != nil
}

// HasNet reports whether a net score has been derived
func (s HoleScore) HasNet() bool {
	return s.Net != nil
}

// Team is one side of a two-a-side format
type Team struct {
	Name    string    `json:"name"`
	Players [2]string `json:"players"`
	// FoursomesPlayer nominates whose score is used as the team ball in
	// Foursomes. Empty means the first player.
	FoursomesPlayer string `json:"foursomes_player,omitempty"`
}

// FoursomesBall returns the name of the player whose score stands for the team
func (t Team) FoursomesBall() string {
	if t.FoursomesPlayer != "" {
		return t.FoursomesPlayer
	}
	return t.Players[0]
}

// Has reports whether the named player is on the team
func (t Team) Has(name string) bool {
	return t.Players[0] == name || t.Players[1] == name
}

// Teams is a fixed two-and-two partition of a four-player round
type Teams struct {
	TeamA Team `json:"team_a"`
	TeamB Team `json:"team_b"`
}

// NewTeams builds teams with the default names
func NewTeams(a, b [2]string) Teams {
	return Teams{
		TeamA: Team{Name: "Team A", Players: a},
		TeamB: Team{Name: "Team B", Players: b},
	}
}

// WithDefaults fills in missing team names
func (t Teams) WithDefaults() Teams {
	if t.TeamA.Name == "" {
		t.TeamA.Name = "Team A"
	}
	if t.TeamB.Name == "" {
		t.TeamB.Name = "Team B"
	}
	return t
}

// Validate checks the teams partition the given four players
func (t Teams) Validate(players []Player) error {
	if len(players) != 4 {
		return ErrInvalidTeams
	}
	roster := make(map[string]bool, len(players))
	for _, p := range players {
		roster[p.Name] = true
	}
	seen := make(map[string]bool, 4)
	for _, name := range append(t.TeamA.Players[:], t.TeamB.Players[:]...) {
		if name == "" || !roster[name] || seen[name] {
			return ErrInvalidTeams
		}
		seen[name] = true
	}
	if t.TeamA.FoursomesPlayer != "" && !t.TeamA.Has(t.TeamA.FoursomesPlayer) {
		return ErrInvalidTeams
	}
	if t.TeamB.FoursomesPlayer != "" && !t.TeamB.Has(t.TeamB.FoursomesPlayer) {
		return ErrInvalidTeams
	}
	return nil
}

// TeamOf returns the name of the team the player belongs to, or ""
func (t *Teams) TeamOf(name string) string {
	if t == nil {
		return ""
	}
	switch {
	case t.TeamA.Has(name):
		return t.TeamA.Name
	case t.TeamB.Has(name):
		return t.TeamB.Name
	}
	return ""
}

// RoundState is the single source of truth for a round in progress.
// Everything in Results is a projection of Scores and is replaced wholesale
// whenever the engines run.
type RoundState struct {
	ID      RoundID  `json:"id"`
	Course  Course   `json:"course"`
	Players []Player `json:"players"`
	Teams   *Teams   `json:"teams,omitempty"`
	Formats []Format `json:"formats"`

	// CurrentHole is 1-based. HoleCount()+1 means every hole is finished.
	CurrentHole int                    `json:"current_hole"`
	Scores      map[string][]HoleScore `json:"scores"`
	Confirmed   []bool                 `json:"confirmed"`

	Status  RoundStatus   `json:"status"`
	Results FormatResults `json:"results"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewRoundState creates a round with every score empty
func NewRoundState(id RoundID, course Course, players []Player, teams *Teams, formats []Format, now time.Time) *RoundState {
	holes := course.HoleCount()
	scores := make(map[string][]HoleScore, len(players))
	for _, p := range players {
		scores[p.Name] = make([]HoleScore, holes)
	}
	return &RoundState{
		ID:          id,
		Course:      course,
		Players:     players,
		Teams:       teams,
		Formats:     formats,
		CurrentHole: 1,
		Scores:      scores,
		Confirmed:   make([]bool, holes),
		Status:      RoundStatusInProgress,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// HoleCount returns the number of holes in the round
func (r *RoundState) HoleCount() int {
	return r.Course.HoleCount()
}

// IsFinished reports whether play has moved past the last hole
func (r *RoundState) IsFinished() bool {
	return r.CurrentHole > r.HoleCount()
}

// IsComplete reports whether the round has been settled
func (r *RoundState) IsComplete() bool {
	return r.Status == RoundStatusComplete
}

// Player returns the player with the given name
func (r *RoundState) Player(name string) (Player, bool) {
	for _, p := range r.Players {
		if p.Name == name {
			return p, true
		}
	}
	return Player{}, false
}

// Score returns a player's score on a 0-based hole index. Missing players and
// holes read as an empty score.
func (r *RoundState) Score(name string, holeIndex int) HoleScore {
	row := r.Scores[name]
	if holeIndex < 0 || holeIndex >= len(row) {
		return HoleScore{}
	}
	return row[holeIndex]
}

// AllScored reports whether every player has a gross score on the hole
func (r *RoundState) AllScored(holeIndex int) bool {
	for _, p := range r.Players {
		if !r.Score(p.Name, holeIndex).HasGross() {
			return false
		}
	}
	return true
}
