package request

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mcoot/golfscore/internal/model"
	"github.com/mcoot/golfscore/internal/services/round"
)

// Player is a golfer in a start round request
type Player struct {
	Name          string  `json:"name"`
	HandicapIndex float64 `json:"handicap_index"`
	TeeColor      string  `json:"tee_color,omitempty"`
}

// Team is one side in a start round request
type Team struct {
	Name            string    `json:"name,omitempty"`
	Players         [2]string `json:"players"`
	FoursomesPlayer string    `json:"foursomes_player,omitempty"`
}

// Teams splits a four-ball into two sides
type Teams struct {
	TeamA Team `json:"team_a"`
	TeamB Team `json:"team_b"`
}

// StartRoundRequest is the request body for starting a round
type StartRoundRequest struct {
	CourseID string   `json:"course_id,omitempty"`
	Players  []Player `json:"players"`
	Formats  []string `json:"formats,omitempty"`
	Teams    *Teams   `json:"teams,omitempty"`
}

// ToSetup converts the request into a round setup. Format names are
// accepted in any of their spellings.
func (r StartRoundRequest) ToSetup() (round.Setup, error) {
	setup := round.Setup{
		CourseID: r.CourseID,
		Players:  make([]model.Player, len(r.Players)),
	}
	for i, p := range r.Players {
		setup.Players[i] = model.Player{Name: p.Name, HandicapIndex: p.HandicapIndex, TeeColor: p.TeeColor}
	}
	for _, name := range r.Formats {
		f, err := model.ParseFormat(name)
		if err != nil {
			return setup, fmt.Errorf("%w: %q", err, name)
		}
		setup.Formats = append(setup.Formats, f)
	}
	if r.Teams != nil {
		setup.Teams = &model.Teams{
			TeamA: model.Team(r.Teams.TeamA),
			TeamB: model.Team(r.Teams.TeamB),
		}
	}
	return setup, nil
}

// ScoreRequest is the request body for entering a score. Without a hole the
// score goes on the current hole.
type ScoreRequest struct {
	Player string `json:"player"`
	Gross  int    `json:"gross"`
	Hole   *int   `json:"hole,omitempty"`
}

// ParsePlayerParam parses a "name:index[:tee]" query parameter
func ParsePlayerParam(s string) (model.Player, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 || strings.TrimSpace(parts[0]) == "" {
		return model.Player{}, fmt.Errorf("player %q must be name:index or name:index:tee", s)
	}
	index, err := strconv.ParseFloat(parts[1], 64)
	if err != nil || math.IsNaN(index) || math.IsInf(index, 0) {
		return model.Player{}, fmt.Errorf("player %q has an invalid handicap index", s)
	}
	p := model.Player{Name: strings.TrimSpace(parts[0]), HandicapIndex: index}
	if len(parts) == 3 {
		p.TeeColor = strings.ToLower(parts[2])
	}
	return p, nil
}
