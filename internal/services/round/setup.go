package round

import (
	"fmt"
	"strings"

	"github.com/mcoot/golfscore/internal/model"
)

// MaxPlayers is the largest group a round can be scored for
const MaxPlayers = 4

// Setup describes a round to be started
type Setup struct {
	CourseID string
	Players  []model.Player
	Formats  []model.Format
	Teams    *model.Teams
}

// normalize trims player names, removes repeated formats and validates the
// roster, formats and teams against each other
func (s Setup) normalize() (Setup, error) {
	if len(s.Players) == 0 || len(s.Players) > MaxPlayers {
		return s, model.ErrInvalidRoster
	}

	players := make([]model.Player, len(s.Players))
	seen := make(map[string]bool, len(s.Players))
	for i, p := range s.Players {
		p.Name = strings.TrimSpace(p.Name)
		if p.Name == "" {
			return s, model.ErrInvalidRoster
		}
		if seen[p.Name] {
			return s, fmt.Errorf("%w: %s", model.ErrDuplicatePlayer, p.Name)
		}
		seen[p.Name] = true
		p.TeeColor = strings.ToLower(strings.TrimSpace(p.TeeColor))
		players[i] = p
	}

	formats := make([]model.Format, 0, len(s.Formats))
	needsTeams := false
	for _, f := range s.Formats {
		if !f.IsValid() {
			return s, fmt.Errorf("%w: %q", model.ErrUnknownFormat, f)
		}
		if !f.IsAvailable(len(players)) {
			return s, fmt.Errorf("%w: %s with %d players", model.ErrFormatNotAvailable, f.DisplayName(), len(players))
		}
		if model.HasFormat(formats, f) {
			continue
		}
		formats = append(formats, f)
		needsTeams = needsTeams || f.IsTeamFormat()
	}

	var teams *model.Teams
	if s.Teams != nil {
		t := s.Teams.WithDefaults()
		if err := t.Validate(players); err != nil {
			return s, err
		}
		teams = &t
	} else if needsTeams {
		return s, model.ErrTeamsRequired
	}

	return Setup{
		CourseID: strings.TrimSpace(s.CourseID),
		Players:  players,
		Formats:  formats,
		Teams:    teams,
	}, nil
}
