package model

// DefaultTeeColor is used when a player has not chosen a tee
const DefaultTeeColor = "white"

// Player represents a golfer in a round
type Player struct {
	Name          string  `json:"name" yaml:"name"` // Unique within a round
	HandicapIndex float64 `json:"handicap_index" yaml:"handicap_index"`
	TeeColor      string  `json:"tee_color,omitempty" yaml:"tee_color,omitempty"`
}

// Tee returns the player's tee colour, falling back to the default tee
func (p Player) Tee() string {
	if p.TeeColor == "" {
		return DefaultTeeColor
	}
	return p.TeeColor
}

// PlayerNames returns the names of the given players in order
func PlayerNames(players []Player) []string {
	names := make([]string, len(players))
	for i, p := range players {
		names[i] = p.Name
	}
	return names
}
