package model

import "strings"

// Format identifies a competitive format played during a round
type Format string

const (
	FormatMatchPlay Format = "matchplay"
	FormatSkins     Format = "skins"
	FormatNassau    Format = "nassau"
	FormatSixPoint  Format = "sixpoint"
	FormatFourball  Format = "fourball"
	FormatFoursomes Format = "foursomes"
	FormatScramble  Format = "scramble"
)

// AllFormats lists every format in the order status lines are reported
func AllFormats() []Format {
	return []Format{
		FormatMatchPlay,
		FormatSkins,
		FormatNassau,
		FormatSixPoint,
		FormatFourball,
		FormatFoursomes,
		FormatScramble,
	}
}

// AvailableFormats returns the formats that can be selected for a roster size
func AvailableFormats(playerCount int) []Format {
	switch playerCount {
	case 2:
		return []Format{FormatMatchPlay, FormatNassau, FormatSkins}
	case 3:
		return []Format{FormatSixPoint, FormatNassau, FormatSkins}
	case 4:
		return []Format{FormatFourball, FormatFoursomes, FormatScramble, FormatNassau, FormatSkins}
	default:
		return nil
	}
}

// IsAvailable reports whether the format can be played with the given roster size
func (f Format) IsAvailable(playerCount int) bool {
	for _, a := range AvailableFormats(playerCount) {
		if a == f {
			return true
		}
	}
	return false
}

// IsTeamFormat reports whether the format needs a two-a-side split
func (f Format) IsTeamFormat() bool {
	return f == FormatFourball || f == FormatFoursomes || f == FormatScramble
}

// IsValid reports whether f is a known format
func (f Format) IsValid() bool {
	for _, known := range AllFormats() {
		if f == known {
			return true
		}
	}
	return false
}

// DisplayName returns a human-readable label for a format
func (f Format) DisplayName() string {
	switch f {
	case FormatMatchPlay:
		return "Match Play"
	case FormatSkins:
		return "Skins"
	case FormatNassau:
		return "Nassau"
	case FormatSixPoint:
		return "Six Point"
	case FormatFourball:
		return "Fourball"
	case FormatFoursomes:
		return "Foursomes"
	case FormatScramble:
		return "Scramble"
	default:
		return string(f)
	}
}

// ParseFormat converts user input into a Format
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case "match", "match-play", "match_play":
		f = FormatMatchPlay
	case "six-point", "six_point", "sixpoints":
		f = FormatSixPoint
	}
	if !f.IsValid() {
		return "", ErrUnknownFormat
	}
	return f, nil
}

// HasFormat reports whether formats contains f
func HasFormat(formats []Format, f Format) bool {
	for _, x := range formats {
		if x == f {
			return true
		}
	}
	return false
}
