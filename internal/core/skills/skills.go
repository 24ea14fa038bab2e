// Package skills models candidate proficiency as a totally ordered scale
package skills

import "strings"

// Level is an ordinal proficiency rank
// the zero value is not a valid level; Parse returns Beginner for unknown input
type Level int

const (
	// Beginner is the floor of the scale
	Beginner Level = iota + 1
	// Intermediate sits above Beginner
	Intermediate
	// Advanced sits above Intermediate
	Advanced
	// Expert is the ceiling of the scale
	Expert
)

// WorstDelta is the most negative level delta possible on this scale
const WorstDelta = int(Beginner) - int(Expert)

// Parse maps a level name to its ordinal, case insensitive
// unknown names map to Beginner with ok=false so callers can treat them as the floor
func Parse(s string) (Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "BEGINNER":
		return Beginner, true
	case "INTERMEDIATE":
		return Intermediate, true
	case "ADVANCED":
		return Advanced, true
	case "EXPERT":
		return Expert, true
	default:
		return Beginner, false
	}
}

// String returns the canonical upper-case name
func (l Level) String() string {
	switch l {
	case Beginner:
		return "BEGINNER"
	case Intermediate:
		return "INTERMEDIATE"
	case Advanced:
		return "ADVANCED"
	case Expert:
		return "EXPERT"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether l is one of the four defined ranks
func (l Level) Valid() bool { return l >= Beginner && l <= Expert }

// Delta returns ordinal(have) - ordinal(want)
// positive means the candidate exceeds the requirement
func Delta(have, want Level) int { return int(have) - int(want) }
