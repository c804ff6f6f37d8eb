package gallery

import "github.com/marcus/lightbox/internal/models"

// Step returns the position reached by moving one step in dir inside a
// group of the given length, wrapping at both ends. Step is pure.
//
// A length of zero or less has no valid positions; Step returns 0 for it.
// The session never calls Step with an empty group.
func Step(dir models.Direction, length, pos int) int {
	if length <= 0 {
		return 0
	}
	switch dir {
	case models.Prev:
		if pos != 0 && pos+1 <= length {
			return pos - 1
		}
		return length - 1
	default:
		if pos+1 < length {
			return pos + 1
		}
		return 0
	}
}
