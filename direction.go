package dirfix

import (
	"errors"
	"fmt"
	"strings"
)

// Direction is a text direction. The zero value is Neutral, i.e. no strong
// direction at all.
type Direction int8

// Directions
const (
	Neutral Direction = iota // no strong direction
	LTR                      // left-to-right
	RTL                      // right-to-left
)

// ErrUnknownDirection is returned by ParseDirection for unrecognized input.
var ErrUnknownDirection = errors.New("dirfix: unknown direction")

// String returns the value to be used for a dir attribute, i.e. "ltr" or
// "rtl". Neutral is represented by an empty string.
func (d Direction) String() string {
	switch d {
	case LTR:
		return "ltr"
	case RTL:
		return "rtl"
	}
	return ""
}

// IsStrong is true for LTR and RTL.
func (d Direction) IsStrong() bool {
	return d == LTR || d == RTL
}

// Opposite returns RTL for LTR and vice versa. Neutral stays Neutral.
func (d Direction) Opposite() Direction {
	switch d {
	case LTR:
		return RTL
	case RTL:
		return LTR
	}
	return Neutral
}

// ParseDirection reads a direction from a string. Accepted values are "ltr"
// and "rtl". "", "none", "null" and "auto" denote Neutral. Case is ignored.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ltr":
		return LTR, nil
	case "rtl":
		return RTL, nil
	case "", "none", "null", "auto":
		return Neutral, nil
	}
	return Neutral, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}
