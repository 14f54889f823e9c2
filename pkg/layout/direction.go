package layout

import (
	"strings"

	"github.com/matzehuels/flowchart/pkg/errors"
)

// Direction is the rank direction of a layout.
type Direction string

const (
	TopBottom Direction = "TB"
	BottomTop Direction = "BT"
	LeftRight Direction = "LR"
	RightLeft Direction = "RL"
)

// DefaultDirection is used when a chart does not specify one.
const DefaultDirection = LeftRight

var directionNames = map[string]Direction{
	"tb": TopBottom, "top-bottom": TopBottom, "down": TopBottom,
	"bt": BottomTop, "bottom-top": BottomTop, "up": BottomTop,
	"lr": LeftRight, "left-right": LeftRight, "right": LeftRight,
	"rl": RightLeft, "right-left": RightLeft, "left": RightLeft,
}

// ParseDirection parses a rank direction code or long name, ignoring case.
// An empty string yields [DefaultDirection].
func ParseDirection(s string) (Direction, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultDirection, nil
	}
	if d, ok := directionNames[s]; ok {
		return d, nil
	}
	return "", errors.New(errors.ErrCodeInvalidDirection, "invalid direction %q (must be TB, BT, LR or RL)", s)
}

// Valid reports whether d is one of the four rank directions.
func (d Direction) Valid() bool {
	switch d {
	case TopBottom, BottomTop, LeftRight, RightLeft:
		return true
	}
	return false
}

func (d Direction) String() string { return string(d) }
