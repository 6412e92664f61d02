package engine

import (
	"fmt"
	"strings"
)

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every direction in a fixed order.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// Vector returns the unit step (dr, dc) tiles slide along.
func (d Direction) Vector() (dr, dc int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	case DirRight:
		return 0, 1
	default:
		return 0, 0
	}
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// String returns a lowercase name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection maps a name ("up", "l", "right", ...) to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u", "north":
		return DirUp, nil
	case "down", "d", "south":
		return DirDown, nil
	case "left", "l", "west":
		return DirLeft, nil
	case "right", "r", "east":
		return DirRight, nil
	}
	return 0, fmt.Errorf("engine: unknown direction %q", s)
}
