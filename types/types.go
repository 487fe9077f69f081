package types

import (
	"fmt"
	"strings"
)

type Direction int

const (
	Up Direction = iota
	Down
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	default:
		return "Undefined"
	}
}

/*
 * Floor increment for one step of travel in this direction
 */
func (d Direction) Step() int {
	if d == Down {
		return -1
	}
	return 1
}

func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return Up, nil
	case "down", "d":
		return Down, nil
	default:
		return Up, fmt.Errorf("unknown direction %q", s)
	}
}

/*
 * A hall call: someone on Floor wants to travel in Dir
 */
type FloorRequest struct {
	Floor int
	Dir   Direction
}

func (r FloorRequest) String() string {
	return fmt.Sprintf("%d/%s", r.Floor, r.Dir)
}

/*
 * Optional floor, used for the single deferred destination of an elevator
 */
type OptFloor struct {
	Floor int
	Valid bool
}

func SomeFloor(floor int) OptFloor {
	return OptFloor{Floor: floor, Valid: true}
}

func (o OptFloor) String() string {
	if !o.Valid {
		return "none"
	}
	return fmt.Sprint(o.Floor)
}

/*
 * A door cycle in progress. LegEnd is set when the car has reached its target
 * and has not yet committed to a new direction.
 */
type Stop struct {
	Floor  int
	Dir    Direction
	LegEnd bool
}
