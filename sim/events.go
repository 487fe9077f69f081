package sim

import (
	"elevsim/types"
	"fmt"
)

type EventKind int

const (
	SUMMON EventKind = iota
	PRESS
	OUT_OF_SERVICE
)

func (k EventKind) String() string {
	switch k {
	case SUMMON:
		return "summon"
	case PRESS:
		return "press"
	case OUT_OF_SERVICE:
		return "out_of_service"
	default:
		return "unknown"
	}
}

/*
 * Something that happens in the building.
 *   SUMMON: hall call at Floor in Dir, Destination is where the rider wants to go
 *   PRESS: floor button Floor pressed inside Elevator
 *   OUT_OF_SERVICE: Elevator taken out of service
 */
type Event struct {
	Kind        EventKind
	Floor       int
	Dir         types.Direction
	Destination types.OptFloor
	Elevator    int
}

func (e Event) String() string {
	switch e.Kind {
	case SUMMON:
		return fmt.Sprintf("summon %d %s -> %s", e.Floor, e.Dir, e.Destination)
	case PRESS:
		return fmt.Sprintf("press %d in elevator %d", e.Floor, e.Elevator)
	default:
		return fmt.Sprintf("%s elevator %d", e.Kind, e.Elevator)
	}
}
