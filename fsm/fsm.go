package fsm

import (
	"elevsim/types"
	"fmt"
)

/*
 * Allowed state changes of an elevator:
 *   Idle   -> Moving        trip started
 *   Moving -> Moving        route extended
 *   Moving -> Idle          nothing left to serve
 *   Idle   -> OutOfService  taken out of service
 * OutOfService is terminal.
 */
func Transition(from types.State, to types.State) error {
	switch {
	case from == types.Idle && to == types.Moving,
		from == types.Moving && to == types.Moving,
		from == types.Moving && to == types.Idle,
		from == types.Idle && to == types.OutOfService,
		from == types.OutOfService && to == types.OutOfService:
		return nil
	}

	return fmt.Errorf("%w: cannot go from %s to %s", types.ErrInvalidState, from, to)
}
