package elev

import (
	"elevsim/logger"
	"elevsim/orders"
	"elevsim/timer"
	"elevsim/types"
	"fmt"
)

func New(opts ...Option) *Elevator {
	elevator := Elevator{
		id:               -1,
		clock:            timer.NewClock(0),
		doorOpenDuration: DOOR_OPEN_DURATION,
		settleDuration:   SETTLE_DURATION,
		dir:              types.Up,
		state:            types.Idle,
		log:              *logger.GetLogger(),
	}

	for _, opt := range opts {
		opt(&elevator)
	}

	return &elevator
}

/*
 * Bind the elevator to the building's hall state. Done once by the controller.
 */
func (e *Elevator) Attach(id int, hall *orders.Hall) error {
	if e.hall != nil {
		return fmt.Errorf("elevator %d is already attached", e.id)
	}

	if err := types.CheckFloor(e.floor, hall.NumFloors()); err != nil {
		return fmt.Errorf("elevator %d start floor: %w", id, err)
	}

	e.id = id
	e.hall = hall
	e.stops = make([]bool, hall.NumFloors())
	e.log = logger.GetLogger().With().Int("elevator", id).Logger()

	if e.door == nil {
		e.door = loggingDoor{log: &e.log}
	}

	return nil
}

/*
 * Load a previously taken status, e.g. to resume a fleet
 */
func (e *Elevator) Restore(status types.ElevatorStatus) error {
	if err := e.checkAttached(); err != nil {
		return err
	}

	if err := status.Validate(e.hall.NumFloors()); err != nil {
		return err
	}

	e.floor = status.Floor
	e.target = status.Target
	e.queued = status.Queued
	e.dir = status.Dir
	e.state = status.State
	e.pickup = types.OptFloor{}

	for floor := range e.stops {
		e.stops[floor] = false
	}

	e.log.Info().
		Int("floor", e.floor).
		Int("target", e.target).
		Str("state", e.state.String()).
		Msg("Restored elevator")

	return nil
}

func (e *Elevator) checkAttached() error {
	if e.hall == nil {
		return fmt.Errorf("%w: elevator is not attached to a controller", types.ErrInvalidState)
	}
	return nil
}
