package types

import (
	"fmt"
	"time"
)

/*
 * MaxDistanceThreshold nil means floors/elevators.
 * Zero durations keep the elevator defaults.
 */
type BuildingConfig struct {
	NumFloors            int
	NumElevators         int
	MaxDistanceThreshold *int
	DoorOpenDuration     time.Duration
	SettleDuration       time.Duration
}

type ElevatorStatus struct {
	ID     int
	Floor  int
	Target int
	Queued OptFloor
	Dir    Direction
	State  State
}

type BuildingStatus struct {
	NumFloors            int
	MaxDistanceThreshold int
	UpSummons            []bool
	DownSummons          []bool
	Pending              []FloorRequest
	Elevators            []ElevatorStatus
}

/*
 * Checks the invariants a status must hold to be loaded into an elevator:
 * floors in range, direction agrees with target while moving, no queued target while idle
 */
func (s ElevatorStatus) Validate(numFloors int) error {
	if err := CheckFloor(s.Floor, numFloors); err != nil {
		return err
	}
	if err := CheckFloor(s.Target, numFloors); err != nil {
		return err
	}
	if s.Queued.Valid {
		if err := CheckFloor(s.Queued.Floor, numFloors); err != nil {
			return err
		}
	}

	switch s.State {
	case Idle:
		if s.Queued.Valid {
			return fmt.Errorf("%w: idle elevator %d has queued target %d", ErrInvalidState, s.ID, s.Queued.Floor)
		}
	case Moving:
		if (s.Dir == Up && s.Target < s.Floor) || (s.Dir == Down && s.Target > s.Floor) {
			return fmt.Errorf("%w: elevator %d moving %s from %d to %d", ErrInvalidState, s.ID, s.Dir, s.Floor, s.Target)
		}
	case OutOfService:
	default:
		return fmt.Errorf("%w: unknown state %d", ErrInvalidState, s.State)
	}

	return nil
}
