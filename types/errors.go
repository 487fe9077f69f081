package types

import (
	"errors"
	"fmt"
)

var (
	ErrFloorOutOfRange = errors.New("floor out of range")
	ErrInvalidState    = errors.New("invalid elevator state")
)

/*
 * Floors are zero-indexed, numFloors is exclusive
 */
func CheckFloor(floor int, numFloors int) error {
	if floor < 0 || floor >= numFloors {
		return fmt.Errorf("%w: floor %d not in [0, %d)", ErrFloorOutOfRange, floor, numFloors)
	}
	return nil
}
