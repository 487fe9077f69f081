package requests

import (
	"elevsim/types"
)

/*
 * Direction of travel from current to target. A zero-length leg counts as up.
 */
func DirectionTowards(current int, target int) types.Direction {
	if target >= current {
		return types.Up
	}
	return types.Down
}

/*
 * Merge floor into the target without reversing the leg:
 * going up the target can only rise, going down it can only fall
 */
func ExtendTarget(dir types.Direction, target int, floor int) int {
	if dir == types.Up {
		return max(target, floor)
	}
	return min(target, floor)
}

/*
 * Merge an in-car floor press into the route.
 * Presses ahead of (or at) the car extend the current leg,
 * presses behind it are deferred to the queued slot for the next leg.
 */
func MergeCabPress(
	dir types.Direction,
	current int,
	target int,
	queued types.OptFloor,
	floor int,
) (int, types.OptFloor) {

	ahead := (dir == types.Up && floor >= current) || (dir == types.Down && floor <= current)
	if ahead {
		return ExtendTarget(dir, target, floor), queued
	}

	if !queued.Valid {
		return target, types.SomeFloor(floor)
	}

	if dir == types.Up {
		return target, types.SomeFloor(min(queued.Floor, floor))
	}
	return target, types.SomeFloor(max(queued.Floor, floor))
}

/*
 * A pending request is in range when it travels the same way as the car,
 * lies ahead of the car, and is no farther than the target or the
 * max distance threshold, whichever reaches farther
 */
func InRange(
	request types.FloorRequest,
	dir types.Direction,
	current int,
	target int,
	maxDistance int,
) bool {

	if request.Dir != dir {
		return false
	}

	switch dir {
	case types.Up:
		highestFloor := max(target, current+maxDistance)
		return request.Floor >= current && request.Floor <= highestFloor

	default:
		lowestFloor := min(target, current-maxDistance)
		return request.Floor <= current && request.Floor >= lowestFloor
	}
}
