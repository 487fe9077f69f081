package fsm

import (
	"elevsim/types"
	"math"
)

/*
 * The parts of an elevator the assignment policy looks at
 */
type Candidate struct {
	State types.State
	Dir   types.Direction
	Floor int
}

/*
 * A moving car is compatible with a request when it travels the way the
 * passenger wants to go and will pass the requested floor without reversing
 */
func IsCompatible(candidate Candidate, request types.FloorRequest) bool {
	if candidate.Dir != request.Dir {
		return false
	}

	if candidate.Dir == types.Up {
		return candidate.Floor <= request.Floor
	}
	return candidate.Floor >= request.Floor
}

func Distance(candidate Candidate, request types.FloorRequest) int {
	distance := request.Floor - candidate.Floor
	if distance < 0 {
		return -distance
	}
	return distance
}

/*
 * Pick the elevator that should answer the request.
 * The closest compatible moving elevator within maxDistance wins over any idle one,
 * otherwise the closest idle elevator is used. Out of service elevators are never picked.
 * Ties go to the lowest index. Returns -1 if no elevator can take the request.
 */
func SelectElevator(candidates []Candidate, request types.FloorRequest, maxDistance int) int {
	bestMoving, bestMovingDistance := -1, math.MaxInt
	bestIdle, bestIdleDistance := -1, math.MaxInt

	for i, candidate := range candidates {
		switch candidate.State {
		case types.Idle:
			if distance := Distance(candidate, request); distance < bestIdleDistance {
				bestIdle, bestIdleDistance = i, distance
			}

		case types.Moving:
			if !IsCompatible(candidate, request) {
				continue
			}
			distance := Distance(candidate, request)
			if distance <= maxDistance && distance < bestMovingDistance {
				bestMoving, bestMovingDistance = i, distance
			}
		}
	}

	if bestMoving >= 0 {
		return bestMoving
	}
	return bestIdle
}
