package elev

import (
	"elevsim/timer"
	"elevsim/types"
	"time"
)

const DOOR_OPEN_DURATION = 7 * time.Second
const SETTLE_DURATION = 2 * time.Second

/*
 * Door actuation, implemented outside the dispatch logic
 */
type Door interface {
	OpenDoor()
	CloseDoor()
}

/*
 * Called while the doors are open at a stop,
 * the place where passengers board and press their destinations
 */
type BoardingFunc func(e *Elevator, stop types.Stop)

type Option func(e *Elevator)

func WithDoor(door Door) Option {
	return func(e *Elevator) {
		e.door = door
	}
}

func WithClock(clock timer.Waiter) Option {
	return func(e *Elevator) {
		e.clock = clock
	}
}

func WithTimings(doorOpenDuration time.Duration, settleDuration time.Duration) Option {
	return func(e *Elevator) {
		e.doorOpenDuration = doorOpenDuration
		e.settleDuration = settleDuration
	}
}

func WithStartFloor(floor int) Option {
	return func(e *Elevator) {
		e.floor = floor
		e.target = floor
	}
}

func WithBoarding(board BoardingFunc) Option {
	return func(e *Elevator) {
		e.board = board
	}
}
