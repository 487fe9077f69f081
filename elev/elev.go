package elev

import (
	"elevsim/fsm"
	"elevsim/orders"
	"elevsim/requests"
	"elevsim/timer"
	"elevsim/types"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

/*
 * A single car. Not safe for concurrent use: all calls must come from the
 * goroutine that owns the controller.
 */
type Elevator struct {
	id    int
	hall  *orders.Hall
	door  Door
	clock timer.Waiter
	board BoardingFunc
	log   zerolog.Logger

	doorOpenDuration time.Duration
	settleDuration   time.Duration

	floor  int
	target int
	queued types.OptFloor
	dir    types.Direction
	state  types.State

	/*
	 * Floors the car must stop at when passing, besides hall calls in its direction
	 */
	stops []bool

	/*
	 * Floor of the pending call this leg was started for. Served as a leg end
	 * even if claiming carried the target past it.
	 */
	pickup types.OptFloor
}

func (e *Elevator) ID() int                    { return e.id }
func (e *Elevator) Floor() int                 { return e.floor }
func (e *Elevator) Target() int                { return e.target }
func (e *Elevator) Queued() types.OptFloor     { return e.queued }
func (e *Elevator) Direction() types.Direction { return e.dir }
func (e *Elevator) State() types.State         { return e.state }

func (e *Elevator) Status() types.ElevatorStatus {
	return types.ElevatorStatus{
		ID:     e.id,
		Floor:  e.floor,
		Target: e.target,
		Queued: e.queued,
		Dir:    e.dir,
		State:  e.state,
	}
}

func (e *Elevator) setState(state types.State) {
	if err := fsm.Transition(e.state, state); err != nil {
		e.log.Error().Err(err).Msg("Illegal state change")
		panic(err)
	}
	e.state = state
}

func (e *Elevator) SetOutOfService() error {
	if err := fsm.Transition(e.state, types.OutOfService); err != nil {
		return fmt.Errorf("elevator %d: %w", e.id, err)
	}

	e.state = types.OutOfService
	e.log.Warn().Int("floor", e.floor).Msg("Elevator out of service")

	return nil
}

/*
 * In-car floor button. Requests ahead of the car extend the current leg,
 * requests behind it are deferred to the next leg, so the car never
 * reverses before finishing its current direction.
 */
func (e *Elevator) PressFloorButton(floor int) error {
	if err := e.checkAttached(); err != nil {
		return err
	}

	if err := types.CheckFloor(floor, e.hall.NumFloors()); err != nil {
		e.log.Warn().Err(err).Msg("Rejected floor button")
		return err
	}

	switch e.state {
	case types.OutOfService:
		return fmt.Errorf("%w: elevator %d is out of service", types.ErrInvalidState, e.id)

	case types.Idle:
		return e.GoToFloor(floor)
	}

	e.target, e.queued = requests.MergeCabPress(e.dir, e.floor, e.target, e.queued, floor)

	if floor != e.floor {
		e.stops[floor] = true
	}

	e.log.Debug().
		Int("pressed", floor).
		Int("target", e.target).
		Stringer("queued", e.queued).
		Msg("Floor button pressed")

	return nil
}

/*
 * Merge a hall call into the leg of a moving car
 */
func (e *Elevator) ExtendTarget(floor int) error {
	if err := e.checkAttached(); err != nil {
		return err
	}

	if err := types.CheckFloor(floor, e.hall.NumFloors()); err != nil {
		return err
	}

	if e.state != types.Moving {
		return fmt.Errorf("%w: elevator %d is %s, expected %s", types.ErrInvalidState, e.id, e.state, types.Moving)
	}

	e.target = requests.ExtendTarget(e.dir, e.target, floor)

	return nil
}

/*
 * Start a trip on an idle elevator. Runs until the elevator has nothing left
 * to serve, possibly over several legs, and returns with the elevator idle.
 */
func (e *Elevator) GoToFloor(floor int) error {
	if err := e.checkAttached(); err != nil {
		return err
	}

	if err := types.CheckFloor(floor, e.hall.NumFloors()); err != nil {
		return err
	}

	if e.state != types.Idle {
		return fmt.Errorf("%w: elevator %d is %s, expected %s", types.ErrInvalidState, e.id, e.state, types.Idle)
	}

	e.target = floor
	e.setState(types.Moving)
	e.dir = requests.DirectionTowards(e.floor, e.target)

	e.log.Info().
		Int("from", e.floor).
		Int("to", e.target).
		Stringer("dir", e.dir).
		Msg("Trip started")

	e.travel()

	return nil
}

func (e *Elevator) travel() {
	if e.floor != e.target {
		e.servePassing()
	}

	for {
		for e.floor != e.target {
			e.floor += e.dir.Step()
			e.log.Debug().Int("floor", e.floor).Msg("Reached floor")

			if e.floor != e.target {
				e.servePassing()
			}
		}

		e.serveLegEnd()

		/*
		 * Someone boarding pressed a floor further along
		 */
		if e.floor != e.target {
			continue
		}

		if !e.nextLeg() {
			e.setState(types.Idle)
			e.log.Info().Int("floor", e.floor).Msg("Elevator idle")
			return
		}
	}
}

/*
 * Stop at a floor on the way if someone there wants to go our way
 * or someone inside wants to get off
 */
func (e *Elevator) servePassing() {
	if e.pickup.Valid && e.pickup.Floor == e.floor {
		e.serveLegEnd()
		return
	}

	summoned := e.hall.TakeSummon(e.floor, e.dir)

	if summoned {
		floor, dir := e.floor, e.dir
		e.logServed(e.hall.Claim(func(request types.FloorRequest) bool {
			return request.Floor == floor && request.Dir == dir
		}))
	}

	if summoned || e.stops[e.floor] {
		e.cycleDoors(types.Stop{Floor: e.floor, Dir: e.dir})
	}
}

/*
 * At the end of a leg the car has no committed direction yet,
 * so everyone waiting here boards
 */
func (e *Elevator) serveLegEnd() {
	e.pickup = types.OptFloor{}

	e.hall.TakeSummon(e.floor, types.Up)
	e.hall.TakeSummon(e.floor, types.Down)

	floor := e.floor
	e.logServed(e.hall.Claim(func(request types.FloorRequest) bool {
		return request.Floor == floor
	}))

	e.cycleDoors(types.Stop{Floor: e.floor, Dir: e.dir, LegEnd: true})
}

func (e *Elevator) logServed(served []orders.Pending) {
	for _, entry := range served {
		e.log.Info().
			Str("request", entry.ID.String()).
			Stringer("call", entry.Request).
			Msg("Served pending request at stop")
	}
}

func (e *Elevator) cycleDoors(stop types.Stop) {
	e.stops[stop.Floor] = false

	e.clock.Wait(e.settleDuration)
	e.door.OpenDoor()

	if e.board != nil {
		e.board(e, stop)
	}

	e.clock.Wait(e.doorOpenDuration)
	e.door.CloseDoor()
	e.clock.Wait(e.settleDuration)
}

/*
 * Pick the next target once the current one is reached: the queued
 * in-car request first, then the request that has waited longest.
 */
func (e *Elevator) nextLeg() bool {
	for {
		if e.queued.Valid {
			e.target = e.queued.Floor
			e.queued = types.OptFloor{}
			break
		}

		entry, ok := e.hall.PopOldest()
		if !ok {
			return false
		}

		if entry.Request.Floor == e.floor {
			e.hall.TakeSummon(e.floor, entry.Request.Dir)
			continue
		}

		e.log.Info().
			Str("request", entry.ID.String()).
			Stringer("call", entry.Request).
			Dur("waited", e.hall.Now()-entry.Since).
			Msg("Took oldest pending request")

		e.target = entry.Request.Floor
		e.pickup = types.SomeFloor(e.target)
		break
	}

	/*
	 * Claiming may carry the target past this floor, the car still stops here
	 */
	e.stops[e.target] = true

	e.setState(types.Moving)
	e.dir = requests.DirectionTowards(e.floor, e.target)
	e.claimPendingRequests()

	e.log.Info().
		Int("from", e.floor).
		Int("to", e.target).
		Stringer("dir", e.dir).
		Msg("New leg")

	return true
}

/*
 * Take over pending requests that lie along the new leg, or slightly past
 * its end within the max distance threshold
 */
func (e *Elevator) claimPendingRequests() {
	threshold := e.hall.MaxDistanceThreshold()
	floor, target, dir := e.floor, e.target, e.dir

	claimed := e.hall.Claim(func(request types.FloorRequest) bool {
		return requests.InRange(request, dir, floor, target, threshold)
	})

	for _, entry := range claimed {
		e.target = requests.ExtendTarget(e.dir, e.target, entry.Request.Floor)

		e.log.Info().
			Str("request", entry.ID.String()).
			Stringer("call", entry.Request).
			Int("target", e.target).
			Msg("Claimed pending request")
	}
}
