package controller

import (
	"elevsim/elev"
	"elevsim/fsm"
	"elevsim/logger"
	"elevsim/orders"
	"elevsim/types"
	"errors"
	"fmt"
	"time"
)

var Log = logger.GetLogger()

/*
 * Central dispatch for every elevator in a building. Owns the hall state
 * (summon flags and pending requests) that the elevators consult while moving.
 * Not safe for concurrent use; drive it from a single goroutine.
 */
type Controller struct {
	hall      *orders.Hall
	elevators []*elev.Elevator
}

/*
 * A uniform fleet of cfg.NumElevators elevators built with the same options
 */
func New(cfg types.BuildingConfig, opts ...elev.Option) (*Controller, error) {
	if cfg.NumElevators < 1 {
		return nil, errors.New("a building needs at least one elevator")
	}

	if cfg.DoorOpenDuration > 0 || cfg.SettleDuration > 0 {
		opts = append([]elev.Option{elev.WithTimings(cfg.DoorOpenDuration, cfg.SettleDuration)}, opts...)
	}

	elevators := make([]*elev.Elevator, cfg.NumElevators)
	for i := range elevators {
		elevators[i] = elev.New(opts...)
	}

	controller, err := NewWithElevators(cfg.NumFloors, elevators)
	if err != nil {
		return nil, err
	}

	if cfg.MaxDistanceThreshold != nil {
		controller.SetMaxDistanceThreshold(*cfg.MaxDistanceThreshold)
	}

	return controller, nil
}

/*
 * Control a pre-built, possibly heterogeneous fleet
 */
func NewWithElevators(numFloors int, elevators []*elev.Elevator) (*Controller, error) {
	if numFloors < 1 {
		return nil, fmt.Errorf("a building needs at least one floor, got %d", numFloors)
	}

	if len(elevators) == 0 {
		return nil, errors.New("a building needs at least one elevator")
	}

	hall := orders.NewHall(numFloors, numFloors/len(elevators))

	for id, elevator := range elevators {
		if err := elevator.Attach(id, hall); err != nil {
			return nil, err
		}
	}

	Log.Info().
		Int("floors", numFloors).
		Int("elevators", len(elevators)).
		Int("maxDistance", hall.MaxDistanceThreshold()).
		Msg("Controller ready")

	return &Controller{hall: hall, elevators: elevators}, nil
}

func (c *Controller) NumFloors() int {
	return c.hall.NumFloors()
}

func (c *Controller) MaxDistanceThreshold() int {
	return c.hall.MaxDistanceThreshold()
}

/*
 * Override the default threshold, clamped to [0, floors]
 */
func (c *Controller) SetMaxDistanceThreshold(maxFloors int) {
	c.hall.SetMaxDistanceThreshold(maxFloors)
}

func (c *Controller) Elevators() []*elev.Elevator {
	return append([]*elev.Elevator(nil), c.elevators...)
}

func (c *Controller) Elevator(id int) (*elev.Elevator, error) {
	if id < 0 || id >= len(c.elevators) {
		return nil, fmt.Errorf("no elevator with id %d", id)
	}
	return c.elevators[id], nil
}

func (c *Controller) Pending() []types.FloorRequest {
	return c.hall.Pending()
}

func (c *Controller) Summons(dir types.Direction) []bool {
	return c.hall.Summons(dir)
}

/*
 * Hall call from floor in direction dir. Either hands the call to an elevator,
 * which may run its whole trip before this returns, or queues it as pending.
 */
func (c *Controller) Summon(floor int, dir types.Direction) error {
	if err := types.CheckFloor(floor, c.hall.NumFloors()); err != nil {
		Log.Warn().Err(err).Msg("Rejected summon")
		return err
	}

	request := types.FloorRequest{Floor: floor, Dir: dir}
	c.hall.Summon(request)

	elevator := c.selectElevator(request)

	if elevator == nil {
		entry := c.hall.Enqueue(request)
		Log.Info().
			Str("request", entry.ID.String()).
			Stringer("call", request).
			Msg("No elevator available, request pending")
		return nil
	}

	log := Log.With().Int("elevator", elevator.ID()).Stringer("call", request).Logger()

	switch elevator.State() {
	case types.Moving:
		log.Info().Msg("Assigned to moving elevator")
		return elevator.ExtendTarget(floor)

	case types.OutOfService:
		err := fmt.Errorf("%w: tried to move out of service elevator %d", types.ErrInvalidState, elevator.ID())
		log.Error().Err(err).Msg("Selection picked an out of service elevator")
		panic(err)
	}

	log.Info().Msg("Assigned to idle elevator")

	/*
	 * An idle elevator has no meaningful target, the requested floor is the new one
	 */
	return elevator.GoToFloor(floor)
}

/*
 * In-car button routed through the controller
 */
func (c *Controller) PressFloorButton(elevatorID int, floor int) error {
	elevator, err := c.Elevator(elevatorID)
	if err != nil {
		return err
	}
	return elevator.PressFloorButton(floor)
}

func (c *Controller) SetOutOfService(elevatorID int) error {
	elevator, err := c.Elevator(elevatorID)
	if err != nil {
		return err
	}
	return elevator.SetOutOfService()
}

func (c *Controller) selectElevator(request types.FloorRequest) *elev.Elevator {
	candidates := make([]fsm.Candidate, len(c.elevators))

	for i, elevator := range c.elevators {
		candidates[i] = fsm.Candidate{
			State: elevator.State(),
			Dir:   elevator.Direction(),
			Floor: elevator.Floor(),
		}
	}

	best := fsm.SelectElevator(candidates, request, c.hall.MaxDistanceThreshold())
	if best < 0 {
		return nil
	}

	return c.elevators[best]
}

/*
 * Copy of the building state, safe to keep or hand to another goroutine
 */
func (c *Controller) Snapshot() (types.BuildingStatus, error) {
	hall, err := c.hall.Snapshot()
	if err != nil {
		return types.BuildingStatus{}, err
	}

	snapshot := types.BuildingStatus{
		NumFloors:            c.hall.NumFloors(),
		MaxDistanceThreshold: c.hall.MaxDistanceThreshold(),
		UpSummons:            hall.UpSummons,
		DownSummons:          hall.DownSummons,
		Pending:              make([]types.FloorRequest, len(hall.Pending)),
		Elevators:            make([]types.ElevatorStatus, len(c.elevators)),
	}

	for i, entry := range hall.Pending {
		snapshot.Pending[i] = entry.Request
	}

	for i, elevator := range c.elevators {
		snapshot.Elevators[i] = elevator.Status()
	}

	return snapshot, nil
}

/*
 * Time source for pending request ages
 */
func (c *Controller) SetNow(now func() time.Duration) {
	c.hall.SetNow(now)
}

func (c *Controller) Now() time.Duration {
	return c.hall.Now()
}
