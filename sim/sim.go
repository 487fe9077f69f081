package sim

import (
	"context"
	"elevsim/config"
	"elevsim/controller"
	"elevsim/elev"
	"elevsim/logger"
	"elevsim/timer"
	"elevsim/types"
	"fmt"
	"time"

	"github.com/tiendc/go-deepcopy"
)

var Log = logger.GetLogger()

/*
 * A building full of riders driven by a stream of events
 */
type Simulator struct {
	ctrl   *controller.Controller
	clock  *timer.Clock
	riders riders
}

type Report struct {
	Delivered int
	Riding    int
	Waiting   int
	MeanWait  time.Duration
	Elapsed   time.Duration
	Building  types.BuildingStatus
}

func New(cfg config.Config) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Simulator{clock: timer.NewClock(cfg.TimeScale)}

	elevators := make([]*elev.Elevator, cfg.Elevators)
	for i := range elevators {
		elevators[i] = elev.New(
			elev.WithStartFloor(cfg.StartFloor(i)),
			elev.WithClock(s.clock),
			elev.WithTimings(cfg.DoorOpenDuration, cfg.SettleDuration),
			elev.WithBoarding(s.board),
		)
	}

	ctrl, err := controller.NewWithElevators(cfg.Floors, elevators)
	if err != nil {
		return nil, err
	}

	if cfg.MaxDistanceThreshold != nil {
		ctrl.SetMaxDistanceThreshold(*cfg.MaxDistanceThreshold)
	}

	for _, id := range cfg.OutOfService {
		if err := ctrl.SetOutOfService(id); err != nil {
			return nil, err
		}
	}

	ctrl.SetNow(s.clock.Now)
	s.ctrl = ctrl

	return s, nil
}

func (s *Simulator) Controller() *controller.Controller {
	return s.ctrl
}

func (s *Simulator) Clock() *timer.Clock {
	return s.clock
}

/*
 * Main for/select. Bad events are logged and skipped.
 * Returns when events is closed or ctx is done.
 */
func (s *Simulator) Run(ctx context.Context, events <-chan Event) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-events:
			if !ok {
				return nil
			}

			if err := s.Apply(event); err != nil {
				Log.Warn().Err(err).Stringer("event", event).Msg("Event rejected")
				continue
			}
		}
	}
}

func (s *Simulator) Apply(event Event) error {
	Log.Debug().Stringer("event", event).Dur("at", s.clock.Now()).Msg("Applying event")

	switch event.Kind {
	case SUMMON:
		return s.summon(event)

	case PRESS:
		return s.ctrl.PressFloorButton(event.Elevator, event.Floor)

	case OUT_OF_SERVICE:
		return s.ctrl.SetOutOfService(event.Elevator)

	default:
		return fmt.Errorf("unknown event kind %d", event.Kind)
	}
}

/*
 * A summon with a destination brings a rider along. The rider must be
 * waiting before the call is dispatched since the trip runs inside Summon.
 */
func (s *Simulator) summon(event Event) error {
	numFloors := s.ctrl.NumFloors()

	if err := types.CheckFloor(event.Floor, numFloors); err != nil {
		return err
	}

	if event.Destination.Valid {
		to := event.Destination.Floor

		if err := types.CheckFloor(to, numFloors); err != nil {
			return fmt.Errorf("destination: %w", err)
		}

		if to == event.Floor || (to > event.Floor) != (event.Dir == types.Up) {
			return fmt.Errorf("destination %d is not %s from floor %d", to, event.Dir, event.Floor)
		}

		rider := s.riders.add(event.Floor, to, event.Dir, s.clock.Now())
		Log.Info().
			Str("rider", rider.ID.String()).
			Int("from", rider.From).
			Int("to", rider.To).
			Msg("Rider waiting")
	}

	return s.ctrl.Summon(event.Floor, event.Dir)
}

func (s *Simulator) board(e *elev.Elevator, stop types.Stop) {
	now := s.clock.Now()

	for _, rider := range s.riders.alight(e.ID(), stop.Floor, now) {
		Log.Info().
			Str("rider", rider.ID.String()).
			Int("elevator", e.ID()).
			Int("floor", stop.Floor).
			Dur("trip", rider.Arrived-rider.Summoned).
			Msg("Rider delivered")
	}

	for _, rider := range s.riders.board(e.ID(), stop, now) {
		Log.Info().
			Str("rider", rider.ID.String()).
			Int("elevator", e.ID()).
			Int("floor", stop.Floor).
			Dur("waited", rider.Boarded-rider.Summoned).
			Msg("Rider boarded")

		if err := e.PressFloorButton(rider.To); err != nil {
			Log.Error().Err(err).Str("rider", rider.ID.String()).Msg("Rider could not press destination")
		}
	}
}

/*
 * Detached copies of every rider, grouped by where they are
 */
func (s *Simulator) Riders() (waiting []*Rider, riding []*Rider, delivered []*Rider, err error) {
	if err = deepcopy.Copy(&waiting, &s.riders.waiting); err != nil {
		return nil, nil, nil, fmt.Errorf("copy waiting riders: %w", err)
	}
	if err = deepcopy.Copy(&riding, &s.riders.riding); err != nil {
		return nil, nil, nil, fmt.Errorf("copy riding riders: %w", err)
	}
	if err = deepcopy.Copy(&delivered, &s.riders.delivered); err != nil {
		return nil, nil, nil, fmt.Errorf("copy delivered riders: %w", err)
	}

	return waiting, riding, delivered, nil
}

func (s *Simulator) Report() (Report, error) {
	building, err := s.ctrl.Snapshot()
	if err != nil {
		return Report{}, err
	}

	return Report{
		Delivered: len(s.riders.delivered),
		Riding:    len(s.riders.riding),
		Waiting:   len(s.riders.waiting),
		MeanWait:  s.riders.meanWait(),
		Elapsed:   s.clock.Now(),
		Building:  building,
	}, nil
}
