package sim

import (
	"elevsim/types"
	"time"

	"github.com/google/uuid"
)

type Rider struct {
	ID       uuid.UUID
	From     int
	To       int
	Dir      types.Direction
	Elevator int

	Summoned time.Duration
	Boarded  time.Duration
	Arrived  time.Duration
}

type riders struct {
	waiting   []*Rider
	riding    []*Rider
	delivered []*Rider
}

func (r *riders) add(from int, to int, dir types.Direction, now time.Duration) *Rider {
	rider := &Rider{
		ID:       uuid.New(),
		From:     from,
		To:       to,
		Dir:      dir,
		Elevator: -1,
		Summoned: now,
	}
	r.waiting = append(r.waiting, rider)

	return rider
}

/*
 * Riders inside elevator whose destination is floor leave the car
 */
func (r *riders) alight(elevator int, floor int, now time.Duration) []*Rider {
	var left []*Rider
	kept := r.riding[:0]

	for _, rider := range r.riding {
		if rider.Elevator == elevator && rider.To == floor {
			rider.Arrived = now
			left = append(left, rider)
		} else {
			kept = append(kept, rider)
		}
	}
	r.riding = kept
	r.delivered = append(r.delivered, left...)

	return left
}

/*
 * Riders waiting at the stop board if the car goes their way,
 * or if the car has just finished its leg
 */
func (r *riders) board(elevator int, stop types.Stop, now time.Duration) []*Rider {
	var boarded []*Rider
	kept := r.waiting[:0]

	for _, rider := range r.waiting {
		if rider.From == stop.Floor && (stop.LegEnd || rider.Dir == stop.Dir) {
			rider.Elevator = elevator
			rider.Boarded = now
			boarded = append(boarded, rider)
		} else {
			kept = append(kept, rider)
		}
	}
	r.waiting = kept
	r.riding = append(r.riding, boarded...)

	return boarded
}

func (r *riders) meanWait() time.Duration {
	var total time.Duration
	count := 0

	for _, group := range [][]*Rider{r.riding, r.delivered} {
		for _, rider := range group {
			total += rider.Boarded - rider.Summoned
			count++
		}
	}

	if count == 0 {
		return 0
	}
	return total / time.Duration(count)
}
