package orders

import (
	"elevsim/types"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tiendc/go-deepcopy"
)

/*
 * An unclaimed hall call waiting for an elevator
 */
type Pending struct {
	ID      uuid.UUID
	Request types.FloorRequest
	Since   time.Duration
}

/*
 * Detached copy of the hall, see Hall.Snapshot
 */
type State struct {
	UpSummons   []bool
	DownSummons []bool
	Pending     []Pending
}

/*
 * Building-wide hall state shared by the controller and every elevator:
 * per-floor summon flags for both directions and the queue of unclaimed calls.
 * The queue is kept in insertion order, oldest first.
 */
type Hall struct {
	mu sync.Mutex

	numFloors   int
	maxDistance int
	upSummons   []bool
	downSummons []bool
	pending     []Pending

	now func() time.Duration
}

func NewHall(numFloors int, maxDistance int) *Hall {
	hall := Hall{
		numFloors:   numFloors,
		upSummons:   make([]bool, numFloors),
		downSummons: make([]bool, numFloors),
		now:         wallClock(),
	}
	hall.maxDistance = clampDistance(maxDistance, numFloors)

	return &hall
}

func wallClock() func() time.Duration {
	start := time.Now()
	return func() time.Duration {
		return time.Since(start)
	}
}

func clampDistance(maxDistance int, numFloors int) int {
	return max(min(maxDistance, numFloors), 0)
}

func (h *Hall) NumFloors() int {
	return h.numFloors
}

/*
 * Time source for pending request ages,
 * by default the wall-clock time since the hall was created
 */
func (h *Hall) SetNow(now func() time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.now = now
}

func (h *Hall) Now() time.Duration {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.now()
}

func (h *Hall) MaxDistanceThreshold() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.maxDistance
}

func (h *Hall) SetMaxDistanceThreshold(maxFloors int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.maxDistance = clampDistance(maxFloors, h.numFloors)
}

func (h *Hall) summons(dir types.Direction) []bool {
	if dir == types.Up {
		return h.upSummons
	}
	return h.downSummons
}

/*
 * Raise the summon flag for the request. The floor must already be validated.
 */
func (h *Hall) Summon(request types.FloorRequest) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.summons(request.Dir)[request.Floor] = true
}

func (h *Hall) IsSummoned(floor int, dir types.Direction) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.summons(dir)[floor]
}

/*
 * Clear the summon flag and report whether it was set
 */
func (h *Hall) TakeSummon(floor int, dir types.Direction) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	summons := h.summons(dir)
	wasSet := summons[floor]
	summons[floor] = false

	return wasSet
}

func (h *Hall) Enqueue(request types.FloorRequest) Pending {
	h.mu.Lock()
	defer h.mu.Unlock()

	entry := Pending{
		ID:      uuid.New(),
		Request: request,
		Since:   h.now(),
	}
	h.pending = append(h.pending, entry)

	return entry
}

func (h *Hall) HasPending() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.pending) > 0
}

/*
 * Remove and return the request that has waited longest
 */
func (h *Hall) PopOldest() (Pending, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.pending) == 0 {
		return Pending{}, false
	}

	oldest := h.pending[0]
	h.pending = h.pending[1:]

	return oldest, true
}

/*
 * Remove every pending request accepted by match and return them in queue order.
 * The remaining entries keep their relative order. match must not call back into the hall.
 */
func (h *Hall) Claim(match func(types.FloorRequest) bool) []Pending {
	h.mu.Lock()
	defer h.mu.Unlock()

	var claimed []Pending
	kept := make([]Pending, 0, len(h.pending))

	for _, entry := range h.pending {
		if match(entry.Request) {
			claimed = append(claimed, entry)
		} else {
			kept = append(kept, entry)
		}
	}
	h.pending = kept

	return claimed
}

func (h *Hall) Pending() []types.FloorRequest {
	h.mu.Lock()
	defer h.mu.Unlock()

	requests := make([]types.FloorRequest, len(h.pending))
	for i, entry := range h.pending {
		requests[i] = entry.Request
	}

	return requests
}

func (h *Hall) Summons(dir types.Direction) []bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	return append([]bool(nil), h.summons(dir)...)
}

/*
 * Deep copy of flags and queue taken under a single lock,
 * so the three parts are consistent with each other
 */
func (h *Hall) Snapshot() (State, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	live := State{
		UpSummons:   h.upSummons,
		DownSummons: h.downSummons,
		Pending:     h.pending,
	}

	var state State
	if err := deepcopy.Copy(&state, &live); err != nil {
		return State{}, fmt.Errorf("copy hall state: %w", err)
	}

	return state, nil
}
