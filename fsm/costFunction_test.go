package fsm

import (
	"elevsim/types"
	"testing"
)

func moving(floor int, dir types.Direction) Candidate {
	return Candidate{State: types.Moving, Dir: dir, Floor: floor}
}

func idle(floor int) Candidate {
	return Candidate{State: types.Idle, Dir: types.Up, Floor: floor}
}

func TestIsCompatible(t *testing.T) {
	tests := []struct {
		name      string
		candidate Candidate
		request   types.FloorRequest
		want      bool
	}{
		{"up below request", moving(2, types.Up), types.FloorRequest{Floor: 4, Dir: types.Up}, true},
		{"up at request", moving(4, types.Up), types.FloorRequest{Floor: 4, Dir: types.Up}, true},
		{"up above request", moving(5, types.Up), types.FloorRequest{Floor: 4, Dir: types.Up}, false},
		{"up wrong request direction", moving(2, types.Up), types.FloorRequest{Floor: 4, Dir: types.Down}, false},
		{"down above request", moving(7, types.Down), types.FloorRequest{Floor: 4, Dir: types.Down}, true},
		{"down below request", moving(3, types.Down), types.FloorRequest{Floor: 4, Dir: types.Down}, false},
	}

	for _, tt := range tests {
		if got := IsCompatible(tt.candidate, tt.request); got != tt.want {
			t.Errorf("%s: IsCompatible = %v, expected %v", tt.name, got, tt.want)
		}
	}
}

func TestSelectElevator(t *testing.T) {
	outOfService := Candidate{State: types.OutOfService, Floor: 4}

	tests := []struct {
		name       string
		candidates []Candidate
		request    types.FloorRequest
		threshold  int
		want       int
	}{
		{
			name:       "moving on the way beats closer idle",
			candidates: []Candidate{moving(2, types.Up), idle(4)},
			request:    types.FloorRequest{Floor: 4, Dir: types.Up},
			threshold:  3,
			want:       0,
		},
		{
			name:       "moving beyond threshold falls back to idle",
			candidates: []Candidate{moving(0, types.Up), idle(9)},
			request:    types.FloorRequest{Floor: 5, Dir: types.Up},
			threshold:  3,
			want:       1,
		},
		{
			name:       "closest compatible moving",
			candidates: []Candidate{moving(1, types.Up), moving(3, types.Up), moving(5, types.Up)},
			request:    types.FloorRequest{Floor: 4, Dir: types.Up},
			threshold:  5,
			want:       1,
		},
		{
			name:       "closest idle regardless of direction",
			candidates: []Candidate{idle(9), idle(2), idle(6)},
			request:    types.FloorRequest{Floor: 4, Dir: types.Down},
			threshold:  1,
			want:       1,
		},
		{
			name:       "tie goes to first",
			candidates: []Candidate{idle(2), idle(6)},
			request:    types.FloorRequest{Floor: 4, Dir: types.Up},
			threshold:  1,
			want:       0,
		},
		{
			name:       "out of service skipped",
			candidates: []Candidate{outOfService, idle(8)},
			request:    types.FloorRequest{Floor: 4, Dir: types.Up},
			threshold:  1,
			want:       1,
		},
		{
			name:       "nothing available",
			candidates: []Candidate{outOfService, moving(6, types.Up), moving(2, types.Down)},
			request:    types.FloorRequest{Floor: 4, Dir: types.Up},
			threshold:  10,
			want:       -1,
		},
		{
			name:       "zero threshold only accepts car at the floor",
			candidates: []Candidate{moving(4, types.Down), moving(5, types.Down)},
			request:    types.FloorRequest{Floor: 4, Dir: types.Down},
			threshold:  0,
			want:       0,
		},
	}

	for _, tt := range tests {
		if got := SelectElevator(tt.candidates, tt.request, tt.threshold); got != tt.want {
			t.Errorf("%s: SelectElevator = %d, expected %d", tt.name, got, tt.want)
		}
	}
}
