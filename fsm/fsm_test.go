package fsm

import (
	"elevsim/types"
	"errors"
	"testing"
)

func TestTransition(t *testing.T) {
	tests := []struct {
		from, to types.State
		ok       bool
	}{
		{types.Idle, types.Moving, true},
		{types.Moving, types.Moving, true},
		{types.Moving, types.Idle, true},
		{types.Idle, types.OutOfService, true},
		{types.Idle, types.Idle, false},
		{types.Moving, types.OutOfService, false},
		{types.OutOfService, types.Idle, false},
		{types.OutOfService, types.Moving, false},
	}

	for _, tt := range tests {
		err := Transition(tt.from, tt.to)
		if tt.ok && err != nil {
			t.Errorf("Transition(%s, %s) = %v, expected nil", tt.from, tt.to, err)
		}
		if !tt.ok && !errors.Is(err, types.ErrInvalidState) {
			t.Errorf("Transition(%s, %s) = %v, expected ErrInvalidState", tt.from, tt.to, err)
		}
	}
}
