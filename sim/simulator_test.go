package sim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSimulation_ClassicReplay(t *testing.T) {
	st := classicState()
	requests := []Request{
		{ProcessID: 1, Resources: Vector{1, 0, 2}},
		{ProcessID: 4, Resources: Vector{3, 3, 0}},
		{ProcessID: 0, Resources: Vector{0, 2, 0}},
	}

	report, err := RunSimulation(st, requests)
	require.NoError(t, err)

	assert.NotEmpty(t, report.RunID)
	assert.True(t, report.Initial.Safe)
	require.Len(t, report.Decisions, 3)

	// Request 0: the textbook grant, committed into the running state.
	assert.True(t, report.Decisions[0].Granted)

	// Request 1: process 4 asks (3,3,0) but the committed state only has
	// (2,3,0) free.
	assert.Equal(t, DenialNotAvailable, report.Decisions[1].Reason)
	assert.Equal(t, 0, report.Decisions[1].ResourceIndex)

	// Request 2: (0,2,0) for process 0 would have been safe from the
	// initial state, but against the committed state it leaves no process
	// able to finish. Order sensitivity is the contract, not an accident.
	assert.Equal(t, DenialUnsafe, report.Decisions[2].Reason)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, report.Decisions[2].Unsafe)

	assert.Equal(t, 1, report.Granted)
	assert.Equal(t, 2, report.Denied)
}

func TestRunSimulation_UnsafeInitialState_SkipsRequests(t *testing.T) {
	// GIVEN a state that is already unsafe
	st := State{
		Available:  Vector{0, 0, 0},
		Max:        Matrix{{1, 1, 1}},
		Allocation: Matrix{{0, 0, 0}},
	}

	// WHEN a simulation with pending requests runs
	report, err := RunSimulation(st, []Request{{ProcessID: 0, Resources: Vector{0, 0, 0}}})
	require.NoError(t, err)

	// THEN no request is evaluated
	assert.False(t, report.Initial.Safe)
	assert.Equal(t, []int{0}, report.Initial.Unfinished)
	assert.Empty(t, report.Decisions)
}

func TestRunSimulation_DeniedRequestLeavesStateUnchanged(t *testing.T) {
	st := classicState()
	requests := []Request{
		{ProcessID: 0, Resources: Vector{4, 0, 0}}, // denied: not available
		{ProcessID: 1, Resources: Vector{1, 0, 2}}, // evaluated against the untouched state
	}

	report, err := RunSimulation(st, requests)
	require.NoError(t, err)

	assert.Equal(t, DenialNotAvailable, report.Decisions[0].Reason)
	assert.True(t, report.Decisions[1].Granted)
	assert.Equal(t, []int{1, 3, 4, 0, 2}, report.Decisions[1].SafeSequence)
}

func TestRunSimulation_MalformedState_TypedError(t *testing.T) {
	st := State{
		Available:  Vector{1, 1},
		Max:        Matrix{{1, 1}, {1}}, // ragged row
		Allocation: Matrix{{0, 0}, {0, 0}},
	}

	_, err := RunSimulation(st, nil)

	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "max", inputErr.Field)
}

func TestRunSimulation_RequestForUnknownProcess_TypedError(t *testing.T) {
	st := classicState()

	_, err := RunSimulation(st, []Request{{ProcessID: 9, Resources: Vector{0, 0, 0}}})

	var inputErr *InputError
	assert.True(t, errors.As(err, &inputErr))
}

func TestRunSimulation_FreshRunIDPerInvocation(t *testing.T) {
	st := classicState()

	first, err := RunSimulation(st, nil)
	require.NoError(t, err)
	second, err := RunSimulation(st, nil)
	require.NoError(t, err)

	assert.NotEqual(t, first.RunID, second.RunID)
}
