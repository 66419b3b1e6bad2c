package contact

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMachineSuccessLifecycle(t *testing.T) {
	t.Parallel()

	var m Machine
	require.Equal(t, StatusIdle, m.Status())

	seq, err := m.Begin()
	require.NoError(t, err)
	assert.Equal(t, StatusSubmitting, m.Status())
	assert.False(t, m.CanSubmit())

	require.True(t, m.Resolve(seq, nil))
	assert.Equal(t, StatusSuccess, m.Status())

	require.True(t, m.Revert(seq))
	assert.Equal(t, StatusIdle, m.Status())
}

func TestMachineRejectsOverlappingSubmission(t *testing.T) {
	t.Parallel()

	var m Machine
	first, err := m.Begin()
	require.NoError(t, err)

	again, err := m.Begin()
	require.ErrorIs(t, err, ErrSubmissionInFlight)
	assert.Equal(t, first, again)
	assert.Equal(t, StatusSubmitting, m.Status())
}

func TestMachineIgnoresStaleResults(t *testing.T) {
	t.Parallel()

	var m Machine
	first, _ := m.Begin()
	require.True(t, m.Resolve(first, ErrSimulatedFailure))
	assert.Equal(t, StatusError, m.Status())

	second, err := m.Begin()
	require.NoError(t, err, "a new submission may start while a banner is shown")

	assert.False(t, m.Resolve(first, nil), "late result of an older submission")
	assert.False(t, m.Revert(first), "banner timeout of an older submission")
	assert.Equal(t, StatusSubmitting, m.Status())

	require.True(t, m.Resolve(second, nil))
	assert.False(t, m.Revert(first))
	assert.Equal(t, StatusSuccess, m.Status())
}

func TestMachineDismiss(t *testing.T) {
	t.Parallel()

	var m Machine
	assert.False(t, m.Dismiss())

	seq, _ := m.Begin()
	assert.False(t, m.Dismiss(), "cannot dismiss while submitting")

	m.Resolve(seq, ErrSimulatedFailure)
	assert.True(t, m.Dismiss())
	assert.Equal(t, StatusIdle, m.Status())
	assert.False(t, m.Revert(seq))
}

func TestStatusString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "idle", StatusIdle.String())
	assert.Equal(t, "submitting", StatusSubmitting.String())
	assert.Equal(t, "success", StatusSuccess.String())
	assert.Equal(t, "error", StatusError.String())
}

func TestSimulatedSubmitter(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	ok := &SimulatedSubmitter{Delay: time.Millisecond}
	require.NoError(t, ok.Submit(ctx, validForm()))

	forced := &SimulatedSubmitter{ForceFailure: true}
	require.ErrorIs(t, forced.Submit(ctx, validForm()), ErrSimulatedFailure)

	rolled := &SimulatedSubmitter{FailureRate: 0.5, Rand: func() float64 { return 0.49 }}
	require.ErrorIs(t, rolled.Submit(ctx, validForm()), ErrSimulatedFailure)

	rolled.Rand = func() float64 { return 0.5 }
	require.NoError(t, rolled.Submit(ctx, validForm()))
}

func TestSimulatedSubmitterHonoursCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := &SimulatedSubmitter{Delay: time.Hour}
	start := time.Now()
	require.ErrorIs(t, s.Submit(ctx, validForm()), context.Canceled)
	assert.Less(t, time.Since(start), time.Second)
}
