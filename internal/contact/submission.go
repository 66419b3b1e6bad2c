package contact

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"
)

// Status is the lifecycle state of a submission.
type Status int

const (
	StatusIdle Status = iota
	StatusSubmitting
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusSubmitting:
		return "submitting"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "idle"
	}
}

var (
	// ErrSubmissionInFlight is returned by Begin while a submission is pending.
	ErrSubmissionInFlight = errors.New("a submission is already in flight")
	// ErrSimulatedFailure is the injected failure of SimulatedSubmitter.
	ErrSimulatedFailure = errors.New("simulated submission failure")
)

// Machine tracks the status of the form's submissions. Every submission gets
// a sequence number so late results and banner timeouts that belong to an
// older submission can be recognised and ignored.
type Machine struct {
	status Status
	seq    int
}

// Status returns the current state.
func (m Machine) Status() Status {
	return m.status
}

// Seq returns the sequence number of the latest submission.
func (m Machine) Seq() int {
	return m.seq
}

// CanSubmit reports whether the submit control is enabled.
func (m Machine) CanSubmit() bool {
	return m.status != StatusSubmitting
}

// Begin moves to submitting and returns the new submission's sequence number.
func (m *Machine) Begin() (int, error) {
	if !m.CanSubmit() {
		return m.seq, ErrSubmissionInFlight
	}
	m.seq++
	m.status = StatusSubmitting
	return m.seq, nil
}

// Resolve records the outcome of submission seq. It returns false when seq
// is not the pending submission.
func (m *Machine) Resolve(seq int, err error) bool {
	if seq != m.seq || m.status != StatusSubmitting {
		return false
	}
	if err != nil {
		m.status = StatusError
	} else {
		m.status = StatusSuccess
	}
	return true
}

// Revert returns to idle once the banner of submission seq has timed out.
func (m *Machine) Revert(seq int) bool {
	if seq != m.seq {
		return false
	}
	return m.Dismiss()
}

// Dismiss clears a success or error banner immediately.
func (m *Machine) Dismiss() bool {
	if m.status != StatusSuccess && m.status != StatusError {
		return false
	}
	m.status = StatusIdle
	return true
}

// Submitter delivers a validated form.
type Submitter interface {
	Submit(ctx context.Context, form Form) error
}

// SimulatedSubmitter waits for Delay and then succeeds, or fails with
// probability FailureRate. ForceFailure makes every submission fail.
type SimulatedSubmitter struct {
	Delay        time.Duration
	FailureRate  float64
	ForceFailure bool
	// Rand returns a value in [0, 1). Defaults to math/rand/v2.
	Rand func() float64
}

// Submit implements Submitter.
func (s *SimulatedSubmitter) Submit(ctx context.Context, _ Form) error {
	if s.Delay > 0 {
		timer := time.NewTimer(s.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return err
	}

	if s.fails() {
		return ErrSimulatedFailure
	}
	return nil
}

func (s *SimulatedSubmitter) fails() bool {
	if s.ForceFailure {
		return true
	}
	if s.FailureRate <= 0 {
		return false
	}
	roll := rand.Float64
	if s.Rand != nil {
		roll = s.Rand
	}
	return roll() < s.FailureRate
}

var _ Submitter = (*SimulatedSubmitter)(nil)
