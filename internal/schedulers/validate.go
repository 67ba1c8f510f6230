package schedulers

import (
	"errors"
	"fmt"

	"cpu-scheduler/internal/core"
)

var (
	ErrEmptyWorkload     = errors.New("workload has no processes")
	ErrInvalidBurst      = errors.New("burst time must be positive")
	ErrInvalidArrival    = errors.New("arrival time must not be negative")
	ErrDuplicateID       = errors.New("process id must be unique and non-empty")
	ErrInvalidQuantum    = errors.New("time quantum must be a positive integer")
	ErrUnsupportedPolicy = errors.New("unsupported policy")
)

// ValidateProcesses rejects a workload before any simulation step runs.
func ValidateProcesses(processes []core.Process) error {
	if len(processes) == 0 {
		return ErrEmptyWorkload
	}
	seen := make(map[string]struct{}, len(processes))
	for i, p := range processes {
		if p.ID == "" {
			return fmt.Errorf("%w: process at index %d has no id", ErrDuplicateID, i)
		}
		if _, ok := seen[p.ID]; ok {
			return fmt.Errorf("%w: %q appears more than once", ErrDuplicateID, p.ID)
		}
		seen[p.ID] = struct{}{}

		if p.BurstTime <= 0 {
			return fmt.Errorf("%w: pid %s has burst time %d", ErrInvalidBurst, p.ID, p.BurstTime)
		}
		if p.ArrivalTime < 0 {
			return fmt.Errorf("%w: pid %s has arrival time %d", ErrInvalidArrival, p.ID, p.ArrivalTime)
		}
	}
	return nil
}

func validateQuantum(timeQuantum int) error {
	if timeQuantum <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidQuantum, timeQuantum)
	}
	return nil
}
