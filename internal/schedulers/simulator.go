package schedulers

import (
	"context"

	"cpu-scheduler/internal/core"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Simulator wraps the scheduling functions with logging and a default quantum
// for Round-Robin. It holds no per-run state and is safe for concurrent use.
type Simulator struct {
	logger             *zap.Logger
	defaultTimeQuantum int
}

func NewSimulator(logger *zap.Logger, defaultTimeQuantum int) *Simulator {
	return &Simulator{logger: logger, defaultTimeQuantum: defaultTimeQuantum}
}

// DefaultTimeQuantum is used when a caller does not supply one.
func (s *Simulator) DefaultTimeQuantum() int {
	return s.defaultTimeQuantum
}

// QuantumOrDefault resolves an optional quantum.
func (s *Simulator) QuantumOrDefault(timeQuantum *int) int {
	if timeQuantum == nil {
		return s.defaultTimeQuantum
	}
	return *timeQuantum
}

// Run schedules the workload with one policy.
func (s *Simulator) Run(policy Policy, processes []core.Process, timeQuantum int) (Result, error) {
	s.logger.Debug("running scheduler",
		zap.String("algorithm", policy.String()),
		zap.Int("processes", len(processes)),
		zap.Int("time_quantum", timeQuantum))

	result, err := Schedule(policy, processes, timeQuantum)
	if err != nil {
		s.logger.Warn("scheduler rejected workload", zap.String("algorithm", policy.String()), zap.Error(err))
		return Result{}, err
	}

	for _, segment := range result.Timeline {
		s.logger.Debug("pid dispatched",
			zap.String("pid", segment.ProcessID),
			zap.Int("start", segment.Start),
			zap.Int("end", segment.End))
	}
	s.logger.Info("schedule completed",
		zap.String("algorithm", policy.String()),
		zap.Int("segments", len(result.Timeline)),
		zap.Int("total_time", result.Cpu.TotalTime),
		zap.Int("idle_time", result.Cpu.IdleTime))
	return result, nil
}

// Compare runs every policy over its own copy of the workload concurrently.
// Results come back in the order of Policies.
func (s *Simulator) Compare(ctx context.Context, processes []core.Process, timeQuantum int) ([]Result, error) {
	if err := validateQuantum(timeQuantum); err != nil {
		return nil, err
	}
	if err := ValidateProcesses(processes); err != nil {
		return nil, err
	}

	results := make([]Result, len(Policies))
	g, ctx := errgroup.WithContext(ctx)
	for i, policy := range Policies {
		i, policy := i, policy
		jobs := core.CloneAll(processes)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := s.Run(policy, jobs, timeQuantum)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Suggest runs the workload advisor.
func (s *Simulator) Suggest(processes []core.Process) (Suggestion, error) {
	suggestion, err := SuggestAlgorithm(processes)
	if err != nil {
		s.logger.Warn("advisor rejected workload", zap.Error(err))
		return Suggestion{}, err
	}
	s.logger.Info("suggested algorithm",
		zap.String("algorithm", suggestion.Policy.String()),
		zap.String("reason", suggestion.Reason))
	return suggestion, nil
}
