package schedulers

import (
	"sort"

	"cpu-scheduler/internal/core"
)

// Result is what every policy returns: the gantt timeline, the processes in
// completion order with their metrics, and the cpu usage summary.
type Result struct {
	Policy    Policy
	Timeline  core.Timeline
	Processes []core.Process
	Cpu       core.CpuMetric

	// TimeQuantum is zero for non-preemptive policies.
	TimeQuantum int
}

// FirstComeFirstServe runs processes in arrival order, each to completion.
// Equal arrival times keep their input order.
func FirstComeFirstServe(processes []core.Process) (Result, error) {
	if err := ValidateProcesses(processes); err != nil {
		return Result{}, err
	}
	jobs := core.CloneAll(processes)
	sortByArrival(jobs)

	cpu := core.NewCpu()
	for i := range jobs {
		cpu.Execute(&jobs[i], jobs[i].RemainingTime)
		cpu.Complete(&jobs[i])
	}
	return newResult(PolicyFCFS, cpu, jobs), nil
}

func sortByArrival(jobs []core.Process) {
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].ArrivalTime < jobs[j].ArrivalTime
	})
}

func newResult(policy Policy, cpu *core.Cpu, completed []core.Process) Result {
	return Result{
		Policy:    policy,
		Timeline:  cpu.Timeline(),
		Processes: completed,
		Cpu:       cpu.Metric(),
	}
}
