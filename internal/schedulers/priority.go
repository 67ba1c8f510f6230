package schedulers

import (
	"sort"

	"cpu-scheduler/internal/core"
)

// PriorityScheduling is non-preemptive; a lower value means more urgent.
// There is no aging, so a low priority job can starve while more urgent jobs
// keep arriving.
func PriorityScheduling(processes []core.Process) (Result, error) {
	if err := ValidateProcesses(processes); err != nil {
		return Result{}, err
	}
	jobs := core.CloneAll(processes)
	sort.SliceStable(jobs, func(i, j int) bool {
		if jobs[i].ArrivalTime != jobs[j].ArrivalTime {
			return jobs[i].ArrivalTime < jobs[j].ArrivalTime
		}
		return jobs[i].Priority < jobs[j].Priority
	})
	return scheduleNonPreemptive(PolicyPriority, jobs, func(p core.Process) int { return p.Priority }), nil
}
