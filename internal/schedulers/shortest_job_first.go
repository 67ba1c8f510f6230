package schedulers

import (
	"sort"

	"cpu-scheduler/internal/core"
)

// ShortestJobFirst is the non-preemptive variant: whenever the cpu is free the
// arrived process with the smallest burst time runs to completion.
func ShortestJobFirst(processes []core.Process) (Result, error) {
	if err := ValidateProcesses(processes); err != nil {
		return Result{}, err
	}
	jobs := core.CloneAll(processes)
	sortShortestJob(jobs)
	return scheduleNonPreemptive(PolicySJF, jobs, func(p core.Process) int { return p.BurstTime }), nil
}

// sortShortestJob orders by arrival, then burst. Selection ties are resolved
// by this order.
func sortShortestJob(jobs []core.Process) {
	sort.SliceStable(jobs, func(i, j int) bool {
		if jobs[i].ArrivalTime != jobs[j].ArrivalTime {
			return jobs[i].ArrivalTime < jobs[j].ArrivalTime
		}
		return jobs[i].BurstTime < jobs[j].BurstTime
	})
}

// scheduleNonPreemptive repeatedly picks the arrived job with the lowest key.
// When nothing has arrived the clock jumps to the earliest pending arrival.
func scheduleNonPreemptive(policy Policy, pending []core.Process, key func(core.Process) int) Result {
	cpu := core.NewCpu()
	completed := make([]core.Process, 0, len(pending))

	for len(pending) > 0 {
		selected := -1
		for i, p := range pending {
			if p.ArrivalTime > cpu.Clock() {
				continue
			}
			if selected == -1 || key(p) < key(pending[selected]) {
				selected = i
			}
		}
		if selected == -1 {
			cpu.IdleUntil(nextArrival(pending))
			continue
		}

		job := pending[selected]
		pending = append(pending[:selected], pending[selected+1:]...)
		cpu.Execute(&job, job.RemainingTime)
		cpu.Complete(&job)
		completed = append(completed, job)
	}
	return newResult(policy, cpu, completed)
}

func nextArrival(pending []core.Process) int {
	next := pending[0].ArrivalTime
	for _, p := range pending[1:] {
		if p.ArrivalTime < next {
			next = p.ArrivalTime
		}
	}
	return next
}
