package schedulers

import (
	"cpu-scheduler/internal/core"
)

// RoundRobin is preemptive with a fixed time quantum.
//
// Every process is put in the ready queue up front, sorted by arrival time.
// A process whose arrival is still in the future when it reaches the head of
// the queue makes the cpu idle until it arrives; late arrivals are not
// re-ordered against processes requeued in the meantime.
func RoundRobin(processes []core.Process, timeQuantum int) (Result, error) {
	if err := validateQuantum(timeQuantum); err != nil {
		return Result{}, err
	}
	if err := ValidateProcesses(processes); err != nil {
		return Result{}, err
	}
	jobs := core.CloneAll(processes)
	sortByArrival(jobs)

	queue := make([]*core.Process, 0, len(jobs))
	for i := range jobs {
		queue = append(queue, &jobs[i])
	}

	cpu := core.NewCpu()
	completed := make([]core.Process, 0, len(jobs))
	for len(queue) > 0 {
		proccess := queue[0]
		queue = queue[1:]

		cpu.Execute(proccess, timeQuantum)
		if proccess.RemainingTime > 0 {
			// context switch
			queue = append(queue, proccess)
			continue
		}
		cpu.Complete(proccess)
		completed = append(completed, *proccess)
	}
	result := newResult(PolicyRoundRobin, cpu, completed)
	result.TimeQuantum = timeQuantum
	return result, nil
}
