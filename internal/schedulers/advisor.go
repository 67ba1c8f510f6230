package schedulers

import (
	"cpu-scheduler/internal/core"
)

const (
	reasonPriorityRange = "Significant priority differences detected: Priority Scheduling will handle urgency best."
	reasonBurstVariance = "Some processes are much shorter: SJF will reduce average waiting time."
	reasonArrivalSpread = "Processes arrive far apart: FCFS is simplest and avoids starvation."
	reasonShortBursts   = "All processes are short: Round Robin ensures responsive time-sharing."
	reasonBalanced      = "Balanced workload: SJF generally gives the best turnaround time."

	// shortBurstLimit is exclusive.
	shortBurstLimit = 6
)

// Suggestion is the advisor's pick together with its fixed rationale.
type Suggestion struct {
	Policy Policy
	Reason string
}

type workloadShape struct {
	burstMax      int
	burstMin      int
	priorityRange int
	arrivalRange  int
}

// SuggestAlgorithm inspects the shape of an undecorated workload and
// recommends a policy. Rules are checked in a fixed order; the first match wins.
func SuggestAlgorithm(processes []core.Process) (Suggestion, error) {
	if err := ValidateProcesses(processes); err != nil {
		return Suggestion{}, err
	}
	shape := measureWorkload(processes)

	switch {
	case shape.priorityRange >= 2:
		return Suggestion{Policy: PolicyPriority, Reason: reasonPriorityRange}, nil
	case shape.burstMax > 2*shape.burstMin:
		return Suggestion{Policy: PolicySJF, Reason: reasonBurstVariance}, nil
	case shape.arrivalRange > shape.burstMax+shape.burstMin:
		return Suggestion{Policy: PolicyFCFS, Reason: reasonArrivalSpread}, nil
	case shape.burstMax < shortBurstLimit:
		return Suggestion{Policy: PolicyRoundRobin, Reason: reasonShortBursts}, nil
	default:
		return Suggestion{Policy: PolicySJF, Reason: reasonBalanced}, nil
	}
}

// measureWorkload expects at least one process.
func measureWorkload(processes []core.Process) workloadShape {
	first := processes[0]
	burstMax, burstMin := first.BurstTime, first.BurstTime
	priorityMax, priorityMin := first.Priority, first.Priority
	arrivalMax, arrivalMin := first.ArrivalTime, first.ArrivalTime

	for _, p := range processes[1:] {
		burstMax = max(burstMax, p.BurstTime)
		burstMin = min(burstMin, p.BurstTime)
		priorityMax = max(priorityMax, p.Priority)
		priorityMin = min(priorityMin, p.Priority)
		arrivalMax = max(arrivalMax, p.ArrivalTime)
		arrivalMin = min(arrivalMin, p.ArrivalTime)
	}
	return workloadShape{
		burstMax:      burstMax,
		burstMin:      burstMin,
		priorityRange: priorityMax - priorityMin,
		arrivalRange:  arrivalMax - arrivalMin,
	}
}
