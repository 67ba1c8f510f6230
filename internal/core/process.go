package core

// Process is one job of a workload. ArrivalTime, BurstTime and Priority are
// inputs; everything below RemainingTime is filled in by a scheduler.
type Process struct {
	ID          string
	ArrivalTime int
	BurstTime   int
	Priority    int

	// RemainingTime is only meaningful while a scheduler is running the job.
	RemainingTime int

	StartTime      int
	CompletionTime int
	TurnaroundTime int
	WaitingTime    int
	ResponseTime   int
	Started        bool
	Completed      bool
}

// NewProcess returns a fresh, undecorated record.
func NewProcess(id string, arrivalTime, burstTime, priority int) Process {
	return Process{
		ID:            id,
		ArrivalTime:   arrivalTime,
		BurstTime:     burstTime,
		Priority:      priority,
		RemainingTime: burstTime,
	}
}

// Clone returns a copy with every computed field reset.
func (p Process) Clone() Process {
	return NewProcess(p.ID, p.ArrivalTime, p.BurstTime, p.Priority)
}

// CloneAll copies a workload so a scheduler can own it.
func CloneAll(processes []Process) []Process {
	clones := make([]Process, 0, len(processes))
	for _, p := range processes {
		clones = append(clones, p.Clone())
	}
	return clones
}
