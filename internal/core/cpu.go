package core

// Segment is one contiguous interval during which a single process held the CPU.
type Segment struct {
	ProcessID string
	Start     int
	End       int
}

// Duration of the slice.
func (s Segment) Duration() int {
	return s.End - s.Start
}

// Timeline is the gantt schedule produced by a run, ordered by start time.
type Timeline []Segment

// BusyTimeOf sums every slice the given process received.
func (t Timeline) BusyTimeOf(processID string) int {
	total := 0
	for _, s := range t {
		if s.ProcessID == processID {
			total += s.Duration()
		}
	}
	return total
}

type CpuMetric struct {
	TotalTime int
	BusyTime  int
	IdleTime  int
}

// Cpu is a simulated single-core processor. The clock is an integer that only
// moves forward, either by executing a process or by idling until an arrival.
type Cpu struct {
	clock    int
	busyTime int
	timeline Timeline
}

func NewCpu() *Cpu {
	return &Cpu{timeline: make(Timeline, 0)}
}

// Clock returns the current simulated time.
func (c *Cpu) Clock() int {
	return c.clock
}

// IdleUntil advances the clock to t. Earlier values are ignored.
func (c *Cpu) IdleUntil(t int) {
	if t > c.clock {
		c.clock = t
	}
}

// Execute runs the process for at most run time units, starting no earlier than
// its arrival. It decrements RemainingTime, records the segment and returns the
// time actually used.
func (c *Cpu) Execute(p *Process, run int) int {
	if run > p.RemainingTime {
		run = p.RemainingTime
	}
	if run <= 0 {
		return 0
	}
	c.IdleUntil(p.ArrivalTime)

	start := c.clock
	if !p.Started {
		p.Started = true
		p.StartTime = start
		p.ResponseTime = start - p.ArrivalTime
	}
	c.clock += run
	c.busyTime += run
	p.RemainingTime -= run
	c.timeline = append(c.timeline, Segment{ProcessID: p.ID, Start: start, End: c.clock})
	return run
}

// Complete stamps the metrics of a finished process using the current clock.
func (c *Cpu) Complete(p *Process) {
	p.CompletionTime = c.clock
	p.TurnaroundTime = p.CompletionTime - p.ArrivalTime
	p.WaitingTime = p.TurnaroundTime - p.BurstTime
	p.Completed = true
}

func (c *Cpu) Timeline() Timeline {
	return c.timeline
}

func (c *Cpu) Metric() CpuMetric {
	return CpuMetric{
		TotalTime: c.clock,
		BusyTime:  c.busyTime,
		IdleTime:  c.clock - c.busyTime,
	}
}
