package responses

type ProcessResponse struct {
	ProcessId      string  `json:"process_id"`
	ArrivalTime    int     `json:"arrival_time"`
	BurstTime      int     `json:"burst_time"`
	Priority       int     `json:"priority"`
	CompletionTime int     `json:"completion_time"`
	ResponseTime   float64 `json:"response_time"`
	TurnAroundTime float64 `json:"turn_around_time"`
	WaitingTime    float64 `json:"waiting_time"`
}

type SegmentResponse struct {
	ProcessId string `json:"process_id"`
	Start     int    `json:"start"`
	End       int    `json:"end"`
}

type ScheduleResponse struct {
	SimulationId          string            `json:"simulation_id,omitempty"`
	Algorithm             string            `json:"algorithm"`
	TimeQuantum           int               `json:"time_quantum,omitempty"`
	TotalTime             float64           `json:"total_time"`
	IdleTime              float64           `json:"idle_time"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	Timeline              []SegmentResponse `json:"timeline"`
	Details               []ProcessResponse `json:"details"`
}

type SuggestionResponse struct {
	SimulationId string `json:"simulation_id,omitempty"`
	Algorithm    string `json:"algorithm"`
	Reason       string `json:"reason"`
}

type CompareResponse struct {
	SimulationId string             `json:"simulation_id,omitempty"`
	Results      []ScheduleResponse `json:"results"`
	Suggestion   SuggestionResponse `json:"suggestion"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
