package schedulers

import (
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/util"
)

// GenerateResponse turns a finished run into the wire representation shared by
// the http api and the cli report.
func GenerateResponse(result Result) responses.ScheduleResponse {
	proccessDetails := make([]responses.ProcessResponse, 0, len(result.Processes))
	for _, process := range result.Processes {
		proccessDetails = append(proccessDetails, generateProcessDetails(process))
	}
	averageWaitingTime, averageResponseTime, averageTimeAroundTime := util.CalculateAverage(proccessDetails)

	timeline := make([]responses.SegmentResponse, 0, len(result.Timeline))
	for _, s := range result.Timeline {
		timeline = append(timeline, responses.SegmentResponse{ProcessId: s.ProcessID, Start: s.Start, End: s.End})
	}

	var utilization, throughput float64
	if result.Cpu.TotalTime > 0 {
		utilization = float64(result.Cpu.BusyTime) / float64(result.Cpu.TotalTime)
		throughput = float64(len(result.Processes)) / float64(result.Cpu.TotalTime)
	}

	return responses.ScheduleResponse{
		Algorithm:             result.Policy.String(),
		TimeQuantum:           result.TimeQuantum,
		TotalTime:             float64(result.Cpu.TotalTime),
		IdleTime:              float64(result.Cpu.IdleTime),
		CpuUtilization:        utilization,
		CpuThroughput:         throughput,
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTimeAroundTime,
		Timeline:              timeline,
		Details:               proccessDetails,
	}
}

func generateProcessDetails(process core.Process) responses.ProcessResponse {
	return responses.ProcessResponse{
		ProcessId:      process.ID,
		ArrivalTime:    process.ArrivalTime,
		BurstTime:      process.BurstTime,
		Priority:       process.Priority,
		CompletionTime: process.CompletionTime,
		ResponseTime:   float64(process.ResponseTime),
		TurnAroundTime: float64(process.TurnaroundTime),
		WaitingTime:    float64(process.WaitingTime),
	}
}

// GenerateSuggestionResponse converts an advisor suggestion.
func GenerateSuggestionResponse(suggestion Suggestion) responses.SuggestionResponse {
	return responses.SuggestionResponse{
		Algorithm: suggestion.Policy.String(),
		Reason:    suggestion.Reason,
	}
}
