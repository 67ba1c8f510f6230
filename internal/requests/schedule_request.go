package requests

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cpu-scheduler/internal/core"

	"gopkg.in/yaml.v3"
)

type Job struct {
	ProcessId   string `json:"process_id" yaml:"process_id"`
	ArrivalTime int    `json:"arrival_time" yaml:"arrival_time"`
	BurstTime   int    `json:"burst_time" yaml:"burst_time"`
	Priority    int    `json:"priority" yaml:"priority"`
}

// ScheduleRequests is both the http request body and the workload file format.
// TimeQuantum is optional; nil means the configured default.
type ScheduleRequests struct {
	Jobs        []Job `json:"jobs" yaml:"jobs"`
	TimeQuantum *int  `json:"time_quantum,omitempty" yaml:"time_quantum,omitempty"`
}

// ToProcesses builds fresh process records. Jobs without an id are labelled
// P1..Pn by their position in the request.
func (r *ScheduleRequests) ToProcesses() []core.Process {
	processes := make([]core.Process, 0, len(r.Jobs))
	for i, job := range r.Jobs {
		id := strings.TrimSpace(job.ProcessId)
		if id == "" {
			id = fmt.Sprintf("P%d", i+1)
		}
		processes = append(processes, core.NewProcess(id, job.ArrivalTime, job.BurstTime, job.Priority))
	}
	return processes
}

// LoadWorkload reads a workload file. Files ending in .json are decoded as
// json, everything else as yaml.
func LoadWorkload(path string) (*ScheduleRequests, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read workload %s: %w", path, err)
	}
	return ParseWorkload(data, filepath.Ext(path))
}

// ParseWorkload decodes a workload in the format named by ext.
func ParseWorkload(data []byte, ext string) (*ScheduleRequests, error) {
	request := &ScheduleRequests{}
	switch strings.ToLower(ext) {
	case ".json":
		if err := json.Unmarshal(data, request); err != nil {
			return nil, fmt.Errorf("decode json workload: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, request); err != nil {
			return nil, fmt.Errorf("decode yaml workload: %w", err)
		}
	}
	return request, nil
}
