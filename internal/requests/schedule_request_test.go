package requests

import (
	"os"
	"path/filepath"
	"testing"
)

const yamlWorkload = `
time_quantum: 3
jobs:
  - process_id: A
    arrival_time: 0
    burst_time: 5
    priority: 2
  - arrival_time: 1
    burst_time: 3
    priority: 1
`

const jsonWorkload = `{"jobs":[{"process_id":"A","arrival_time":0,"burst_time":5,"priority":2},{"arrival_time":1,"burst_time":3,"priority":1}]}`

func TestLoadWorkload(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name        string
		file        string
		content     string
		wantQuantum *int
	}{
		{name: "yaml", file: "workload.yaml", content: yamlWorkload, wantQuantum: intPtr(3)},
		{name: "json", file: "workload.json", content: jsonWorkload},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatal(err)
			}
			request, err := LoadWorkload(path)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if (tt.wantQuantum == nil) != (request.TimeQuantum == nil) {
				t.Fatalf("unexpected quantum %v", request.TimeQuantum)
			}
			if tt.wantQuantum != nil && *tt.wantQuantum != *request.TimeQuantum {
				t.Fatalf("expected quantum %d, got %d", *tt.wantQuantum, *request.TimeQuantum)
			}

			processes := request.ToProcesses()
			if len(processes) != 2 {
				t.Fatalf("expected 2 processes, got %d", len(processes))
			}
			if processes[0].ID != "A" || processes[0].BurstTime != 5 || processes[0].Priority != 2 {
				t.Errorf("unexpected first process %+v", processes[0])
			}
			if processes[1].ID != "P2" || processes[1].ArrivalTime != 1 || processes[1].RemainingTime != 3 {
				t.Errorf("unexpected second process %+v", processes[1])
			}
		})
	}
}

func TestLoadWorkloadErrors(t *testing.T) {
	if _, err := LoadWorkload(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
	if _, err := ParseWorkload([]byte("{not json"), ".json"); err == nil {
		t.Fatal("expected error for malformed json")
	}
	if _, err := ParseWorkload([]byte("jobs: [unterminated"), ".yml"); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}

func intPtr(v int) *int {
	return &v
}
