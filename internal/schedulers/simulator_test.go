package schedulers

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"cpu-scheduler/internal/core"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
)

func newTestLogger(t *testing.T, buf *bytes.Buffer) *zap.Logger {
	return zaptest.NewLogger(t, zaptest.WrapOptions(zap.Hooks(func(entry zapcore.Entry) error {
		buf.WriteString(entry.Message)
		buf.WriteByte('\n')
		return nil
	})))
}

func TestSimulatorRun(t *testing.T) {
	var buf bytes.Buffer
	simulator := NewSimulator(newTestLogger(t, &buf), 2)

	result, err := simulator.Run(PolicySJF, sampleWorkloads["staggered arrivals"], simulator.DefaultTimeQuantum())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	direct, _ := ShortestJobFirst(sampleWorkloads["staggered arrivals"])
	if !reflect.DeepEqual(result, direct) {
		t.Fatalf("simulator result differs from direct call")
	}
	if !strings.Contains(buf.String(), "schedule completed") {
		t.Fatalf("expected completion log, got %q", buf.String())
	}
}

func TestSimulatorRunRejectsWorkload(t *testing.T) {
	var buf bytes.Buffer
	simulator := NewSimulator(newTestLogger(t, &buf), 2)

	_, err := simulator.Run(PolicyRoundRobin, sampleWorkloads["single"], 0)
	if !errors.Is(err, ErrInvalidQuantum) {
		t.Fatalf("expected ErrInvalidQuantum, got %v", err)
	}
	if !strings.Contains(buf.String(), "scheduler rejected workload") {
		t.Fatalf("expected warning log, got %q", buf.String())
	}
}

func TestSimulatorCompare(t *testing.T) {
	// the hook buffer is not safe for the concurrent runs
	simulator := NewSimulator(zaptest.NewLogger(t), 2)
	workload := sampleWorkloads["unsorted input"]

	results, err := simulator.Compare(context.Background(), workload, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != len(Policies) {
		t.Fatalf("expected %d results, got %d", len(Policies), len(results))
	}
	for i, policy := range Policies {
		if results[i].Policy != policy {
			t.Errorf("result %d: expected %s, got %s", i, policy, results[i].Policy)
		}
		direct, _ := Schedule(policy, workload, 3)
		if !reflect.DeepEqual(results[i], direct) {
			t.Errorf("%s: concurrent result differs from direct call", policy)
		}
	}
}

func TestSimulatorCompareErrors(t *testing.T) {
	// the hook buffer is not safe for the concurrent runs
	simulator := NewSimulator(zaptest.NewLogger(t), 2)

	if _, err := simulator.Compare(context.Background(), sampleWorkloads["single"], -1); !errors.Is(err, ErrInvalidQuantum) {
		t.Errorf("expected ErrInvalidQuantum, got %v", err)
	}
	if _, err := simulator.Compare(context.Background(), []core.Process{}, 2); !errors.Is(err, ErrEmptyWorkload) {
		t.Errorf("expected ErrEmptyWorkload, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := simulator.Compare(ctx, sampleWorkloads["single"], 2); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestSimulatorQuantumOrDefault(t *testing.T) {
	var buf bytes.Buffer
	simulator := NewSimulator(newTestLogger(t, &buf), 4)
	if got := simulator.QuantumOrDefault(nil); got != 4 {
		t.Errorf("expected default 4, got %d", got)
	}
	q := 7
	if got := simulator.QuantumOrDefault(&q); got != 7 {
		t.Errorf("expected 7, got %d", got)
	}
}

func TestSimulatorSuggest(t *testing.T) {
	var buf bytes.Buffer
	simulator := NewSimulator(newTestLogger(t, &buf), 2)

	suggestion, err := simulator.Suggest(sampleWorkloads["simultaneous arrivals"])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if suggestion.Policy != PolicyPriority {
		t.Fatalf("expected Priority, got %s", suggestion.Policy)
	}
	if _, err := simulator.Suggest(nil); !errors.Is(err, ErrEmptyWorkload) {
		t.Fatalf("expected ErrEmptyWorkload, got %v", err)
	}
}

func TestGenerateResponse(t *testing.T) {
	result, err := FirstComeFirstServe([]core.Process{
		newJob("A", 0, 3, 1),
		newJob("B", 1, 2, 1),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	response := GenerateResponse(result)

	if response.Algorithm != "FCFS" || response.TimeQuantum != 0 {
		t.Fatalf("unexpected header %+v", response)
	}
	if response.TotalTime != 5 || response.IdleTime != 0 || response.CpuUtilization != 1 || response.CpuThroughput != 0.4 {
		t.Fatalf("unexpected cpu figures %+v", response)
	}
	if response.AverageWaitingTime != 1 || response.AverageTurnAroundTime != 3.5 || response.AverageResponseTime != 1 {
		t.Fatalf("unexpected averages %+v", response)
	}
	if len(response.Timeline) != 2 || response.Timeline[1].ProcessId != "B" || response.Timeline[1].Start != 3 || response.Timeline[1].End != 5 {
		t.Fatalf("unexpected timeline %+v", response.Timeline)
	}
	b := response.Details[1]
	if b.ProcessId != "B" || b.CompletionTime != 5 || b.TurnAroundTime != 4 || b.WaitingTime != 2 || b.ResponseTime != 2 {
		t.Fatalf("unexpected details %+v", b)
	}
}

func TestGenerateResponseRoundRobinQuantum(t *testing.T) {
	result, err := RoundRobin(sampleWorkloads["single"], 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := GenerateResponse(result).TimeQuantum; got != 3 {
		t.Fatalf("expected quantum 3, got %d", got)
	}
}
