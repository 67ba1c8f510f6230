package schedulers

import (
	"fmt"
	"strings"

	"cpu-scheduler/internal/core"
)

type Policy string

const (
	PolicyFCFS       Policy = "FCFS"
	PolicySJF        Policy = "SJF"
	PolicyPriority   Policy = "Priority"
	PolicyRoundRobin Policy = "Round-Robin"
)

// Policies lists every supported policy in the order results are reported.
var Policies = []Policy{PolicyFCFS, PolicySJF, PolicyPriority, PolicyRoundRobin}

var policyAliases = map[string]Policy{
	"fcfs":        PolicyFCFS,
	"fifo":        PolicyFCFS,
	"sjf":         PolicySJF,
	"priority":    PolicyPriority,
	"rr":          PolicyRoundRobin,
	"round-robin": PolicyRoundRobin,
	"round robin": PolicyRoundRobin,
	"round_robin": PolicyRoundRobin,
}

// ParsePolicy accepts the canonical names case-insensitively plus a few short aliases.
func ParsePolicy(name string) (Policy, error) {
	if p, ok := policyAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedPolicy, name)
}

func (p Policy) String() string {
	return string(p)
}

// Schedule runs a single policy. timeQuantum is only read by Round-Robin.
func Schedule(policy Policy, processes []core.Process, timeQuantum int) (Result, error) {
	switch policy {
	case PolicyFCFS:
		return FirstComeFirstServe(processes)
	case PolicySJF:
		return ShortestJobFirst(processes)
	case PolicyPriority:
		return PriorityScheduling(processes)
	case PolicyRoundRobin:
		return RoundRobin(processes, timeQuantum)
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnsupportedPolicy, string(policy))
	}
}
