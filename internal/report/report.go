package report

import (
	"fmt"
	"io"
	"strings"

	"cpu-scheduler/internal/responses"

	"github.com/olekukonko/tablewriter"
)

const cellWidth = 8

// WriteSchedule prints the gantt line followed by the per process table with
// averages in the footer.
func WriteSchedule(w io.Writer, response responses.ScheduleResponse) {
	title := response.Algorithm
	if response.TimeQuantum > 0 {
		title = fmt.Sprintf("%s (quantum %d)", title, response.TimeQuantum)
	}
	_, _ = fmt.Fprintf(w, "=== %s ===\n", title)
	WriteGantt(w, response.Timeline)
	writeTable(w, response)
	_, _ = fmt.Fprintf(w, "CPU utilization: %.2f%%  Throughput: %.3f jobs/unit  Idle: %.0f\n\n",
		response.CpuUtilization*100, response.CpuThroughput, response.IdleTime)
}

// WriteGantt draws one cell per segment with the start times underneath.
// Idle gaps show up as a cell labelled "idle".
func WriteGantt(w io.Writer, timeline []responses.SegmentResponse) {
	if len(timeline) == 0 {
		_, _ = fmt.Fprintln(w, "(empty gantt)")
		return
	}
	var bars, scale strings.Builder
	bars.WriteString("|")
	last := 0
	for _, s := range timeline {
		if s.Start > last {
			bars.WriteString(center("idle") + "|")
			scale.WriteString(fmt.Sprintf("%-*d", cellWidth+1, last))
		}
		bars.WriteString(center(s.ProcessId) + "|")
		scale.WriteString(fmt.Sprintf("%-*d", cellWidth+1, s.Start))
		last = s.End
	}
	scale.WriteString(fmt.Sprint(last))
	_, _ = fmt.Fprintln(w, bars.String())
	_, _ = fmt.Fprintln(w, scale.String())
}

func center(s string) string {
	if len(s) >= cellWidth {
		return s[:cellWidth]
	}
	left := (cellWidth - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", cellWidth-len(s)-left)
}

func writeTable(w io.Writer, response responses.ScheduleResponse) {
	rows := make([][]string, 0, len(response.Details))
	for _, d := range response.Details {
		rows = append(rows, []string{
			d.ProcessId,
			fmt.Sprint(d.Priority),
			fmt.Sprint(d.BurstTime),
			fmt.Sprint(d.ArrivalTime),
			fmt.Sprint(d.CompletionTime),
			fmt.Sprint(d.TurnAroundTime),
			fmt.Sprint(d.WaitingTime),
			fmt.Sprint(d.ResponseTime),
		})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Completion", "Turnaround", "Wait", "Response"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "", "Average",
		fmt.Sprintf("%.2f", response.AverageTurnAroundTime),
		fmt.Sprintf("%.2f", response.AverageWaitingTime),
		fmt.Sprintf("%.2f", response.AverageResponseTime),
	})
	table.Render()
}

// WriteSuggestion prints the advisor output.
func WriteSuggestion(w io.Writer, suggestion responses.SuggestionResponse) {
	_, _ = fmt.Fprintf(w, "Suggested algorithm: %s\nReason: %s\n", suggestion.Algorithm, suggestion.Reason)
}
