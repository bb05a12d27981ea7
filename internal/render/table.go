package render

import (
	"fmt"
	"io"
	"sort"

	"github.com/olekukonko/tablewriter"

	"sjf-simulator/internal/core"
)

// Details writes the per-process table, sorted by id, with the averages
// and cpu utilization in the footer.
func Details(w io.Writer, result core.SimulationResult) {
	details := make([]core.ProcessResult, len(result.Details))
	copy(details, result.Details)
	sort.Slice(details, func(i, j int) bool {
		return details[i].ID < details[j].ID
	})

	rows := make([][]string, 0, len(details))
	for _, p := range details {
		rows = append(rows, []string{
			p.ID,
			formatTime(p.ArrivalTime),
			formatTime(p.BurstTime),
			formatTime(p.StartTime),
			formatTime(p.CompletionTime),
			formatTime(p.WaitingTime),
			formatTime(p.TurnaroundTime),
		})
	}

	_, _ = fmt.Fprintln(w, "Process Details:")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"PID", "Arrival", "Burst", "Start", "Completion", "Waiting", "Turnaround"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("CPU %.2f%%", result.CPUUtilization),
		fmt.Sprintf("Average\n%.2f", result.AvgWaitingTime),
		fmt.Sprintf("Average\n%.2f", result.AvgTurnaroundTime)})
	table.Render()
}

// Report writes the chart, the table and the summary lines.
func Report(w io.Writer, result core.SimulationResult) {
	Gantt(w, result.Timeline)
	Details(w, result)
	_, _ = fmt.Fprintf(w, "\nAverage Waiting Time: %.2f\n", result.AvgWaitingTime)
	_, _ = fmt.Fprintf(w, "Average Turnaround Time: %.2f\n", result.AvgTurnaroundTime)
	_, _ = fmt.Fprintf(w, "CPU Utilization: %.2f%%\n", result.CPUUtilization)
}
