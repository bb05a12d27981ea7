package loader

import (
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"

	"sjf-simulator/internal/core"
)

type processRow struct {
	ProcessId   string  `csv:"pid"`
	ArrivalTime float64 `csv:"arrival"`
	BurstTime   float64 `csv:"burst"`
}

// LoadProcesses reads a CSV with a pid,arrival,burst header. Rows with a
// blank pid are named after their position, P1 for the first data row.
// Values are not validated here; the scheduler rejects bad input.
func LoadProcesses(r io.Reader) ([]core.Process, error) {
	var rows []*processRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}

	processes := make([]core.Process, 0, len(rows))
	for i, row := range rows {
		pid := strings.TrimSpace(row.ProcessId)
		if pid == "" {
			pid = fmt.Sprintf("P%d", i+1)
		}
		processes = append(processes, core.Process{
			ID:          pid,
			ArrivalTime: row.ArrivalTime,
			BurstTime:   row.BurstTime,
		})
	}
	return processes, nil
}
