package schedulers

import (
	"math"

	"sjf-simulator/internal/core"
)

func validateProcesses(processes []core.Process) error {
	if len(processes) == 0 {
		return invalidInput("", "at least one process is required")
	}

	seen := make(map[string]struct{}, len(processes))
	for i, process := range processes {
		if process.ID == "" {
			return invalidInput("", "process #%d has an empty id", i+1)
		}
		if process.ID == core.IdleID {
			return invalidInput(process.ID, "id is reserved for idle slots")
		}
		if _, ok := seen[process.ID]; ok {
			return invalidInput(process.ID, "duplicate id")
		}
		seen[process.ID] = struct{}{}

		if !isFinite(process.ArrivalTime) || process.ArrivalTime < 0 {
			return invalidInput(process.ID, "arrival time must be a non-negative number, got %v", process.ArrivalTime)
		}
		if !isFinite(process.BurstTime) || process.BurstTime <= 0 {
			return invalidInput(process.ID, "burst time must be positive, got %v", process.BurstTime)
		}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
