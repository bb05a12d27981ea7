package requests

import "sjf-simulator/internal/core"

type Job struct {
	ProcessId   string  `json:"pid"`
	ArrivalTime float64 `json:"arrival"`
	BurstTime   float64 `json:"burst"`
}

type ScheduleRequests struct {
	Jobs []Job `json:"processes"`
}

func (r *ScheduleRequests) ToProcesses() []core.Process {
	processes := make([]core.Process, 0, len(r.Jobs))
	for _, job := range r.Jobs {
		processes = append(processes, core.Process{
			ID:          job.ProcessId,
			ArrivalTime: job.ArrivalTime,
			BurstTime:   job.BurstTime,
		})
	}
	return processes
}
