package responses

import "sjf-simulator/internal/core"

type TimelineSlotResponse struct {
	ProcessId string  `json:"pid"`
	Start     float64 `json:"start"`
	End       float64 `json:"end"`
}

type ProcessResponse struct {
	ProcessId      string  `json:"pid"`
	StartTime      float64 `json:"startTime"`
	CompletionTime float64 `json:"completionTime"`
	WaitingTime    float64 `json:"waitingTime"`
	TurnAroundTime float64 `json:"turnaroundTime"`
	ArrivalTime    float64 `json:"arrival"`
	BurstTime      float64 `json:"burst"`
}

type ScheduleResponse struct {
	SimulationId          string                 `json:"id,omitempty"`
	Timeline              []TimelineSlotResponse `json:"timeline"`
	Details               []ProcessResponse      `json:"details"`
	AverageWaitingTime    float64                `json:"avgWaitingTime"`
	AverageTurnAroundTime float64                `json:"avgTurnaroundTime"`
	CpuUtilization        float64                `json:"cpuUtilization"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func FromResult(result core.SimulationResult) ScheduleResponse {
	response := ScheduleResponse{
		Timeline:              make([]TimelineSlotResponse, 0, len(result.Timeline)),
		Details:               make([]ProcessResponse, 0, len(result.Details)),
		AverageWaitingTime:    result.AvgWaitingTime,
		AverageTurnAroundTime: result.AvgTurnaroundTime,
		CpuUtilization:        result.CPUUtilization,
	}
	for _, slot := range result.Timeline {
		response.Timeline = append(response.Timeline, TimelineSlotResponse{
			ProcessId: slot.ID,
			Start:     slot.Start,
			End:       slot.End,
		})
	}
	for _, process := range result.Details {
		response.Details = append(response.Details, ProcessResponse{
			ProcessId:      process.ID,
			StartTime:      process.StartTime,
			CompletionTime: process.CompletionTime,
			WaitingTime:    process.WaitingTime,
			TurnAroundTime: process.TurnaroundTime,
			ArrivalTime:    process.ArrivalTime,
			BurstTime:      process.BurstTime,
		})
	}
	return response
}
