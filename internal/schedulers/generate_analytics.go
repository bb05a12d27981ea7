package schedulers

import (
	"sjf-simulator/internal/core"
	"sjf-simulator/internal/util"
)

func generateResponse(timeline []core.TimelineSlot, processDetails []core.ProcessResult) (core.SimulationResult, error) {
	averageWaitingTime, averageTurnAroundTime := util.CalculateAverage(processDetails)
	cpuMetric := core.MeasureCpu(timeline)

	// busy time is taken from the bursts themselves, not from slot widths
	var cpuBusyTime float64
	for _, process := range processDetails {
		cpuBusyTime += process.BurstTime
	}

	result := core.SimulationResult{
		Timeline:          timeline,
		Details:           processDetails,
		AvgWaitingTime:    averageWaitingTime,
		AvgTurnaroundTime: averageTurnAroundTime,
		CPUUtilization:    core.Utilization(cpuBusyTime, cpuMetric.IdleTime, cpuMetric.Makespan),
	}

	aggregates := []struct {
		name  string
		value float64
	}{
		{"average waiting time", result.AvgWaitingTime},
		{"average turnaround time", result.AvgTurnaroundTime},
		{"cpu utilization", result.CPUUtilization},
	}
	for _, aggregate := range aggregates {
		if !isFinite(aggregate.value) {
			return core.SimulationResult{}, invalidInput("", "%s is out of range", aggregate.name)
		}
	}
	return result, nil
}
