package util

import (
	"gonum.org/v1/gonum/stat"

	"sjf-simulator/internal/core"
)

// CalculateAverage returns the mean waiting and turnaround time over details.
// Both are zero for an empty slice.
func CalculateAverage(processDetails []core.ProcessResult) (averageWaitingTime, averageTurnAroundTime float64) {
	if len(processDetails) == 0 {
		return 0, 0
	}

	waitingTimes := make([]float64, len(processDetails))
	turnAroundTimes := make([]float64, len(processDetails))
	for i, process := range processDetails {
		waitingTimes[i] = process.WaitingTime
		turnAroundTimes[i] = process.TurnaroundTime
	}

	averageWaitingTime = stat.Mean(waitingTimes, nil)
	averageTurnAroundTime = stat.Mean(turnAroundTimes, nil)
	return
}
