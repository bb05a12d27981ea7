package schedulers

import (
	"sort"

	"sjf-simulator/internal/core"
)

// ScheduleShortestJobFirst runs non-preemptive SJF over processes and returns
// the full timeline, per-process details and aggregates. The input slice is
// left untouched; the call has no side effects.
func ScheduleShortestJobFirst(processes []core.Process) (core.SimulationResult, error) {
	if err := validateProcesses(processes); err != nil {
		return core.SimulationResult{}, err
	}

	pending := make([]core.Process, len(processes))
	copy(pending, processes)

	timeline := make([]core.TimelineSlot, 0, 2*len(pending))
	details := make([]core.ProcessResult, 0, len(pending))

	currentTime := pending[0].ArrivalTime
	for _, process := range pending[1:] {
		if process.ArrivalTime < currentTime {
			currentTime = process.ArrivalTime
		}
	}

	// every pass either completes a process or idles until one arrives,
	// so 2n passes is a hard upper bound
	maxPasses := 2 * len(pending)
	for pass := 0; len(pending) > 0; pass++ {
		if pass >= maxPasses {
			return core.SimulationResult{}, &ComputationError{Reason: "scheduling loop did not terminate"}
		}

		ready := readyAt(pending, currentTime)
		if len(ready) == 0 {
			nextArrival := pending[0].ArrivalTime
			for _, process := range pending[1:] {
				if process.ArrivalTime < nextArrival {
					nextArrival = process.ArrivalTime
				}
			}
			if nextArrival <= currentTime {
				return core.SimulationResult{}, &ComputationError{Reason: "idle slot would not advance time"}
			}

			timeline = append(timeline, core.TimelineSlot{ID: core.IdleID, Start: currentTime, End: nextArrival})
			currentTime = nextArrival
			continue
		}

		shortestJob := sortShortestJob(ready)[0]
		start := currentTime
		end := start + shortestJob.BurstTime
		if !isFinite(end) {
			return core.SimulationResult{}, invalidInput(shortestJob.ID, "completion time is out of range")
		}
		if end <= start {
			return core.SimulationResult{}, invalidInput(shortestJob.ID,
				"burst time %v is too small to advance time past %v", shortestJob.BurstTime, start)
		}

		// turnaround is built from waiting so it never drops below the burst
		waiting := start - shortestJob.ArrivalTime

		timeline = append(timeline, core.TimelineSlot{ID: shortestJob.ID, Start: start, End: end})
		details = append(details, core.ProcessResult{
			ID:             shortestJob.ID,
			ArrivalTime:    shortestJob.ArrivalTime,
			BurstTime:      shortestJob.BurstTime,
			StartTime:      start,
			CompletionTime: end,
			WaitingTime:    waiting,
			TurnaroundTime: waiting + shortestJob.BurstTime,
		})

		pending = removeProcess(pending, shortestJob.ID)
		currentTime = end
	}

	return generateResponse(timeline, details)
}

func readyAt(pending []core.Process, currentTime float64) []core.Process {
	ready := make([]core.Process, 0, len(pending))
	for _, process := range pending {
		if process.ArrivalTime <= currentTime {
			ready = append(ready, process)
		}
	}
	return ready
}

// sortShortestJob orders processes by burst, then arrival, then id.
// Ids are unique so the order is total.
func sortShortestJob(processes []core.Process) []core.Process {
	sort.SliceStable(processes, func(i, j int) bool {
		if processes[i].BurstTime != processes[j].BurstTime {
			return processes[i].BurstTime < processes[j].BurstTime
		}
		if processes[i].ArrivalTime != processes[j].ArrivalTime {
			return processes[i].ArrivalTime < processes[j].ArrivalTime
		}
		return processes[i].ID < processes[j].ID
	})
	return processes
}

func removeProcess(processes []core.Process, pid string) []core.Process {
	for i := range processes {
		if processes[i].ID == pid {
			return append(processes[:i], processes[i+1:]...)
		}
	}
	return processes
}
