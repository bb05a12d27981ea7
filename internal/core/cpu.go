package core

import "math"

type CpuMetric struct {
	IdleTime float64
	Makespan float64
}

// MeasureCpu derives the cpu metric from a chronological timeline.
func MeasureCpu(timeline []TimelineSlot) CpuMetric {
	if len(timeline) == 0 {
		return CpuMetric{}
	}

	var metric CpuMetric
	for _, slot := range timeline {
		if slot.IsIdle() {
			metric.IdleTime += slot.Duration()
		}
	}

	metric.Makespan = timeline[len(timeline)-1].End - timeline[0].Start
	return metric
}

// Utilization is busyTime as a percentage of makespan. Without idle time the
// cpu is fully used and the result is exactly 100; any idle time keeps it
// strictly below 100. A zero makespan is measured against 1.
func Utilization(busyTime, idleTime, makespan float64) float64 {
	if busyTime <= 0 {
		return 0
	}
	if idleTime <= 0 {
		return 100
	}
	if makespan == 0 {
		makespan = 1
	}

	utilization := 100 * (busyTime / makespan)
	if utilization >= 100 {
		// rounding can push busy/makespan up to 1
		return math.Nextafter(100, 0)
	}
	return utilization
}
