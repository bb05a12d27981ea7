package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeasureCpu(t *testing.T) {
	t.Run("busy only", func(t *testing.T) {
		metric := MeasureCpu([]TimelineSlot{{ID: "P2", Start: 0, End: 4}, {ID: "P1", Start: 4, End: 12}})
		assert.Equal(t, 0.0, metric.IdleTime)
		assert.Equal(t, 12.0, metric.Makespan)
	})

	t.Run("with idle gap", func(t *testing.T) {
		metric := MeasureCpu([]TimelineSlot{
			{ID: "P1", Start: 0, End: 3},
			{ID: IdleID, Start: 3, End: 10},
			{ID: "P2", Start: 10, End: 12},
		})
		assert.Equal(t, 7.0, metric.IdleTime)
		assert.Equal(t, 12.0, metric.Makespan)
	})

	t.Run("timeline not starting at zero", func(t *testing.T) {
		metric := MeasureCpu([]TimelineSlot{{ID: "P1", Start: 5, End: 7}})
		assert.Equal(t, 2.0, metric.Makespan)
	})

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, CpuMetric{}, MeasureCpu(nil))
	})
}

func TestTimelineSlot(t *testing.T) {
	assert.True(t, TimelineSlot{ID: IdleID}.IsIdle())
	assert.False(t, TimelineSlot{ID: "P1"}.IsIdle())
	assert.Equal(t, 2.5, TimelineSlot{Start: 1, End: 3.5}.Duration())
}

func TestUtilization(t *testing.T) {
	assert.Equal(t, 50.0, Utilization(5, 5, 10))
	assert.Equal(t, 100*(5.0/12.0), Utilization(5, 7, 12))
	assert.Equal(t, 0.0, Utilization(0, 0, 0))

	// computed at run time so the makespan rounds to 1.3999999999999997
	arrival, burst := 0.7, 1.4
	makespan := (arrival + burst) - arrival

	t.Run("no idle time is exactly 100", func(t *testing.T) {
		assert.Greater(t, burst/makespan, 1.0)
		assert.Equal(t, 100.0, Utilization(burst, 0, makespan))
		assert.Equal(t, 100.0, Utilization(1e307, 0, 1e307))
	})

	t.Run("idle time stays below 100", func(t *testing.T) {
		utilization := Utilization(burst, 1e-300, makespan)
		assert.Less(t, utilization, 100.0)
		assert.InDelta(t, 100.0, utilization, 1e-9)
	})

	t.Run("zero makespan", func(t *testing.T) {
		assert.Equal(t, 50.0, Utilization(0.5, 1, 0))
	})
}
