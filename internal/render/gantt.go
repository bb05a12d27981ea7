package render

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"sjf-simulator/internal/core"
)

// Gantt writes the timeline as a single chart line followed by its ticks.
func Gantt(w io.Writer, timeline []core.TimelineSlot) {
	_, _ = fmt.Fprintln(w, "Gantt Chart:")
	for _, slot := range timeline {
		_, _ = fmt.Fprint(w, "| ")
		_, _ = ColorFor(slot.ID).Fprint(w, slot.ID)
		_, _ = fmt.Fprintf(w, " (%s -> %s) ", formatTime(slot.Start), formatTime(slot.End))
	}
	_, _ = fmt.Fprintln(w, "|")

	for i, tick := range Ticks(timeline) {
		if i > 0 {
			_, _ = fmt.Fprint(w, "\t")
		}
		_, _ = fmt.Fprint(w, formatTime(tick))
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

// Ticks returns the distinct slot boundaries in ascending order.
func Ticks(timeline []core.TimelineSlot) []float64 {
	seen := make(map[float64]struct{}, len(timeline)+1)
	ticks := make([]float64, 0, len(timeline)+1)
	for _, slot := range timeline {
		for _, t := range []float64{slot.Start, slot.End} {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			ticks = append(ticks, t)
		}
	}
	sort.Float64s(ticks)
	return ticks
}

func formatTime(t float64) string {
	return strconv.FormatFloat(t, 'f', -1, 64)
}
