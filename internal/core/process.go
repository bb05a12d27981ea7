package core

// IdleID marks timeline slots where no process runs.
const IdleID = "IDLE"

type Process struct {
	ID          string
	ArrivalTime float64
	BurstTime   float64
}

// TimelineSlot is the half-open interval [Start, End) given to ID.
type TimelineSlot struct {
	ID    string
	Start float64
	End   float64
}

func (s TimelineSlot) IsIdle() bool {
	return s.ID == IdleID
}

func (s TimelineSlot) Duration() float64 {
	return s.End - s.Start
}

type ProcessResult struct {
	ID             string
	ArrivalTime    float64
	BurstTime      float64
	StartTime      float64
	CompletionTime float64
	WaitingTime    float64
	TurnaroundTime float64
}

type SimulationResult struct {
	Timeline          []TimelineSlot
	Details           []ProcessResult
	AvgWaitingTime    float64
	AvgTurnaroundTime float64
	CPUUtilization    float64
}
