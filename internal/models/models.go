package models

// Snapshot is the read-only view of a timer handed to the renderer.
type Snapshot struct {
	Remaining string
	FinishAt  string
	Ratio     float64
	Paused    bool
}

// Percent returns the elapsed share as a whole percentage, rounded down.
func (s Snapshot) Percent() int {
	return int(s.Ratio * 100)
}
