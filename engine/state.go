package engine

// State is the render loop lifecycle phase
// Transitions only move forward: Starting -> Running -> Stopped
type State int32

const (
	// StateStarting is the phase before the loop goroutine runs
	StateStarting State = iota
	// StateRunning applies commands, paints frames and forwards input
	StateRunning
	// StateStopped is final: the terminal is released and every channel closed
	StateStopped
)

var stateNames = [...]string{
	StateStarting: "Starting",
	StateRunning:  "Running",
	StateStopped:  "Stopped",
}

// String returns the state name
func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "Unknown"
}
