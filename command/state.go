package command

import "fmt"

// State is the recording state of a Buffer
type State int32

const (
	// StateInitial is the state of a new buffer: nothing has been recorded yet
	StateInitial State = iota
	// StateRecording accepts commands, between Begin and End
	StateRecording
	// StateExecutable is reached by End and lasts until the buffer is submitted
	StateExecutable
	// StateSubmitted is terminal: a buffer is submitted exactly once
	StateSubmitted
)

var stateMapping = map[State]string{
	StateInitial:    "Initial",
	StateRecording:  "Recording",
	StateExecutable: "Executable",
	StateSubmitted:  "Submitted",
}

func (s State) String() string {
	str, ok := stateMapping[s]
	if !ok {
		return fmt.Sprintf("State(%d)", int32(s))
	}
	return str
}
