package domain

import "fmt"

// ExecutionMode selects how the executor treats command output.
type ExecutionMode int

const (
	// ModeStream hands the terminal to each command in turn and returns no output.
	ModeStream ExecutionMode = iota
	// ModeCapture runs the first command only and returns its stdout and stderr.
	ModeCapture
)

func (m ExecutionMode) String() string {
	switch m {
	case ModeStream:
		return "stream"
	case ModeCapture:
		return "capture"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ExecutionRequest is an ordered list of shell command lines plus a mode.
type ExecutionRequest struct {
	Commands []string
	Mode     ExecutionMode
}

// StreamRequest runs every command sequentially on the invoking terminal.
func StreamRequest(commands ...string) ExecutionRequest {
	return ExecutionRequest{Commands: append([]string(nil), commands...), Mode: ModeStream}
}

// CaptureRequest captures the output of a single command.
func CaptureRequest(command string) ExecutionRequest {
	return ExecutionRequest{Commands: []string{command}, Mode: ModeCapture}
}

// Result describes one finished command. Stdout and Stderr are only filled in
// capture mode. Err is set when the process could not run or was killed by a
// signal, and ExitCode is then -1; a normal non-zero exit only sets ExitCode.
type Result struct {
	Command  string
	Stdout   []byte
	Stderr   []byte
	ExitCode int
	Err      error
}

// Failed reports whether the command could not run or exited non-zero.
func (r Result) Failed() bool {
	return r.Err != nil || r.ExitCode != 0
}
