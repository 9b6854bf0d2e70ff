package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/sirupsen/logrus"

	"github.com/czokomaster/czokomaster/internal/core/domain"
	"github.com/czokomaster/czokomaster/internal/core/ports"
)

// Executor implements ports.Executor on top of os/exec.
type Executor struct {
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
	workDir string
	env     []string
	log     *logrus.Entry
}

// NewExecutor creates an executor bound to the invoking terminal.
func NewExecutor(log *logrus.Entry) *Executor {
	return NewExecutorWithOptions(os.Stdin, os.Stdout, os.Stderr, "", nil, log)
}

// NewExecutorWithOptions creates an executor with custom streams, working
// directory and environment. A nil env inherits the current environment.
func NewExecutorWithOptions(stdin io.Reader, stdout, stderr io.Writer, workDir string, env []string, log *logrus.Entry) *Executor {
	if env == nil {
		env = os.Environ()
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}

	return &Executor{
		stdin:   stdin,
		stdout:  stdout,
		stderr:  stderr,
		workDir: workDir,
		env:     env,
		log:     log,
	}
}

// Execute runs req. Stream mode runs every command in order, waiting for each,
// and keeps going after failures. Capture mode only ever runs the first
// command; callers that need several outputs issue several requests.
func (e *Executor) Execute(ctx context.Context, req domain.ExecutionRequest) ([]domain.Result, error) {
	switch req.Mode {
	case domain.ModeStream:
		return e.stream(ctx, req.Commands)
	case domain.ModeCapture:
		return e.capture(ctx, req.Commands)
	default:
		return nil, fmt.Errorf("unsupported execution mode %s", req.Mode)
	}
}

func (e *Executor) stream(ctx context.Context, commands []string) ([]domain.Result, error) {
	results := make([]domain.Result, 0, len(commands))
	for _, line := range commands {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		results = append(results, e.run(ctx, line, e.stdout, e.stderr))
	}
	return results, nil
}

func (e *Executor) capture(ctx context.Context, commands []string) ([]domain.Result, error) {
	if len(commands) == 0 {
		return nil, nil
	}
	if len(commands) > 1 {
		e.log.WithField("ignored", len(commands)-1).Debug("capture mode runs the first command only")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var stdout, stderr bytes.Buffer
	result := e.run(ctx, commands[0], &stdout, &stderr)
	result.Stdout = stdout.Bytes()
	result.Stderr = stderr.Bytes()
	return []domain.Result{result}, nil
}

func (e *Executor) run(ctx context.Context, line string, stdout, stderr io.Writer) domain.Result {
	result := domain.Result{Command: line, ExitCode: -1}
	log := e.log.WithField("command", line)

	cmd, err := ParseCommandLine(line)
	if err != nil {
		result.Err = err
		log.WithError(err).Warn("command not run")
		return result
	}

	log.Debugf("+ %s", cmd)

	execCmd := exec.CommandContext(ctx, cmd.Executable(), cmd.Args()...)
	execCmd.Dir = e.workDir
	execCmd.Env = e.env
	execCmd.Stdin = e.stdin
	execCmd.Stdout = stdout
	execCmd.Stderr = stderr

	err = execCmd.Run()

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		result.ExitCode = 0
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
		if result.ExitCode < 0 {
			result.Err = err
		}
	default:
		result.Err = err
	}

	if result.Failed() {
		log.WithField("exit_code", result.ExitCode).WithError(result.Err).Warn("command failed")
	} else {
		log.Debug("command finished")
	}
	return result
}

var _ ports.Executor = (*Executor)(nil)
