package testfixtures

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/czokomaster/czokomaster/internal/core/domain"
	"github.com/czokomaster/czokomaster/internal/core/ports"
)

// ConfigBuilder provides a builder pattern for in-memory configuration
type ConfigBuilder struct {
	values map[string]map[string]string
}

// NewConfigBuilder creates an empty ConfigBuilder
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{values: make(map[string]map[string]string)}
}

// With sets a single option
func (b *ConfigBuilder) With(section, option, value string) *ConfigBuilder {
	if b.values[section] == nil {
		b.values[section] = make(map[string]string)
	}
	b.values[section][option] = value
	return b
}

// WithList sets a comma separated list option
func (b *ConfigBuilder) WithList(section, option string, values ...string) *ConfigBuilder {
	return b.With(section, option, strings.Join(values, ", "))
}

// WithPippy sets the options the python plugin reads
func (b *ConfigBuilder) WithPippy(cacheDir string, jails ...string) *ConfigBuilder {
	return b.With("pippy", "pippy_cachedir", cacheDir).
		With("pippy", "py_upgrade_cmd", "pip install -U").
		WithList("pippy", "jails", jails...)
}

// WithPorts sets the options the ports tree plugin reads
func (b *ConfigBuilder) WithPorts(jails ...string) *ConfigBuilder {
	return b.With("ports", "ports_upgrade_cmd", "portmaster -a").
		With("ports", "show_updates_cmd", "pkg version -vl <").
		WithList("ports", "jails", jails...)
}

// Build creates the config store
func (b *ConfigBuilder) Build() *MemoryConfig {
	values := make(map[string]map[string]string, len(b.values))
	for section, options := range b.values {
		values[section] = make(map[string]string, len(options))
		for option, value := range options {
			values[section][option] = value
		}
	}
	return &MemoryConfig{values: values}
}

// MemoryConfig is a ports.ConfigStore backed by a map
type MemoryConfig struct {
	values map[string]map[string]string
}

var _ ports.ConfigStore = (*MemoryConfig)(nil)

func (c *MemoryConfig) String(section, option string) (string, error) {
	value, ok := c.values[section][option]
	if !ok {
		return "", &domain.ConfigKeyNotFoundError{Section: section, Option: option}
	}
	return value, nil
}

func (c *MemoryConfig) Strings(section, option string) ([]string, error) {
	value, err := c.String(section, option)
	if err != nil {
		return nil, err
	}
	items := []string{}
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items, nil
}

// RecordingExecutor is a ports.Executor that records every command and
// answers capture requests from a script. It is safe for concurrent use.
type RecordingExecutor struct {
	mu       sync.Mutex
	outputs  map[string]domain.Result
	streamed []string
	captured []string
	err      error
}

var _ ports.Executor = (*RecordingExecutor)(nil)

// NewRecordingExecutor creates an executor whose commands all succeed silently
func NewRecordingExecutor() *RecordingExecutor {
	return &RecordingExecutor{outputs: make(map[string]domain.Result)}
}

// WithOutput scripts the stdout returned when command is captured
func (e *RecordingExecutor) WithOutput(command, stdout string) *RecordingExecutor {
	e.outputs[command] = domain.Result{Command: command, Stdout: []byte(stdout)}
	return e
}

// WithFailure scripts a non-zero exit for command
func (e *RecordingExecutor) WithFailure(command string, code int, stderr string) *RecordingExecutor {
	e.outputs[command] = domain.Result{Command: command, Stderr: []byte(stderr), ExitCode: code}
	return e
}

// WithError makes every Execute call fail with err
func (e *RecordingExecutor) WithError(err error) *RecordingExecutor {
	e.err = err
	return e
}

func (e *RecordingExecutor) Execute(ctx context.Context, req domain.ExecutionRequest) ([]domain.Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.err != nil {
		return nil, e.err
	}

	switch req.Mode {
	case domain.ModeStream:
		results := make([]domain.Result, 0, len(req.Commands))
		for _, command := range req.Commands {
			e.streamed = append(e.streamed, command)
			result := e.resultFor(command)
			result.Stdout, result.Stderr = nil, nil
			results = append(results, result)
		}
		return results, nil
	case domain.ModeCapture:
		if len(req.Commands) == 0 {
			return nil, nil
		}
		command := req.Commands[0]
		e.captured = append(e.captured, command)
		return []domain.Result{e.resultFor(command)}, nil
	default:
		return nil, fmt.Errorf("unsupported execution mode %s", req.Mode)
	}
}

func (e *RecordingExecutor) resultFor(command string) domain.Result {
	if result, ok := e.outputs[command]; ok {
		return result
	}
	return domain.Result{Command: command}
}

// Streamed returns the stream-mode commands in execution order
func (e *RecordingExecutor) Streamed() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.streamed...)
}

// Captured returns the capture-mode commands in execution order
func (e *RecordingExecutor) Captured() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.captured...)
}

// ArgvBuilder provides a builder pattern for argument vectors
type ArgvBuilder struct {
	args []string
}

// NewArgvBuilder starts a vector with the default program path
func NewArgvBuilder() *ArgvBuilder {
	return &ArgvBuilder{args: []string{domain.ProjectName}}
}

// Plugin sets the plugin token
func (b *ArgvBuilder) Plugin(name string) *ArgvBuilder {
	b.args = append(b.args, name)
	return b
}

// Action sets the action token
func (b *ArgvBuilder) Action(name string) *ArgvBuilder {
	b.args = append(b.args, name)
	return b
}

// Targets appends target tokens
func (b *ArgvBuilder) Targets(targets ...string) *ArgvBuilder {
	b.args = append(b.args, targets...)
	return b
}

// Build creates the argument vector
func (b *ArgvBuilder) Build() domain.ArgumentVector {
	return domain.NewArgumentVector(b.args...)
}

// Argv is shorthand for program, plugin, action and targets
func Argv(plugin, action string, targets ...string) domain.ArgumentVector {
	b := NewArgvBuilder()
	if plugin != "" {
		b.Plugin(plugin)
	}
	if action != "" {
		b.Action(action)
	}
	return b.Targets(targets...).Build()
}
