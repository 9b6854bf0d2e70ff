// Package plugins holds what the built-in plugins share: their collaborators,
// version banners and the per-target run bookkeeping.
package plugins

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/czokomaster/czokomaster/internal/application/services"
	"github.com/czokomaster/czokomaster/internal/core/domain"
	"github.com/czokomaster/czokomaster/internal/core/ports"
	"github.com/czokomaster/czokomaster/internal/ui"
)

// Dependencies are the collaborators handed to every built-in plugin.
type Dependencies struct {
	Config     ports.ConfigStore
	Executor   ports.Executor
	Normalizer *services.TargetNormalizer
	Console    *ui.Console
	Log        *logrus.Entry
}

// Logger returns a plugin scoped log entry.
func (d Dependencies) Logger(plugin string) *logrus.Entry {
	log := d.Log
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return log.WithField("plugin", plugin)
}

// Meta identifies a plugin on its version screen.
type Meta struct {
	Name    string
	Version string
}

// PrintVersion prints "<name> plugin version <version> <copyright>".
func (m Meta) PrintVersion(console *ui.Console) {
	console.Printf("%s plugin version %s %s\n\n", m.Name, m.Version, domain.Copyright)
}

// Ordered returns the targets with the base system first, the rest in the
// order given.
func Ordered(targets domain.TargetSet) domain.TargetSet {
	base, jails := targets.Split()
	if !base {
		return jails
	}
	return append(domain.TargetSet{domain.BaseTarget}, jails...)
}

// Stream runs commands on the terminal and reports every one that failed.
// A failing command does not stop the ones after it.
func Stream(ctx context.Context, exec ports.Executor, commands ...string) error {
	results, err := exec.Execute(ctx, domain.StreamRequest(commands...))
	if err != nil {
		return err
	}

	var errs []error
	for _, result := range results {
		if !result.Failed() {
			continue
		}
		if result.Err != nil {
			errs = append(errs, fmt.Errorf("%q: %w", result.Command, result.Err))
			continue
		}
		errs = append(errs, exitError(result.Command, result))
	}
	return errors.Join(errs...)
}

// Capture runs a single command and returns its standard output. A non-zero
// exit is an error carrying the command's standard error; whatever it wrote
// to standard output is still returned.
func Capture(ctx context.Context, exec ports.Executor, command string) ([]byte, error) {
	results, err := exec.Execute(ctx, domain.CaptureRequest(command))
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("no result for %q", command)
	}

	result := results[0]
	if result.Err != nil {
		return result.Stdout, fmt.Errorf("%q: %w", command, result.Err)
	}
	if result.ExitCode != 0 {
		return result.Stdout, exitError(command, result)
	}
	return result.Stdout, nil
}

func exitError(command string, result domain.Result) error {
	stderr := strings.TrimSpace(string(result.Stderr))
	if stderr == "" {
		return fmt.Errorf("%q exited with code %d", command, result.ExitCode)
	}
	return fmt.Errorf("%q exited with code %d: %s", command, result.ExitCode, stderr)
}

// Failures collects per-target errors of a best-effort run.
type Failures struct {
	targets []string
	errs    []error
}

// Add records err for target; nil errors are ignored.
func (f *Failures) Add(target string, err error) {
	if err == nil {
		return
	}
	f.targets = append(f.targets, target)
	f.errs = append(f.errs, err)
}

// Len returns the number of failed targets.
func (f *Failures) Len() int {
	return len(f.targets)
}

// Report prints the failed targets, if any, after the run finished.
func (f *Failures) Report(console *ui.Console, log *logrus.Entry) {
	if f.Len() == 0 {
		return
	}
	console.Section("Failed targets")
	for i, target := range f.targets {
		log.WithField("target", target).WithError(f.errs[i]).Warn("target failed")
		console.Pending(fmt.Sprintf("%s: %v", domain.DisplayName(target), f.errs[i]))
	}
	console.Println()
}
