package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrConfigKeyNotFound matches every ConfigKeyNotFoundError.
	ErrConfigKeyNotFound = errors.New("config key not found")

	// ErrNoTargets is returned after usage help was shown because no targets were given.
	ErrNoTargets = errors.New("no targets given")

	// ErrEmptyCommand is reported for command lines that tokenize to nothing.
	ErrEmptyCommand = errors.New("empty command line")
)

// ConfigKeyNotFoundError names the section and option that could not be resolved.
type ConfigKeyNotFoundError struct {
	Section string
	Option  string
	Path    string
}

func (e *ConfigKeyNotFoundError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("config key [%s] %s not found", e.Section, e.Option)
	}
	return fmt.Sprintf("config key [%s] %s not found in %s", e.Section, e.Option, e.Path)
}

// Is lets errors.Is match against ErrConfigKeyNotFound.
func (e *ConfigKeyNotFoundError) Is(target error) bool {
	return target == ErrConfigKeyNotFound
}

// ExitStatus asks the entry point to terminate with Code once the action returns.
type ExitStatus struct {
	Code int
}

func (e *ExitStatus) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// Exit builds an ExitStatus error.
func Exit(code int) error {
	return &ExitStatus{Code: code}
}
