package domain

import (
	"fmt"
	"strings"
)

// Command is a tokenized command line ready to be spawned.
type Command struct {
	executable string
	args       []string
}

// NewCommand creates a new Command value object
func NewCommand(executable string, args []string) (Command, error) {
	if executable == "" {
		return Command{}, ErrEmptyCommand
	}

	return Command{
		executable: executable,
		args:       append([]string(nil), args...), // Copy slice
	}, nil
}

// NewCommandFromTokens builds a Command from a tokenized command line.
func NewCommandFromTokens(tokens []string) (Command, error) {
	if len(tokens) == 0 {
		return Command{}, ErrEmptyCommand
	}
	return NewCommand(tokens[0], tokens[1:])
}

// Executable returns the command executable
func (c Command) Executable() string {
	return c.executable
}

// Args returns a copy of the command arguments
func (c Command) Args() []string {
	return append([]string(nil), c.args...)
}

// String returns a string representation of the command
func (c Command) String() string {
	if len(c.args) == 0 {
		return c.executable
	}
	return fmt.Sprintf("%s %s", c.executable, strings.Join(c.args, " "))
}
