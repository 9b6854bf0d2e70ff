package services

import (
	"errors"
	"strings"

	"github.com/czokomaster/czokomaster/internal/core/domain"
	"github.com/czokomaster/czokomaster/internal/core/ports"
)

// StringOr returns the option value, or fallback when the key is absent.
// Other lookup failures are returned unchanged.
func StringOr(config ports.ConfigStore, section, option, fallback string) (string, error) {
	value, err := config.String(section, option)
	if errors.Is(err, domain.ErrConfigKeyNotFound) {
		return fallback, nil
	}
	return value, err
}

// Enabled interprets yes/true/on/1 (any case) as true.
func Enabled(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes", "true", "on", "1":
		return true
	default:
		return false
	}
}

// JailExec returns the command used to enter a sub-environment.
func JailExec(config ports.ConfigStore) (string, error) {
	return StringOr(config, "core", "jail_exec", domain.DefaultJailExec)
}

// CommandFor builds the command line that runs command on target: unchanged
// for the base system, prefixed with jailExec and the target otherwise.
func CommandFor(jailExec, target, command string) string {
	if target == domain.BaseTarget {
		return command
	}
	return jailExec + " " + target + " " + command
}
