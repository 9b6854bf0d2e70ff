package services

import (
	"fmt"

	"github.com/czokomaster/czokomaster/internal/core/domain"
	"github.com/czokomaster/czokomaster/internal/core/ports"
)

// TargetNormalizer resolves the user's target selection into a TargetSet.
type TargetNormalizer struct {
	config ports.ConfigStore
	help   func()
}

// NewTargetNormalizer creates a normalizer. help is shown when no targets were given.
func NewTargetNormalizer(config ports.ConfigStore, help func()) *TargetNormalizer {
	return &TargetNormalizer{config: config, help: help}
}

// Normalize returns the configured list at (section, option) when "all"
// appears anywhere in argv, otherwise the arguments after plugin and action.
// With neither it shows the top-level help and returns domain.ErrNoTargets.
func (n *TargetNormalizer) Normalize(section, option string, argv domain.ArgumentVector) (domain.TargetSet, error) {
	if argv.Contains(domain.AllTargets) {
		targets, err := n.config.Strings(section, option)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %q targets: %w", domain.AllTargets, err)
		}
		return domain.TargetSet(targets), nil
	}

	targets := argv.Tail()
	if len(targets) == 0 {
		if n.help != nil {
			n.help()
		}
		return nil, domain.ErrNoTargets
	}
	return domain.TargetSet(targets), nil
}
