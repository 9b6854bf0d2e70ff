package domain

const (
	// BaseTarget names the primary system.
	BaseTarget = "base"

	// AllTargets selects the configured target list.
	AllTargets = "all"
)

// TargetSet is an ordered list of target identifiers.
type TargetSet []string

// HasBase reports whether the primary system is part of the set.
func (t TargetSet) HasBase() bool {
	for _, target := range t {
		if target == BaseTarget {
			return true
		}
	}
	return false
}

// WithoutBase returns a new set holding every target except the primary system,
// order preserved.
func (t TargetSet) WithoutBase() TargetSet {
	rest := make(TargetSet, 0, len(t))
	for _, target := range t {
		if target != BaseTarget {
			rest = append(rest, target)
		}
	}
	return rest
}

// Split separates the base system from the named sub-environments.
func (t TargetSet) Split() (base bool, jails TargetSet) {
	return t.HasBase(), t.WithoutBase()
}

// DisplayName is the label operators see for a target.
func DisplayName(target string) string {
	if target == BaseTarget {
		return "the base system"
	}
	return target
}
