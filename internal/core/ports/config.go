package ports

// ConfigStore is read-only key/value access scoped by section and option.
// Missing keys are reported as *domain.ConfigKeyNotFoundError.
type ConfigStore interface {
	// String returns a scalar option
	String(section, option string) (string, error)

	// Strings returns a list option; a comma separated scalar is split
	Strings(section, option string) ([]string, error)
}
