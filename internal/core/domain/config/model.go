package configdomain

import "fmt"

// Bootstrap setting keys.
const (
	KeyConfigPath = "config_path"
	KeyPluginDir  = "plugin_dir"
	KeyLogLevel   = "log_level"
)

// Priorities, lower wins.
const (
	PriorityEnv     = 2
	PriorityFile    = 3
	PriorityDefault = 9
)

// Entry represents a single configuration value with provenance and priority.
type Entry struct {
	Key        string
	Value      interface{}
	Source     string
	SourcePath string
	Priority   int
}

// Snapshot is a collection of config entries keyed by field name.
type Snapshot map[string]Entry

// Merge merges another snapshot into this one respecting priority
// (lower number indicates higher priority).
func (s Snapshot) Merge(other Snapshot) {
	for k, e := range other {
		if existing, ok := s[k]; !ok || e.Priority <= existing.Priority {
			s[k] = e
		}
	}
}

// String returns the value stored under key formatted as a string, or "".
func (s Snapshot) String(key string) string {
	e, ok := s[key]
	if !ok || e.Value == nil {
		return ""
	}
	if v, ok := e.Value.(string); ok {
		return v
	}
	return fmt.Sprint(e.Value)
}

// Defaults returns the built-in bootstrap settings.
func Defaults(configPath string) Snapshot {
	add := func(snap Snapshot, key string, v interface{}) {
		snap[key] = Entry{Key: key, Value: v, Source: "default", Priority: PriorityDefault}
	}

	snap := make(Snapshot)
	add(snap, KeyConfigPath, configPath)
	add(snap, KeyPluginDir, "")
	add(snap, KeyLogLevel, "warn")
	return snap
}
