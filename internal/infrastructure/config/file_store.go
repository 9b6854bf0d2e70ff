package configinfra

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/czokomaster/czokomaster/internal/core/domain"
	"github.com/czokomaster/czokomaster/internal/core/ports"
)

// FileStore is a ConfigStore backed by a TOML (or YAML) file. Every lookup
// re-reads the file, so edits are picked up without restarting.
type FileStore struct {
	path string
}

// NewFileStore creates a store reading path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// String returns a scalar option. Lists are joined with ", ".
func (s *FileStore) String(section, option string) (string, error) {
	value, err := s.lookup(section, option)
	if err != nil {
		return "", err
	}

	switch v := value.(type) {
	case string:
		return v, nil
	case []interface{}:
		return strings.Join(toStrings(v), ", "), nil
	default:
		return fmt.Sprint(v), nil
	}
}

// Strings returns a list option. Scalars are split on commas.
func (s *FileStore) Strings(section, option string) ([]string, error) {
	value, err := s.lookup(section, option)
	if err != nil {
		return nil, err
	}

	switch v := value.(type) {
	case []interface{}:
		return toStrings(v), nil
	case string:
		return SplitList(v), nil
	default:
		return []string{fmt.Sprint(v)}, nil
	}
}

func (s *FileStore) lookup(section, option string) (interface{}, error) {
	sections, err := s.load()
	if err != nil {
		return nil, err
	}

	options, ok := sections[section]
	if !ok {
		return nil, &domain.ConfigKeyNotFoundError{Section: section, Option: option, Path: s.path}
	}
	value, ok := options[option]
	if !ok || value == nil {
		return nil, &domain.ConfigKeyNotFoundError{Section: section, Option: option, Path: s.path}
	}
	return value, nil
}

func (s *FileStore) load() (map[string]map[string]interface{}, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	sections := make(map[string]map[string]interface{})
	switch strings.ToLower(filepath.Ext(s.path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &sections); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", s.path, err)
		}
	default:
		if err := toml.Unmarshal(data, &sections); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s as TOML (string values must be quoted, e.g. jails = \"base, jail1\"): %w", s.path, err)
		}
	}
	return sections, nil
}

// SplitList splits a comma separated option value, dropping empty items.
func SplitList(value string) []string {
	items := []string{}
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}

func toStrings(values []interface{}) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, fmt.Sprint(v))
	}
	return out
}

var _ ports.ConfigStore = (*FileStore)(nil)
