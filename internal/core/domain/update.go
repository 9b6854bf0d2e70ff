package domain

import (
	"bufio"
	"bytes"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Bump classifies how far the available version is from the installed one.
type Bump string

const (
	BumpUnknown Bump = "unknown"
	BumpPatch   Bump = "patch"
	BumpMinor   Bump = "minor"
	BumpMajor   Bump = "major"
)

// UpdateRecord is one pending update read from a target's cache file.
// Collectors print lines like "Django 1.3 (1.4)".
type UpdateRecord struct {
	Name      string
	Installed string
	Available string
	Raw       string
}

// ParseUpdateRecord parses a single cache line. ok is false for blank lines.
func ParseUpdateRecord(line string) (UpdateRecord, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return UpdateRecord{}, false
	}

	fields := strings.Fields(line)
	record := UpdateRecord{Name: fields[0], Raw: line}
	if len(fields) > 1 {
		record.Installed = fields[1]
	}
	if len(fields) > 2 {
		record.Available = strings.Trim(fields[2], "()")
	}
	return record, true
}

// ParseUpdateRecords parses a whole cache file, one record per non-blank line.
func ParseUpdateRecords(data []byte) []UpdateRecord {
	var records []UpdateRecord
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		if record, ok := ParseUpdateRecord(scanner.Text()); ok {
			records = append(records, record)
		}
	}
	return records
}

// Bump compares the installed and available versions.
func (r UpdateRecord) Bump() Bump {
	if r.Installed == "" || r.Available == "" {
		return BumpUnknown
	}
	installed, err := semver.NewVersion(r.Installed)
	if err != nil {
		return BumpUnknown
	}
	available, err := semver.NewVersion(r.Available)
	if err != nil {
		return BumpUnknown
	}

	switch {
	case available.Major() != installed.Major():
		return BumpMajor
	case available.Minor() != installed.Minor():
		return BumpMinor
	case available.Patch() != installed.Patch():
		return BumpPatch
	default:
		return BumpUnknown
	}
}
