package cacheinfra

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/czokomaster/czokomaster/internal/core/domain"
)

// FileCache stores pending updates as one flat text file per target.
type FileCache struct {
	dir string
}

// NewFileCache creates a cache rooted at dir.
func NewFileCache(dir string) *FileCache {
	return &FileCache{dir: dir}
}

// Dir returns the cache directory.
func (c *FileCache) Dir() string {
	return c.dir
}

// Path returns the cache file for target.
func (c *FileCache) Path(target string) (string, error) {
	if target == "" || target == "." || target == ".." || strings.ContainsAny(target, `/\`) {
		return "", fmt.Errorf("invalid target name %q", target)
	}
	return filepath.Join(c.dir, target), nil
}

// Ensure creates the cache directory if needed.
func (c *FileCache) Ensure() error {
	if err := os.MkdirAll(c.dir, 0700); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	return nil
}

// Read returns the pending updates recorded for target.
func (c *FileCache) Read(target string) ([]domain.UpdateRecord, error) {
	path, err := c.Path(target)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read cache file for %s: %w", target, err)
	}
	return domain.ParseUpdateRecords(data), nil
}

// Write replaces target's cache file with the normalized collector output.
func (c *FileCache) Write(target string, output []byte) error {
	path, err := c.Path(target)
	if err != nil {
		return err
	}
	if err := c.Ensure(); err != nil {
		return err
	}

	// Write to file atomically; concurrent writers each get their own temp file
	tmp, err := os.CreateTemp(c.dir, target+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create cache file: %w", err)
	}
	tempFile := tmp.Name()
	if _, err := tmp.Write(NormalizeOutput(output)); err != nil {
		tmp.Close()
		os.Remove(tempFile)
		return fmt.Errorf("failed to write cache file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tempFile)
		return fmt.Errorf("failed to write cache file: %w", err)
	}

	if err := os.Rename(tempFile, path); err != nil {
		os.Remove(tempFile)
		return fmt.Errorf("failed to save cache file: %w", err)
	}

	return nil
}

// NormalizeOutput trims the output and strips leading whitespace from every line.
func NormalizeOutput(output []byte) []byte {
	lines := strings.Split(string(bytes.TrimSpace(output)), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimLeft(line, " \t")
	}
	return []byte(strings.Join(lines, "\n"))
}
