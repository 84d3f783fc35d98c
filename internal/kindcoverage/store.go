package kindcoverage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Store handles persistence of a Coverage as indented JSON.
type Store struct {
	filePath string
}

// NewStore creates a new coverage store rooted at filePath.
func NewStore(filePath string) *Store {
	return &Store{filePath: filePath}
}

// Save writes coverage data to disk as indented JSON.
func (s *Store) Save(coverage *Coverage) error {
	dir := filepath.Dir(s.filePath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(coverage, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal coverage data: %w", err)
	}

	if err := os.WriteFile(s.filePath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write coverage file: %w", err)
	}
	return nil
}

// Load reads coverage data from disk.
func (s *Store) Load() (*Coverage, error) {
	if _, err := os.Stat(s.filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("coverage file not found: %s", s.filePath)
	}

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read coverage file: %w", err)
	}

	var coverage Coverage
	if err := json.Unmarshal(data, &coverage); err != nil {
		return nil, fmt.Errorf("failed to parse coverage file: %w", err)
	}
	return &coverage, nil
}

// Exists reports whether the coverage file exists.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.filePath)
	return err == nil
}

// Path returns the file path where coverage data is stored.
func (s *Store) Path() string {
	return s.filePath
}
