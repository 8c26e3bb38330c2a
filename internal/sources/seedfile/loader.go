// Package seedfile loads the optional YAML file that overrides the built-in
// default links table on fresh deployments.
package seedfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader handles loading and parsing of the seed links file.
type Loader struct {
	filePath string
}

// NewLoader creates a loader for the given path.
func NewLoader(filePath string) *Loader {
	return &Loader{filePath: filePath}
}

// Load reads and parses the seed file.
func (l *Loader) Load() (File, error) {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return File{}, fmt.Errorf("failed to read seed file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("failed to parse seed yaml: %w", err)
	}
	return f, nil
}
