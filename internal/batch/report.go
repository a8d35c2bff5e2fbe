// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package batch

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/manuscript/pkg/types"
)

// Report is the YAML manifest written after a batch run.
type Report struct {
	GeneratedAt       string `yaml:"generated_at"`
	types.BatchResult `yaml:",inline"`
}

// WriteReport marshals result to path as YAML, replacing any existing file.
func WriteReport(path string, result types.BatchResult) error {
	report := Report{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		BatchResult: result,
	}
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}

// ReadReport loads a manifest written by WriteReport.
func ReadReport(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading report %s: %w", path, err)
	}
	var report Report
	if err := yaml.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("parsing report %s: %w", path, err)
	}
	return &report, nil
}
