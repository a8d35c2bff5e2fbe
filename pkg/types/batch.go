// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the manuscript pipeline.
package types

// FileResult records the outcome of reformatting one input file.
type FileResult struct {
	// Input is the path the user selected.
	Input string `json:"input" yaml:"input"`

	// Output is the path the reformatted copy was written to. Empty when
	// the file failed.
	Output string `json:"output,omitempty" yaml:"output,omitempty"`

	// Photos is the number of (사진N) placeholders generated.
	Photos int `json:"photos" yaml:"photos"`

	// Error holds the failure message, if any.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Failed reports whether the file could not be reformatted.
func (r FileResult) Failed() bool {
	return r.Error != ""
}

// BatchResult holds the outcome of a batch run.
type BatchResult struct {
	Files     []FileResult `json:"files" yaml:"files"`
	Processed int          `json:"processed" yaml:"processed"`
	Failed    int          `json:"failed" yaml:"failed"`
}

// Total returns the number of files attempted.
func (r BatchResult) Total() int {
	return r.Processed + r.Failed
}

// HasFailures reports whether any file failed.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}
