// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Validate when a configuration value is out
// of range.
var ErrInvalidConfig = errors.New("invalid configuration")

// WidthMode selects how the wrapper measures line width.
type WidthMode string

const (
	// WidthRunes counts one unit per Unicode code point.
	WidthRunes WidthMode = "runes"
	// WidthCells counts terminal display cells; Hangul and other wide
	// characters take two.
	WidthCells WidthMode = "cells"
)

// Default reformatting parameters.
const (
	DefaultBodyWidth     = 35
	DefaultCommentWidth  = 40
	DefaultMinLines      = 2
	DefaultMaxLines      = 6
	DefaultProgressEvery = 20
)

// ReformatConfig holds the paragraph reflow parameters for one document.
type ReformatConfig struct {
	// BodyWidth is the maximum wrapped line width inside #본문 (default 35).
	BodyWidth int `json:"body_width" yaml:"body_width" mapstructure:"body_width"`

	// CommentWidth is the maximum wrapped line width inside #댓글 (default 40).
	CommentWidth int `json:"comment_width" yaml:"comment_width" mapstructure:"comment_width"`

	// MinLines is the number of wrapped lines a paragraph needs before it
	// may close on a sentence boundary (default 2).
	MinLines int `json:"min_lines" yaml:"min_lines" mapstructure:"min_lines"`

	// MaxLines forces a paragraph to close once reached (default 6).
	MaxLines int `json:"max_lines" yaml:"max_lines" mapstructure:"max_lines"`

	// WidthMode selects runes or display cells.
	WidthMode WidthMode `json:"width_mode" yaml:"width_mode" mapstructure:"width_mode"`
}

// DefaultReformatConfig returns the parameters the manuscript desk uses.
func DefaultReformatConfig() ReformatConfig {
	return ReformatConfig{
		BodyWidth:    DefaultBodyWidth,
		CommentWidth: DefaultCommentWidth,
		MinLines:     DefaultMinLines,
		MaxLines:     DefaultMaxLines,
		WidthMode:    WidthRunes,
	}
}

// Validate reports whether the parameters can drive the reflow.
func (c ReformatConfig) Validate() error {
	if c.BodyWidth <= 0 || c.CommentWidth <= 0 {
		return fmt.Errorf("%w: widths must be positive (body %d, comment %d)", ErrInvalidConfig, c.BodyWidth, c.CommentWidth)
	}
	if c.MinLines < 0 || c.MaxLines < 0 {
		return fmt.Errorf("%w: line counts must not be negative", ErrInvalidConfig)
	}
	if c.MaxLines > 0 && c.MinLines > c.MaxLines {
		return fmt.Errorf("%w: min_lines %d exceeds max_lines %d", ErrInvalidConfig, c.MinLines, c.MaxLines)
	}
	switch c.WidthMode {
	case WidthRunes, WidthCells, "":
	default:
		return fmt.Errorf("%w: unknown width mode %q", ErrInvalidConfig, c.WidthMode)
	}
	return nil
}

// BatchConfig holds settings for the batch driver.
type BatchConfig struct {
	// ProgressEvery is how many processed files are reported per progress
	// notification (default 20).
	ProgressEvery int `json:"progress_every" yaml:"progress_every" mapstructure:"progress_every"`

	// Encoding names the input text encoding: utf-8 (default) or euc-kr.
	Encoding string `json:"encoding" yaml:"encoding" mapstructure:"encoding"`

	// OutputDir overrides where reformatted copies are written. Empty means
	// next to each input file.
	OutputDir string `json:"output_dir,omitempty" yaml:"output_dir,omitempty" mapstructure:"output_dir"`

	// ContinueOnError reports a failed file and moves on instead of
	// aborting the batch.
	ContinueOnError bool `json:"continue_on_error" yaml:"continue_on_error" mapstructure:"continue_on_error"`
}

// Config groups all settings read from manuscript.yaml.
type Config struct {
	Reformat ReformatConfig `json:"reformat" yaml:"reformat" mapstructure:"reformat"`
	Batch    BatchConfig    `json:"batch" yaml:"batch" mapstructure:"batch"`
}
