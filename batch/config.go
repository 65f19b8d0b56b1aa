package batch

import (
	"errors"
	"fmt"
	"strings"

	"github.com/poiesic/notesum/frontmatter"
	"github.com/poiesic/notesum/split"
)

const (
	// DefaultField is the metadata field that receives the abstract.
	DefaultField = "summary"

	// DefaultMarker prefixes machine-written values. A field that does not
	// start with the trimmed marker is treated as human-written.
	DefaultMarker = "[AI] "

	// DefaultExtension is the only document extension that is processed.
	DefaultExtension = ".md"
)

// Config controls how each document in a batch is processed.
type Config struct {
	// Split controls chunking of the document body.
	Split split.Config

	// DryRun computes summaries without writing them back.
	DryRun bool

	// Field is the metadata key that holds the abstract.
	Field string

	// Marker is prepended to written values and identifies them on later runs.
	Marker string

	// InsertBefore lists keys a newly added field is placed in front of.
	InsertBefore []string

	// Extension is the required document file extension, including the dot.
	Extension string
}

// DefaultConfig returns the configuration used by the command line tool.
func DefaultConfig() Config {
	return Config{
		Split:        split.DefaultConfig(),
		Field:        DefaultField,
		Marker:       DefaultMarker,
		InsertBefore: append([]string(nil), frontmatter.DefaultInsertBefore...),
		Extension:    DefaultExtension,
	}
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if err := c.Split.Validate(); err != nil {
		return err
	}
	if c.Field == "" {
		return errors.New("batch config: field is required")
	}
	if strings.ContainsAny(c.Field, ":\n") {
		return fmt.Errorf("batch config: invalid field name %q", c.Field)
	}
	if strings.TrimSpace(c.Marker) == "" {
		return errors.New("batch config: marker is required")
	}
	if !strings.HasPrefix(c.Extension, ".") {
		return fmt.Errorf("batch config: extension %q must start with a dot", c.Extension)
	}
	return nil
}

// isMachineWritten reports whether value carries the marker.
func (c Config) isMachineWritten(value string) bool {
	return strings.HasPrefix(value, strings.TrimSpace(c.Marker))
}
