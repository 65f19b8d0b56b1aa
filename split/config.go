package split

import (
	"errors"
	"fmt"
)

const (
	// DefaultMaxChunkSize is roughly 12K tokens for most tokenizers.
	DefaultMaxChunkSize = 50000
)

// DefaultSeparators is the separator preference list used by SplitRecursive:
// paragraph break, line break, sentence break, word break.
var DefaultSeparators = []string{"\n\n", "\n", ". ", " "}

// DefaultHeadingLevels are the markdown heading levels sections are cut on.
var DefaultHeadingLevels = []int{1, 2, 3}

// Config controls how a document body is split into chunks.
type Config struct {
	// MaxChunkSize is the maximum chunk length in characters.
	MaxChunkSize int

	// HeadingLevels lists the heading levels (1-6) that start a new section.
	HeadingLevels []int

	// Separators is the ordered separator preference list for oversized text.
	Separators []string
}

// DefaultConfig returns a Config with the default chunk size, heading levels
// and separators.
func DefaultConfig() Config {
	return Config{
		MaxChunkSize:  DefaultMaxChunkSize,
		HeadingLevels: append([]int(nil), DefaultHeadingLevels...),
		Separators:    append([]string(nil), DefaultSeparators...),
	}
}

// Validate checks that the configuration can be used for splitting.
func (c Config) Validate() error {
	if c.MaxChunkSize <= 0 {
		return fmt.Errorf("split config: MaxChunkSize must be positive, got %d", c.MaxChunkSize)
	}
	for _, level := range c.HeadingLevels {
		if level < 1 || level > 6 {
			return fmt.Errorf("split config: heading level %d out of range 1-6", level)
		}
	}
	for _, sep := range c.Separators {
		if sep == "" {
			return errors.New("split config: separators cannot be empty strings")
		}
	}
	return nil
}

// withDefaults fills zero-valued fields.
func (c Config) withDefaults() Config {
	if c.MaxChunkSize <= 0 {
		c.MaxChunkSize = DefaultMaxChunkSize
	}
	if c.HeadingLevels == nil {
		c.HeadingLevels = DefaultHeadingLevels
	}
	if c.Separators == nil {
		c.Separators = DefaultSeparators
	}
	return c
}
