package frontmatter

import "errors"

var (
	// ErrNoFrontmatter is returned when content does not start with a metadata block.
	ErrNoFrontmatter = errors.New("no frontmatter block")

	// ErrInvalidFrontmatter is returned when the metadata block is not a YAML mapping.
	ErrInvalidFrontmatter = errors.New("invalid frontmatter")
)
