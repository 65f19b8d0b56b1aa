// Package frontmatter reads and rewrites the YAML metadata block at the top
// of a markdown note.
//
// Parsing uses yaml.v3 to read field values, but rewriting is line based so
// that every other field keeps its exact text, order and comments.
package frontmatter

import (
	"fmt"
	"maps"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

const delimiter = "---"

var blockPattern = regexp.MustCompile(`(?s)^---\n(.*?)\n---\n?(.*)`)

// DefaultInsertBefore lists the link fields a new field is placed in front of.
var DefaultInsertBefore = []string{"TOPIC", "PRIOR", "NEXT", "RELATED_TO"}

// Document is a note split into its metadata block and body.
type Document struct {
	// Fields holds the decoded metadata values.
	Fields map[string]any

	// YAML is the raw metadata text between the delimiter lines.
	YAML string

	// Body is everything after the closing delimiter line, unmodified.
	Body string
}

// Parse splits content into metadata and body. It returns ErrNoFrontmatter
// when content has no leading metadata block and ErrInvalidFrontmatter when
// the block is not a YAML mapping.
func Parse(content string) (*Document, error) {
	m := blockPattern.FindStringSubmatch(content)
	if m == nil {
		return nil, ErrNoFrontmatter
	}

	doc := &Document{YAML: m[1], Body: m[2]}
	var fields map[string]any
	if err := yaml.Unmarshal([]byte(doc.YAML), &fields); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFrontmatter, err)
	}
	if fields == nil {
		fields = map[string]any{}
	}
	doc.Fields = fields
	return doc, nil
}

// Field returns the value of name as text. Missing, null and falsy values
// (false, zero numbers, empty sequences and mappings) are "".
func (d *Document) Field(name string) string {
	switch v := d.Fields[name].(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if !v {
			return ""
		}
	case int:
		if v == 0 {
			return ""
		}
	case float64:
		if v == 0 {
			return ""
		}
	case []any:
		if len(v) == 0 {
			return ""
		}
	case map[string]any:
		if len(v) == 0 {
			return ""
		}
	}
	return fmt.Sprint(d.Fields[name])
}

// SetField writes name as a double-quoted scalar. An existing field line,
// together with any indented continuation lines, is replaced in place. A new
// field goes before the first line whose key is listed in insertBefore, or at
// the end of the block. All other lines are kept verbatim.
func (d *Document) SetField(name, value string, insertBefore []string) {
	line := name + `: "` + Escape(value) + `"`
	keyLine := regexp.MustCompile(`^` + regexp.QuoteMeta(name) + `:\s*`)

	lines := strings.Split(d.YAML, "\n")
	out := make([]string, 0, len(lines)+1)
	found := false
	for i := 0; i < len(lines); i++ {
		if !keyLine.MatchString(lines[i]) {
			out = append(out, lines[i])
			continue
		}
		out = append(out, line)
		found = true
		i = skipContinuation(lines, i)
	}

	if !found {
		at := len(out)
		for i, l := range out {
			if hasKey(l, insertBefore) {
				at = i
				break
			}
		}
		out = append(out[:at], append([]string{line}, out[at:]...)...)
	}

	d.YAML = strings.Join(out, "\n")
	fields := maps.Clone(d.Fields)
	if fields == nil {
		fields = map[string]any{}
	}
	fields[name] = value
	d.Fields = fields
}

// Render returns the full note text with the current metadata block.
func (d *Document) Render() string {
	return delimiter + "\n" + d.YAML + "\n" + delimiter + "\n" + d.Body
}

// Escape prepares value for a YAML double-quoted scalar.
func Escape(value string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		`"`, `\"`,
		"\n", `\n`,
		"\r", `\r`,
	)
	return r.Replace(value)
}

// skipContinuation returns the index of the last line that belongs to the
// field starting at lines[start]: indented lines, and blank lines followed by
// more indented lines.
func skipContinuation(lines []string, start int) int {
	last := start
	for j := start + 1; j < len(lines); j++ {
		l := lines[j]
		if strings.TrimSpace(l) == "" {
			continue
		}
		if l[0] != ' ' && l[0] != '\t' {
			break
		}
		last = j
	}
	return last
}

func hasKey(line string, keys []string) bool {
	for _, k := range keys {
		if strings.HasPrefix(line, k+":") {
			return true
		}
	}
	return false
}
