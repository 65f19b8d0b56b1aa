package split

import (
	"regexp"
	"slices"
	"strings"
)

var headingLine = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)

// Heading is one entry of a section breadcrumb.
type Heading struct {
	Level int
	Title string
}

// Section is the text between two tracked heading lines, excluding the
// heading line itself.
type Section struct {
	Content string

	// Headers holds the nearest enclosing heading at each tracked level,
	// ordered from the shallowest level to the deepest.
	Headers []Heading
}

// Title returns the heading title recorded for level, or "" if none.
func (s Section) Title(level int) string {
	for _, h := range s.Headers {
		if h.Level == level {
			return h.Title
		}
	}
	return ""
}

// Breadcrumb joins the heading titles with " > ", e.g. "Python > Strings".
func (s Section) Breadcrumb() string {
	titles := make([]string, len(s.Headers))
	for i, h := range s.Headers {
		titles[i] = h.Title
	}
	return strings.Join(titles, " > ")
}

// Render returns the section content prefixed by its bracketed breadcrumb
// line. Sections without headings render as their bare content.
func (s Section) Render() string {
	if len(s.Headers) == 0 {
		return s.Content
	}
	return "[" + s.Breadcrumb() + "]\n" + s.Content
}

// SplitByHeaders splits markdown text on heading lines whose level is in
// levels. Setting the title for a level clears every deeper level, so the
// breadcrumb always reflects the current nesting. Sections whose content is
// empty after trimming are dropped. Text with no tracked heading yields a
// single section with an empty breadcrumb.
func SplitByHeaders(text string, levels []int) []Section {
	var (
		sections []Section
		current  []Heading
		lines    []string
	)

	flush := func() {
		body := strings.TrimSpace(strings.Join(lines, "\n"))
		if body != "" {
			sections = append(sections, Section{
				Content: body,
				Headers: slices.Clone(current),
			})
		}
		lines = lines[:0]
	}

	for _, line := range strings.Split(text, "\n") {
		m := headingLine.FindStringSubmatch(line)
		if m != nil && slices.Contains(levels, len(m[1])) {
			flush()
			current = setHeading(current, len(m[1]), strings.TrimSpace(m[2]))
			continue
		}
		lines = append(lines, line)
	}
	flush()

	return sections
}

// setHeading records title at level and drops all deeper levels. The result
// stays ordered by level because every kept entry is shallower.
func setHeading(headers []Heading, level int, title string) []Heading {
	kept := headers[:0:0]
	for _, h := range headers {
		if h.Level < level {
			kept = append(kept, h)
		}
	}
	return append(kept, Heading{Level: level, Title: title})
}
