package split

import "strings"

// sectionJoiner separates sections merged into the same chunk.
const sectionJoiner = "\n\n"

// SplitDocument splits a note body into ordered, non-empty chunks of at most
// cfg.MaxChunkSize characters.
//
// Sections from SplitByHeaders are rendered with their breadcrumb and merged
// with their neighbours while they fit. A section too large on its own is
// split with SplitRecursive after any pending chunk is flushed. A body with no
// non-empty section is passed to SplitRecursive as a whole.
func SplitDocument(body string, cfg Config) []string {
	cfg = cfg.withDefaults()
	maxSize := cfg.MaxChunkSize

	sections := SplitByHeaders(body, cfg.HeadingLevels)
	if len(sections) == 0 {
		return SplitRecursive(body, maxSize, cfg.Separators)
	}

	var (
		chunks     []string
		current    []string
		currentLen int
	)

	flush := func() {
		if len(current) > 0 {
			chunks = append(chunks, strings.Join(current, sectionJoiner))
		}
		current = nil
		currentLen = 0
	}

	joinerLen := runeLen(sectionJoiner)
	for _, sec := range sections {
		text := sec.Render()
		if strings.TrimSpace(text) == "" {
			continue
		}
		textLen := runeLen(text)

		switch {
		case textLen > maxSize:
			flush()
			chunks = append(chunks, SplitRecursive(text, maxSize, cfg.Separators)...)
		case currentLen+textLen+joinerLen > maxSize:
			flush()
			current = []string{text}
			currentLen = textLen
		default:
			current = append(current, text)
			currentLen += textLen + joinerLen
		}
	}
	flush()

	out := chunks[:0]
	for _, c := range chunks {
		if strings.TrimSpace(c) != "" {
			out = append(out, c)
		}
	}
	return out
}
