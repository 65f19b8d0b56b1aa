package split

import (
	"strings"
	"unicode/utf8"
)

// SplitRecursive divides text into pieces of at most maxSize characters.
//
// The first separator present in text is used to cut it into parts, which are
// greedily re-joined up to maxSize. A part that is too large on its own is
// split again using only the separators after the one just used, so the
// separator list shrinks on every level and the recursion ends at the
// hard-cut case once no separator applies. Pieces are trimmed and empty
// pieces are dropped.
func SplitRecursive(text string, maxSize int, separators []string) []string {
	if maxSize <= 0 {
		maxSize = DefaultMaxChunkSize
	}
	return splitRecursive(text, maxSize, separators)
}

func splitRecursive(text string, maxSize int, separators []string) []string {
	if runeLen(text) <= maxSize {
		if strings.TrimSpace(text) == "" {
			return nil
		}
		return []string{text}
	}

	sepIdx := -1
	for i, s := range separators {
		if strings.Contains(text, s) {
			sepIdx = i
			break
		}
	}
	if sepIdx < 0 {
		return hardCut(text, maxSize)
	}

	sep := separators[sepIdx]
	weaker := separators[sepIdx+1:]
	sepLen := runeLen(sep)

	var (
		chunks     []string
		current    []string
		currentLen int
	)

	emit := func(piece string) {
		if piece = strings.TrimSpace(piece); piece != "" {
			chunks = append(chunks, piece)
		}
	}

	for _, part := range strings.Split(text, sep) {
		partLen := runeLen(part)
		added := partLen
		if len(current) > 0 {
			added += sepLen
		}

		if currentLen+added <= maxSize {
			current = append(current, part)
			currentLen += added
			continue
		}

		if len(current) > 0 {
			emit(strings.Join(current, sep))
		}
		if partLen > maxSize {
			chunks = append(chunks, splitRecursive(part, maxSize, weaker)...)
			current = nil
			currentLen = 0
		} else {
			current = []string{part}
			currentLen = partLen
		}
	}

	if len(current) > 0 {
		emit(strings.Join(current, sep))
	}

	return chunks
}

// hardCut slices text into consecutive maxSize-character pieces.
func hardCut(text string, maxSize int) []string {
	var chunks []string
	runes := []rune(text)
	for start := 0; start < len(runes); start += maxSize {
		end := min(start+maxSize, len(runes))
		if piece := strings.TrimSpace(string(runes[start:end])); piece != "" {
			chunks = append(chunks, piece)
		}
	}
	return chunks
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
