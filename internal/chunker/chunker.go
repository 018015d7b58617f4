// Package chunker splits long text into overlapping, boundary-aware segments
// for embedding. Splitting never cuts inside a word when a natural boundary
// exists within the window.
package chunker

import (
	"errors"
	"unicode"
)

// ErrInvalidConfiguration is returned when chunk size and overlap cannot
// produce forward progress.
var ErrInvalidConfiguration = errors.New("chunker: overlap must be smaller than chunk size")

// Split cuts text into segments of at most chunkSize runes, where each
// segment repeats the last overlap runes of its predecessor.
//
// The cut point retracts to the nearest preceding word boundary (whitespace
// or one of ,.!?;:) when it would otherwise land inside a word. If no
// boundary exists inside the window, the hard cut at chunkSize stands.
//
// It iterates over runes so multi-byte characters (Thai, CJK, emoji) are
// never split mid-character.
func Split(text string, chunkSize, overlap int) ([]string, error) {
	if chunkSize <= 0 || overlap < 0 || overlap >= chunkSize {
		return nil, ErrInvalidConfiguration
	}
	if text == "" {
		return nil, nil
	}

	runes := []rune(text)
	if len(runes) <= chunkSize {
		return []string{text}, nil
	}

	var chunks []string
	start := 0
	for start < len(runes) {
		end := start + chunkSize
		if end >= len(runes) {
			chunks = append(chunks, string(runes[start:]))
			break
		}

		// The cut would land inside a word: retract to the nearest
		// boundary before it, if one exists within this window.
		if !isBoundary(runes[end]) {
			if b := lastBoundary(runes, start, end); b > start {
				end = b + 1
			}
		}

		chunks = append(chunks, string(runes[start:end]))

		next := end - overlap
		if next <= start {
			next = end
		}
		start = next
	}

	return chunks, nil
}

// isBoundary reports whether r may end a chunk without splitting a word.
func isBoundary(r rune) bool {
	if unicode.IsSpace(r) {
		return true
	}
	switch r {
	case ',', '.', '!', '?', ';', ':':
		return true
	}
	return false
}

// lastBoundary returns the index of the last boundary rune in (start, end),
// or start when the window contains none.
func lastBoundary(runes []rune, start, end int) int {
	for i := end - 1; i > start; i-- {
		if isBoundary(runes[i]) {
			return i
		}
	}
	return start
}
