// Package segmenter decides whether a query is long enough to be translated
// piecewise and splits long text into bounded segments at sentence
// boundaries. All lengths are counted in unicode code points.
package segmenter

import (
	"errors"
	"strings"
)

const (
	// DefaultThreshold is the rune length from which text may be long.
	DefaultThreshold = 100
	// DefaultMaxSegmentLength is the maximum rune length of a segment.
	DefaultMaxSegmentLength = 400
)

// ErrInvalidMaxLength is returned by Segment for a non-positive maximum length.
var ErrInvalidMaxLength = errors.New("segmenter: max segment length must be positive")

// separators are split boundaries in priority order. A separator earlier in
// the list wins when two are found at the same position.
var separators = []string{
	"。", "；", "？", "！",
	". ", "; ", "? ", "! ",
	"\n",
}

// Segment splits text into trimmed, non-empty segments of at most maxLen
// runes. For every window of maxLen runes the segment ends after the
// rightmost separator in the window; when no separator is found past the
// first rune the window is cut hard at maxLen.
//
// Text that fits within maxLen is returned as a single trimmed segment.
func Segment(text string, maxLen int) ([]string, error) {
	if maxLen <= 0 {
		return nil, ErrInvalidMaxLength
	}

	var segments []string
	remaining := strings.TrimSpace(text)

	for remaining != "" {
		cut, fits := runeOffset(remaining, maxLen)
		if fits {
			segments = appendTrimmed(segments, remaining)
			break
		}

		window := remaining[:cut]
		pos, sep := findSplit(window)

		if pos > 0 {
			end := pos + len(sep)
			segments = appendTrimmed(segments, remaining[:end])
			remaining = remaining[end:]
			continue
		}

		// Hard cut.
		segments = appendTrimmed(segments, window)
		remaining = remaining[cut:]
	}

	return segments, nil
}

// runeOffset returns the byte offset just past the first n runes of s, and
// whether s holds no more than n runes. An invalid byte counts as one rune.
func runeOffset(s string, n int) (int, bool) {
	count := 0
	for i := range s {
		if count == n {
			return i, false
		}
		count++
	}
	return len(s), true
}

// findSplit returns the byte position and the separator of the rightmost
// boundary within window, or -1 when none of the separators occur.
func findSplit(window string) (int, string) {
	best, bestSep := -1, ""
	for _, sep := range separators {
		if idx := strings.LastIndex(window, sep); idx > best {
			best, bestSep = idx, sep
		}
	}
	return best, bestSep
}

func appendTrimmed(segments []string, s string) []string {
	if s = strings.TrimSpace(s); s != "" {
		segments = append(segments, s)
	}
	return segments
}

// Join reassembles translated segments. Segments are joined by a newline
// when the original text contains one, otherwise by a single space.
func Join(segments []string, original string) string {
	if strings.Contains(original, "\n") {
		return strings.Join(segments, "\n")
	}
	return strings.Join(segments, " ")
}
