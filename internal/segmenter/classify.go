package segmenter

import (
	"strings"
	"unicode/utf8"
)

// NewlineCounting selects how newlines contribute to the separator count.
type NewlineCounting int

const (
	// NewlineTwice counts a newline once as a Chinese boundary and once more
	// as a Latin boundary. This is the historical behaviour.
	NewlineTwice NewlineCounting = iota
	// NewlineOnce counts each newline a single time.
	NewlineOnce
)

// minSeparators is the number of sentence boundaries a long text must have.
const minSeparators = 2

var (
	chineseMarks  = "。；？！\n"
	latinMarks    = []string{". ", "; ", "? ", "! "}
	latinFinalSet = ".;?!"
)

// IsLong reports whether text is at least threshold runes long and has two
// or more sentence boundaries, counting newlines twice.
func IsLong(text string, threshold int) bool {
	return IsLongWith(text, threshold, NewlineTwice)
}

// IsLongWith is IsLong with an explicit newline counting convention.
func IsLongWith(text string, threshold int, counting NewlineCounting) bool {
	if utf8.RuneCountInString(text) < threshold {
		return false
	}
	return CountSeparators(text, counting) >= minSeparators
}

// CountSeparators returns the number of sentence boundaries in text.
//
// Chinese marks and newlines count once per rune. Latin terminators count
// when followed by a space, and once more when one of them ends the text.
func CountSeparators(text string, counting NewlineCounting) int {
	n := 0
	for _, r := range text {
		if strings.ContainsRune(chineseMarks, r) {
			n++
		}
	}

	for _, m := range latinMarks {
		n += strings.Count(text, m)
	}
	if text != "" && strings.ContainsAny(text[len(text)-1:], latinFinalSet) {
		n++
	}

	if counting == NewlineTwice {
		n += strings.Count(text, "\n")
	}
	return n
}
