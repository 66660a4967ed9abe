// Package detector routes a query to its translation target: Chinese text
// goes to English, anything else goes to Chinese.
package detector

import (
	"golang.org/x/text/language"
)

// CJK Unified Ideographs block.
const (
	hanFirst = '\u4e00'
	hanLast  = '\u9fff'
)

// IsChinese reports whether text contains at least one CJK unified ideograph.
func IsChinese(text string) bool {
	for _, r := range text {
		if r >= hanFirst && r <= hanLast {
			return true
		}
	}
	return false
}

// Target returns the language text should be translated into.
func Target(text string) language.Tag {
	if IsChinese(text) {
		return language.English
	}
	return language.Chinese
}

// TargetISO returns the two-letter code of Target.
func TargetISO(text string) string {
	base, _ := Target(text).Base()
	return base.String()
}
