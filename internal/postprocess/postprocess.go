// Package postprocess strips the wrapping that chat models add around a
// translation: reasoning blocks, preambles and outer quotes.
package postprocess

import (
	"regexp"
	"strings"
)

// cleaners run in order on every model reply.
var cleaners = []func(string) string{
	removeThinkingBlocks,
	removePreamble,
	removeQuoteWrapping,
}

// Clean returns the bare translation contained in a model reply.
func Clean(text string) string {
	for _, clean := range cleaners {
		text = clean(text)
	}
	return strings.TrimSpace(text)
}

// RE2 has no backreferences, so every tag pair is spelled out.
var (
	thinkingBlockRe = regexp.MustCompile(
		`(?is)<think>.*?</think>|<thinking>.*?</thinking>|<reasoning>.*?</reasoning>`,
	)
	// An opening tag without its closing tag: the model was cut off.
	openThinkingRe = regexp.MustCompile(`(?is)(?:<think>|<thinking>|<reasoning>).*$`)
)

func removeThinkingBlocks(text string) string {
	text = thinkingBlockRe.ReplaceAllString(text, "")
	text = openThinkingRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// preambleRes are anchored at the start and require a colon.
var preambleRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(?:(?:certainly|sure|of course)[,.!]?\s+)?here(?:'s| is)(?: the)? (?:translated )?(?:translation|text)(?: in \w+)?\s*:`),
	regexp.MustCompile(`(?i)^(?:the )?(?:translation|translated text)(?: in \w+)?\s*:`),
	regexp.MustCompile(`^(?:以下是|下面是)?(?:翻译结果|翻译|译文)\s*[:：]`),
}

func removePreamble(text string) string {
	text = strings.TrimSpace(text)
	for _, re := range preambleRes {
		if loc := re.FindStringIndex(text); loc != nil {
			text = strings.TrimSpace(text[loc[1]:])
		}
	}
	return text
}

// quotePairs are opening and closing runes of outer quotes to strip.
var quotePairs = [][2]rune{
	{'"', '"'},
	{'\'', '\''},
	{'“', '”'},
	{'‘', '’'},
	{'「', '」'},
	{'『', '』'},
	{'«', '»'},
}

func removeQuoteWrapping(text string) string {
	runes := []rune(text)
	if len(runes) < 2 {
		return text
	}
	first, last := runes[0], runes[len(runes)-1]
	for _, p := range quotePairs {
		if first == p[0] && last == p[1] {
			inner := runes[1 : len(runes)-1]
			// "a" and "b" is two quoted spans, not one wrapped span.
			if containsRune(inner, p[1]) {
				return text
			}
			return strings.TrimSpace(string(inner))
		}
	}
	return text
}

func containsRune(runes []rune, r rune) bool {
	for _, c := range runes {
		if c == r {
			return true
		}
	}
	return false
}
