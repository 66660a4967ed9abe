package segmenter_test

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/valpere/quicktran/internal/segmenter"
)

// --- Segment tests ---

func TestSegment_ShortText(t *testing.T) {
	segments, err := segmenter.Segment("  Hello, world!  ", 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segments))
	}
	if segments[0] != "Hello, world!" {
		t.Errorf("expected trimmed input, got %q", segments[0])
	}
}

func TestSegment_InvalidMaxLength(t *testing.T) {
	for _, maxLen := range []int{0, -1} {
		_, err := segmenter.Segment("some text", maxLen)
		if !errors.Is(err, segmenter.ErrInvalidMaxLength) {
			t.Errorf("maxLen=%d: expected ErrInvalidMaxLength, got %v", maxLen, err)
		}
	}
}

func TestSegment_EmptyText(t *testing.T) {
	segments, err := segmenter.Segment("   \n ", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(segments) != 0 {
		t.Errorf("expected no segments, got %q", segments)
	}
}

func TestSegment_LatinSentence(t *testing.T) {
	segments, err := segmenter.Segment("Hello world. This is a test!", 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"Hello world.", "This is a test!"}
	if !equal(segments, want) {
		t.Errorf("expected %q, got %q", want, segments)
	}
}

func TestSegment_ChineseSentence(t *testing.T) {
	text := "今天天气很好。我们去公园散步吧！好的"
	segments, err := segmenter.Segment(text, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"今天天气很好。", "我们去公园散步吧！", "好的"}
	if !equal(segments, want) {
		t.Errorf("expected %q, got %q", want, segments)
	}
}

func TestSegment_RightmostSeparatorWins(t *testing.T) {
	// "\n" is last in priority, but it is further right than ". ".
	text := "One. Two\nThree four five six"
	segments, err := segmenter.Segment(text, 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if segments[0] != "One. Two" {
		t.Errorf("expected split at the newline, got %q", segments[0])
	}
}

func TestSegment_HardCut(t *testing.T) {
	text := strings.Repeat("a", 25)
	segments, err := segmenter.Segment(text, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{strings.Repeat("a", 10), strings.Repeat("a", 10), strings.Repeat("a", 5)}
	if !equal(segments, want) {
		t.Errorf("expected %q, got %q", want, segments)
	}
}

func TestSegment_SeparatorAtStartIsIgnored(t *testing.T) {
	// A boundary at position 0 does not count, so the window is cut hard.
	text := "。abcdefghijklmnop"
	segments, err := segmenter.Segment(text, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if segments[0] != "。abcd" {
		t.Errorf("expected hard cut, got %q", segments[0])
	}
}

func TestSegment_HardCutRespectsRunes(t *testing.T) {
	text := strings.Repeat("字", 12)
	segments, err := segmenter.Segment(text, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, s := range segments {
		if !utf8.ValidString(s) {
			t.Errorf("segment %d is not valid UTF-8: %q", i, s)
		}
		if n := utf8.RuneCountInString(s); n > 5 {
			t.Errorf("segment %d has %d runes, want ≤5", i, n)
		}
	}
	if len(segments) != 3 {
		t.Errorf("expected 3 segments, got %d", len(segments))
	}
}

func TestSegment_BoundedAndNonEmpty(t *testing.T) {
	text := "The quick brown fox jumps over the lazy dog. " +
		"Pack my box with five dozen liquor jugs; " +
		"how vexingly quick daft zebras jump! " +
		"Sphinx of black quartz, judge my vow?\n" +
		"这是第二段。它包含中文句子；还有问题吗？没有！"
	segments, err := segmenter.Segment(text, 40)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(segments) < 2 {
		t.Fatalf("expected ≥2 segments, got %d", len(segments))
	}
	for i, s := range segments {
		if s == "" {
			t.Errorf("segment %d is empty", i)
		}
		if s != strings.TrimSpace(s) {
			t.Errorf("segment %d has leading/trailing whitespace: %q", i, s)
		}
		if n := utf8.RuneCountInString(s); n > 40 {
			t.Errorf("segment %d has %d runes, want ≤40", i, n)
		}
	}
}

func TestSegment_ReconstructsText(t *testing.T) {
	text := "First sentence ends here. Second sentence follows; " +
		"third one asks why? Fourth shouts!\nFifth line.\n第六句。第七句"
	segments, err := segmenter.Segment(text, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Removing all whitespace must leave the same characters in the same order.
	if squash(strings.Join(segments, "")) != squash(text) {
		t.Errorf("segments do not reconstruct the text:\n got %q\nwant %q",
			strings.Join(segments, "|"), text)
	}
}

func TestSegment_InvalidUTF8(t *testing.T) {
	text := "\xff\xfeab. cd. efghijklmnop"
	segments, err := segmenter.Segment(text, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"\xff\xfeab. cd.", "efghijklmn", "op"}
	if !equal(segments, want) {
		t.Errorf("expected %q, got %q", want, segments)
	}
	for _, seg := range segments {
		if n := utf8.RuneCountInString(seg); n > 10 {
			t.Errorf("segment %q has %d runes, limit 10", seg, n)
		}
	}
}

// --- Join tests ---

func TestJoin(t *testing.T) {
	tests := []struct {
		name     string
		original string
		want     string
	}{
		{name: "with newline", original: "a\nb", want: "A\nB"},
		{name: "without newline", original: "a. b", want: "A B"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := segmenter.Join([]string{"A", "B"}, tt.original)
			if got != tt.want {
				t.Errorf("Join = %q, want %q", got, tt.want)
			}
		})
	}
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func squash(s string) string {
	return strings.Join(strings.Fields(s), "")
}
