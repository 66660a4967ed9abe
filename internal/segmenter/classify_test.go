package segmenter

import (
	"strings"
	"testing"
)

func TestIsLong(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		threshold int
		want      bool
	}{
		{
			name:      "empty text",
			text:      "",
			threshold: 100,
			want:      false,
		},
		{
			name:      "empty text zero threshold",
			text:      "",
			threshold: 0,
			want:      false,
		},
		{
			name:      "short despite punctuation",
			text:      "A. B. C. D.",
			threshold: 100,
			want:      false,
		},
		{
			name:      "latin sentences",
			text:      "Hello world. This is a test!",
			threshold: 10,
			want:      true,
		},
		{
			name:      "long without separators",
			text:      strings.Repeat("word ", 40),
			threshold: 100,
			want:      false,
		},
		{
			name:      "single separator",
			text:      strings.Repeat("x", 120) + ". tail",
			threshold: 100,
			want:      false,
		},
		{
			name:      "single separator and final period",
			text:      strings.Repeat("x", 120) + ". tail.",
			threshold: 100,
			want:      true,
		},
		{
			name:      "chinese sentences",
			text:      strings.Repeat("中", 50) + "。" + strings.Repeat("文", 50) + "！",
			threshold: 100,
			want:      true,
		},
		{
			name:      "threshold counts runes not bytes",
			text:      strings.Repeat("中", 40) + "。" + strings.Repeat("文", 40) + "？",
			threshold: 100,
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsLong(tt.text, tt.threshold); got != tt.want {
				t.Errorf("IsLong(%q, %d) = %v, want %v", tt.text, tt.threshold, got, tt.want)
			}
		})
	}
}

func TestCountSeparators(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "empty", text: "", want: 0},
		{name: "chinese marks", text: "一。二；三？四！五", want: 4},
		{name: "latin marks need a space", text: "a.b;c?d!e", want: 0},
		{name: "latin marks with spaces", text: "a. b; c? d! e", want: 4},
		{name: "final latin terminator", text: "a. b!", want: 2},
		{name: "final period after latin separator", text: "a. b.", want: 2},
		{name: "final chinese mark counts once", text: "a。", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountSeparators(tt.text, NewlineTwice); got != tt.want {
				t.Errorf("CountSeparators(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestCountSeparators_NewlineConventions(t *testing.T) {
	text := "line one\nline two"

	if got := CountSeparators(text, NewlineTwice); got != 2 {
		t.Errorf("NewlineTwice: got %d, want 2", got)
	}
	if got := CountSeparators(text, NewlineOnce); got != 1 {
		t.Errorf("NewlineOnce: got %d, want 1", got)
	}
}

func TestIsLongWith_SingleNewline(t *testing.T) {
	// One newline is enough under the historical convention only.
	text := strings.Repeat("a", 60) + "\n" + strings.Repeat("b", 60)

	if !IsLongWith(text, 100, NewlineTwice) {
		t.Error("expected long text when newlines count twice")
	}
	if IsLongWith(text, 100, NewlineOnce) {
		t.Error("expected short text when newlines count once")
	}
}
