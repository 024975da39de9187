package cli

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestPadName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{name: "short name padded", input: "Read", width: 10, want: "Read      "},
		{name: "exact width unchanged", input: "1234567890", width: 10, want: "1234567890"},
		{name: "long name truncated", input: "Practice the violin daily", width: 10, want: "Practic..."},
		{name: "empty name", input: "", width: 4, want: "    "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := padName(tt.input, tt.width)
			if got != tt.want {
				t.Errorf("padName(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
			}
		})
	}
}

func TestPadNameMultiByte(t *testing.T) {
	// Truncation must cut on rune boundaries, never mid-character.
	input := "méditation quotidienne"
	got := padName(input, 10)

	if !utf8.ValidString(got) {
		t.Fatalf("padName produced invalid UTF-8: %q", got)
	}
	if n := utf8.RuneCountInString(got); n != 10 {
		t.Errorf("truncated column is %d runes wide, want 10", n)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("truncated name missing ellipsis: %q", got)
	}

	// Short multi-byte names pad by rune count, not byte count.
	padded := padName("été", 6)
	if n := utf8.RuneCountInString(padded); n != 6 {
		t.Errorf("padded column is %d runes wide, want 6", n)
	}
}
