package core

import "testing"

func TestDecodeText(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{
			name:  "plain ascii",
			input: []byte("sysname CORE-1\n"),
			want:  "sysname CORE-1\n",
		},
		{
			name:  "utf8 bom dropped",
			input: append([]byte{0xEF, 0xBB, 0xBF}, []byte("sysname A")...),
			want:  "sysname A",
		},
		{
			name:  "utf16le bom",
			input: []byte{0xFF, 0xFE, 'o', 0, 'k', 0},
			want:  "ok",
		},
		{
			name:  "invalid byte replaced",
			input: []byte{'a', 0xFF, 'b'},
			want:  "a\uFFFDb",
		},
		{
			name:  "crlf normalized",
			input: []byte("a\r\nb\r\n"),
			want:  "a\nb\n",
		},
		{
			name:  "empty",
			input: nil,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecodeText(tt.input); got != tt.want {
				t.Errorf("DecodeText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecodeRaw_KeepsCRLF(t *testing.T) {
	if got := DecodeRaw([]byte("a\r\nb")); got != "a\r\nb" {
		t.Errorf("DecodeRaw() = %q", got)
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"a", 1},
		{"a\n", 1},
		{"a\n\nb", 3},
	}
	for _, tt := range tests {
		if got := len(splitLines(tt.in)); got != tt.want {
			t.Errorf("splitLines(%q) has %d lines, want %d", tt.in, got, tt.want)
		}
	}
}
