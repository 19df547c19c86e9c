package core

import (
	"bytes"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DecodeRaw turns uploaded bytes into a string. A UTF-8 or UTF-16 byte
// order mark selects the encoding and is dropped; anything else is read as
// UTF-8 with invalid bytes replaced by U+FFFD. Line endings are untouched.
func DecodeRaw(data []byte) string {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(dec, data)
	if err != nil {
		// Only a truncated UTF-16 body gets here.
		out = bytes.ToValidUTF8(data, []byte("\uFFFD"))
	}
	return string(out)
}

// DecodeText is DecodeRaw with CRLF line endings folded to LF, for logs.
func DecodeText(data []byte) string {
	return strings.ReplaceAll(DecodeRaw(data), "\r\n", "\n")
}

// splitLines splits text into lines without a phantom empty last line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
