package testutils

import "strings"

// GenerateOverBytesUnderRunes returns count runes of four bytes each, so the byte length is always four
// times the rune length.
func GenerateOverBytesUnderRunes(count int) string {
	return strings.Repeat("😁", count)
}
