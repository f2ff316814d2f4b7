package utils

import (
	"strings"
	"unicode/utf8"
)

const ellipsis = "..."

// Capitalize trims the surrounding whitespace of text, uppercases its first
// rune and lowercases the rest
func Capitalize(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	_, size := utf8.DecodeRuneInString(text)
	return strings.ToUpper(text[:size]) + strings.ToLower(text[size:])
}

// EllipsifyParams holds the text to truncate and the number of runes to keep,
// a negative Length counts back from the end of the text
type EllipsifyParams struct {
	Text   string
	Length int
}

// Ellipsify returns the text unchanged when it fits in Length runes, otherwise
// its first Length runes followed by "...". A negative Length keeps all but
// the last -Length runes, floored at none.
func Ellipsify(params EllipsifyParams) string {
	count := utf8.RuneCountInString(params.Text)
	if count <= params.Length {
		return params.Text
	}

	end := params.Length
	if end < 0 {
		end = Max(count+end, 0)
	}

	runes := []rune(params.Text)
	return string(runes[:end]) + ellipsis
}
