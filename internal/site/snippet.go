package site

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// htmlText strips tags from HTML content, keeping only text with collapsed
// whitespace.
func htmlText(src string) string {
	z := html.NewTokenizer(strings.NewReader(src))
	var b strings.Builder
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.Join(strings.Fields(b.String()), " ")
		case html.TextToken:
			b.Write(z.Text())
			b.WriteByte(' ')
		}
	}
}

// snippet returns a plain-text preview of HTML content, truncated at a word
// boundary near maxLen.
func snippet(src string, maxLen int) string {
	text := htmlText(src)
	if len(text) <= maxLen {
		return text
	}
	cut := text[:maxLen]
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	} else {
		// No space to break on (unsegmented scripts); back up to a rune
		// boundary instead of cutting mid-sequence.
		for len(cut) > 0 && !utf8.RuneStart(text[len(cut)]) {
			cut = cut[:len(cut)-1]
		}
	}
	return strings.TrimRight(cut, " ") + "..."
}
