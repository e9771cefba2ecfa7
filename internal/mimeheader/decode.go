package mimeheader

import (
	"io"
	"mime"
	"net/mail"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Decode decodes a header value containing RFC 2047 encoded-words into plain
// Unicode text. Unknown charsets and malformed words never produce an error:
// the decoder falls back to UTF-8 with replacement of invalid sequences, or
// to the raw input when the whole header cannot be decoded.
//
// Some encoders leave a literal underscore before the first encoded-word;
// leading underscores are stripped from the result.
func Decode(header string) string {
	if header == "" {
		return ""
	}

	decoder := mime.WordDecoder{CharsetReader: charsetReader}
	decoded, err := decoder.DecodeHeader(header)
	if err != nil {
		decoded = header
	}

	return strings.TrimSpace(strings.TrimLeft(decoded, "_"))
}

// DecodeAddress parses a From-style header into a display name and an
// address. The name part is decoded like any other header. Unparsable input
// yields the whole decoded header as the name with an empty address.
func DecodeAddress(header string) (name, email string) {
	if header == "" {
		return "", ""
	}

	addr, err := mail.ParseAddress(header)
	if err != nil {
		// Some archives hold bare encoded-words or garbage in From.
		return Decode(header), ""
	}
	return Decode(addr.Name), addr.Address
}

// charsetReader converts encoded-word payloads in non-UTF8 charsets
// (e.g. ISO-2022-JP) to UTF-8. Charsets the IANA index does not know decode
// as UTF-8 with U+FFFD replacing invalid sequences.
func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(strings.ToLower(charset))
	if err != nil || enc == nil {
		enc = unicode.UTF8
	}
	return transform.NewReader(input, enc.NewDecoder()), nil
}
