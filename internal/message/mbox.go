package message

import (
	"encoding/base64"
	"fmt"
	"io"
	"log"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/mail"
	"strings"
	"time"

	"golang.org/x/text/encoding/ianaindex"

	"github.com/emurenMRz/mboxsite/internal/mimeheader"
	"github.com/emurenMRz/mboxsite/internal/subject"
)

// MboxMessage is a message parsed from a raw mbox record.
type MboxMessage struct {
	fields
}

// NewMboxMessage builds a message from parsed mail headers and body. The id
// is the caller's record counter; it is assigned before validity filtering
// and stays stable whether or not the message is ultimately accepted.
func NewMboxMessage(id int, m *mail.Message, norm subject.Normalizer) *MboxMessage {
	subj := mimeheader.Decode(m.Header.Get("Subject"))
	if subj == "" {
		subj = subject.Default
	}
	name, email := mimeheader.DecodeAddress(m.Header.Get("From"))

	return &MboxMessage{fields{
		id:          id,
		subject:     subj,
		normalized:  norm.Normalize(subj),
		senderName:  name,
		senderEmail: email,
		date:        parseDate(m.Header.Get("Date")),
		htmlContent: extractContent(m),
		references:  parseReferences(m.Header),
		url:         fmt.Sprintf("messages/%d.html", id),
	}}
}

// parseDate tries the standard mail date rules and a few common fallback
// layouts. Unparsable input yields the zero time, which marks the message
// invalid downstream.
func parseDate(dateStr string) time.Time {
	if dateStr == "" {
		return time.Time{}
	}
	if t, err := mail.ParseDate(dateStr); err == nil {
		return t
	}
	layouts := []string{
		time.RFC1123Z,
		time.RFC1123,
		time.RFC822Z,
		time.RFC822,
		time.RFC850,
		time.RFC3339,
	}
	for _, l := range layouts {
		if t, err := time.Parse(l, dateStr); err == nil {
			return t
		}
	}
	return time.Time{}
}

// parseReferences collects the identifiers this message replies to from the
// References and In-Reply-To headers, with surrounding angle brackets
// stripped.
func parseReferences(h mail.Header) []string {
	var raw []string
	if v := h.Get("References"); v != "" {
		raw = append(raw, strings.Fields(v)...)
	}
	if v := h.Get("In-Reply-To"); v != "" {
		raw = append(raw, v)
	}

	var refs []string
	for _, r := range raw {
		if r = strings.Trim(strings.TrimSpace(r), "<>"); r != "" {
			refs = append(refs, r)
		}
	}
	return refs
}

// extractContent walks all body parts and selects the best representation:
// the first text/html part if any, else the first text/plain part promoted
// to HTML. Returns "" when no usable body exists.
func extractContent(m *mail.Message) string {
	var htmlPart, textPart string

	// recursive entity processor
	var processEntity func(header interface{ Get(string) string }, body io.Reader)
	processEntity = func(header interface{ Get(string) string }, body io.Reader) {
		ctype, params, err := mime.ParseMediaType(header.Get("Content-Type"))
		if err != nil {
			ctype = "text/plain"
		}

		// handle multipart recursively
		if strings.HasPrefix(ctype, "multipart/") {
			mr := multipart.NewReader(body, params["boundary"])
			for {
				p, err := mr.NextPart()
				if err == io.EOF {
					break
				}
				if err != nil {
					log.Printf("Error reading multipart body: %v", err)
					break
				}
				processEntity(p.Header, p)
			}
			return
		}

		// attachments carry no thread content
		if disp, _, err := mime.ParseMediaType(header.Get("Content-Disposition")); err == nil && disp == "attachment" {
			return
		}

		if ctype != "text/plain" && ctype != "text/html" {
			return
		}
		if ctype == "text/html" && htmlPart != "" {
			return
		}
		if ctype == "text/plain" && textPart != "" {
			return
		}

		// handle content-transfer-encoding
		cte := strings.ToLower(strings.TrimSpace(header.Get("Content-Transfer-Encoding")))
		reader := body
		switch cte {
		case "base64":
			reader = base64.NewDecoder(base64.StdEncoding, body)
		case "quoted-printable":
			reader = quotedprintable.NewReader(body)
		default:
			// 7bit, 8bit, binary -> no wrapper
		}

		bodyBytes, err := io.ReadAll(reader)
		if err != nil {
			return
		}

		charset := params["charset"]
		if charset == "" {
			charset = "utf-8"
		}
		encoding, err := ianaindex.IANA.Encoding(strings.ToLower(charset))
		if err != nil || encoding == nil {
			encoding, _ = ianaindex.IANA.Encoding("utf-8")
		}

		text := string(bodyBytes)
		if decoded, err := encoding.NewDecoder().Bytes(bodyBytes); err == nil {
			text = string(decoded)
		}

		if ctype == "text/html" {
			htmlPart = text
		} else {
			textPart = text
		}
	}

	processEntity(m.Header, m.Body)

	if htmlPart != "" {
		return sanitizeHTML(htmlPart, mboxDropTags)
	}
	if textPart != "" {
		// Promote plain text to HTML, preserving line breaks.
		return `<div class="plaintext-content">` + strings.ReplaceAll(textPart, "\n", "<br>\n") + `</div>`
	}
	return ""
}
