package message

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"strconv"
	"time"

	"github.com/emurenMRz/mboxsite/internal/mimeheader"
	"github.com/emurenMRz/mboxsite/internal/subject"
)

// Record is one message object from a per-topic JSON export file. The export
// format is loose about numeric fields (sometimes numbers, sometimes quoted
// strings), hence IntString.
type Record struct {
	MsgID       IntString `json:"msgId"`
	Subject     string    `json:"subject"`
	AuthorName  string    `json:"authorName"`
	Profile     string    `json:"profile"`
	PostDate    IntString `json:"postDate"`
	TopicID     IntString `json:"topicId"`
	MessageBody string    `json:"messageBody"`
}

// IntString is an int64 that unmarshals from either a JSON number or a
// quoted decimal string. Null, empty and malformed values decode as zero.
type IntString int64

func (n *IntString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*n = 0
		return nil
	}
	s := string(data)
	if s[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		*n = 0
		return nil
	}
	*n = IntString(v)
	return nil
}

// JSONMessage is a message parsed from a JSON export record. The export
// never carries sender addresses, so SenderEmail is always empty.
type JSONMessage struct {
	fields
	topicID string
}

// NewJSONMessage builds a message from an export record. The record's own
// msgId is the message id; exports assign stable ids at the source.
//
// Export subjects are double-encoded: MIME encoded-words wrapped in HTML
// entities, so decoding runs both steps. Bodies come from a single trusted
// export pipeline; the sanitizer only drops script and style elements,
// narrower than the mbox sanitizer.
func NewJSONMessage(rec Record, norm subject.Normalizer) *JSONMessage {
	subj := html.UnescapeString(mimeheader.Decode(rec.Subject))
	if subj == "" {
		subj = subject.Default
	}

	name := rec.AuthorName
	if name == "" {
		name = rec.Profile
	}
	name = html.UnescapeString(name)

	var date time.Time
	if rec.PostDate != 0 {
		date = time.Unix(int64(rec.PostDate), 0).UTC()
	}

	var content string
	if rec.MessageBody != "" {
		content = sanitizeHTML(rec.MessageBody, jsonDropTags)
	}

	id := int(rec.MsgID)
	topicID := ""
	if rec.TopicID != 0 {
		topicID = strconv.FormatInt(int64(rec.TopicID), 10)
	}

	m := &JSONMessage{
		fields: fields{
			id:          id,
			subject:     subj,
			normalized:  norm.Normalize(subj),
			senderName:  name,
			date:        date,
			htmlContent: content,
			url:         fmt.Sprintf("messages/%d.html", id),
		},
		topicID: topicID,
	}
	if !m.FirstInThread() && topicID != "" {
		m.references = []string{topicID}
	}
	return m
}

// TopicID returns the explicit thread identifier from the export, or ""
// when the record had none.
func (m *JSONMessage) TopicID() string { return m.topicID }

// FirstInThread reports whether this message opened its topic: the export
// marks thread starters by giving them a topicId equal to their own id.
func (m *JSONMessage) FirstInThread() bool {
	return strconv.Itoa(m.id) == m.topicID
}
