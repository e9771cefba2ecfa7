package message

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/emurenMRz/mboxsite/internal/subject"
)

func TestNewJSONMessage(t *testing.T) {
	rec := Record{
		MsgID:       2,
		Subject:     "Re: Hello &amp; Goodbye",
		Profile:     "bob_profile",
		PostDate:    1104573600,
		TopicID:     1,
		MessageBody: "<p>hello</p><style>p{color:red}</style>",
	}
	msg := NewJSONMessage(rec, subject.NewNormalizer())

	if msg.ID() != 2 {
		t.Errorf("ID = %d; want 2", msg.ID())
	}
	// Export subjects are entity-encoded on top of MIME encoding.
	if msg.Subject() != "Re: Hello & Goodbye" {
		t.Errorf("Subject = %q", msg.Subject())
	}
	if msg.NormalizedSubject() != "Hello & Goodbye" {
		t.Errorf("NormalizedSubject = %q", msg.NormalizedSubject())
	}
	if msg.SenderName() != "bob_profile" {
		t.Errorf("SenderName = %q; want profile fallback", msg.SenderName())
	}
	if msg.SenderEmail() != "" {
		t.Errorf("SenderEmail = %q; exports never carry addresses", msg.SenderEmail())
	}
	want := time.Date(2005, time.January, 1, 10, 0, 0, 0, time.UTC)
	if !msg.Date().Equal(want) {
		t.Errorf("Date = %v; want %v", msg.Date(), want)
	}
	if msg.HTMLContent() != "<p>hello</p>" {
		t.Errorf("HTMLContent = %q; style element should be dropped", msg.HTMLContent())
	}
	if msg.FirstInThread() {
		t.Error("FirstInThread = true; id 2 in topic 1 is a reply")
	}
	refs := msg.References()
	if len(refs) != 1 || refs[0] != "1" {
		t.Errorf("References = %v; want the topic id", refs)
	}
}

func TestNewJSONMessageFirstInThread(t *testing.T) {
	rec := Record{MsgID: 1, TopicID: 1, Subject: "Start", PostDate: 1104573600, MessageBody: "<p>x</p>"}
	msg := NewJSONMessage(rec, subject.NewNormalizer())

	if !msg.FirstInThread() {
		t.Error("FirstInThread = false; id equals topic id")
	}
	if len(msg.References()) != 0 {
		t.Errorf("References = %v; thread starter references nothing", msg.References())
	}
}

func TestNewJSONMessageZeroPostDate(t *testing.T) {
	rec := Record{MsgID: 1, TopicID: 1, Subject: "x", MessageBody: "<p>x</p>"}
	msg := NewJSONMessage(rec, subject.NewNormalizer())

	// postDate 0 means the field was absent, not the epoch.
	if !msg.Date().IsZero() {
		t.Errorf("Date = %v; want zero", msg.Date())
	}
}

func TestNewJSONMessageAuthorName(t *testing.T) {
	rec := Record{MsgID: 1, TopicID: 1, AuthorName: "Carol &quot;C&quot;", Profile: "ignored", MessageBody: "<p>x</p>"}
	msg := NewJSONMessage(rec, subject.NewNormalizer())

	if msg.SenderName() != `Carol "C"` {
		t.Errorf("SenderName = %q; want unescaped authorName", msg.SenderName())
	}
}

func TestIntStringUnmarshal(t *testing.T) {
	var rec Record
	data := `{"msgId": "123", "postDate": 1104573600, "topicId": null}`
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if rec.MsgID != 123 {
		t.Errorf("MsgID = %d; want 123 from quoted string", rec.MsgID)
	}
	if rec.PostDate != 1104573600 {
		t.Errorf("PostDate = %d", rec.PostDate)
	}
	if rec.TopicID != 0 {
		t.Errorf("TopicID = %d; want 0 from null", rec.TopicID)
	}
}
