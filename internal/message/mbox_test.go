package message

import (
	"net/mail"
	"strings"
	"testing"
	"time"

	"github.com/emurenMRz/mboxsite/internal/subject"
)

func readMail(t *testing.T, raw string) *mail.Message {
	t.Helper()
	m, err := mail.ReadMessage(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("reading test message: %v", err)
	}
	return m
}

func TestNewMboxMessage(t *testing.T) {
	raw := "From: Alice Example <alice@example.com>\r\n" +
		"To: group@example.com\r\n" +
		"Subject: Re: [Grp] Launch\r\n" +
		"Date: Sat, 01 Jan 2005 10:00:00 +0000\r\n" +
		"Message-ID: <m2@example.com>\r\n" +
		"References: <m0@example.com> <m1@example.com>\r\n" +
		"In-Reply-To: <m1@example.com>\r\n" +
		"Content-Type: text/html; charset=utf-8\r\n" +
		"\r\n" +
		"<p>hi</p>\r\n"

	msg := NewMboxMessage(1, readMail(t, raw), subject.NewNormalizer())

	if msg.ID() != 1 {
		t.Errorf("ID = %d; want 1", msg.ID())
	}
	if msg.Subject() != "Re: [Grp] Launch" {
		t.Errorf("Subject = %q", msg.Subject())
	}
	if msg.NormalizedSubject() != "Launch" {
		t.Errorf("NormalizedSubject = %q; want Launch", msg.NormalizedSubject())
	}
	if msg.SenderName() != "Alice Example" || msg.SenderEmail() != "alice@example.com" {
		t.Errorf("sender = %q / %q", msg.SenderName(), msg.SenderEmail())
	}
	want := time.Date(2005, time.January, 1, 10, 0, 0, 0, time.UTC)
	if !msg.Date().Equal(want) {
		t.Errorf("Date = %v; want %v", msg.Date(), want)
	}
	refs := msg.References()
	if len(refs) != 3 || refs[0] != "m0@example.com" || refs[2] != "m1@example.com" {
		t.Errorf("References = %v", refs)
	}
	if !strings.Contains(msg.HTMLContent(), "<p>hi</p>") {
		t.Errorf("HTMLContent = %q", msg.HTMLContent())
	}
	if msg.URL() != "messages/1.html" {
		t.Errorf("URL = %q; want default per-message URL", msg.URL())
	}
}

func TestMboxMessageDefaults(t *testing.T) {
	raw := "From: nobody\r\n" +
		"Date: not a date\r\n" +
		"\r\n" +
		"body\r\n"

	msg := NewMboxMessage(7, readMail(t, raw), subject.NewNormalizer())

	if msg.Subject() != subject.Default {
		t.Errorf("Subject = %q; want sentinel", msg.Subject())
	}
	if !msg.Date().IsZero() {
		t.Errorf("Date = %v; want zero for unparsable date", msg.Date())
	}
	if len(msg.References()) != 0 {
		t.Errorf("References = %v; want none", msg.References())
	}
}

func TestExtractContentPlainTextPromotion(t *testing.T) {
	raw := "From: a@example.com\r\n" +
		"Subject: plain\r\n" +
		"Date: Sat, 01 Jan 2005 10:00:00 +0000\r\n" +
		"Content-Type: text/plain; charset=utf-8\r\n" +
		"\r\n" +
		"hello\nworld"

	msg := NewMboxMessage(1, readMail(t, raw), subject.NewNormalizer())

	want := `<div class="plaintext-content">hello<br>` + "\n" + `world</div>`
	if msg.HTMLContent() != want {
		t.Errorf("HTMLContent = %q; want %q", msg.HTMLContent(), want)
	}
}

func TestExtractContentPrefersHTML(t *testing.T) {
	raw := "From: a@example.com\r\n" +
		"Subject: multi\r\n" +
		"Date: Sat, 01 Jan 2005 10:00:00 +0000\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: multipart/alternative; boundary=XYZ\r\n" +
		"\r\n" +
		"--XYZ\r\n" +
		"Content-Type: text/plain\r\n" +
		"\r\n" +
		"plain body\r\n" +
		"--XYZ\r\n" +
		"Content-Type: text/html\r\n" +
		"\r\n" +
		"<b>rich</b>\r\n" +
		"--XYZ--\r\n"

	msg := NewMboxMessage(1, readMail(t, raw), subject.NewNormalizer())

	if !strings.Contains(msg.HTMLContent(), "<b>rich</b>") {
		t.Errorf("HTMLContent = %q; want the html part", msg.HTMLContent())
	}
	if strings.Contains(msg.HTMLContent(), "plain body") {
		t.Errorf("HTMLContent = %q; plain part should lose to html", msg.HTMLContent())
	}
}

func TestExtractContentQuotedPrintable(t *testing.T) {
	raw := "From: a@example.com\r\n" +
		"Subject: qp\r\n" +
		"Date: Sat, 01 Jan 2005 10:00:00 +0000\r\n" +
		"Content-Type: text/html; charset=utf-8\r\n" +
		"Content-Transfer-Encoding: quoted-printable\r\n" +
		"\r\n" +
		"<p>caf=C3=A9</p>"

	msg := NewMboxMessage(1, readMail(t, raw), subject.NewNormalizer())

	if !strings.Contains(msg.HTMLContent(), "café") {
		t.Errorf("HTMLContent = %q; want decoded quoted-printable", msg.HTMLContent())
	}
}

func TestExtractContentEmpty(t *testing.T) {
	raw := "From: a@example.com\r\n" +
		"Subject: attachment only\r\n" +
		"Date: Sat, 01 Jan 2005 10:00:00 +0000\r\n" +
		"Content-Type: application/octet-stream\r\n" +
		"\r\n" +
		"binary\r\n"

	msg := NewMboxMessage(1, readMail(t, raw), subject.NewNormalizer())

	if msg.HTMLContent() != "" {
		t.Errorf("HTMLContent = %q; want empty for non-text body", msg.HTMLContent())
	}
}
