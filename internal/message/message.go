// Package message holds the uniform message abstraction over the two archive
// source formats: raw mbox records and per-topic JSON exports. Both variants
// expose the same semantic fields; construction derives everything once, and
// only the output URL is written afterwards.
package message

import "time"

// Message is the capability set shared by both source variants.
//
// Date returns the zero time when the source record had no parseable date;
// such messages are rejected by the validity filter. SetURL is the single
// sanctioned post-construction mutation, performed once by the site emitter
// after the owning thread's output file name is known.
type Message interface {
	ID() int
	Subject() string
	NormalizedSubject() string
	SenderName() string
	SenderEmail() string
	Date() time.Time
	HTMLContent() string
	References() []string
	URL() string
	SetURL(string)
}

// fields is the concrete state backing both variants.
type fields struct {
	id          int
	subject     string
	normalized  string
	senderName  string
	senderEmail string
	date        time.Time
	htmlContent string
	references  []string
	url         string
}

func (f *fields) ID() int                   { return f.id }
func (f *fields) Subject() string           { return f.subject }
func (f *fields) NormalizedSubject() string { return f.normalized }
func (f *fields) SenderName() string        { return f.senderName }
func (f *fields) SenderEmail() string       { return f.senderEmail }
func (f *fields) Date() time.Time           { return f.date }
func (f *fields) HTMLContent() string       { return f.htmlContent }
func (f *fields) References() []string      { return f.references }
func (f *fields) URL() string               { return f.url }
func (f *fields) SetURL(u string)           { f.url = u }
