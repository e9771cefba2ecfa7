// Package thread groups validated messages into conversations keyed by
// normalized subject or explicit topic id.
package thread

import (
	"fmt"
	"sort"

	"github.com/emurenMRz/mboxsite/internal/message"
	"github.com/emurenMRz/mboxsite/internal/subject"
)

// Map is an insertion-ordered mapping from thread key to the thread's
// messages, each thread sorted ascending by date. Every thread in a built
// Map is non-empty and keys are unique.
type Map struct {
	keys    []string
	buckets map[string][]message.Message
}

// NewMap returns an empty thread map.
func NewMap() *Map {
	return &Map{buckets: make(map[string][]message.Message)}
}

// Add appends msg to the thread for key, creating the thread if needed.
func (m *Map) Add(key string, msg message.Message) {
	if _, ok := m.buckets[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.buckets[key] = append(m.buckets[key], msg)
}

// Keys returns the thread keys in insertion order.
func (m *Map) Keys() []string { return m.keys }

// Get returns the messages of the thread for key.
func (m *Map) Get(key string) []message.Message { return m.buckets[key] }

// Len returns the number of threads.
func (m *Map) Len() int { return len(m.keys) }

// Messages returns the total message count across all threads.
func (m *Map) Messages() int {
	n := 0
	for _, msgs := range m.buckets {
		n += len(msgs)
	}
	return n
}

// threadKey derives the grouping key for one message: the normalized
// subject, or a per-message fallback so that subject-less messages never
// merge into one giant thread.
func threadKey(msg message.Message) string {
	if key := msg.NormalizedSubject(); key != "" && key != subject.Default {
		return key
	}
	return fmt.Sprintf("single_%d", msg.ID())
}

// BySubject groups messages by normalized subject. Bucket contents keep the
// input order until the final per-thread date sort.
func BySubject(msgs []message.Message) *Map {
	m := NewMap()
	for _, msg := range msgs {
		m.Add(threadKey(msg), msg)
	}
	m.finish()
	return m
}

// Topic is one source topic from the JSON-directory path: the export's
// explicit grouping, prior to subject keying.
type Topic struct {
	ID       string
	Messages []message.Message
}

// ByTopic builds threads from explicit source topics. Each topic becomes one
// thread keyed by its first message's normalized subject; topics without a
// usable subject get a synthesized "Thread <topicId>" key. Distinct topics
// that normalize to the identical subject are disambiguated with " (1)",
// " (2)", ... suffixes; the un-suffixed key belongs to the first topic
// encountered.
func ByTopic(topics []Topic) *Map {
	m := NewMap()
	for _, t := range topics {
		if len(t.Messages) == 0 {
			continue
		}
		sortByDate(t.Messages)

		key := t.Messages[0].NormalizedSubject()
		if key == "" || key == subject.Default {
			key = "Thread " + t.ID
		}
		base := key
		for counter := 1; ; counter++ {
			if _, taken := m.buckets[key]; !taken {
				break
			}
			key = fmt.Sprintf("%s (%d)", base, counter)
		}

		for _, msg := range t.Messages {
			m.Add(key, msg)
		}
	}
	m.finish()
	return m
}

// finish sorts each thread by date and prunes empty threads.
func (m *Map) finish() {
	kept := m.keys[:0]
	for _, key := range m.keys {
		msgs := m.buckets[key]
		if len(msgs) == 0 {
			delete(m.buckets, key)
			continue
		}
		sortByDate(msgs)
		kept = append(kept, key)
	}
	m.keys = kept
}

// sortByDate orders msgs ascending by date, keeping the existing order for
// equal or missing dates.
func sortByDate(msgs []message.Message) {
	sort.SliceStable(msgs, func(a, b int) bool {
		return msgs[a].Date().Before(msgs[b].Date())
	})
}
