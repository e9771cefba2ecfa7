package archive

import (
	"fmt"
	"io"
	"log"
	"net/mail"
	"os"

	"github.com/emersion/go-mbox"

	"github.com/emurenMRz/mboxsite/internal/message"
	"github.com/emurenMRz/mboxsite/internal/subject"
)

// EachMboxMessage streams the mbox file at path and calls fn for every
// record that parses into a message. Ids count every raw record in source
// order starting at 1, so a skipped record still consumes its id and ids
// stay stable across reruns of the same input. Failing to open the file is
// the only error returned; per-record failures are logged and skipped.
func EachMboxMessage(path string, norm subject.Normalizer, fn func(*message.MboxMessage)) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening mbox: %w", err)
	}
	defer f.Close()

	reader := mbox.NewReader(f)
	id := 0
	for {
		// NextMessage returns an io.Reader positioned at the start of a message
		mrReader, err := reader.NextMessage()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("Error reading message %d in %s: %v", id+1, path, err)
			id++
			continue
		}
		id++

		m, err := mail.ReadMessage(mrReader)
		if err != nil {
			log.Printf("Failed to parse message %d in %s: %v", id, path, err)
			continue
		}

		fn(message.NewMboxMessage(id, m, norm))
	}
	return nil
}

// ReadMbox reads the whole mbox file and returns the messages that pass the
// validity filter, in source order, together with run statistics.
func ReadMbox(path string, norm subject.Normalizer, validator message.Validator) ([]message.Message, *Stats, error) {
	stats := NewStats()
	var msgs []message.Message

	err := EachMboxMessage(path, norm, func(m *message.MboxMessage) {
		reason := validator.Check(m)
		stats.Tally(reason)
		if reason == message.ReasonOK {
			msgs = append(msgs, m)
		}
	})
	if err != nil {
		return nil, nil, err
	}
	return msgs, stats, nil
}
