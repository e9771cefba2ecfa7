package archive

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"

	"github.com/emurenMRz/mboxsite/internal/message"
	"github.com/emurenMRz/mboxsite/internal/subject"
	"github.com/emurenMRz/mboxsite/internal/thread"
)

var jsonFileRE = regexp.MustCompile(`^(\d+)\.json$`)

// topicFile is the shape of one export file: either a whole topic with a
// messages array, or a single bare message object.
type topicFile struct {
	Messages []message.Record `json:"messages"`
}

// ReadJSONDir processes a directory of <integer>.json export files in
// numeric order and returns the source topics containing the messages that
// pass the validity filter. A missing or unreadable directory is fatal;
// unreadable or malformed files are logged and skipped.
func ReadJSONDir(dir string, norm subject.Normalizer, validator message.Validator) ([]thread.Topic, *Stats, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("reading JSON directory: %w", err)
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && jsonFileRE.MatchString(e.Name()) {
			files = append(files, e.Name())
		}
	}
	sort.Slice(files, func(a, b int) bool {
		na, _ := strconv.Atoi(files[a][:len(files[a])-len(".json")])
		nb, _ := strconv.Atoi(files[b][:len(files[b])-len(".json")])
		return na < nb
	})
	log.Printf("Found %d JSON files to process in %s", len(files), dir)

	stats := NewStats()
	var (
		topics   []thread.Topic
		topicIdx = make(map[string]int)
	)

	for _, name := range files {
		records, err := readTopicFile(filepath.Join(dir, name))
		if err != nil {
			log.Printf("Error reading %s: %v", name, err)
			continue
		}
		stats.FileDone(name)

		for _, rec := range records {
			if rec.MsgID == 0 {
				log.Printf("Warning: missing or invalid msgId in %s", name)
				continue
			}

			msg := message.NewJSONMessage(rec, norm)
			reason := validator.Check(msg)
			stats.Tally(reason)
			if reason != message.ReasonOK {
				continue
			}

			// Keep the export's own grouping; topicless messages get a
			// private topic so they never merge.
			topicID := msg.TopicID()
			if topicID == "" {
				topicID = fmt.Sprintf("single_%d", msg.ID())
			}
			i, ok := topicIdx[topicID]
			if !ok {
				i = len(topics)
				topicIdx[topicID] = i
				topics = append(topics, thread.Topic{ID: topicID})
			}
			topics[i].Messages = append(topics[i].Messages, msg)
		}
	}

	return topics, stats, nil
}

// readTopicFile parses one export file into its message records.
func readTopicFile(path string) ([]message.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var tf topicFile
	if err := json.Unmarshal(data, &tf); err == nil && len(tf.Messages) > 0 {
		return tf.Messages, nil
	}

	var rec message.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	return []message.Record{rec}, nil
}
