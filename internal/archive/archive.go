// Package archive runs the conversion pipeline: read source records, build
// messages, filter, group into threads, and hand the result to the site
// emitter. Input is streamed one record at a time; per-record failures are
// logged and skipped, while an unreadable input or an archive yielding zero
// valid messages aborts the run.
package archive

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/emersion/go-imap/utf7"

	"github.com/emurenMRz/mboxsite/internal/message"
	"github.com/emurenMRz/mboxsite/internal/site"
	"github.com/emurenMRz/mboxsite/internal/subject"
	"github.com/emurenMRz/mboxsite/internal/thread"
)

// Config carries the run parameters. Exactly one of MboxPath and JSONDir
// must be set.
type Config struct {
	MboxPath  string
	JSONDir   string
	OutDir    string
	ForumName string
	// GroupTags are group-specific literal subject tags to strip during
	// normalization, e.g. "[LETTERBOXINGTEXAS]".
	GroupTags []string
}

// Run executes the whole pipeline and writes the static site. Every error
// it returns is fatal; main exits non-zero on them.
func Run(cfg Config) error {
	norm := subject.NewNormalizer(cfg.GroupTags...)
	validator := message.NewValidator()

	var (
		threads *thread.Map
		name    = cfg.ForumName
	)

	switch {
	case cfg.MboxPath != "" && cfg.JSONDir != "":
		return errors.New("provide either an mbox file or a JSON directory, not both")

	case cfg.MboxPath != "":
		msgs, stats, err := ReadMbox(cfg.MboxPath, norm, validator)
		if err != nil {
			return err
		}
		stats.Report()
		threads = thread.BySubject(msgs)
		if name == "" {
			name = forumNameFromPath(cfg.MboxPath)
		}

	case cfg.JSONDir != "":
		topics, stats, err := ReadJSONDir(cfg.JSONDir, norm, validator)
		if err != nil {
			return err
		}
		stats.Report()
		threads = thread.ByTopic(topics)
		if name == "" {
			name = forumNameFromPath(cfg.JSONDir)
		}

	default:
		return errors.New("no input: provide an mbox file or a JSON directory")
	}

	if threads.Messages() == 0 {
		return errors.New("no valid messages survived filtering")
	}
	log.Printf("Grouped %d messages into %d threads", threads.Messages(), threads.Len())

	gen := site.NewGenerator(cfg.OutDir, name)
	if err := gen.Generate(threads); err != nil {
		return fmt.Errorf("generating site: %w", err)
	}
	log.Printf("Done. Open %s in a web browser to view the archive.", filepath.Join(gen.Root(), "index.html"))
	return nil
}

// forumNameFromPath derives a display name from the input path. Mailboxes
// exported from IMAP stores carry IMAP-modified-UTF-7 file names; decode
// them to UTF-8 when possible.
func forumNameFromPath(path string) string {
	name := filepath.Base(filepath.Clean(path))
	name = strings.TrimSuffix(name, filepath.Ext(name))
	if decoded, err := utf7.Encoding.NewDecoder().String(name); err == nil {
		name = decoded
	}
	return name
}
