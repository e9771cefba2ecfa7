// Command mboxcheck reads an mbox file and reports which messages the
// archive converter would reject, and why. Useful for sizing up an archive
// before generating a site from it.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/emurenMRz/mboxsite/internal/archive"
	"github.com/emurenMRz/mboxsite/internal/message"
	"github.com/emurenMRz/mboxsite/internal/subject"
)

func main() {
	var (
		path  = flag.String("path", "", "input mbox file path (required)")
		tags  = flag.String("tags", "", "comma-separated group subject tags to strip")
		quiet = flag.Bool("quiet", false, "print only the summary")
	)
	flag.Parse()

	if *path == "" {
		log.Fatal("Error: -path is required")
	}

	norm := subject.NewNormalizer(splitTags(*tags)...)
	validator := message.NewValidator()

	total := 0
	rejected := map[message.Reason]int{}
	err := archive.EachMboxMessage(*path, norm, func(m *message.MboxMessage) {
		total++
		reason := validator.Check(m)
		if reason == message.ReasonOK {
			return
		}
		rejected[reason]++
		if !*quiet {
			fmt.Printf("Message %d: %s (subject: %s)\n", m.ID(), reason, m.Subject())
		}
	})
	if err != nil {
		log.Fatal(err)
	}

	badCount := 0
	for _, n := range rejected {
		badCount += n
	}
	fmt.Printf("%d messages checked, %d would be rejected\n", total, badCount)
	for reason, n := range rejected {
		fmt.Printf("  %s: %d\n", reason, n)
	}
}

func splitTags(s string) []string {
	var tags []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
