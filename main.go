package main

import (
	"flag"
	"log"
	"strings"

	"github.com/emurenMRz/mboxsite/internal/archive"
)

func main() {
	var (
		mboxPath = flag.String("mbox", "", "path to the mbox file to convert")
		jsonDir  = flag.String("json", "", "path to a directory of <id>.json export files")
		outDir   = flag.String("out", "output", "output directory for the generated website")
		name     = flag.String("name", "", "forum name (default: derived from the input filename)")
		tags     = flag.String("tags", "", `comma-separated group subject tags to strip, e.g. "[MYGROUP]"`)
	)
	flag.Parse()

	err := archive.Run(archive.Config{
		MboxPath:  *mboxPath,
		JSONDir:   *jsonDir,
		OutDir:    *outDir,
		ForumName: *name,
		GroupTags: splitTags(*tags),
	})
	if err != nil {
		log.Fatal(err)
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
