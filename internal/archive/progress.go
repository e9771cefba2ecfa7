package archive

import (
	"log"
	"time"

	"github.com/emurenMRz/mboxsite/internal/message"
)

// Stats tallies a run for progress output and the final report. Rejection
// is never fatal; it is counted here per reason.
type Stats struct {
	Files    int
	Records  int
	Valid    int
	Rejected map[message.Reason]int

	start   time.Time
	lastLog time.Time
}

// NewStats returns a Stats with the clock started.
func NewStats() *Stats {
	return &Stats{
		Rejected: make(map[message.Reason]int),
		start:    time.Now(),
	}
}

// Tally records the filter outcome for one constructed message.
func (s *Stats) Tally(reason message.Reason) {
	s.Records++
	if reason == message.ReasonOK {
		s.Valid++
	} else {
		s.Rejected[reason]++
	}
	if time.Since(s.lastLog) >= 5*time.Second {
		s.lastLog = time.Now()
		log.Printf("Processed %d messages, %d valid...", s.Records, s.Valid)
	}
}

// FileDone records one processed source file.
func (s *Stats) FileDone(name string) {
	s.Files++
}

// Report logs the final run summary.
func (s *Stats) Report() {
	elapsed := time.Since(s.start)
	rate := 0.0
	if secs := elapsed.Seconds(); secs > 0 {
		rate = float64(s.Records) / secs
	}

	if s.Files > 0 {
		log.Printf("Processed %d files", s.Files)
	}
	log.Printf("Processed %d messages, %d valid (%.1f msg/sec, %s elapsed)",
		s.Records, s.Valid, rate, elapsed.Round(time.Millisecond))
	for reason, n := range s.Rejected {
		log.Printf("Rejected %d messages: %s", n, reason)
	}
}
