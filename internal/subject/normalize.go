// Package subject derives canonical thread keys from decoded subject lines.
//
// Group archives have no reliable thread identifier, so messages are grouped
// by subject after stripping the noise mailing-list software piles on:
// reply/forward prefixes, bracketed group tags, attachment-count suffixes
// and "(was ...)" subject-change annotations.
package subject

import (
	"regexp"
	"strings"
)

// Default is the sentinel key for messages without a usable subject.
const Default = "(No subject)"

var (
	// Leading "[tag]" with surrounding whitespace, non-greedy.
	bracketRE = regexp.MustCompile(`^\s*\[.*?\]\s*`)

	// Trailing "(was Re: [tag] Re: Original Subject)" annotation. List
	// software rewrites subjects and records the original in this form;
	// the captured text recovers the true thread subject. The tag and
	// both "Re:" markers are optional, so free text after "was" matches
	// as well.
	wasRE = regexp.MustCompile(`(?i)\(\s*was\s+(?:re:\s*)?(?:\[.*?\]\s*)?(?:re:\s*)?(.*?)\s*\)\s*$`)

	// Trailing "[N Attachment(s)]" suffix.
	attachmentRE = regexp.MustCompile(`(?i)\s*\[\s*\d+\s+Attachments?\s*\]\s*$`)

	// Numbered reply/forward prefixes like "Re[2]:" or "Fwd[3]:".
	numberedPrefixRE = regexp.MustCompile(`(?i)^(?:re|fwd)\[\d*\]:`)
)

// defaultPrefixes are the reply/forward markers stripped from subjects,
// matched case-insensitively at the start of the string. AW/VS/SV are the
// German, Finnish and Swedish localizations.
var defaultPrefixes = []string{"re:", "fwd:", "fw:", "aw:", "vs:", "sv:"}

// Normalizer rewrites subjects into canonical thread keys. The zero value is
// not usable; construct with NewNormalizer.
type Normalizer struct {
	prefixes []string
}

// NewNormalizer returns a Normalizer stripping the standard reply/forward
// prefixes plus any group-specific literal tags (e.g. "[LETTERBOXINGTEXAS]").
// Tags are matched case-insensitively as leading literals.
func NewNormalizer(groupTags ...string) Normalizer {
	prefixes := make([]string, 0, len(defaultPrefixes)+len(groupTags))
	prefixes = append(prefixes, defaultPrefixes...)
	for _, tag := range groupTags {
		if tag = strings.TrimSpace(tag); tag != "" {
			prefixes = append(prefixes, tag)
		}
	}
	return Normalizer{prefixes: prefixes}
}

// Normalize derives the canonical thread key for a decoded subject line.
// It is deterministic and idempotent on its own output. Subjects that strip
// down to nothing yield the Default sentinel.
func (n Normalizer) Normalize(s string) string {
	if strings.TrimSpace(s) == "" {
		return Default
	}

	// Recover the original subject from trailing "(was ...)" annotations
	// and drop attachment-count suffixes. Unwrapping one annotation can
	// expose another (rewrites of rewrites), so run to a fixpoint; every
	// step shortens the string.
	for {
		prev := s
		if m := wasRE.FindStringSubmatch(s); m != nil {
			s = strings.TrimSpace(m[1])
		}
		s = attachmentRE.ReplaceAllString(s, "")
		if s == prev {
			break
		}
	}

	// Bracket tags and reply prefixes interleave ("[Tag] Re:" vs
	// "Re: [Tag]"); either removal may expose the other, so loop until
	// a full pass changes nothing. Only one prefix is removed per pass.
	for stripped := true; stripped; {
		stripped = false

		s = bracketRE.ReplaceAllString(s, "")

		// EqualFold on a length-checked slice of s, so the removal offset
		// is always a byte length of s itself, never of a folded copy.
		for _, p := range n.prefixes {
			if len(s) >= len(p) && strings.EqualFold(s[:len(p)], p) {
				s = strings.TrimLeft(s[len(p):], " \t")
				stripped = true
				break
			}
		}
		if !stripped {
			if m := numberedPrefixRE.FindString(s); m != "" {
				s = strings.TrimLeft(s[len(m):], " \t")
				stripped = true
			}
		}

		if bracketRE.MatchString(s) {
			stripped = true
		}
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return Default
	}
	return s
}
