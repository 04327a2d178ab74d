package extractor

import (
	"regexp"
	"strings"
)

// section isolates the span of text that starts at the first occurrence of
// heading and ends at the earliest terminator after it, or at the end of the
// document when no terminator follows. The heading itself is part of the
// span. ok is false when the heading is absent.
func section(text, heading string, terminators ...string) (span string, ok bool) {
	start := strings.Index(text, heading)
	if start < 0 {
		return "", false
	}

	rest := text[start+len(heading):]
	end := len(rest)
	for _, t := range terminators {
		if i := strings.Index(rest, t); i >= 0 && i < end {
			end = i
		}
	}
	return text[start : start+len(heading)+end], true
}

// regexSection is section for headings that need a pattern match, bounded by
// the next occurrence of a literal terminator.
func regexSection(text string, heading *regexp.Regexp, terminator string) (span string, ok bool) {
	loc := heading.FindStringIndex(text)
	if loc == nil {
		return "", false
	}

	rest := text[loc[1]:]
	if i := strings.Index(rest, terminator); i >= 0 {
		return text[loc[0] : loc[1]+i], true
	}
	return text[loc[0]:], true
}

// firstSubmatch returns the first capture group of re in text, or "" when
// there is no match.
func firstSubmatch(re *regexp.Regexp, text string) string {
	if m := re.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}
