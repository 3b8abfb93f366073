package scanner

import (
	"strings"
	"unicode"
)

const maxCandidateLength = 128

// Extract returns the candidate tokens of content in order of appearance, with
// duplicates. A candidate is a run of characters that can appear in a class name,
// trimmed of trailing punctuation, containing at least one letter.
func Extract(content string) []string {
	fields := strings.FieldsFunc(content, isSeparator)

	out := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimLeft(f, ".:/!(")
		f = strings.TrimRight(f, ".:/,)")
		if f == "" || len(f) > maxCandidateLength || !strings.ContainsFunc(f, unicode.IsLetter) {
			continue
		}
		if strings.Count(f, "[") != strings.Count(f, "]") {
			continue
		}
		out = append(out, f)
	}
	return out
}

func isSeparator(r rune) bool {
	if unicode.IsSpace(r) {
		return true
	}
	switch r {
	case '"', '\'', '`', '<', '>', '=', '{', '}', ';', '\\', '@', '$', '&', '|', '?', '*', '^', '~', '+':
		return true
	}
	return r > unicode.MaxASCII
}
