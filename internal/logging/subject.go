package logging

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FormatSubject builds the execution subject shown in console output, e.g.
// "Worker-1 (3f2a1b4c)". The identifier is shortened to its first segment.
func FormatSubject(name, id string) string {
	name = strings.TrimSpace(name)
	id = shortID(strings.TrimSpace(id))
	switch {
	case name != "" && id != "" && name != id:
		return titleCase(name) + " (" + id + ")"
	case name != "":
		return titleCase(name)
	default:
		return id
	}
}

func shortID(id string) string {
	if head, _, ok := strings.Cut(id, "-"); ok {
		return head
	}
	return id
}

// titleCase builds a fresh Caser per call; Casers are not safe for concurrent use.
func titleCase(s string) string {
	return cases.Title(language.Und, cases.NoLower).String(s)
}
