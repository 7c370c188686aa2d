// Package checklist reads markdown checkboxes out of a task description.
package checklist

import (
	"regexp"
	"strings"
)

var (
	itemPattern   = regexp.MustCompile(`(?m)^\s*[-*] \[([ xX])\] (.+)$`)
	fencedPattern = regexp.MustCompile("(?s)```.*?```")
	inlinePattern = regexp.MustCompile("`[^`]+`")
)

// Item is one "- [ ] text" line.
type Item struct {
	Text    string
	Checked bool
}

// Stats is the completion of a description's checklist.
type Stats struct {
	Total     int
	Completed int
}

// Empty reports whether the text had no checklist at all.
func (s Stats) Empty() bool { return s.Total == 0 }

// Percent is the completed share in [0, 100]; 0 for an empty checklist.
func (s Stats) Percent() int {
	if s.Total == 0 {
		return 0
	}
	return s.Completed * 100 / s.Total
}

// Parse returns the checklist items of text in order. Checkboxes inside
// code spans and fenced blocks are ignored.
func Parse(text string) []Item {
	text = fencedPattern.ReplaceAllString(text, "")
	text = inlinePattern.ReplaceAllString(text, "")

	matches := itemPattern.FindAllStringSubmatch(text, -1)
	items := make([]Item, 0, len(matches))
	for _, m := range matches {
		items = append(items, Item{
			Text:    strings.TrimSpace(m[2]),
			Checked: strings.EqualFold(m[1], "x"),
		})
	}
	return items
}

// Summarize counts the checklist items of text.
func Summarize(text string) Stats {
	var s Stats
	for _, it := range Parse(text) {
		s.Total++
		if it.Checked {
			s.Completed++
		}
	}
	return s
}
