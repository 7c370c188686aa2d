package model

import (
	"strings"
	"time"
)

// DisplayDateLayout renders dates like "02 Jan 2006".
const DisplayDateLayout = "02 Jan 2006"

// FormatStatus renders "in-progress" as "In Progress".
func FormatStatus(s Status) string {
	words := strings.Split(string(s), "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// FormatDate renders t in loc, or "—" when t is zero.
func FormatDate(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return "—"
	}
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(DisplayDateLayout)
}
