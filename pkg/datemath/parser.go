package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the calendar-day layout used for keys and user input.
const DateLayout = "2006-01-02"

var inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

// Parser converts date input to absolute time.Time values and compares
// instants by calendar day in a fixed location.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// "" and "Local" select the process local zone.
func NewParser(timezone string) (*Parser, error) {
	if timezone == "" || strings.EqualFold(timezone, "local") {
		return &Parser{location: time.Local}, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// NewParserIn creates a parser bound to an already resolved location.
func NewParserIn(loc *time.Location) *Parser {
	if loc == nil {
		loc = time.Local
	}
	return &Parser{location: loc}
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse converts a date string to an absolute time.Time at the start of
// that day. Accepts "today", "tomorrow", "yesterday", "in N days|weeks|months",
// "next <weekday>" and absolute YYYY-MM-DD dates.
func (p *Parser) Parse(input string, baseTime time.Time) (time.Time, error) {
	input = strings.ToLower(strings.TrimSpace(input))

	switch input {
	case "":
		return baseTime, fmt.Errorf("empty date")
	case "today":
		return p.StartOfDay(baseTime), nil
	case "tomorrow":
		return p.StartOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.StartOfDay(baseTime.AddDate(0, 0, -1)), nil
	}

	if strings.HasPrefix(input, "in ") {
		return p.parseInDuration(input, baseTime)
	}

	if strings.HasPrefix(input, "next ") {
		return p.parseNextWeekday(input, baseTime)
	}

	abs, err := time.ParseInLocation(DateLayout, input, p.location)
	if err != nil {
		return baseTime, fmt.Errorf("unrecognised date %q", input)
	}
	return abs, nil
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.StartOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.StartOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	default:
		return p.StartOfDay(baseTime.AddDate(0, amount, 0)), nil
	}
}

// parseNextWeekday handles patterns like "next monday", "next friday".
func (p *Parser) parseNextWeekday(relative string, baseTime time.Time) (time.Time, error) {
	weekdays := map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}

	dayName := strings.TrimPrefix(relative, "next ")
	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return baseTime, fmt.Errorf("unknown weekday: %q", dayName)
	}

	currentWeekday := baseTime.In(p.location).Weekday()
	daysUntil := int(targetWeekday - currentWeekday)
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return p.StartOfDay(baseTime.AddDate(0, 0, daysUntil)), nil
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}

// SameDay reports whether a and b fall on the same calendar day in the
// parser's timezone. Zero times never match.
func (p *Parser) SameDay(a, b time.Time) bool {
	if a.IsZero() || b.IsZero() {
		return false
	}
	ay, am, ad := a.In(p.location).Date()
	by, bm, bd := b.In(p.location).Date()
	return ay == by && am == bm && ad == bd
}

// DayKey formats t as its calendar day in the parser's timezone.
func (p *Parser) DayKey(t time.Time) string {
	return t.In(p.location).Format(DateLayout)
}

// InDayRange reports whether t falls on a calendar day within [from, to],
// both ends inclusive. A zero bound is open.
func (p *Parser) InDayRange(t, from, to time.Time) bool {
	day := p.StartOfDay(t)
	if !from.IsZero() && day.Before(p.StartOfDay(from)) {
		return false
	}
	if !to.IsZero() && day.After(p.StartOfDay(to)) {
		return false
	}
	return true
}
