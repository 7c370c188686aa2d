package datemath

import "time"

// Period is an inclusive range of calendar days. Zero bounds are open.
type Period struct {
	From time.Time
	To   time.Time
}

// LastDays returns the period covering the n calendar days that end on
// now's day, today included.
func (p *Parser) LastDays(now time.Time, n int) Period {
	end := p.StartOfDay(now)
	if n < 1 {
		n = 1
	}
	return Period{From: end.AddDate(0, 0, -(n - 1)), To: end}
}

// Contains reports whether t falls inside the period.
func (p *Parser) Contains(period Period, t time.Time) bool {
	return p.InDayRange(t, period.From, period.To)
}
