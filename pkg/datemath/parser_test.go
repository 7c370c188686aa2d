package datemath_test

import (
	"testing"
	"time"

	"taskboard/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	p, err := datemath.NewParser("Local")
	if err != nil || p.Location() != time.Local {
		t.Fatalf("expected local parser, got %v %v", p, err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParse(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday, May 1, 2024
	startOfBase := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "Today", input: "today", want: startOfBase},
		{name: "Tomorrow", input: " Tomorrow ", want: startOfBase.AddDate(0, 0, 1)},
		{name: "Yesterday", input: "yesterday", want: startOfBase.AddDate(0, 0, -1)},
		{name: "In 3 days", input: "in 3 days", want: startOfBase.AddDate(0, 0, 3)},
		{name: "In 2 weeks", input: "in 2 weeks", want: startOfBase.AddDate(0, 0, 14)},
		{name: "In 1 month", input: "in 1 month", want: startOfBase.AddDate(0, 1, 0)},
		{name: "Invalid duration pattern", input: "in a few days", want: baseTime, wantErr: true},
		{name: "Next Monday (from Wed)", input: "next monday", want: startOfBase.AddDate(0, 0, 5)},
		{name: "Next Wednesday (from Wed)", input: "next wednesday", want: startOfBase.AddDate(0, 0, 7)},
		{name: "Absolute date", input: "2024-07-02", want: time.Date(2024, 7, 2, 0, 0, 0, 0, time.UTC)},
		{name: "Unknown", input: "some random day", want: baseTime, wantErr: true},
		{name: "Empty", input: "  ", want: baseTime, wantErr: true},
		{name: "Invalid Next Weekday", input: "next funday", want: baseTime, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.input, baseTime)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEndOfDay(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	want := time.Date(2024, 5, 1, 23, 59, 59, 0, time.UTC)

	got := parser.EndOfDay(base)
	if !got.Equal(want) {
		t.Errorf("EndOfDay() got = %v, want %v", got, want)
	}
}

func TestSameDay(t *testing.T) {
	hcm, err := time.LoadLocation("Asia/Ho_Chi_Minh") // UTC+7
	if err != nil {
		t.Skip("tzdata not available")
	}
	parser := datemath.NewParserIn(hcm)

	// 20:00 UTC on May 1 is already May 2 in UTC+7.
	lateUTC := time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC)
	morningLocal := time.Date(2024, 5, 2, 8, 0, 0, 0, hcm)

	if !parser.SameDay(lateUTC, morningLocal) {
		t.Errorf("expected same local calendar day")
	}
	if parser.SameDay(lateUTC, time.Date(2024, 5, 1, 12, 0, 0, 0, hcm)) {
		t.Errorf("expected different local calendar days")
	}
	if parser.SameDay(time.Time{}, morningLocal) {
		t.Errorf("zero time must never match")
	}
}

func TestPeriod(t *testing.T) {
	parser := datemath.NewParserIn(time.UTC)
	now := time.Date(2024, 5, 31, 18, 0, 0, 0, time.UTC)
	period := parser.LastDays(now, 30)

	tests := []struct {
		name string
		t    time.Time
		want bool
	}{
		{name: "first day inclusive", t: time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC), want: true},
		{name: "last day late", t: time.Date(2024, 5, 31, 23, 59, 0, 0, time.UTC), want: true},
		{name: "before", t: time.Date(2024, 5, 1, 23, 59, 0, 0, time.UTC), want: false},
		{name: "after", t: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parser.Contains(period, tt.t); got != tt.want {
				t.Errorf("Contains() = %v, want %v", got, tt.want)
			}
		})
	}

	if !parser.Contains(datemath.Period{}, now) {
		t.Errorf("open period should contain everything")
	}
	if got := parser.DayKey(now); got != "2024-05-31" {
		t.Errorf("DayKey() = %q", got)
	}
}
