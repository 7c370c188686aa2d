package gcalendar

import "time"

// AllDayEventRequest is the input for exporting one task as an all-day event.
type AllDayEventRequest struct {
	CalendarID  string
	TaskID      string
	Summary     string
	Description string
	Date        time.Time // only the calendar day is used
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	Date        string // 2006-01-02 for all-day events
	TaskID      string // empty for events this tool did not create
}

// ListEventsRequest is the input for listing exported events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}
