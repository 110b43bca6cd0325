package shiftwatch

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DayLayout formats a date the way schedule pages print it: month/day
// without zero padding (e.g. "5/3").
const DayLayout = "1/2"

var (
	dayPattern   = regexp.MustCompile(`\d{1,2}/\d{1,2}`)
	timePattern  = regexp.MustCompile(`\d{1,2}:\d{1,2}`)
	shiftPattern = regexp.MustCompile(`^(\d{1,2}/\d{1,2}) (\d{1,2}:\d{1,2} - \d{1,2}:\d{1,2})$`)
)

// ScheduleRecord is one announced work day.
type ScheduleRecord struct {
	Day  string `json:"day"`  // M/D, e.g. "5/3"
	Time string `json:"time"` // "HH:MM - HH:MM"
}

// String returns the display form written to the row store: "<day> <time>".
func (r ScheduleRecord) String() string {
	return r.Day + " " + r.Time
}

// FormatDay formats t as M/D in t's location.
func FormatDay(t time.Time) string {
	return t.Format(DayLayout)
}

// ParseEntry extracts a record from the markup of a single calendar entry.
// It takes the first day token and the first two time tokens; ok is false
// when either the day or the time range is missing.
func ParseEntry(markup string) (r ScheduleRecord, ok bool) {
	day := dayPattern.FindString(markup)
	if day == "" {
		return ScheduleRecord{}, false
	}
	times := timePattern.FindAllString(markup, 2)
	if len(times) < 2 {
		return ScheduleRecord{}, false
	}
	return ScheduleRecord{Day: day, Time: times[0] + " - " + times[1]}, true
}

// ParseShift parses a display value previously produced by
// ScheduleRecord.String. Status markers such as StatusNoUpcoming do not parse.
func ParseShift(s string) (ScheduleRecord, bool) {
	m := shiftPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return ScheduleRecord{}, false
	}
	return ScheduleRecord{Day: m[1], Time: m[2]}, true
}

// Interval resolves the record to concrete start and end times in today's
// location. Records carry no year: the day is placed in the year that puts it
// within six months of today. An end time at or before the start time is
// taken to fall on the following day, and hours past 23 roll over.
func (r ScheduleRecord) Interval(today time.Time) (start, end time.Time, err error) {
	var month, day int
	if _, err := fmt.Sscanf(r.Day, "%d/%d", &month, &day); err != nil {
		return start, end, Errorf(EINVALID, "invalid schedule day %q", r.Day)
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return start, end, Errorf(EINVALID, "invalid schedule day %q", r.Day)
	}

	var h1, m1, h2, m2 int
	if _, err := fmt.Sscanf(r.Time, "%d:%d - %d:%d", &h1, &m1, &h2, &m2); err != nil {
		return start, end, Errorf(EINVALID, "invalid schedule time %q", r.Time)
	}
	if m1 > 59 || m2 > 59 {
		return start, end, Errorf(EINVALID, "invalid schedule time %q", r.Time)
	}

	loc := today.Location()
	midnight := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, loc)
	year := today.Year()
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	switch {
	case date.Before(midnight.AddDate(0, -6, 0)):
		year++
	case date.After(midnight.AddDate(0, 6, 0)):
		year--
	}

	if d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc); d.Day() != day {
		return start, end, Errorf(EINVALID, "invalid schedule day %q", r.Day)
	}

	start = time.Date(year, time.Month(month), day, h1, m1, 0, 0, loc)
	end = time.Date(year, time.Month(month), day, h2, m2, 0, 0, loc)
	if !end.After(start) {
		end = end.AddDate(0, 0, 1)
	}
	return start, end, nil
}
