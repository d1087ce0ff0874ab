package utils

import "time"

// Lima time location (PET, -05:00, no DST)
var limaLoc = func() *time.Location {
	if loc, err := time.LoadLocation("America/Lima"); err == nil {
		return loc
	}
	return time.FixedZone("PET", -5*3600)
}()

const dateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string as a Lima calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, s, limaLoc)
}

// DateOnly truncates t to midnight of its Lima calendar day.
func DateOnly(t time.Time) time.Time {
	tl := t.In(limaLoc)
	return time.Date(tl.Year(), tl.Month(), tl.Day(), 0, 0, 0, 0, limaLoc)
}

// ExpandDateRange returns every calendar date from start to end inclusive,
// normalized to Lima midnight. Returns nil when end precedes start.
func ExpandDateRange(start, end time.Time) []time.Time {
	first := DateOnly(start)
	last := DateOnly(end)
	if last.Before(first) {
		return nil
	}
	var days []time.Time
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(limaLoc).Format(dateLayout)
}

func FormatRFC3339(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(limaLoc).Format(time.RFC3339)
}
