package validator

import (
	"strconv"
	"strings"
	"time"
)

// dateBoundLayout renders bounds in failure messages.
const dateBoundLayout = "2006/01/02 15:04:05"

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"2006/01/02 15:04",
	"2006/01/02",
	"01/02/2006 15:04:05",
	"01/02/2006",
	"02.01.2006",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	time.RFC822Z,
	time.RFC822,
	time.ANSIC,
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
}

// Date requires a date or date-time field in [min, max). A zero bound is
// not checked. Strings are parsed with the common ISO, US and RFC layouts,
// "@<unix seconds>", and the words now, today, tomorrow and yesterday.
// Dates without a zone are read in the validator's location.
func (v *Validator) Date(field string, min, max time.Time) Rule[time.Time] {
	return newRule(v, field, func(in Input) (time.Time, error) {
		raw, ok := in.get(field)
		if !ok {
			return time.Time{}, fail(CodeDateMissing)
		}
		date, ok := parseDate(raw, v.location, time.Now())
		if !ok {
			return time.Time{}, fail(CodeDateInvalid)
		}
		if !min.IsZero() && date.Before(min) {
			return time.Time{}, failWith(CodeDateTooEarly, min.Format(dateBoundLayout))
		}
		if !max.IsZero() && !date.Before(max) {
			return time.Time{}, failWith(CodeDateTooLate, max.Format(dateBoundLayout))
		}
		return date, nil
	})
}

func parseDate(raw any, loc *time.Location, now time.Time) (time.Time, bool) {
	switch x := raw.(type) {
	case time.Time:
		return x, true
	case *time.Time:
		if x == nil {
			return time.Time{}, false
		}
		return *x, true
	}

	s, ok := raw.(string)
	if !ok {
		return time.Time{}, false
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	now = now.In(loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	switch strings.ToLower(s) {
	case "now":
		return now, true
	case "today":
		return today, true
	case "tomorrow":
		return today.AddDate(0, 0, 1), true
	case "yesterday":
		return today.AddDate(0, 0, -1), true
	}

	if unix, found := strings.CutPrefix(s, "@"); found {
		sec, err := strconv.ParseInt(unix, 10, 64)
		if err != nil {
			return time.Time{}, false
		}
		return time.Unix(sec, 0).UTC(), true
	}

	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
