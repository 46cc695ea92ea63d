package render

import (
	"regexp"
	"time"
)

var yearMonth = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// parseLayouts are the date shapes we try to reformat into year-month.
var parseLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006/01",
	"01/2006",
	"January 2006",
	"Jan 2006",
	time.RFC3339,
}

// FormatDate canonicalizes a stored date string into year-month form.
// Already-canonical values pass through, parseable values are
// reformatted, and anything else is returned unchanged. It never fails.
func FormatDate(s string) string {
	if s == "" || yearMonth.MatchString(s) {
		return s
	}
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01")
		}
	}
	return s
}

// DateRange renders "start - end", substituting the localized present
// token when the entry is marked ongoing. The stored end date is not
// authoritative in that case.
func DateRange(start, end string, isPresent bool, presentToken string) string {
	if isPresent {
		end = presentToken
	} else {
		end = FormatDate(end)
	}
	start = FormatDate(start)
	switch {
	case start == "" && end == "":
		return ""
	case start == "":
		return end
	case end == "":
		return start
	}
	return start + " - " + end
}
