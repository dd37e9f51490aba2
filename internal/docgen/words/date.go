package words

import (
	"fmt"
	"strings"
	"time"

	dErrors "rentora/pkg/domain-errors"
)

// DayPhrase renders a date as the ordinal phrase used in agreement preambles,
// e.g. "1st day of June 2024".
func DayPhrase(t time.Time) string {
	day := t.Day()
	return fmt.Sprintf("%d%s day of %s %d", day, ordinalSuffix(day), t.Month(), t.Year())
}

// ordinalSuffix follows English ordinal rules: 11-13 always take "th",
// otherwise the last digit decides.
func ordinalSuffix(day int) string {
	if day >= 11 && day <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

// Span is a calendar-aware year/month/day duration.
type Span struct {
	Years  int
	Months int
	Days   int
}

// Duration computes the civil year/month/day delta between two dates such
// that start.AddDate(Years, Months, Days) lands on end. It is calendar-aware
// rather than a fixed 30/365-day division. Fails for end before start;
// callers validate ordering when accepting agreement dates.
func Duration(start, end time.Time) (Span, error) {
	start = dateOnly(start)
	end = dateOnly(end)
	if end.Before(start) {
		return Span{}, dErrors.New(dErrors.CodeInvalidInput, "end date precedes start date")
	}

	years := end.Year() - start.Year()
	months := int(end.Month()) - int(start.Month())
	if months < 0 {
		years--
		months += 12
	}

	anchor := start.AddDate(years, months, 0)
	for anchor.After(end) {
		months--
		if months < 0 {
			years--
			months += 12
		}
		anchor = start.AddDate(years, months, 0)
	}

	days := int(end.Sub(anchor).Hours() / 24)
	return Span{Years: years, Months: months, Days: days}, nil
}

// Phrase renders the span numerically, omitting zero components and
// pluralizing ones greater than one: "1 Year 2 Months 14 Days". A zero span
// renders "0 Days".
func (s Span) Phrase() string {
	var parts []string
	if s.Years > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", s.Years, plural("Year", s.Years)))
	}
	if s.Months > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", s.Months, plural("Month", s.Months)))
	}
	if s.Days > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", s.Days, plural("Day", s.Days)))
	}
	if len(parts) == 0 {
		return "0 Days"
	}
	return strings.Join(parts, " ")
}

// WordsPhrase renders the span with each count verbalized:
// "One Year Two Months". A zero span renders "Zero Days".
func (s Span) WordsPhrase() string {
	var parts []string
	if s.Years > 0 {
		parts = append(parts, ToWords(int64(s.Years))+" "+plural("Year", s.Years))
	}
	if s.Months > 0 {
		parts = append(parts, ToWords(int64(s.Months))+" "+plural("Month", s.Months))
	}
	if s.Days > 0 {
		parts = append(parts, ToWords(int64(s.Days))+" "+plural("Day", s.Days))
	}
	if len(parts) == 0 {
		return "Zero Days"
	}
	return strings.Join(parts, " ")
}

func plural(unit string, n int) string {
	if n > 1 {
		return unit + "s"
	}
	return unit
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
