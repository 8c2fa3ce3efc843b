package actions

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

var months = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may":  time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September, "sept": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

var ordinalSuffix = regexp.MustCompile(`(?i)(\d{1,2})(?:st|nd|rd|th)\b`)

// NormalizeDate resolves a captured due-date phrase to an ISO-8601 calendar
// date relative to now. The second return is false when the phrase is not a
// recognizable date; callers keep the raw phrase in that case.
func NormalizeDate(phrase string, now time.Time) (string, bool) {
	p := strings.ToLower(strings.TrimSpace(phrase))
	p = strings.Trim(p, ".!?;: ")
	p = ordinalSuffix.ReplaceAllString(p, "$1")
	if p == "" {
		return "", false
	}

	switch p {
	case "today":
		return iso(now), true
	case "tomorrow":
		return iso(now.AddDate(0, 0, 1)), true
	case "next week":
		return iso(now.AddDate(0, 0, 7)), true
	case "next month":
		return iso(now.AddDate(0, 1, 0)), true
	}

	// Bare or "next"-prefixed weekday: the next occurrence after today.
	name := strings.TrimPrefix(p, "next ")
	if wd, ok := weekdays[name]; ok {
		days := int(wd-now.Weekday()+7) % 7
		if days == 0 {
			days = 7
		}
		return iso(now.AddDate(0, 0, days)), true
	}

	// "<month> <day>", current year.
	if fields := strings.Fields(p); len(fields) == 2 {
		if month, ok := months[fields[0]]; ok {
			if day, err := strconv.Atoi(fields[1]); err == nil && validDay(day) {
				return iso(time.Date(now.Year(), month, day, 0, 0, 0, 0, now.Location())), true
			}
		}
	}

	// Numeric m/d or m/d/y.
	if d, ok := parseNumericDate(p, now); ok {
		return iso(d), true
	}

	return "", false
}

func parseNumericDate(p string, now time.Time) (time.Time, bool) {
	parts := strings.Split(p, "/")
	if len(parts) != 2 && len(parts) != 3 {
		return time.Time{}, false
	}
	month, err1 := strconv.Atoi(parts[0])
	day, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || month < 1 || month > 12 || !validDay(day) {
		return time.Time{}, false
	}
	year := now.Year()
	if len(parts) == 3 {
		y, err := strconv.Atoi(parts[2])
		if err != nil {
			return time.Time{}, false
		}
		if y < 100 {
			y += 2000
		}
		year = y
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, now.Location()), true
}

func validDay(day int) bool {
	return day >= 1 && day <= 31
}

func iso(t time.Time) string {
	return t.Format("2006-01-02")
}
