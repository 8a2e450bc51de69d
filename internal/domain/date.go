package domain

import (
	"regexp"
	"time"
)

// datePattern проверяет только синтаксис YYYY-MM-DD, без проверки календаря
var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsValidDateFormat returns true if s looks like YYYY-MM-DD.
// "2024-13-99" passes: this is a syntactic check only.
func IsValidDateFormat(s string) bool {
	return datePattern.MatchString(s)
}

// ParseDate парсит дату формата YYYY-MM-DD.
// ok = false, если строка не является реальной календарной датой.
func ParseDate(s string) (time.Time, bool) {
	if !IsValidDateFormat(s) {
		return time.Time{}, false
	}
	d, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// DateOnly обнуляет время, оставляя только календарную дату (в UTC)
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatDate formats a calendar date as YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}
