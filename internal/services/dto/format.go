package dto

import (
	"fmt"
	"strings"
	"time"
)

// FormatWord turns a stored underscore-encoded word into its readable form:
// "hyde_park" -> "Hyde Park".
func FormatWord(word string) string {
	parts := strings.Split(word, "_")
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, " ")
}

// FormatDate renders a timestamp the way the frontend expects:
// "June 1st 2024, 10:00:00 am".
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%s %s %d, %s",
		t.Format("January"),
		ordinal(t.Day()),
		t.Year(),
		t.Format("3:04:05 pm"),
	)
}

func ordinal(day int) string {
	suffix := "th"
	switch day % 100 {
	case 11, 12, 13:
	default:
		switch day % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", day, suffix)
}

// NeighborhoodLabel is the human-readable "Hyde Park, Chicago, IL" used in
// success and error messages.
func NeighborhoodLabel(name, city, state string) string {
	return fmt.Sprintf("%s, %s, %s", FormatWord(name), FormatWord(city), strings.ToUpper(state))
}
