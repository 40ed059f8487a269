package schedule

import (
	"strings"
	"time"
)

func isValidWeek(week string) bool {
	return strings.TrimSpace(week) != ""
}

func normalizeDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
