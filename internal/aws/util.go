package aws

import (
	"strconv"
	"time"
)

// TimestampLayout is the display layout of every formatted timestamp column
const TimestampLayout = "2006-01-02 15:04:05"

// FormatTime renders t in UTC using TimestampLayout. A missing timestamp renders empty.
func FormatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(TimestampLayout)
}

// FormatInt64 renders a count, or an empty cell when the service did not report one
func FormatInt64(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}
