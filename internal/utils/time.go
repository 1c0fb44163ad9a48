package utils

import "time"

// FormatLocal returns the provided time formatted in the local timezone.
func FormatLocal(t time.Time) string {
	return t.Local().Format(time.RFC1123)
}
