// Package format renders byte counts and timestamps for display.
package format

import (
	"fmt"
	"strconv"
	"time"
)

const k = 1024

var sizes = []string{"Bytes", "KB", "MB", "GB", "TB"}

// FormatBytesDefault is FormatBytes with two decimals.
func FormatBytesDefault(bytes int64) string {
	return FormatBytes(bytes, 2)
}

// FormatBytes scales bytes to the largest unit up to TB and rounds to
// decimals fractional digits, dropping trailing zeros: 1536 with one decimal
// is "1.5 KB", 1024 is "1 KB". Negative decimals count as zero.
func FormatBytes(bytes int64, decimals int) string {
	if bytes == 0 {
		return "0 Bytes"
	}
	if bytes < 0 {
		return "-" + FormatBytes(-bytes, decimals)
	}
	if decimals < 0 {
		decimals = 0
	}

	i := 0
	div := int64(1)
	for i < len(sizes)-1 && bytes/div >= k {
		div *= k
		i++
	}

	v := float64(bytes) / float64(div)
	rounded, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', decimals, 64), 64)

	return strconv.FormatFloat(rounded, 'f', -1, 64) + " " + sizes[i]
}

func plural(n int64, unit string) string {
	if n > 1 {
		return fmt.Sprintf("%d %ss ago", n, unit)
	}
	return fmt.Sprintf("%d %s ago", n, unit)
}

// FormatDate describes t relative to now: "Just now", "N minute(s) ago",
// "N hour(s) ago", "N day(s) ago", or "Jan 2, 2006" past a week.
func FormatDate(t, now time.Time) string {
	seconds := int64(now.Sub(t) / time.Second)
	minutes := seconds / 60
	hours := minutes / 60
	days := hours / 24

	switch {
	case days > 7:
		return t.Format("Jan 2, 2006")
	case days > 0:
		return plural(days, "day")
	case hours > 0:
		return plural(hours, "hour")
	case minutes > 0:
		return plural(minutes, "minute")
	default:
		return "Just now"
	}
}
