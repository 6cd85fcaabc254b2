package app

import (
	"fmt"
	"math"
	"time"
)

var iecPrefixes = [...]string{"", "Ki", "Mi", "Gi", "Ti", "Pi", "Ei", "Zi", "Yi"}

// SizeToIEC renders a byte count with binary prefixes and one decimal
// place, e.g. "1.5GiB".
func SizeToIEC(n int64) string {
	if n <= 0 {
		return "0.0B"
	}
	magnitude := int(math.Log(float64(n)) / math.Log(1024))
	if magnitude > 7 {
		magnitude = 7
	}
	val := float64(n) / math.Pow(1024, float64(magnitude))
	return fmt.Sprintf("%3.1f%sB", val, iecPrefixes[magnitude])
}

// prettyTimeDelta compacts a duration to <n>d<n>h<n>m<n>s, dropping
// leading zero units, or whole milliseconds under one second.
func prettyTimeDelta(d time.Duration) string {
	seconds := int64(d.Seconds())
	days := seconds / 86400
	seconds -= days * 86400
	hours := seconds / 3600
	seconds -= hours * 3600
	minutes := seconds / 60
	seconds -= minutes * 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd%dh%dm%ds", days, hours, minutes, seconds)
	case hours > 0:
		return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
	case minutes > 0:
		return fmt.Sprintf("%dm%ds", minutes, seconds)
	case seconds > 0:
		return fmt.Sprintf("%ds", seconds)
	default:
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
}
