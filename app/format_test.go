package app

import (
	"testing"
	"time"
)

func TestPrettyTimeDelta(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"zero", 0, "0ms"},
		{"milliseconds", 450 * time.Millisecond, "450ms"},
		{"seconds only", 3 * time.Second, "3s"},
		{"minutes and seconds", 2*time.Minute + 5*time.Second, "2m5s"},
		{"hours", 3*time.Hour + 4*time.Minute + 5*time.Second, "3h4m5s"},
		{"days", 25*time.Hour + 61*time.Second, "1d1h1m1s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := prettyTimeDelta(tt.d)
			if got != tt.want {
				t.Errorf("prettyTimeDelta(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}

func TestSizeToIEC(t *testing.T) {
	tests := []struct {
		name string
		n    int64
		want string
	}{
		{"zero", 0, "0.0B"},
		{"negative", -5, "0.0B"},
		{"bytes", 1023, "1023.0B"},
		{"kibibytes", 1536, "1.5KiB"},
		{"mebibytes", 5 * 1024 * 1024, "5.0MiB"},
		{"gibibytes", 3 * 1024 * 1024 * 1024, "3.0GiB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SizeToIEC(tt.n)
			if got != tt.want {
				t.Errorf("SizeToIEC(%d) = %q, want %q", tt.n, got, tt.want)
			}
		})
	}
}
