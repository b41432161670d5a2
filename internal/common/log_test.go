package common

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		// Microseconds (< 0.01 ms)
		{"5 microseconds", 5 * time.Microsecond, "5.00 us"},
		{"9.5 microseconds", 9500 * time.Nanosecond, "9.50 us"},

		// Sub-millisecond
		{"0.01 ms", 10 * time.Microsecond, "0.01 ms"},
		{"0.1 ms", 100 * time.Microsecond, "0.10 ms"},
		{"0.5 ms", 500 * time.Microsecond, "0.50 ms"},

		// 1-10 ms
		{"1 ms", 1 * time.Millisecond, "1.00 ms"},
		{"1.234 ms", 1234 * time.Microsecond, "1.23 ms"},
		{"5.678 ms", 5678 * time.Microsecond, "5.68 ms"},
		{"9.999 ms", 9999 * time.Microsecond, "10.00 ms"},

		// 10-100 ms
		{"12.34 ms", 12340 * time.Microsecond, "12.34 ms"},
		{"50 ms", 50 * time.Millisecond, "50.00 ms"},
		{"99.9 ms", 99900 * time.Microsecond, "99.90 ms"},

		// 100-1000 ms
		{"123 ms", 123 * time.Millisecond, "123.00 ms"},
		{"456 ms", 456 * time.Millisecond, "456.00 ms"},
		{"999 ms", 999 * time.Millisecond, "999.00 ms"},

		// Seconds
		{"1.234 s", 1234 * time.Millisecond, "1.23 s"},
		{"5.678 s", 5678 * time.Millisecond, "5.68 s"},
		{"12.34 s", 12340 * time.Millisecond, "12.34 s"},
		{"123.4 s", 123400 * time.Millisecond, "123.40 s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := formatDuration(tt.duration)
			require.Equal(t, tt.expected, result, "duration %v", tt.duration)
		})
	}
}

func TestFormatRate(t *testing.T) {
	tests := []struct {
		rate     float64
		expected string
	}{
		{0, "0"},
		{1, "1"},
		{0.01, "0.01"},
		{0.000125, "0.000125"},
		{0.0001175, "0.0001175"},
		{0.00013125, "0.00013125"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.expected, FormatRate(tt.rate), "rate %v", tt.rate)
	}
}

func TestLogfRespectsToggle(t *testing.T) {
	var buf bytes.Buffer
	prevOut, prevEnabled := LogOutput, LoggingEnabled
	defer func() { LogOutput, LoggingEnabled = prevOut, prevEnabled }()

	LogOutput = &buf
	LoggingEnabled = true
	Logf("inserted %d keys\n", 3)
	require.Equal(t, "inserted 3 keys\n", buf.String())

	buf.Reset()
	LoggingEnabled = false
	Logf("dropped\n")
	require.Empty(t, buf.String())
}

func TestLogDuration(t *testing.T) {
	var buf bytes.Buffer
	prevOut, prevEnabled := LogOutput, LoggingEnabled
	defer func() { LogOutput, LoggingEnabled = prevOut, prevEnabled }()

	LogOutput = &buf
	LoggingEnabled = true
	LogDuration(time.Now(), "filled %s", "filter")
	require.Regexp(t, `^\([0-9.]+ (us|ms|s)\)\s*filled filter\n$`, buf.String())
}

func TestFormatDurationBoundaries(t *testing.T) {
	require.Equal(t, "9.99 us", formatDuration(9990*time.Nanosecond))
	require.Equal(t, "0.01 ms", formatDuration(10*time.Microsecond))
	require.Equal(t, "1000.00 ms", formatDuration(time.Second-time.Nanosecond))
	require.Equal(t, "1.00 s", formatDuration(time.Second))
}

func TestLogDurationPadsElapsed(t *testing.T) {
	var buf bytes.Buffer
	prevOut, prevEnabled := LogOutput, LoggingEnabled
	defer func() { LogOutput, LoggingEnabled = prevOut, prevEnabled }()

	LogOutput = &buf
	LoggingEnabled = true
	LogDuration(time.Now().Add(-2*time.Second), "done")
	require.Regexp(t, `^\(2\.[0-9]{2} s\)  done\n$`, buf.String())

	buf.Reset()
	LoggingEnabled = false
	LogDuration(time.Now(), "hidden")
	require.Empty(t, buf.String())
}
