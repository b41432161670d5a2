package common

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

var (
	// LoggingEnabled controls whether Logf produces output.
	LoggingEnabled = true

	// LogOutput receives everything written by Logf.
	LogOutput io.Writer = os.Stdout
)

// Logf prints a formatted message if logging is enabled.
func Logf(format string, args ...interface{}) {
	if !LoggingEnabled {
		return
	}
	fmt.Fprintf(LogOutput, format, args...)
}

// LogDuration prints "(elapsed)" padded to ten columns, then the message.
func LogDuration(start time.Time, format string, args ...interface{}) {
	elapsed := "(" + formatDuration(time.Since(start)) + ")"
	Logf("%-10s%s\n", elapsed, fmt.Sprintf(format, args...))
}

// formatDuration renders d with two decimals in s, ms or us.
func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Second:
		return fmt.Sprintf("%.2f s", d.Seconds())
	case d < 10*time.Microsecond:
		return fmt.Sprintf("%.2f us", float64(d)/float64(time.Microsecond))
	default:
		return fmt.Sprintf("%.2f ms", float64(d)/float64(time.Millisecond))
	}
}

// FormatRate renders a probability with up to 13 decimals and no trailing
// zeros, e.g. "0.000125".
func FormatRate(r float64) string {
	s := strconv.FormatFloat(r, 'f', 13, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
