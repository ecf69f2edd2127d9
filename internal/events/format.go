package events

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/PratikDhanave/webhook-event-logger/internal/models"
)

const (
	unknownTime   = "Unknown time"
	displayLayout = "2006-01-02 15:04:05 MST"
	separator     = "--------------------------------------------------"

	// maxEpochMillis bounds epoch timestamps to the range a JavaScript Date holds.
	maxEpochMillis = 8.64e15
)

// FormatPrice converts minor currency units to a two-decimal string.
// Anything that is not a JSON number renders as "0.00".
func FormatPrice(v any) string {
	n, ok := models.AsNumber(v)
	if !ok {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", n/100)
}

// timestampLayouts are tried in order for string timestamps.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp accepts ISO-8601 strings or epoch milliseconds.
func ParseTimestamp(v any) (time.Time, bool) {
	if n, ok := models.AsNumber(v); ok {
		if math.IsNaN(n) || math.Abs(n) > maxEpochMillis {
			return time.Time{}, false
		}
		return time.UnixMilli(int64(n)).UTC(), true
	}
	s, ok := v.(string)
	if !ok {
		return time.Time{}, false
	}
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// codeLabel maps an integral status code through table. Unknown or
// non-numeric codes render as "<prefix> <code>".
func codeLabel(table map[int]string, prefix string, code any) string {
	if n, ok := models.AsNumber(code); ok && n == float64(int(n)) {
		if label, ok := table[int(n)]; ok {
			return label
		}
	}
	text := models.Text(code)
	if text == "" {
		text = "unknown"
	}
	return prefix + " " + text
}
