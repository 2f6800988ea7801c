package domain

import (
	"strings"
	"time"
)

// The ODS feed writes timestamps as text. The compact form is the common
// case; the dashed form shows up in rows migrated from the previous core.
var legacyTimeLayouts = []string{
	"20060102150405",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// DisplayTimeLayout is the canonical rendering for console output.
const DisplayTimeLayout = "2006-01-02 15:04:05"

// ParseLegacyTime parses a legacy text timestamp column. The second return
// is false when the field is empty or matches none of the known layouts.
func ParseLegacyTime(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range legacyTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatLegacyTime re-renders a legacy timestamp in the display layout.
// Unparseable values come back verbatim so a malformed historical row still
// shows something rather than erroring.
func FormatLegacyTime(raw string) string {
	t, ok := ParseLegacyTime(raw)
	if !ok {
		return raw
	}
	return t.Format(DisplayTimeLayout)
}

// ElapsedSeconds returns the whole seconds between two legacy timestamps.
// Nil when either side is absent or unparseable.
func ElapsedSeconds(startRaw, endRaw string) *int64 {
	start, ok := ParseLegacyTime(startRaw)
	if !ok {
		return nil
	}
	end, ok := ParseLegacyTime(endRaw)
	if !ok {
		return nil
	}
	secs := int64(end.Sub(start) / time.Second)
	return &secs
}
