package parser

import (
	"fmt"
	"regexp"
	"strconv"
)

// timePattern matches ranges like "10:30-11:30", "02.00 – 03.00".
var timePattern = regexp.MustCompile(`(\d{1,2})[.:](\d{2})\s*[-–—]\s*(\d{1,2})[.:](\d{2})`)

// TimeRange is a normalized "HH:MM" start/end pair.
type TimeRange struct {
	Start string
	End   string
}

// ParseTimeRange finds a time range in s and zero-pads its hours.
// Minutes are passed through unchanged. It reports false when s holds no range.
func ParseTimeRange(s string) (TimeRange, bool) {
	m := timePattern.FindStringSubmatch(s)
	if m == nil {
		return TimeRange{}, false
	}
	return TimeRange{
		Start: formatClock(m[1], m[2]),
		End:   formatClock(m[3], m[4]),
	}, true
}

// IsTimeRange reports whether s contains a time range.
func IsTimeRange(s string) bool {
	return timePattern.MatchString(s)
}

// Increasing reports whether Start is strictly before End.
func (t TimeRange) Increasing() bool {
	return t.Start < t.End
}

// ShiftAfternoon moves hours 1..maxHour forward by 12. A maxHour of zero
// returns t unchanged.
func (t TimeRange) ShiftAfternoon(maxHour int) TimeRange {
	if maxHour <= 0 {
		return t
	}
	return TimeRange{
		Start: shiftClock(t.Start, maxHour),
		End:   shiftClock(t.End, maxHour),
	}
}

func (t TimeRange) String() string {
	return t.Start + "-" + t.End
}

func formatClock(hour, minute string) string {
	h, _ := strconv.Atoi(hour)
	return fmt.Sprintf("%02d:%s", h, minute)
}

func shiftClock(clock string, maxHour int) string {
	h, err := strconv.Atoi(clock[:2])
	if err != nil || h < 1 || h > maxHour {
		return clock
	}
	return fmt.Sprintf("%02d%s", h+12, clock[2:])
}
