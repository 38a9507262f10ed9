package parser

import (
	"strings"

	"github.com/ukaji3/timetable-go/pkg/timetable/models"
)

type dayCode struct {
	code string
	day  models.Weekday
}

// dayCodes lists canonical codes followed by their mirrored forms, which
// show up when vertical labels are extracted bottom-up (MON -> NOM).
var dayCodes = buildDayCodes()

func buildDayCodes() []dayCode {
	codes := make([]dayCode, 0, 2*len(models.Weekdays))
	for _, d := range models.Weekdays {
		codes = append(codes, dayCode{code: d.String(), day: d})
	}
	for _, d := range models.Weekdays {
		codes = append(codes, dayCode{code: reverse(d.String()), day: d})
	}
	return codes
}

func reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

// DetectWeekday reads a weekday marker from a cell. An exact code wins;
// otherwise the first code embedded in the text is used.
func DetectWeekday(text string) (models.Weekday, bool) {
	text = strings.ToUpper(strings.TrimSpace(text))
	if text == "" {
		return 0, false
	}
	for _, dc := range dayCodes {
		if text == dc.code {
			return dc.day, true
		}
	}
	for _, dc := range dayCodes {
		if strings.Contains(text, dc.code) {
			return dc.day, true
		}
	}
	return 0, false
}

// DayGroup is a run of data rows believed to belong to one weekday.
type DayGroup struct {
	// Rows holds table row indexes in order.
	Rows []int
	// Marker is the weekday read from column 0, zero when none was found.
	Marker models.Weekday
	// Day is the assigned weekday, zero when the group was dropped.
	Day models.Weekday
}

// SegmentDays splits the data rows under the header into day groups and
// assigns each a weekday. Rows without a time range are not data rows.
// A slot index of "1" after a non-empty group starts a new group.
func (p *Parser) SegmentDays(table models.Table, headerIdx int, cols ColumnMap) []DayGroup {
	var groups []DayGroup
	var current []int

	for rowIdx := headerIdx + 1; rowIdx < len(table.Rows); rowIdx++ {
		row := table.Rows[rowIdx]
		if len(row) == 0 || !IsTimeRange(row.CellText(cols.TimeColumn)) {
			continue
		}
		if cols.SlotIndexColumn >= 0 && strings.TrimSpace(row.CellText(cols.SlotIndexColumn)) == "1" && len(current) > 0 {
			groups = append(groups, DayGroup{Rows: current})
			current = nil
		}
		current = append(current, rowIdx)
	}
	if len(current) > 0 {
		groups = append(groups, DayGroup{Rows: current})
	}

	markerCol := 0
	if len(cols.Roles) > 0 && cols.Roles[0].Kind == models.ColumnSection {
		markerCol = -1
	}

	for i := range groups {
		if markerCol >= 0 {
			for _, rowIdx := range groups[i].Rows {
				if day, ok := DetectWeekday(table.Rows[rowIdx].CellText(markerCol)); ok {
					groups[i].Marker = day
					break
				}
			}
		}
		switch {
		case groups[i].Marker.Valid():
			groups[i].Day = groups[i].Marker
		case i < len(models.Weekdays):
			groups[i].Day = models.Weekdays[i]
		}
	}

	return groups
}
