package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/timetable-go/pkg/timetable/models"
)

func TestDetectWeekdayMirroredCodes(t *testing.T) {
	for _, d := range models.Weekdays {
		code := d.String()
		mirrored := reverse(code)

		got, ok := DetectWeekday(code)
		require.True(t, ok, code)
		gotMirrored, ok := DetectWeekday(mirrored)
		require.True(t, ok, mirrored)

		assert.Equal(t, d, got)
		assert.Equal(t, got, gotMirrored, "%s and %s", code, mirrored)
	}
}

func TestDetectWeekday(t *testing.T) {
	tests := []struct {
		input string
		want  models.Weekday
		ok    bool
	}{
		{" mon ", models.Monday, true},
		{"Tuesday", models.Tuesday, true},
		{"YADSRUHT", models.Thursday, true},
		{"TAS", models.Saturday, true},
		{"DEW\n", models.Wednesday, true},
		{"", 0, false},
		{"10:30-11:30", 0, false},
		{"1", 0, false},
	}

	for _, tt := range tests {
		got, ok := DetectWeekday(tt.input)
		if ok != tt.ok || got != tt.want {
			t.Errorf("DetectWeekday(%q) = %v, %v, expected %v, %v", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

var slotHeader = []string{"DAY", "TIME", "TOLS", "IT11", "IT12"}

func TestSegmentDaysSlotIndexReset(t *testing.T) {
	p := newTestParser(t)
	table := tbl(
		slotHeader,
		[]string{"", "09:00-10:00", "1", "A-AAA[1]", ""},
		[]string{"", "10:00-11:00", "2", "B-BBB[1]", ""},
		[]string{"", "11:00-12:00", "3", "C-CCC[1]", ""},
		[]string{"", "09:00-10:00", "1", "D-DDD[1]", ""},
		[]string{"", "10:00-11:00", "2", "E-EEE[1]", ""},
		[]string{"", "11:00-12:00", "3", "F-FFF[1]", ""},
	)
	cols := p.MapColumns(table, 0)

	groups := p.SegmentDays(table, 0, cols)

	require.Len(t, groups, 2)
	assert.Equal(t, []int{1, 2, 3}, groups[0].Rows)
	assert.Equal(t, models.Monday, groups[0].Day)
	assert.Equal(t, []int{4, 5, 6}, groups[1].Rows)
	assert.Equal(t, models.Tuesday, groups[1].Day)

	records, diags := p.ParsePage(1, models.Page{Tables: []models.Table{table}})
	assert.Empty(t, diags)
	require.Len(t, records, 6)
	for i, rec := range records {
		want := models.Monday
		if i >= 3 {
			want = models.Tuesday
		}
		assert.Equal(t, want, rec.Day, "record %d", i)
	}
}

func TestSegmentDaysMarkerAnywhereInGroup(t *testing.T) {
	p := newTestParser(t)
	// Vertical labels land on a middle row of the day, mirrored.
	table := tbl(
		slotHeader,
		[]string{"", "09:00-10:00", "1", "A-AAA[1]", ""},
		[]string{"EUT", "10:00-11:00", "2", "B-BBB[1]", ""},
		[]string{"", "09:00-10:00", "1", "C-CCC[1]", ""},
		[]string{"", "10:00-11:00", "2", "D-DDD[1]", ""},
		[]string{"", "", "", "", ""},
		[]string{"", "09:00-10:00", "1", "E-EEE[1]", ""},
		[]string{"IRF", "10:00-11:00", "2", "F-FFF[1]", ""},
	)
	cols := p.MapColumns(table, 0)

	groups := p.SegmentDays(table, 0, cols)

	require.Len(t, groups, 3)
	assert.Equal(t, models.Tuesday, groups[0].Marker)
	assert.Equal(t, models.Tuesday, groups[0].Day)
	// Unmarked groups take the weekday at their position.
	assert.False(t, groups[1].Marker.Valid())
	assert.Equal(t, models.Tuesday, groups[1].Day)
	assert.Equal(t, models.Friday, groups[2].Day)
	assert.Equal(t, []int{6, 7}, groups[2].Rows)
}

func TestSegmentDaysWithoutSlotIndexColumn(t *testing.T) {
	p := newTestParser(t)
	table := tbl(
		[]string{"", "TIME", "IT11", "IT12"},
		[]string{"WED", "09:00-10:00", "A-AAA[1]", ""},
		[]string{"", "10:00-11:00", "B-BBB[1]", ""},
		[]string{"", "11:00-12:00", "C-CCC[1]", ""},
	)
	cols := p.MapColumns(table, 0)

	groups := p.SegmentDays(table, 0, cols)

	require.Len(t, groups, 1)
	assert.Equal(t, models.Wednesday, groups[0].Day)
	assert.Len(t, groups[0].Rows, 3)
}

func TestSegmentDaysDropsUnmarkedSeventhGroup(t *testing.T) {
	p := newTestParser(t)
	rows := [][]string{slotHeader}
	for i := 0; i < 7; i++ {
		rows = append(rows, []string{"", "09:00-10:00", "1", "A-AAA[1]", ""})
	}
	table := tbl(rows...)

	records, diags := p.ParsePage(3, models.Page{Tables: []models.Table{table}})

	assert.Len(t, records, 6)
	assert.Equal(t, []string{
		"Page 3: Day group 7 (rows 8-8) has no day marker and no weekday left; dropped",
	}, diags)
	assert.Equal(t, models.Saturday, records[5].Day)
}

func TestSegmentDaysKeepsMarkedSeventhGroup(t *testing.T) {
	p := newTestParser(t)
	rows := [][]string{slotHeader}
	for i := 0; i < 6; i++ {
		rows = append(rows, []string{"", "09:00-10:00", "1", "A-AAA[1]", ""})
	}
	rows = append(rows, []string{"SAT", "09:00-10:00", "1", "Z-ZZZ[1]", ""})
	table := tbl(rows...)
	cols := p.MapColumns(table, 0)

	groups := p.SegmentDays(table, 0, cols)

	require.Len(t, groups, 7)
	assert.Equal(t, models.Saturday, groups[6].Day)
}

func TestSegmentDaysIgnoresSectionColumnZero(t *testing.T) {
	p := newTestParser(t)
	table := tbl(
		[]string{"IT11", "TIME", "IT12"},
		[]string{"SAT-AAA[1]", "09:00-10:00", ""},
	)
	cols := p.MapColumns(table, 0)

	groups := p.SegmentDays(table, 0, cols)

	require.Len(t, groups, 1)
	assert.False(t, groups[0].Marker.Valid())
	assert.Equal(t, models.Monday, groups[0].Day)
}
