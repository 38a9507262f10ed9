package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/timetable-go/pkg/timetable/models"
)

func TestParseCellLecture(t *testing.T) {
	entries := ParseCell("PP-DLL[201A]")
	require.Len(t, entries, 1)
	assert.Equal(t, models.BookingEntry{
		SubjectCode:        "PP",
		InstructorInitials: "DLL",
		Room:               "201A",
		IsLab:              false,
	}, entries[0])
}

func TestParseCellLab(t *testing.T) {
	entries := ParseCell("IIS-IT121-AYL[207]")
	require.Len(t, entries, 1)
	assert.Equal(t, models.BookingEntry{
		SubjectCode:        "IIS",
		SubSectionCode:     "IT121",
		InstructorInitials: "AYL",
		Room:               "207",
		IsLab:              true,
	}, entries[0])
}

func TestParseCellStackedLabs(t *testing.T) {
	entries := ParseCell("IIS-IT121-AYL[207]\nIIS-IT122-KKP[208]\nMATH-IT11T1-SPM[201A]")
	require.Len(t, entries, 3)
	assert.Equal(t, "IT121", entries[0].SubSectionCode)
	assert.Equal(t, "KKP", entries[1].InstructorInitials)
	assert.Equal(t, "208", entries[1].Room)
	assert.Equal(t, "IT11T1", entries[2].SubSectionCode)
	assert.Equal(t, "MATH", entries[2].SubjectCode)
	for _, e := range entries {
		assert.True(t, e.IsLab)
	}
}

func TestParseCellNormalizesCase(t *testing.T) {
	entries := ParseCell("pp-dll[ 201a ]")
	require.Len(t, entries, 1)
	assert.Equal(t, "PP", entries[0].SubjectCode)
	assert.Equal(t, "DLL", entries[0].InstructorInitials)
	assert.Equal(t, "201a", entries[0].Room)

	entries = ParseCell("iis-it121-ayl[Lab 2]")
	require.Len(t, entries, 1)
	assert.Equal(t, "IT121", entries[0].SubSectionCode)
	assert.Equal(t, "Lab 2", entries[0].Room)
}

func TestParseCellNoEntries(t *testing.T) {
	for _, text := range []string{"", "   ", "LUNCH", "---", "PP DLL 201A", "PP-DLL[ ]"} {
		assert.Empty(t, ParseCell(text), "cell %q", text)
	}
}

func TestParserCustomSubSectionPrefix(t *testing.T) {
	rules := DefaultRules()
	rules.SubSectionPrefix = "CE"
	p := newTestParserWith(t, rules)

	entries := p.ParseCell("DBMS-CE121-RKP[305]")
	require.Len(t, entries, 1)
	assert.Equal(t, "CE121", entries[0].SubSectionCode)
	assert.True(t, entries[0].IsLab)

	// With another prefix an IT batch code fits neither the sub-section nor the initials slot.
	assert.Empty(t, p.ParseCell("DBMS-IT121-RKP[305]"))
}
