package parser

import (
	"regexp"
	"strings"

	"github.com/ukaji3/timetable-go/pkg/timetable/models"
)

// compileCellPattern builds SUBJ[-<prefix>n...]-INITIALS[ROOM].
// Groups: 1 subject, 2 sub-section (optional), 3 initials, 4 room.
func compileCellPattern(prefix string) *regexp.Regexp {
	return regexp.MustCompile(
		`([A-Za-z]+)` +
			`(?:-((?i:` + regexp.QuoteMeta(prefix) + `)\d[A-Za-z0-9]*))?` +
			`-([A-Za-z0-9]+)` +
			`\[([^\]]+)\]`)
}

var defaultCellPattern = compileCellPattern("IT")

// ParseCell decodes every booking in a section cell using the default
// sub-section prefix.
func ParseCell(text string) []models.BookingEntry {
	return parseCell(defaultCellPattern, text)
}

func parseCell(pattern *regexp.Regexp, text string) []models.BookingEntry {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var entries []models.BookingEntry
	for _, m := range pattern.FindAllStringSubmatch(text, -1) {
		room := strings.TrimSpace(m[4])
		if room == "" {
			continue
		}
		subSection := strings.ToUpper(m[2])
		entries = append(entries, models.BookingEntry{
			SubjectCode:        strings.ToUpper(m[1]),
			SubSectionCode:     subSection,
			InstructorInitials: strings.ToUpper(m[3]),
			Room:               room,
			IsLab:              subSection != "",
		})
	}
	return entries
}
