// Package parser turns timetable tables into slot records.
package parser

import "fmt"

// defaultSections maps class-section column names to semester numbers.
var defaultSections = map[string]int{
	"IT11": 1, "IT12": 1, "IT13": 1,
	"IT21": 2, "IT22": 2, "IT23": 2,
	"IT31": 3, "IT32": 3, "IT33": 3,
	"IT41": 4, "IT42": 4, "IT43": 4,
	"IT51": 5, "IT52": 5, "IT53": 5,
	"IT61": 6, "IT62": 6, "IT63": 6,
}

// Rules holds the vocabulary and heuristics used to read a timetable.
type Rules struct {
	// Sections maps upper-case section column names to semesters.
	Sections map[string]int
	// SubSectionPrefix is the class prefix a lab batch code starts with.
	SubSectionPrefix string
	// TimeMarker labels the time column in the header row.
	TimeMarker string
	// SlotIndexMarker labels the per-day slot numbering column (TOLS).
	SlotIndexMarker string
	// MinHeaderMatches is how many section names make a row the header.
	MinHeaderMatches int
	// TimeProbeRows is how many rows below the header are sampled when
	// the time column has no label.
	TimeProbeRows int
	// TimeProbeColumns is how many leading columns are sampled.
	TimeProbeColumns int
	// FallbackTimeColumn is used when neither label nor probe finds the time column.
	FallbackTimeColumn int
	// AfternoonMaxHour shifts hours 1..AfternoonMaxHour by 12. Zero keeps hours literal.
	AfternoonMaxHour int
}

// DefaultRules returns the rules for the department timetable layout.
func DefaultRules() Rules {
	return Rules{
		Sections:           DefaultSections(),
		SubSectionPrefix:   "IT",
		TimeMarker:         "TIME",
		SlotIndexMarker:    "TOL",
		MinHeaderMatches:   2,
		TimeProbeRows:      3,
		TimeProbeColumns:   3,
		FallbackTimeColumn: 1,
	}
}

// DefaultSections returns a copy of the built-in section vocabulary.
func DefaultSections() map[string]int {
	sections := make(map[string]int, len(defaultSections))
	for name, semester := range defaultSections {
		sections[name] = semester
	}
	return sections
}

// Validate checks that the rules can drive a parse.
func (r Rules) Validate() error {
	if len(r.Sections) == 0 {
		return fmt.Errorf("section vocabulary is empty")
	}
	for name, semester := range r.Sections {
		if name == "" {
			return fmt.Errorf("section vocabulary has an empty name")
		}
		if semester < 1 {
			return fmt.Errorf("section %s: semester must be positive, got %d", name, semester)
		}
	}
	if r.SubSectionPrefix == "" {
		return fmt.Errorf("sub-section prefix is required")
	}
	if r.TimeMarker == "" || r.SlotIndexMarker == "" {
		return fmt.Errorf("time and slot-index markers are required")
	}
	if r.MinHeaderMatches < 1 {
		return fmt.Errorf("min header matches must be at least 1, got %d", r.MinHeaderMatches)
	}
	if r.TimeProbeRows < 0 || r.TimeProbeColumns < 0 || r.FallbackTimeColumn < 0 {
		return fmt.Errorf("time probe settings must not be negative")
	}
	if r.AfternoonMaxHour < 0 || r.AfternoonMaxHour > 11 {
		return fmt.Errorf("afternoon max hour must be within 0..11, got %d", r.AfternoonMaxHour)
	}
	return nil
}
