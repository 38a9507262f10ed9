package models

// BookingEntry is one booking decoded from a section cell.
type BookingEntry struct {
	// SubjectCode is the upper-cased subject token (e.g., PP, MATH).
	SubjectCode string `json:"subject_code"`
	// SubSectionCode is the lab batch code (e.g., IT121); empty for lectures.
	SubSectionCode string `json:"sub_section_code,omitempty"`
	// InstructorInitials is the upper-cased faculty initials token.
	InstructorInitials string `json:"instructor_initials"`
	// Room is the bracketed room text, trimmed.
	Room string `json:"room"`
	// IsLab is true exactly when SubSectionCode is set.
	IsLab bool `json:"is_lab"`
}

// SlotRecord is one scheduled booking, the unit of parser output.
type SlotRecord struct {
	// Day is the weekday the slot falls on.
	Day Weekday `json:"day" yaml:"day"`
	// StartTime is the "HH:MM" start, always before EndTime.
	StartTime string `json:"start_time" yaml:"start_time"`
	// EndTime is the "HH:MM" end.
	EndTime string `json:"end_time" yaml:"end_time"`
	// SectionName is the class section column (e.g., IT61).
	SectionName string `json:"section_name" yaml:"section_name"`
	// Semester is the semester of the section.
	Semester int `json:"semester" yaml:"semester"`
	// SubjectCode is the upper-cased subject token.
	SubjectCode string `json:"subject_code" yaml:"subject_code"`
	// InstructorInitials is the upper-cased faculty initials token.
	InstructorInitials string `json:"instructor_initials" yaml:"instructor_initials"`
	// Room is the room text as printed, trimmed.
	Room string `json:"room" yaml:"room"`
	// SubSectionCode is the lab batch code; empty for lectures.
	SubSectionCode string `json:"sub_section_code,omitempty" yaml:"sub_section_code,omitempty"`
	// IsLab is true exactly when SubSectionCode is set.
	IsLab bool `json:"is_lab" yaml:"is_lab"`
}

// BatchName returns the batch a persistence layer should book the slot for:
// the sub-section for labs, "<section>-ALL" for lectures.
func (s SlotRecord) BatchName() string {
	if s.IsLab && s.SubSectionCode != "" {
		return s.SubSectionCode
	}
	return s.SectionName + "-ALL"
}

// ParseResult is the outcome of parsing one document.
type ParseResult struct {
	// Source is the document name (no path).
	Source string `json:"source" yaml:"source"`
	// Records contains slots in page, row, column, entry order.
	Records []SlotRecord `json:"records" yaml:"records"`
	// Diagnostics contains one message per recoverable anomaly.
	Diagnostics []string `json:"diagnostics" yaml:"diagnostics"`
}
