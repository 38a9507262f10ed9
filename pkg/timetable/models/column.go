package models

// ColumnKind enumerates the semantic roles a table column can take.
type ColumnKind int

const (
	// ColumnIgnored marks a column that carries nothing the parser uses.
	ColumnIgnored ColumnKind = iota
	// ColumnTime marks the column holding the slot time range.
	ColumnTime
	// ColumnSlotIndex marks the column numbering slots within a day (TOLS).
	ColumnSlotIndex
	// ColumnSection marks a class-section column.
	ColumnSection
)

func (k ColumnKind) String() string {
	switch k {
	case ColumnIgnored:
		return "ignored"
	case ColumnTime:
		return "time"
	case ColumnSlotIndex:
		return "slot_index"
	case ColumnSection:
		return "section"
	default:
		return "unknown"
	}
}

// ColumnRole is the role assigned to one column index of a table.
// Section and Semester are set only when Kind is ColumnSection.
type ColumnRole struct {
	Kind     ColumnKind
	Section  string
	Semester int
}

// SectionRole builds a section column role.
func SectionRole(name string, semester int) ColumnRole {
	return ColumnRole{Kind: ColumnSection, Section: name, Semester: semester}
}
