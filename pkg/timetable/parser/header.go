package parser

import (
	"strings"

	"github.com/ukaji3/timetable-go/pkg/timetable/models"
)

// ColumnMap is the role assignment for one table.
type ColumnMap struct {
	// Roles holds one role per header column.
	Roles []models.ColumnRole
	// TimeColumn is the column read for time ranges.
	TimeColumn int
	// SlotIndexColumn is the TOLS column, or -1 when absent.
	SlotIndexColumn int
	// TimeSource records how TimeColumn was chosen: "header", "probe" or "fallback".
	TimeSource string
}

// SectionColumns returns section column indexes in column order.
func (m ColumnMap) SectionColumns() []int {
	var cols []int
	for col, role := range m.Roles {
		if role.Kind == models.ColumnSection {
			cols = append(cols, col)
		}
	}
	return cols
}

func normalizeCell(c *string) string {
	if c == nil {
		return ""
	}
	return strings.ToUpper(strings.TrimSpace(*c))
}

// LocateHeader returns the index of the first row naming the section
// columns. A row qualifies with MinHeaderMatches section names, or with one
// section name next to a time label.
func (p *Parser) LocateHeader(table models.Table) (int, bool) {
	for idx, row := range table.Rows {
		matches := 0
		hasTime := false
		for _, c := range row {
			text := normalizeCell(c)
			if _, ok := p.rules.Sections[text]; ok {
				matches++
			} else if text != "" && strings.Contains(text, p.timeMarker) {
				hasTime = true
			}
		}
		if matches >= p.rules.MinHeaderMatches || (matches >= 1 && hasTime) {
			return idx, true
		}
	}
	return -1, false
}

// MapColumns assigns a role to every header column and resolves the time column.
func (p *Parser) MapColumns(table models.Table, headerIdx int) ColumnMap {
	header := table.Rows[headerIdx]
	m := ColumnMap{
		Roles:           make([]models.ColumnRole, len(header)),
		TimeColumn:      -1,
		SlotIndexColumn: -1,
	}

	for col, c := range header {
		text := normalizeCell(c)
		if semester, ok := p.rules.Sections[text]; ok {
			m.Roles[col] = models.SectionRole(text, semester)
			continue
		}
		switch {
		case text == "":
		case strings.Contains(text, p.timeMarker):
			// The last time label wins; titles like "TIMETABLE" precede the real one.
			if m.TimeColumn >= 0 {
				m.Roles[m.TimeColumn] = models.ColumnRole{Kind: models.ColumnIgnored}
			}
			m.Roles[col] = models.ColumnRole{Kind: models.ColumnTime}
			m.TimeColumn = col
			m.TimeSource = "header"
		case strings.Contains(text, p.slotIndexMarker) && m.SlotIndexColumn < 0:
			m.Roles[col] = models.ColumnRole{Kind: models.ColumnSlotIndex}
			m.SlotIndexColumn = col
		}
	}

	if m.TimeColumn < 0 {
		if col, ok := p.probeTimeColumn(table, headerIdx, m.Roles); ok {
			m.TimeColumn = col
			m.TimeSource = "probe"
		} else {
			m.TimeColumn = p.rules.FallbackTimeColumn
			m.TimeSource = "fallback"
		}
		if m.TimeColumn < len(m.Roles) && m.Roles[m.TimeColumn].Kind == models.ColumnIgnored {
			m.Roles[m.TimeColumn] = models.ColumnRole{Kind: models.ColumnTime}
		}
	}

	return m
}

// probeTimeColumn samples the rows under the header for a column holding
// time ranges. Section columns are never candidates.
func (p *Parser) probeTimeColumn(table models.Table, headerIdx int, roles []models.ColumnRole) (int, bool) {
	cols := p.rules.TimeProbeColumns
	if cols > len(roles) {
		cols = len(roles)
	}
	last := headerIdx + p.rules.TimeProbeRows
	if last >= len(table.Rows) {
		last = len(table.Rows) - 1
	}

	for col := 0; col < cols; col++ {
		if roles[col].Kind == models.ColumnSection {
			continue
		}
		for rowIdx := headerIdx + 1; rowIdx <= last; rowIdx++ {
			if IsTimeRange(table.Rows[rowIdx].CellText(col)) {
				return col, true
			}
		}
	}
	return 0, false
}
