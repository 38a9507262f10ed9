package parser

import (
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/ukaji3/timetable-go/pkg/timetable/models"
)

// Parser reads timetable pages with a fixed set of rules. It holds no
// per-document state and is safe for concurrent use.
type Parser struct {
	rules           Rules
	timeMarker      string
	slotIndexMarker string
	cellPattern     *regexp.Regexp
	logger          *zap.Logger
}

// New builds a Parser. A nil logger disables logging.
func New(rules Rules, logger *zap.Logger) (*Parser, error) {
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	sections := make(map[string]int, len(rules.Sections))
	for name, semester := range rules.Sections {
		sections[strings.ToUpper(strings.TrimSpace(name))] = semester
	}
	rules.Sections = sections

	return &Parser{
		rules:           rules,
		timeMarker:      strings.ToUpper(rules.TimeMarker),
		slotIndexMarker: strings.ToUpper(rules.SlotIndexMarker),
		cellPattern:     compileCellPattern(rules.SubSectionPrefix),
		logger:          logger,
	}, nil
}

// ParseCell decodes every booking in a section cell.
func (p *Parser) ParseCell(text string) []models.BookingEntry {
	return parseCell(p.cellPattern, text)
}

// Parse runs every page of grid in order.
func (p *Parser) Parse(grid *models.Grid) *models.ParseResult {
	result := &models.ParseResult{
		Source:      grid.Source,
		Records:     []models.SlotRecord{},
		Diagnostics: []string{},
	}
	if len(grid.Pages) == 0 {
		result.Diagnostics = append(result.Diagnostics, "Document has no pages")
		return result
	}

	for i, page := range grid.Pages {
		number := page.Number
		if number == 0 {
			number = i + 1
		}
		records, diags := p.ParsePage(number, page)
		result.Records = append(result.Records, records...)
		result.Diagnostics = append(result.Diagnostics, diags...)
	}

	p.logger.Info("parsed timetable",
		zap.String("source", grid.Source),
		zap.Int("pages", len(grid.Pages)),
		zap.Int("slots", len(result.Records)),
		zap.Int("diagnostics", len(result.Diagnostics)))
	return result
}

// ParsePage extracts the slots of one page. Anomalies that skip the page or
// part of it are returned as diagnostics.
func (p *Parser) ParsePage(number int, page models.Page) ([]models.SlotRecord, []string) {
	var diags []string
	warn := func(format string, args ...any) {
		diags = append(diags, fmt.Sprintf("Page %d: ", number)+fmt.Sprintf(format, args...))
	}

	table, ok := SelectTable(page.Tables)
	if !ok {
		warn("No tables found")
		return nil, diags
	}
	if len(table.Rows) < 2 {
		warn("Table too small")
		return nil, diags
	}

	headerIdx, ok := p.LocateHeader(table)
	if !ok {
		warn("Could not find header row with class names")
		return nil, diags
	}

	cols := p.MapColumns(table, headerIdx)
	log := p.logger.With(zap.Int("page", number))
	log.Debug("mapped columns",
		zap.Int("header_row", headerIdx),
		zap.Int("class_columns", len(cols.SectionColumns())),
		zap.Int("time_column", cols.TimeColumn),
		zap.String("time_source", cols.TimeSource),
		zap.Int("slot_index_column", cols.SlotIndexColumn))

	groups := p.SegmentDays(table, headerIdx, cols)
	for i, g := range groups {
		if !g.Day.Valid() {
			warn("Day group %d (rows %d-%d) has no day marker and no weekday left; dropped",
				i+1, g.Rows[0]+1, g.Rows[len(g.Rows)-1]+1)
			continue
		}
		log.Debug("day group",
			zap.Int("group", i+1),
			zap.Stringer("day", g.Day),
			zap.Bool("marked", g.Marker.Valid()),
			zap.Int("rows", len(g.Rows)))
	}

	records, rowDiags := p.assemble(table, cols, groups)
	for _, d := range rowDiags {
		warn("%s", d)
	}
	return records, diags
}

// assemble emits one record per booking entry for every data row of an
// assigned day group and every section column.
func (p *Parser) assemble(table models.Table, cols ColumnMap, groups []DayGroup) ([]models.SlotRecord, []string) {
	var records []models.SlotRecord
	var diags []string
	sectionCols := cols.SectionColumns()

	for _, g := range groups {
		if !g.Day.Valid() {
			continue
		}
		for _, rowIdx := range g.Rows {
			row := table.Rows[rowIdx]
			tr, ok := ParseTimeRange(row.CellText(cols.TimeColumn))
			if !ok {
				continue
			}
			tr = tr.ShiftAfternoon(p.rules.AfternoonMaxHour)
			if !tr.Increasing() {
				diags = append(diags, fmt.Sprintf("Row %d: time range %s does not increase; row skipped", rowIdx+1, tr))
				continue
			}

			for _, col := range sectionCols {
				role := cols.Roles[col]
				for _, entry := range p.ParseCell(row.CellText(col)) {
					records = append(records, models.SlotRecord{
						Day:                g.Day,
						StartTime:          tr.Start,
						EndTime:            tr.End,
						SectionName:        role.Section,
						Semester:           role.Semester,
						SubjectCode:        entry.SubjectCode,
						InstructorInitials: entry.InstructorInitials,
						Room:               entry.Room,
						SubSectionCode:     entry.SubSectionCode,
						IsLab:              entry.IsLab,
					})
				}
			}
		}
	}
	return records, diags
}
