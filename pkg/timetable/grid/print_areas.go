package grid

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// printAreas reads the workbook's print areas as table candidates.
// Returns a map of sheet name to 0-based ranges.
func printAreas(f *excelize.File) map[string][]cellRange {
	result := make(map[string][]cellRange)

	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, "_xlnm.Print_Area") {
			continue
		}
		sheetName, areas := parsePrintAreaReference(dn.RefersTo)
		if sheetName == "" && dn.Scope != "" && !strings.EqualFold(dn.Scope, "Workbook") {
			sheetName = dn.Scope
		}
		if sheetName != "" && len(areas) > 0 {
			result[sheetName] = append(result[sheetName], areas...)
		}
	}

	return result
}

// parsePrintAreaReference parses 'Sheet Name'!$A$1:$D$10,Sheet!$F$1:$H$4.
func parsePrintAreaReference(ref string) (string, []cellRange) {
	var areas []cellRange
	var sheetName string

	for _, part := range strings.Split(ref, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		rangeStr := part
		if idx := strings.LastIndex(part, "!"); idx >= 0 {
			sheet := strings.Trim(part[:idx], "'")
			rangeStr = part[idx+1:]
			if sheetName == "" {
				sheetName = sheet
			}
		}

		if area, ok := parseRange(rangeStr); ok {
			areas = append(areas, area)
		}
	}

	return sheetName, areas
}

// parseRange parses $A$1:$D$10 into a 0-based range.
func parseRange(rangeStr string) (cellRange, bool) {
	parts := strings.Split(strings.ReplaceAll(rangeStr, "$", ""), ":")
	if len(parts) != 2 {
		return cellRange{}, false
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return cellRange{}, false
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return cellRange{}, false
	}
	if endRow < startRow {
		startRow, endRow = endRow, startRow
	}
	if endCol < startCol {
		startCol, endCol = endCol, startCol
	}

	return cellRange{r1: startRow - 1, c1: startCol - 1, r2: endRow - 1, c2: endCol - 1}, true
}
