// Package grid adapts source documents into timetable grids.
package grid

import (
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/timetable-go/pkg/timetable/models"
)

// ReadExcel opens a workbook and turns every sheet into a page. Candidate
// tables are the sheet's print areas followed by detected blocks.
func ReadExcel(path string, params TableParams) (*models.Grid, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readWorkbook(f, filepath.Base(path), params)
}

func readWorkbook(f *excelize.File, source string, params TableParams) (*models.Grid, error) {
	sheetList := f.GetSheetList()
	if len(sheetList) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	areas := printAreas(f)
	grid := &models.Grid{Source: source}
	for i, sheetName := range sheetList {
		page := models.Page{Number: i + 1, Name: sheetName}

		rows, err := f.GetRows(sheetName)
		if err != nil {
			// An unreadable sheet becomes a page without tables.
			grid.Pages = append(grid.Pages, page)
			continue
		}

		for _, area := range areas[sheetName] {
			page.Tables = append(page.Tables, sliceTable(rows, area))
		}
		for _, rng := range DetectTables(rows, params) {
			page.Tables = append(page.Tables, sliceTable(rows, rng))
		}
		grid.Pages = append(grid.Pages, page)
	}

	return grid, nil
}
