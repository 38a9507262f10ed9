package grid

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/timetable-go/pkg/timetable/models"
)

// TableParams holds parameters for table detection.
type TableParams struct {
	// DensityMin is the minimum share of non-empty cells in a block's bounding box.
	DensityMin float64
	// MinNonemptyCells is the minimum number of non-empty cells in a block.
	MinNonemptyCells int
	// MaxBlankRows is the longest run of blank rows allowed inside one table.
	// Timetables use single blank rows between days, so blocks are only split
	// on longer runs.
	MaxBlankRows int
}

// DefaultTableParams returns default table detection parameters.
func DefaultTableParams() TableParams {
	return TableParams{
		DensityMin:       0.04,
		MinNonemptyCells: 3,
		MaxBlankRows:     2,
	}
}

// cellRange is an inclusive, 0-based block of cells.
type cellRange struct {
	r1, c1, r2, c2 int
}

func (r cellRange) String() string {
	start, _ := excelize.CoordinatesToCellName(r.c1+1, r.r1+1)
	end, _ := excelize.CoordinatesToCellName(r.c2+1, r.r2+1)
	return fmt.Sprintf("%s:%s", start, end)
}

// DetectTables finds table-like blocks in a sheet's rows. Blocks are
// separated by more than MaxBlankRows consecutive blank rows and kept when
// dense enough.
func DetectTables(rows [][]string, params TableParams) []cellRange {
	var ranges []cellRange
	start, blank := -1, 0

	flush := func(end int) {
		if start < 0 {
			return
		}
		if rng, ok := detectBlock(rows, start, end, params); ok {
			ranges = append(ranges, rng)
		}
		start = -1
	}

	for rowIdx, row := range rows {
		if isBlankRow(row) {
			blank++
			if blank > params.MaxBlankRows {
				flush(rowIdx - blank)
			}
			continue
		}
		blank = 0
		if start < 0 {
			start = rowIdx
		}
	}
	flush(len(rows) - 1)

	return ranges
}

func detectBlock(rows [][]string, first, last int, params TableParams) (cellRange, bool) {
	minRow, maxRow, minCol, maxCol := findDataBounds(rows, first, last)
	if minRow < 0 {
		return cellRange{}, false
	}

	totalCells := (maxRow - minRow + 1) * (maxCol - minCol + 1)
	nonEmptyCells := countNonEmptyCells(rows, minRow, maxRow, minCol, maxCol)
	if nonEmptyCells < params.MinNonemptyCells {
		return cellRange{}, false
	}
	if float64(nonEmptyCells)/float64(totalCells) < params.DensityMin {
		return cellRange{}, false
	}
	return cellRange{r1: minRow, c1: minCol, r2: maxRow, c2: maxCol}, true
}

// findDataBounds finds the bounding box of non-empty cells within rows first..last.
func findDataBounds(rows [][]string, first, last int) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx := first; rowIdx <= last && rowIdx < len(rows); rowIdx++ {
		for colIdx, cell := range rows[rowIdx] {
			if cell == "" {
				continue
			}
			if minRow < 0 {
				minRow = rowIdx
			}
			maxRow = rowIdx
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}

// countNonEmptyCells counts non-empty cells within bounds.
func countNonEmptyCells(rows [][]string, minRow, maxRow, minCol, maxCol int) int {
	count := 0
	for rowIdx := minRow; rowIdx <= maxRow && rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		for colIdx := minCol; colIdx <= maxCol && colIdx < len(row); colIdx++ {
			if row[colIdx] != "" {
				count++
			}
		}
	}
	return count
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}

// sliceTable copies the cells of rng into a table. Empty cells become nil.
func sliceTable(rows [][]string, rng cellRange) models.Table {
	table := models.Table{Range: rng.String()}
	for rowIdx := rng.r1; rowIdx <= rng.r2; rowIdx++ {
		row := make(models.Row, rng.c2-rng.c1+1)
		if rowIdx < len(rows) {
			src := rows[rowIdx]
			for colIdx := rng.c1; colIdx <= rng.c2 && colIdx < len(src); colIdx++ {
				if src[colIdx] != "" {
					row[colIdx-rng.c1] = models.Text(src[colIdx])
				}
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}
