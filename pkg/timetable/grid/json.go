package grid

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/ukaji3/timetable-go/pkg/timetable/models"
)

// jsonGrid is the dump format written by external PDF table extractors:
// pages of tables of rows of cells, cells being strings, numbers or null.
type jsonGrid struct {
	Source string     `json:"source"`
	Pages  []jsonPage `json:"pages"`
}

type jsonPage struct {
	Number int       `json:"number"`
	Name   string    `json:"name"`
	Tables [][][]any `json:"tables"`
}

// ReadJSON decodes a JSON grid dump.
func ReadJSON(r io.Reader) (*models.Grid, error) {
	var doc jsonGrid
	decoder := json.NewDecoder(r)
	decoder.UseNumber()
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode grid: %w", err)
	}

	grid := &models.Grid{Source: doc.Source}
	for i, p := range doc.Pages {
		page := models.Page{Number: p.Number, Name: p.Name}
		if page.Number == 0 {
			page.Number = i + 1
		}
		for t, rawTable := range p.Tables {
			table := models.Table{}
			for r, rawRow := range rawTable {
				row := make(models.Row, len(rawRow))
				for c, raw := range rawRow {
					cell, err := jsonCell(raw)
					if err != nil {
						return nil, fmt.Errorf("page %d table %d row %d col %d: %w", page.Number, t+1, r+1, c+1, err)
					}
					row[c] = cell
				}
				table.Rows = append(table.Rows, row)
			}
			page.Tables = append(page.Tables, table)
		}
		grid.Pages = append(grid.Pages, page)
	}
	return grid, nil
}

func jsonCell(raw any) (*string, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case string:
		return models.Text(v), nil
	case json.Number:
		return models.Text(v.String()), nil
	case bool:
		return models.Text(strconv.FormatBool(v)), nil
	default:
		return nil, fmt.Errorf("unsupported cell value of type %T", raw)
	}
}
