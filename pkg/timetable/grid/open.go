package grid

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/timetable-go/pkg/timetable/models"
)

// Format is a supported source document format.
type Format string

const (
	FormatExcel Format = "xlsx"
	FormatJSON  Format = "json"
)

// FormatOf returns the format implied by the file extension.
func FormatOf(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return FormatExcel, true
	case ".json":
		return FormatJSON, true
	default:
		return "", false
	}
}

// Open reads the document at path with the adapter for format.
func Open(path string, format Format, params TableParams) (*models.Grid, error) {
	switch format {
	case FormatExcel:
		return ReadExcel(path, params)
	case FormatJSON:
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		grid, err := ReadJSON(f)
		if err != nil {
			return nil, err
		}
		if grid.Source == "" {
			grid.Source = filepath.Base(path)
		}
		return grid, nil
	default:
		return nil, os.ErrInvalid
	}
}
