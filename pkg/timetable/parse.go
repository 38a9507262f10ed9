package timetable

import (
	"errors"
	"os"

	"github.com/ukaji3/timetable-go/pkg/timetable/grid"
	"github.com/ukaji3/timetable-go/pkg/timetable/models"
	"github.com/ukaji3/timetable-go/pkg/timetable/parser"
)

// Parse converts an extracted grid into slot records and diagnostics.
// It only fails when opts carries invalid rules.
func Parse(g *models.Grid, opts Options) (*models.ParseResult, error) {
	p, err := parser.New(opts.Rules, opts.Logger)
	if err != nil {
		return nil, err
	}
	return p.Parse(g), nil
}

// ParseFile reads the document at path and parses it. Failing to open or
// decode the document aborts with an error; everything else is reported
// through the result's diagnostics.
func ParseFile(path string, opts Options) (*models.ParseResult, error) {
	p, err := parser.New(opts.Rules, opts.Logger)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrFileNotFound
		}
		return nil, NewDocumentError(path, "", err)
	}

	format, ok := grid.FormatOf(path)
	if !ok {
		return nil, ErrUnsupportedFormat
	}

	g, err := grid.Open(path, format, opts.Tables)
	if err != nil {
		return nil, NewDocumentError(path, string(format), err)
	}

	return p.Parse(g), nil
}
