// Package timetable converts department timetable documents into slot records.
package timetable

import (
	"go.uber.org/zap"

	"github.com/ukaji3/timetable-go/pkg/timetable/grid"
	"github.com/ukaji3/timetable-go/pkg/timetable/parser"
)

// Options configures parsing behavior.
type Options struct {
	// Rules holds the section vocabulary and layout heuristics.
	Rules parser.Rules
	// Tables configures table detection for workbook sources.
	Tables grid.TableParams
	// Logger receives debug output. Nil disables logging.
	Logger *zap.Logger
}

// DefaultOptions returns default parsing options.
func DefaultOptions() Options {
	return Options{
		Rules:  parser.DefaultRules(),
		Tables: grid.DefaultTableParams(),
	}
}
