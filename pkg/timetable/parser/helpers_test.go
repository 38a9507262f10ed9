package parser

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/ukaji3/timetable-go/pkg/timetable/models"
)

// tbl builds a table from string rows; "" becomes a nil cell.
func tbl(rows ...[]string) models.Table {
	table := models.Table{}
	for _, r := range rows {
		row := make(models.Row, len(r))
		for i, c := range r {
			if c != "" {
				row[i] = models.Text(c)
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}

func newTestParser(t *testing.T) *Parser {
	t.Helper()
	return newTestParserWith(t, DefaultRules())
}

func newTestParserWith(t *testing.T, rules Rules) *Parser {
	t.Helper()
	p, err := New(rules, zaptest.NewLogger(t))
	require.NoError(t, err)
	return p
}
