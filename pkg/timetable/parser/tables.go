package parser

import "github.com/ukaji3/timetable-go/pkg/timetable/models"

// SelectTable returns the candidate with the greatest cell count
// (rows x widest row). Ties keep the earlier table.
func SelectTable(tables []models.Table) (models.Table, bool) {
	if len(tables) == 0 {
		return models.Table{}, false
	}
	best := 0
	for i := 1; i < len(tables); i++ {
		if tables[i].Size() > tables[best].Size() {
			best = i
		}
	}
	return tables[best], true
}
