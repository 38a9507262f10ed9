// Package output serializes parse results.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/ukaji3/timetable-go/pkg/timetable/models"
)

// Format is an output serialization.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatYAML, FormatCSV:
		return Format(s), nil
	default:
		return "", fmt.Errorf("invalid format: %s (must be json, yaml, or csv)", s)
	}
}

// ToJSON serializes v as JSON.
func ToJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// ToYAML serializes v as YAML.
func ToYAML(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

var csvHeader = []string{
	"source", "day", "start_time", "end_time", "section_name", "semester",
	"subject_code", "instructor_initials", "room", "sub_section_code", "is_lab", "batch",
}

// WriteCSV writes one line per slot record across all results. Diagnostics
// are not part of the CSV form.
func WriteCSV(w io.Writer, results []*models.ParseResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, res := range results {
		for _, rec := range res.Records {
			line := []string{
				res.Source,
				rec.Day.String(),
				rec.StartTime,
				rec.EndTime,
				rec.SectionName,
				strconv.Itoa(rec.Semester),
				rec.SubjectCode,
				rec.InstructorInitials,
				rec.Room,
				rec.SubSectionCode,
				strconv.FormatBool(rec.IsLab),
				rec.BatchName(),
			}
			if err := cw.Write(line); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
