package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ukaji3/timetable-go/pkg/timetable"
	"github.com/ukaji3/timetable-go/pkg/timetable/models"
	"github.com/ukaji3/timetable-go/pkg/timetable/output"
)

// report is the envelope written for one CLI run.
type report struct {
	RunID       string                `json:"run_id" yaml:"run_id"`
	GeneratedAt time.Time             `json:"generated_at" yaml:"generated_at"`
	Documents   []*models.ParseResult `json:"documents" yaml:"documents"`
}

func run(cmd *cobra.Command, args []string, o *cliOptions) error {
	format, err := output.ParseFormat(o.format)
	if err != nil {
		return err
	}
	if o.jobs < 1 {
		return fmt.Errorf("invalid jobs: %d (must be at least 1)", o.jobs)
	}

	cfg, err := loadConfig(cmd, o)
	if err != nil {
		return err
	}

	opts := timetable.Options{
		Rules:  cfg.Rules(),
		Tables: cfg.TableParams(),
		Logger: o.logger,
	}

	results, err := parseAll(cmd.Context(), args, opts, o.jobs)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	for _, res := range results {
		for _, d := range res.Diagnostics {
			o.logger.Warn("diagnostic", zap.String("source", res.Source), zap.String("message", d))
		}
	}

	rep := report{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Documents:   results,
	}

	data, err := encode(rep, format, o.pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if o.outputPath != "" {
		if err := os.WriteFile(o.outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else if o.outDir == "" {
		if _, err := cmd.OutOrStdout().Write(data); err != nil {
			return err
		}
	}

	if o.outDir != "" {
		if err := writeDocumentFiles(rep, format, o.pretty, o.outDir); err != nil {
			return fmt.Errorf("failed to write document files: %w", err)
		}
	}

	return nil
}

// parseAll parses every document with at most jobs in flight. Results keep
// argument order. The first document-fatal error cancels the rest.
func parseAll(ctx context.Context, paths []string, opts timetable.Options, jobs int) ([]*models.ParseResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	results := make([]*models.ParseResult, len(paths))
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(jobs)

	for i, path := range paths {
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := timetable.ParseFile(path, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func encode(v any, format output.Format, pretty bool) ([]byte, error) {
	switch format {
	case output.FormatYAML:
		return output.ToYAML(v)
	case output.FormatCSV:
		var b strings.Builder
		var results []*models.ParseResult
		switch r := v.(type) {
		case report:
			results = r.Documents
		case *models.ParseResult:
			results = []*models.ParseResult{r}
		}
		if err := output.WriteCSV(&b, results); err != nil {
			return nil, err
		}
		return []byte(b.String()), nil
	default:
		data, err := output.ToJSON(v, pretty)
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}
}

func writeDocumentFiles(rep report, format output.Format, pretty bool, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	used := make(map[string]bool, len(rep.Documents))
	for i, res := range rep.Documents {
		data, err := encode(res, format, pretty)
		if err != nil {
			return err
		}

		base := strings.TrimSuffix(res.Source, filepath.Ext(res.Source))
		if base == "" {
			base = fmt.Sprintf("document%d", i+1)
		}
		name := base + "." + string(format)
		// Same-named inputs from different directories get a -N suffix.
		for n := 2; used[name]; n++ {
			name = fmt.Sprintf("%s-%d.%s", base, n, format)
		}
		used[name] = true
		filename := filepath.Join(dir, name)
		if err := os.WriteFile(filename, data, 0644); err != nil {
			return err
		}
	}

	return nil
}
