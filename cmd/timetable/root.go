package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ukaji3/timetable-go/pkg/timetable/config"
)

type cliOptions struct {
	outputPath       string
	pretty           bool
	format           string
	outDir           string
	configPath       string
	jobs             int
	verbose          bool
	afternoonMaxHour int

	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	o := &cliOptions{}

	rootCmd := &cobra.Command{
		Use:   "timetable [input.xlsx|grid.json ...]",
		Short: "Extract weekly schedule slots from timetable documents",
		Long: `timetable reads department timetables (xlsx workbooks or JSON grids dumped
by a PDF table extractor) and outputs one record per booked slot, plus
diagnostics for every page or row that could not be read.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			zc := zap.NewProductionConfig()
			if o.verbose {
				zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := zc.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			o.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if o.logger != nil {
				_ = o.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, o)
		},
	}

	rootCmd.PersistentFlags().StringVar(&o.configPath, "config", "", "YAML config file (default: built-in vocabulary)")
	rootCmd.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().IntVar(&o.afternoonMaxHour, "afternoon-max-hour", 0, "Shift hours 1..N by 12 (0 keeps hours literal)")

	rootCmd.Flags().StringVarP(&o.outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&o.pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&o.format, "format", "json", "Output format: json, yaml, csv")
	rootCmd.Flags().StringVar(&o.outDir, "out-dir", "", "Directory for per-document output files")
	rootCmd.Flags().IntVarP(&o.jobs, "jobs", "j", 4, "Documents parsed concurrently")

	rootCmd.AddCommand(newConfigCmd(o))
	return rootCmd
}

func newConfigCmd(o *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, o)
			if err != nil {
				return err
			}
			data, err := cfg.Marshal()
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func loadConfig(cmd *cobra.Command, o *cliOptions) (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("afternoon-max-hour") {
		cfg.AfternoonMaxHour = o.afternoonMaxHour
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
