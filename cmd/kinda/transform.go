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

	"github.com/kmayhew2020/kinda-lang-sub002/pkg/composition"
	"github.com/kmayhew2020/kinda-lang-sub002/pkg/config"
	"github.com/kmayhew2020/kinda-lang-sub002/pkg/interrupt"
	"github.com/kmayhew2020/kinda-lang-sub002/pkg/reporting"
	"github.com/kmayhew2020/kinda-lang-sub002/pkg/telemetry"
	"github.com/kmayhew2020/kinda-lang-sub002/pkg/transformer"
)

var transformCmd = &cobra.Command{
	Use:   "transform",
	Args:  cobra.MinimumNArgs(1),
	Short: "Transform kinda source files into host-language source",
	Long:  `Reads one or more .knda source files, runs preflight checks, and transforms each into host-language source.`,
	RunE:  runTransform,
}

func init() {
	transformCmd.Flags().StringArray("set", []string{}, "override config values (e.g., --set mood=chaotic)")
	transformCmd.Flags().String("out", "", "output directory (overrides config reporting.output_dir)")
	transformCmd.Flags().String("format", "text", "progress output format (text, json, tui)")
	transformCmd.Flags().Int("concurrency", 0, "max files transformed at once (overrides config execution.max_concurrent_io)")
	transformCmd.Flags().Bool("dry-run", false, "run preflight checks without writing output")
}

func runTransform(cmd *cobra.Command, args []string) error {
	setFlags, _ := cmd.Flags().GetStringArray("set")
	outDir, _ := cmd.Flags().GetString("out")
	outputFormat, _ := cmd.Flags().GetString("format")
	concurrency, _ := cmd.Flags().GetInt("concurrency")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if len(setFlags) > 0 {
		overrides, err := config.ParseOverrides(setFlags)
		if err != nil {
			return fmt.Errorf("failed to parse --set flags: %w", err)
		}
		if err := config.ApplyOverrides(cfg, overrides); err != nil {
			return fmt.Errorf("failed to apply overrides: %w", err)
		}
	}

	if outDir == "" {
		outDir = cfg.Reporting.OutputDir
	}
	if concurrency <= 0 {
		concurrency = cfg.Execution.MaxConcurrentIO
	}

	logLevel := reporting.LogLevelInfo
	if verbose {
		logLevel = reporting.LogLevelDebug
	}
	logger := reporting.NewLogger(reporting.LoggerConfig{
		Level:  logLevel,
		Format: reporting.LogFormat(cfg.Framework.LogFormat),
		Output: os.Stdout,
	})

	logger.Info("kinda transform starting", "version", version, "files", len(args))

	ctrl := interrupt.New(interrupt.Config{
		StopFile:             cfg.Interrupt.StopFile,
		PollInterval:         cfg.Interrupt.PollInterval,
		EnableSignalHandlers: true,
		Logger:               logger,
	})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ctrl.Start(ctx)

	var metrics *telemetry.Metrics
	if cfg.Telemetry.Enabled {
		metrics = telemetry.New()
		go func() {
			if err := metrics.Serve(ctx, cfg.Telemetry.Addr, cfg.Telemetry.Path); err != nil {
				logger.Warn("telemetry server stopped", "error", err)
			}
		}()
		logger.Info("telemetry exposition started", "addr", cfg.Telemetry.Addr, "path", cfg.Telemetry.Path)
	}

	startTime := time.Now()
	runID := uuid.NewString()

	preflight := transformer.NewPreflight()
	var preflightErrs []string
	for _, path := range args {
		source, err := os.ReadFile(path)
		if err != nil {
			preflightErrs = append(preflightErrs, fmt.Sprintf("%s: %v", path, err))
			continue
		}
		preflight.Check(path, string(source))
		if preflight.HasWarnings() {
			logger.Warn("preflight warnings", "file", path)
			for _, w := range preflight.Warnings {
				logger.Warn("  " + w)
			}
		}
		if preflight.HasErrors() {
			preflightErrs = append(preflightErrs, preflight.Errors...)
		}
	}

	if len(preflightErrs) > 0 {
		for _, e := range preflightErrs {
			logger.Error("preflight error", "detail", e)
		}
		if dryRun || !cfg.Execution.ContinueOnError {
			return fmt.Errorf("preflight failed: %s", strings.Join(preflightErrs, "; "))
		}
	}

	if dryRun {
		fmt.Println("source is valid (dry-run mode)")
		return nil
	}

	composition.USE_COMPOSITION_ISH = cfg.Composition.UseCompositionIsh

	coord := transformer.NewBatchCoordinator(logger, cfg.Composition.UseCompositionIsh, cfg.Safety.MaxEventuallyIterations)
	results := coord.TransformAll(args, outDir, concurrency, ctrl.StopChannel())

	endTime := time.Now()
	summary := coord.GetSummary()

	status := reporting.StatusCompleted
	success := true
	var errs []string
	for _, r := range results {
		if !r.Success {
			success = false
			status = reporting.StatusFailed
			errs = append(errs, fmt.Sprintf("%s: %s", r.Path, r.Error))
		}
		if metrics != nil {
			if r.Success {
				metrics.RecordFileTransformed("success")
			} else {
				metrics.RecordFileTransformed("failure")
			}
		}
	}
	if ctrl.IsStopped() {
		status = reporting.StatusStopped
	}

	report := &reporting.TransformReport{
		RunID:        runID,
		Target:       strings.Join(args, ", "),
		Mood:         cfg.Personality.DefaultMood,
		Seed:         cfg.Personality.DefaultSeed,
		StartTime:    startTime,
		EndTime:      endTime,
		Duration:     endTime.Sub(startTime).String(),
		Status:       status,
		Success:      success,
		Files:        results,
		BatchSummary: summary,
		AuditLog:     coord.AuditLog(),
		Errors:       errs,
	}

	storage, err := reporting.NewStorage(cfg.Reporting.OutputDir, cfg.Reporting.KeepLastN, logger)
	if err != nil {
		return fmt.Errorf("failed to create storage: %w", err)
	}
	if _, saveErr := storage.SaveReport(report); saveErr != nil {
		logger.Warn("failed to save report", "error", saveErr)
	}

	progressReporter := reporting.NewProgressReporter(reporting.OutputFormat(outputFormat), logger)
	progressReporter.ReportTransformCompleted(report)

	if !success {
		return fmt.Errorf("transform failed for one or more files")
	}

	logger.Info("kinda transform completed successfully", "out", filepath.Clean(outDir))
	return nil
}
