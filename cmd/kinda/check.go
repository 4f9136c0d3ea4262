package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/kmayhew2020/kinda-lang-sub002/pkg/composition"
	"github.com/kmayhew2020/kinda-lang-sub002/pkg/fuzzyruntime"
	"github.com/kmayhew2020/kinda-lang-sub002/pkg/personality"
	"github.com/kmayhew2020/kinda-lang-sub002/pkg/reporting"
	"github.com/kmayhew2020/kinda-lang-sub002/pkg/stats"
)

// gates maps a construct name to the probabilistic gate check-probability
// samples from, grounded on pkg/fuzzyruntime/primitives.go's four
// probabilisticGate wrappers, plus "sorta", which samples through
// pkg/composition's cached SortaComposition instead of calling
// fuzzyruntime.Sorta directly, so check-probability exercises the same
// composed-and-cached path the emitted runtime does.
var gates = map[string]func(ctx *personality.Context, cond bool) bool{
	"sometimes": fuzzyruntime.Sometimes,
	"maybe":     fuzzyruntime.Maybe,
	"probably":  fuzzyruntime.Probably,
	"rarely":    fuzzyruntime.Rarely,
	"sorta":     sortaGate,
}

// sortaGate adapts composition's SortaComposition.Apply (condition + body,
// bool return for whether the body ran) to the gates map's (ctx, cond) bool
// shape, so --construct sorta samples through the same cache pkg/composition
// gives the emitted runtime.
func sortaGate(ctx *personality.Context, cond bool) bool {
	comp, ok := composition.Get("sorta")
	if !ok {
		return fuzzyruntime.Sorta(ctx, cond, func() {})
	}
	ran, _ := comp.Apply(ctx, cond, func() {}).(bool)
	return ran
}

var checkCmd = &cobra.Command{
	Use:   "check-probability",
	Args:  cobra.NoArgs,
	Short: "Statistically verify a fuzzy construct's observed firing rate against a claim",
	Long: `Samples a named probabilistic construct (sometimes|maybe|probably|rarely|sorta)
--trials times under a given mood and seed, then checks whether the observed
success rate's Wilson confidence interval, widened by --tolerance, is
consistent with --claim.

Examples:
  kinda check-probability --construct sometimes --claim 0.5 --trials 1000
  kinda check-probability --construct rarely --mood chaotic --claim 0.2 --confidence 0.99`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("construct", "sometimes", "construct to sample (sometimes|maybe|probably|rarely|sorta)")
	checkCmd.Flags().String("mood", "", "mood to evaluate under (overrides config personality.default_mood)")
	checkCmd.Flags().Int64("seed", 0, "random seed (0 = auto)")
	checkCmd.Flags().Int("trials", 1000, "number of samples to draw")
	checkCmd.Flags().Float64("claim", 0.5, "claimed success probability")
	checkCmd.Flags().Float64("tolerance", 0, "slack added to both ends of the Wilson interval before comparing against --claim")
	checkCmd.Flags().Float64("confidence", 0.95, "confidence level for the Wilson interval")
	checkCmd.Flags().String("format", "text", "progress output format (text, json, tui)")
}

func runCheck(cmd *cobra.Command, _ []string) error {
	construct, _ := cmd.Flags().GetString("construct")
	mood, _ := cmd.Flags().GetString("mood")
	seed, _ := cmd.Flags().GetInt64("seed")
	trials, _ := cmd.Flags().GetInt("trials")
	claim, _ := cmd.Flags().GetFloat64("claim")
	tolerance, _ := cmd.Flags().GetFloat64("tolerance")
	confidence, _ := cmd.Flags().GetFloat64("confidence")
	outputFormat, _ := cmd.Flags().GetString("format")

	gate, ok := gates[construct]
	if !ok {
		names := make([]string, 0, len(gates))
		for n := range gates {
			names = append(names, n)
		}
		sort.Strings(names)
		return fmt.Errorf("unknown construct %q; valid: %s", construct, strings.Join(names, ", "))
	}

	if trials < 3 {
		return fmt.Errorf("--trials must be at least 3, got %d", trials)
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if mood == "" {
		mood = cfg.Personality.DefaultMood
	}
	if seed == 0 {
		seed = cfg.Personality.DefaultSeed
	}
	composition.USE_COMPOSITION_ISH = cfg.Composition.UseCompositionIsh

	logLevel := reporting.LogLevelInfo
	if verbose {
		logLevel = reporting.LogLevelDebug
	}
	logger := reporting.NewLogger(reporting.LoggerConfig{
		Level:  logLevel,
		Format: reporting.LogFormat(cfg.Framework.LogFormat),
		Output: os.Stdout,
	})

	logger.Info("check-probability starting", "construct", construct, "mood", mood, "trials", trials)

	ctx, err := personality.NewContextWithSeed(mood, seed)
	if err != nil {
		return fmt.Errorf("failed to build personality context: %w", err)
	}

	startTime := time.Now()
	successes := 0
	for i := 0; i < trials; i++ {
		if gate(ctx, true) {
			successes++
		}
	}
	endTime := time.Now()

	assertErr := stats.AssertProbability(successes, trials, claim, tolerance, confidence)
	result := reporting.ConvertAssertionError(construct, claim, assertErr)
	result.Confidence = confidence
	result.Tolerance = tolerance
	result.Trials = trials
	result.Successes = successes
	result.EvalTime = endTime
	lo, hi := stats.WilsonInterval(successes, trials, confidence)
	result.Lo, result.Hi = lo, hi

	progressReporter := reporting.NewProgressReporter(reporting.OutputFormat(outputFormat), logger)
	progressReporter.ReportAssertionEvaluation(result)

	report := &reporting.TransformReport{
		RunID:      uuid.NewString(),
		Target:     construct,
		Mood:       mood,
		Seed:       seed,
		StartTime:  startTime,
		EndTime:    endTime,
		Duration:   endTime.Sub(startTime).String(),
		Status:     reporting.StatusCompleted,
		Success:    result.Passed,
		Assertions: []reporting.AssertionResult{result},
	}
	if !result.Passed {
		report.Status = reporting.StatusFailed
		report.Errors = []string{result.Message}
	}

	storage, err := reporting.NewStorage(cfg.Reporting.OutputDir, cfg.Reporting.KeepLastN, logger)
	if err != nil {
		return fmt.Errorf("failed to create storage: %w", err)
	}
	if _, saveErr := storage.SaveReport(report); saveErr != nil {
		logger.Warn("failed to save report", "error", saveErr)
	}

	if !result.Passed {
		return fmt.Errorf("check-probability failed: %s", result.Message)
	}

	logger.Info("check-probability passed", "construct", construct, "observed", float64(successes)/float64(trials))
	return nil
}
