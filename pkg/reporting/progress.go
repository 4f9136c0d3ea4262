package reporting

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// OutputFormat represents the progress output format.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatTUI  OutputFormat = "tui"
)

// ProgressReporter reports transform-run progress.
type ProgressReporter struct {
	format OutputFormat
	logger *Logger
}

// NewProgressReporter creates a new progress reporter.
func NewProgressReporter(format OutputFormat, logger *Logger) *ProgressReporter {
	return &ProgressReporter{
		format: format,
		logger: logger,
	}
}

// ReportState reports the current transform state.
func (pr *ProgressReporter) ReportState(state LiveTransformState) {
	switch pr.format {
	case FormatJSON:
		pr.reportJSON(state)
	case FormatTUI:
		pr.reportTUI(state)
	default:
		pr.reportText(state)
	}
}

// ReportStateTransition reports a state transition.
func (pr *ProgressReporter) ReportStateTransition(from, to string) {
	switch pr.format {
	case FormatJSON:
		data, _ := json.Marshal(map[string]interface{}{
			"event":      "state_transition",
			"from_state": from,
			"to_state":   to,
			"timestamp":  time.Now(),
		})
		fmt.Println(string(data))
	case FormatTUI:
		pr.clearLine()
		fmt.Printf("🔄 State Transition: %s → %s\n", from, to)
	default:
		fmt.Printf("[STATE] %s → %s\n", from, to)
	}
}

// ReportConstructHit reports a fuzzy-construct match found during scanning.
func (pr *ProgressReporter) ReportConstructHit(hit ConstructHit) {
	switch pr.format {
	case FormatJSON:
		data, _ := json.Marshal(map[string]interface{}{
			"event":     "construct_hit",
			"hit":       hit,
			"timestamp": time.Now(),
		})
		fmt.Println(string(data))
	case FormatTUI:
		pr.clearLine()
		fmt.Printf("🎲 ~%s at %s:%d\n", hit.Construct, hit.File, hit.Line)
		if hit.Description != "" {
			fmt.Printf("   %s\n", hit.Description)
		}
	default:
		fmt.Printf("[CONSTRUCT] ~%s: %s:%d\n", hit.Construct, hit.File, hit.Line)
	}
}

// ReportAssertionEvaluation reports a statistical-assertion evaluation.
func (pr *ProgressReporter) ReportAssertionEvaluation(result AssertionResult) {
	status := "✅ PASS"
	if !result.Passed {
		status = "❌ FAIL"
	}

	switch pr.format {
	case FormatJSON:
		data, _ := json.Marshal(map[string]interface{}{
			"event":     "assertion_evaluation",
			"result":    result,
			"timestamp": time.Now(),
		})
		fmt.Println(string(data))
	case FormatTUI:
		pr.clearLine()
		fmt.Printf("%s %s: %s\n", status, result.Name, result.Message)
		fmt.Printf("   Claim: %.3f, Observed CI: [%.3f, %.3f] over %d trials\n",
			result.Claim, result.Lo, result.Hi, result.Trials)
	default:
		fmt.Printf("[ASSERT] %s %s: %s\n", status, result.Name, result.Message)
	}
}

// ReportBatchStarted reports that a batch transform has started.
func (pr *ProgressReporter) ReportBatchStarted(fileCount int) {
	switch pr.format {
	case FormatJSON:
		data, _ := json.Marshal(map[string]interface{}{
			"event":     "batch_started",
			"files":     fileCount,
			"timestamp": time.Now(),
		})
		fmt.Println(string(data))
	case FormatTUI:
		pr.clearLine()
		fmt.Printf("🌀 Transforming %d file(s)...\n", fileCount)
	default:
		fmt.Printf("[BATCH] Transforming %d file(s)...\n", fileCount)
	}
}

// ReportBatchCompleted reports batch transform completion.
func (pr *ProgressReporter) ReportBatchCompleted(succeeded, failed int) {
	switch pr.format {
	case FormatJSON:
		data, _ := json.Marshal(map[string]interface{}{
			"event":     "batch_completed",
			"succeeded": succeeded,
			"failed":    failed,
			"timestamp": time.Now(),
		})
		fmt.Println(string(data))
	case FormatTUI:
		pr.clearLine()
		fmt.Printf("🌀 Batch complete: %d succeeded, %d failed\n", succeeded, failed)
	default:
		fmt.Printf("[BATCH] Complete: %d succeeded, %d failed\n", succeeded, failed)
	}
}

// ReportTransformCompleted reports transform-run completion.
func (pr *ProgressReporter) ReportTransformCompleted(report *TransformReport) {
	switch pr.format {
	case FormatJSON:
		data, _ := json.Marshal(map[string]interface{}{
			"event":     "transform_completed",
			"report":    report,
			"timestamp": time.Now(),
		})
		fmt.Println(string(data))
	case FormatTUI:
		pr.clearLine()
		pr.printTransformSummary(report)
	default:
		pr.printTextSummary(report)
	}
}

// reportText outputs progress in plain text format.
func (pr *ProgressReporter) reportText(state LiveTransformState) {
	elapsed := time.Since(state.StartTime).Round(time.Second)
	fmt.Printf("[%s] %s | %d/%d files | Elapsed: %s\n",
		time.Now().Format("15:04:05"),
		state.State,
		state.FilesDone, state.FilesTotal,
		elapsed,
	)

	if len(state.LatestInstability) > 0 {
		fmt.Printf("  Instability: ")
		for name, value := range state.LatestInstability {
			fmt.Printf("%s=%.2f ", name, value)
		}
		fmt.Println()
	}
}

// reportJSON outputs progress in JSON format.
func (pr *ProgressReporter) reportJSON(state LiveTransformState) {
	data, err := json.Marshal(state)
	if err != nil {
		pr.logger.Error("failed to marshal state", "error", err)
		return
	}
	fmt.Println(string(data))
}

// reportTUI outputs progress in terminal UI format.
func (pr *ProgressReporter) reportTUI(state LiveTransformState) {
	pr.clearScreen()

	fmt.Println(strings.Repeat("=", 80))
	fmt.Printf("   kinda transform: %s\n", state.Target)
	fmt.Printf("   Run ID: %s\n", state.RunID)
	fmt.Println(strings.Repeat("=", 80))
	fmt.Println()

	fmt.Printf("📊 State: %s\n", state.State)
	fmt.Printf("⏱️  Elapsed: %s\n", state.Elapsed.Round(time.Second))
	fmt.Printf("📄 Files: %d/%d\n", state.FilesDone, state.FilesTotal)
	fmt.Println()

	if len(state.LatestInstability) > 0 {
		fmt.Printf("📈 Instability:\n")
		for name, value := range state.LatestInstability {
			fmt.Printf("   • %s: %.2f\n", name, value)
		}
		fmt.Println()
	}

	if len(state.AssertionsStatus) > 0 {
		fmt.Printf("✅ Assertions:\n")
		for _, a := range state.AssertionsStatus {
			status := "✅"
			if !a.Passed {
				status = "❌"
			}
			fmt.Printf("   %s %s: %s\n", status, a.Name, a.Message)
		}
		fmt.Println()
	}

	fmt.Println(strings.Repeat("─", 80))
}

// printTransformSummary prints a transform summary in TUI format.
func (pr *ProgressReporter) printTransformSummary(report *TransformReport) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 80))
	fmt.Println("   TRANSFORM SUMMARY")
	fmt.Println(strings.Repeat("=", 80))
	fmt.Println()

	statusIcon := "✅"
	statusText := "COMPLETED"
	if !report.Success {
		statusIcon = "❌"
		statusText = "FAILED"
	}
	if report.Status == StatusStopped {
		statusIcon = "🛑"
		statusText = "STOPPED"
	}

	fmt.Printf("%s Transform %s\n", statusIcon, statusText)
	fmt.Printf("   Target: %s\n", report.Target)
	fmt.Printf("   Run ID: %s\n", report.RunID)
	fmt.Printf("   Mood: %s (seed %d)\n", report.Mood, report.Seed)
	fmt.Printf("   Duration: %s\n", report.Duration)
	fmt.Println()

	if len(report.Files) > 0 {
		fmt.Printf("📄 Files (%d):\n", len(report.Files))
		for _, f := range report.Files {
			icon := "✅"
			if !f.Success {
				icon = "❌"
			}
			fmt.Printf("   %s %s\n", icon, f.Path)
		}
		fmt.Println()
	}

	if len(report.Constructs) > 0 {
		fmt.Printf("🎲 Constructs matched: %d\n", len(report.Constructs))
		fmt.Println()
	}

	if len(report.Assertions) > 0 {
		passed := 0
		for _, a := range report.Assertions {
			if a.Passed {
				passed++
			}
		}
		statusIcon := "✅"
		if passed < len(report.Assertions) {
			statusIcon = "🔴"
		}
		fmt.Printf("%s Assertions: %d/%d passed\n", statusIcon, passed, len(report.Assertions))
		for _, a := range report.Assertions {
			status := "✅"
			if !a.Passed {
				status = "❌"
			}
			fmt.Printf("   %s %s: %s\n", status, a.Name, a.Message)
		}
		fmt.Println()
	}

	fmt.Printf("🌀 Batch: %d succeeded, %d failed\n",
		report.BatchSummary.Succeeded,
		report.BatchSummary.Failed,
	)
	fmt.Println()

	fmt.Println(strings.Repeat("=", 80))
}

// printTextSummary prints a transform summary in plain text format.
func (pr *ProgressReporter) printTextSummary(report *TransformReport) {
	status := "COMPLETED"
	if !report.Success {
		status = "FAILED"
	}
	if report.Status == StatusStopped {
		status = "STOPPED"
	}

	fmt.Printf("\n[TRANSFORM SUMMARY] %s\n", status)
	fmt.Printf("  Target: %s\n", report.Target)
	fmt.Printf("  Run ID: %s\n", report.RunID)
	fmt.Printf("  Mood: %s (seed %d)\n", report.Mood, report.Seed)
	fmt.Printf("  Duration: %s\n", report.Duration)
	fmt.Printf("  Files: %d\n", len(report.Files))
	fmt.Printf("  Constructs matched: %d\n", len(report.Constructs))

	if len(report.Assertions) > 0 {
		passed := 0
		for _, a := range report.Assertions {
			if a.Passed {
				passed++
			}
		}
		fmt.Printf("  Assertions: %d/%d passed\n", passed, len(report.Assertions))
	}

	fmt.Printf("  Batch: %d succeeded, %d failed\n",
		report.BatchSummary.Succeeded,
		report.BatchSummary.Failed,
	)
	fmt.Println()
}

// clearScreen clears the terminal screen.
func (pr *ProgressReporter) clearScreen() {
	fmt.Print("\033[2J\033[H")
}

// clearLine clears the current line.
func (pr *ProgressReporter) clearLine() {
	fmt.Print("\033[K")
}
