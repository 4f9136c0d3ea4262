package reporting

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// ReportFormat represents the report output format.
type ReportFormat string

const (
	ReportFormatHTML ReportFormat = "html"
	ReportFormatText ReportFormat = "text"
	ReportFormatJSON ReportFormat = "json"
)

// Formatter generates formatted reports from transform-run data.
type Formatter struct {
	logger *Logger
}

// NewFormatter creates a new report formatter.
func NewFormatter(logger *Logger) *Formatter {
	return &Formatter{
		logger: logger,
	}
}

// GenerateReport generates a report in the specified format.
func (f *Formatter) GenerateReport(report *TransformReport, format ReportFormat, outputPath string) error {
	switch format {
	case ReportFormatHTML:
		return f.generateHTMLReport(report, outputPath)
	case ReportFormatText:
		return f.generateTextReport(report, outputPath)
	case ReportFormatJSON:
		return fmt.Errorf("JSON format is automatically saved by storage")
	default:
		return fmt.Errorf("unsupported report format: %s", format)
	}
}

// generateHTMLReport generates an HTML report.
func (f *Formatter) generateHTMLReport(report *TransformReport, outputPath string) error {
	tmpl, err := template.New("report").Funcs(template.FuncMap{
		"formatTime": func(t time.Time) string {
			return t.Format("2006-01-02 15:04:05")
		},
		"statusClass": func(passed bool) string {
			if passed {
				return "pass"
			}
			return "fail"
		},
		"statusIcon": func(passed bool) string {
			if passed {
				return "✅"
			}
			return "❌"
		},
	}).Parse(htmlTemplate)

	if err != nil {
		return fmt.Errorf("failed to parse HTML template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, report); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write HTML report: %w", err)
	}

	f.logger.Info("HTML report generated", "path", outputPath)
	return nil
}

// generateTextReport generates a plain text report.
func (f *Formatter) generateTextReport(report *TransformReport, outputPath string) error {
	var buf bytes.Buffer

	buf.WriteString(strings.Repeat("=", 80) + "\n")
	buf.WriteString("   KINDA TRANSFORM REPORT\n")
	buf.WriteString(strings.Repeat("=", 80) + "\n\n")

	status := "COMPLETED"
	if !report.Success {
		status = "FAILED"
	}
	if report.Status == StatusStopped {
		status = "STOPPED"
	}

	buf.WriteString("RUN SUMMARY\n")
	buf.WriteString(strings.Repeat("-", 80) + "\n")
	buf.WriteString(fmt.Sprintf("Status:       %s\n", status))
	buf.WriteString(fmt.Sprintf("Run ID:       %s\n", report.RunID))
	buf.WriteString(fmt.Sprintf("Target:       %s\n", report.Target))
	buf.WriteString(fmt.Sprintf("Mood:         %s\n", report.Mood))
	buf.WriteString(fmt.Sprintf("Seed:         %d\n", report.Seed))
	buf.WriteString(fmt.Sprintf("Start Time:   %s\n", report.StartTime.Format("2006-01-02 15:04:05")))
	buf.WriteString(fmt.Sprintf("End Time:     %s\n", report.EndTime.Format("2006-01-02 15:04:05")))
	buf.WriteString(fmt.Sprintf("Duration:     %s\n", report.Duration))
	if report.Message != "" {
		buf.WriteString(fmt.Sprintf("Message:      %s\n", report.Message))
	}
	buf.WriteString("\n")

	if len(report.Files) > 0 {
		buf.WriteString("FILES\n")
		buf.WriteString(strings.Repeat("-", 80) + "\n")
		for i, file := range report.Files {
			buf.WriteString(fmt.Sprintf("%d. %s\n", i+1, file.Path))
			if file.OutputPath != "" {
				buf.WriteString(fmt.Sprintf("   Output:   %s\n", file.OutputPath))
			}
			if len(file.HelpersUsed) > 0 {
				buf.WriteString(fmt.Sprintf("   Helpers:  %s\n", strings.Join(file.HelpersUsed, ", ")))
			}
			buf.WriteString(fmt.Sprintf("   Bytes:    %d\n", file.Bytes))
			if file.Error != "" {
				buf.WriteString(fmt.Sprintf("   Error:    %s\n", file.Error))
			}
			buf.WriteString("\n")
		}
	}

	if len(report.Constructs) > 0 {
		buf.WriteString("CONSTRUCTS MATCHED\n")
		buf.WriteString(strings.Repeat("-", 80) + "\n")
		for i, hit := range report.Constructs {
			buf.WriteString(fmt.Sprintf("%d. ~%s\n", i+1, hit.Construct))
			buf.WriteString(fmt.Sprintf("   File:        %s\n", hit.File))
			buf.WriteString(fmt.Sprintf("   Line:        %d\n", hit.Line))
			if hit.Description != "" {
				buf.WriteString(fmt.Sprintf("   Description: %s\n", hit.Description))
			}
			buf.WriteString("\n")
		}
	}

	if len(report.Assertions) > 0 {
		passed := 0
		failed := 0
		for _, a := range report.Assertions {
			if a.Passed {
				passed++
			} else {
				failed++
			}
		}

		buf.WriteString("ASSERTIONS\n")
		buf.WriteString(strings.Repeat("-", 80) + "\n")
		buf.WriteString(fmt.Sprintf("Summary: %d passed, %d failed\n\n", passed, failed))

		for i, a := range report.Assertions {
			status := "PASS"
			if !a.Passed {
				status = "FAIL"
			}

			buf.WriteString(fmt.Sprintf("%d. [%s] %s\n", i+1, status, a.Name))
			buf.WriteString(fmt.Sprintf("   Claim:       %.3f\n", a.Claim))
			buf.WriteString(fmt.Sprintf("   Confidence:  %.3f\n", a.Confidence))
			buf.WriteString(fmt.Sprintf("   Trials:      %d (%d successes)\n", a.Trials, a.Successes))
			buf.WriteString(fmt.Sprintf("   Interval:    [%.3f, %.3f]\n", a.Lo, a.Hi))
			buf.WriteString(fmt.Sprintf("   Message:     %s\n", a.Message))
			buf.WriteString(fmt.Sprintf("   Evaluated:   %s\n", a.EvalTime.Format("15:04:05")))
			buf.WriteString("\n")
		}
	}

	buf.WriteString("BATCH SUMMARY\n")
	buf.WriteString(strings.Repeat("-", 80) + "\n")
	buf.WriteString(fmt.Sprintf("Total Actions: %d\n", report.BatchSummary.TotalActions))
	buf.WriteString(fmt.Sprintf("Succeeded:     %d\n", report.BatchSummary.Succeeded))
	buf.WriteString(fmt.Sprintf("Failed:        %d\n", report.BatchSummary.Failed))
	buf.WriteString("\n")

	if len(report.AuditLog) > 0 {
		buf.WriteString("BATCH AUDIT LOG\n")
		buf.WriteString(strings.Repeat("-", 80) + "\n")
		for i, entry := range report.AuditLog {
			status := "✓"
			if !entry.Success {
				status = "✗"
			}
			buf.WriteString(fmt.Sprintf("%d. [%s] %s %s\n",
				i+1,
				entry.Timestamp.Format("15:04:05"),
				status,
				entry.Action,
			))
			buf.WriteString(fmt.Sprintf("   Target:  %s\n", entry.Target))
			buf.WriteString(fmt.Sprintf("   Details: %s\n", entry.Details))
			if entry.Error != "" {
				buf.WriteString(fmt.Sprintf("   Error:   %s\n", entry.Error))
			}
			buf.WriteString("\n")
		}
	}

	if len(report.Errors) > 0 {
		buf.WriteString("ERRORS\n")
		buf.WriteString(strings.Repeat("-", 80) + "\n")
		for i, err := range report.Errors {
			buf.WriteString(fmt.Sprintf("%d. %s\n", i+1, err))
		}
		buf.WriteString("\n")
	}

	buf.WriteString(strings.Repeat("=", 80) + "\n")
	buf.WriteString(fmt.Sprintf("Generated: %s\n", time.Now().Format("2006-01-02 15:04:05")))
	buf.WriteString(strings.Repeat("=", 80) + "\n")

	if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write text report: %w", err)
	}

	f.logger.Info("text report generated", "path", outputPath)
	return nil
}

// CompareReports generates a comparison report for multiple transform runs.
func (f *Formatter) CompareReports(reports []*TransformReport, outputPath string) error {
	if len(reports) < 2 {
		return fmt.Errorf("need at least 2 reports to compare")
	}

	var buf bytes.Buffer

	buf.WriteString(strings.Repeat("=", 80) + "\n")
	buf.WriteString("   KINDA TRANSFORM COMPARISON\n")
	buf.WriteString(strings.Repeat("=", 80) + "\n\n")

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].StartTime.Before(reports[j].StartTime)
	})

	buf.WriteString("RUN SUMMARY\n")
	buf.WriteString(strings.Repeat("-", 80) + "\n")
	buf.WriteString(fmt.Sprintf("%-20s %-15s %-12s %-10s %-10s\n",
		"Run ID", "Target", "Status", "Duration", "Passed"))
	buf.WriteString(strings.Repeat("-", 80) + "\n")

	for _, report := range reports {
		status := "COMPLETED"
		if !report.Success {
			status = "FAILED"
		}
		passed := 0
		total := len(report.Assertions)
		for _, a := range report.Assertions {
			if a.Passed {
				passed++
			}
		}

		buf.WriteString(fmt.Sprintf("%-20s %-15s %-12s %-10s %d/%d\n",
			report.RunID[:min(20, len(report.RunID))],
			report.Target[:min(15, len(report.Target))],
			status,
			report.Duration,
			passed,
			total,
		))
	}
	buf.WriteString("\n")

	buf.WriteString("ASSERTION COMPARISON\n")
	buf.WriteString(strings.Repeat("-", 80) + "\n")

	assertionNames := make(map[string]bool)
	for _, report := range reports {
		for _, a := range report.Assertions {
			assertionNames[a.Name] = true
		}
	}

	names := make([]string, 0, len(assertionNames))
	for name := range assertionNames {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		buf.WriteString(fmt.Sprintf("\n%s:\n", name))
		for _, report := range reports {
			var assertion *AssertionResult
			for i := range report.Assertions {
				if report.Assertions[i].Name == name {
					assertion = &report.Assertions[i]
					break
				}
			}

			if assertion != nil {
				status := "✓"
				if !assertion.Passed {
					status = "✗"
				}
				buf.WriteString(fmt.Sprintf("  %s [%s] %s: %.3f (%s)\n",
					status,
					report.RunID[:min(12, len(report.RunID))],
					assertion.Message[:min(40, len(assertion.Message))],
					assertion.Claim,
					report.StartTime.Format("15:04:05"),
				))
			} else {
				buf.WriteString(fmt.Sprintf("  - [%s] Not evaluated\n",
					report.RunID[:min(12, len(report.RunID))]))
			}
		}
	}
	buf.WriteString("\n")

	if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write comparison report: %w", err)
	}

	f.logger.Info("comparison report generated", "path", outputPath)
	return nil
}

// GetReportPath generates a report file path based on a transform report and
// format.
func GetReportPath(report *TransformReport, format ReportFormat, outputDir string) string {
	timestamp := report.StartTime.Format("20060102-150405")
	ext := string(format)
	filename := fmt.Sprintf("report-%s-%s.%s", timestamp, report.RunID, ext)
	return filepath.Join(outputDir, filename)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// htmlTemplate renders a standalone HTML view of a TransformReport.
const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>kinda transform report - {{.RunID}}</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif;
            line-height: 1.6;
            color: #333;
            max-width: 1200px;
            margin: 0 auto;
            padding: 20px;
            background-color: #f5f5f5;
        }
        .container {
            background-color: white;
            border-radius: 8px;
            box-shadow: 0 2px 4px rgba(0,0,0,0.1);
            padding: 30px;
        }
        h1, h2 {
            color: #2c3e50;
            border-bottom: 2px solid #3498db;
            padding-bottom: 10px;
        }
        .header {
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            color: white;
            padding: 30px;
            border-radius: 8px 8px 0 0;
            margin: -30px -30px 30px -30px;
        }
        .status {
            display: inline-block;
            padding: 5px 15px;
            border-radius: 4px;
            font-weight: bold;
            margin-left: 10px;
        }
        .status.pass {
            background-color: #27ae60;
        }
        .status.fail {
            background-color: #e74c3c;
        }
        table {
            width: 100%;
            border-collapse: collapse;
            margin: 15px 0;
        }
        th, td {
            text-align: left;
            padding: 10px;
            border-bottom: 1px solid #eee;
        }
        th {
            background-color: #f8f9fa;
        }
        .section {
            margin: 30px 0;
        }
    </style>
</head>
<body>
<div class="container">
    <div class="header">
        <h1 style="border:none;color:white;">kinda transform report
            <span class="status {{statusClass .Success}}">{{if .Success}}COMPLETED{{else}}FAILED{{end}}</span>
        </h1>
        <p>Run {{.RunID}} &middot; {{.Target}} &middot; mood {{.Mood}} (seed {{.Seed}})</p>
    </div>

    <div class="section">
        <h2>Run Summary</h2>
        <table>
            <tr><th>Start</th><td>{{formatTime .StartTime}}</td></tr>
            <tr><th>End</th><td>{{formatTime .EndTime}}</td></tr>
            <tr><th>Duration</th><td>{{.Duration}}</td></tr>
            <tr><th>Message</th><td>{{.Message}}</td></tr>
        </table>
    </div>

    {{if .Files}}
    <div class="section">
        <h2>Files</h2>
        <table>
            <tr><th></th><th>Path</th><th>Helpers</th><th>Bytes</th></tr>
            {{range .Files}}
            <tr>
                <td>{{statusIcon .Success}}</td>
                <td>{{.Path}}</td>
                <td>{{range .HelpersUsed}}{{.}} {{end}}</td>
                <td>{{.Bytes}}</td>
            </tr>
            {{end}}
        </table>
    </div>
    {{end}}

    {{if .Assertions}}
    <div class="section">
        <h2>Assertions</h2>
        <table>
            <tr><th></th><th>Name</th><th>Claim</th><th>Interval</th><th>Message</th></tr>
            {{range .Assertions}}
            <tr>
                <td>{{statusIcon .Passed}}</td>
                <td>{{.Name}}</td>
                <td>{{.Claim}}</td>
                <td>[{{.Lo}}, {{.Hi}}]</td>
                <td>{{.Message}}</td>
            </tr>
            {{end}}
        </table>
    </div>
    {{end}}

    <div class="section">
        <h2>Batch Summary</h2>
        <p>{{.BatchSummary.Succeeded}} succeeded, {{.BatchSummary.Failed}} failed out of {{.BatchSummary.TotalActions}} actions.</p>
    </div>
</div>
</body>
</html>
`
