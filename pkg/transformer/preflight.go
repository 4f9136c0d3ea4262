package transformer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kmayhew2020/kinda-lang-sub002/pkg/matcher"
)

// largeRepeatThreshold flags a literal ~kinda_repeat(N) count that would
// make a single file dominate a batch transform's wall-clock time once run.
const largeRepeatThreshold = 1_000_000

// Preflight validates a kinda source file before it is transformed,
// adapted from the teacher's scenario/validator.Validator: the same
// Warnings/Errors accumulation and checkDangerousScenarios-style sweep, run
// over fuzzy constructs instead of scenario YAML.
type Preflight struct {
	Warnings []string
	Errors   []string
}

// NewPreflight creates a new preflight validator.
func NewPreflight() *Preflight {
	return &Preflight{
		Warnings: make([]string, 0),
		Errors:   make([]string, 0),
	}
}

// Check scans source line by line for dangerous or malformed construct
// usage. It never returns an error itself — callers inspect HasErrors/
// HasWarnings/GetReport, mirroring the teacher's Validate-then-inspect
// pattern.
func (p *Preflight) Check(path, source string) {
	p.Warnings = make([]string, 0)
	p.Errors = make([]string, 0)

	lines := strings.Split(source, "\n")
	for i, line := range lines {
		lineNo := i + 1
		p.checkUnboundedEventuallyUntil(path, lineNo, line)
		p.checkLargeKindaRepeat(path, lineNo, line)
		p.checkUnbalancedConstructDelimiters(path, lineNo, line)
	}
}

// HasWarnings returns true if there are warnings.
func (p *Preflight) HasWarnings() bool {
	return len(p.Warnings) > 0
}

// HasErrors returns true if there are errors.
func (p *Preflight) HasErrors() bool {
	return len(p.Errors) > 0
}

// GetReport returns a formatted validation report.
func (p *Preflight) GetReport() string {
	var sb strings.Builder

	if len(p.Errors) > 0 {
		sb.WriteString("ERRORS:\n")
		for _, err := range p.Errors {
			sb.WriteString(fmt.Sprintf("  - %s\n", err))
		}
	}

	if len(p.Warnings) > 0 {
		sb.WriteString("\nWARNINGS:\n")
		for _, warn := range p.Warnings {
			sb.WriteString(fmt.Sprintf("  - %s\n", warn))
		}
	}

	if len(p.Errors) == 0 && len(p.Warnings) == 0 {
		sb.WriteString("Preflight passed with no issues.\n")
	}

	return sb.String()
}

func (p *Preflight) checkUnboundedEventuallyUntil(path string, lineNo int, line string) {
	for _, m := range matcher.FindConstructs(line) {
		if m.Name != "eventually_until" {
			continue
		}
		if strings.Contains(line, "max_iterations") {
			continue
		}
		p.Warnings = append(p.Warnings, fmt.Sprintf(
			"%s:%d: DANGEROUS: ~eventually_until without a max_iterations bound may run until its safety cap; consider adding one",
			path, lineNo))
	}
}

func (p *Preflight) checkLargeKindaRepeat(path string, lineNo int, line string) {
	for _, m := range matcher.FindConstructs(line) {
		if m.Name != "kinda_repeat" {
			continue
		}
		countStr, ok := m.Captures["count"]
		if !ok {
			continue
		}
		count, err := strconv.Atoi(strings.TrimSpace(countStr))
		if err != nil {
			continue // non-literal count (a variable or expression): nothing to check statically
		}
		if count >= largeRepeatThreshold {
			p.Warnings = append(p.Warnings, fmt.Sprintf(
				"%s:%d: ~kinda_repeat(%d) requests an extremely large repeat count and may dominate batch transform runtime",
				path, lineNo, count))
		}
		if count < 0 {
			p.Errors = append(p.Errors, fmt.Sprintf(
				"%s:%d: ~kinda_repeat(%d) has a negative count", path, lineNo, count))
		}
	}
}

func (p *Preflight) checkUnbalancedConstructDelimiters(path string, lineNo int, line string) {
	idx := matcher.NewLineIndex(line)
	effective := idx.EffectiveLine()
	open := strings.Count(effective, "(")
	closed := strings.Count(effective, ")")
	if open != closed {
		p.Errors = append(p.Errors, fmt.Sprintf(
			"%s:%d: unbalanced parentheses outside string literals (%d open, %d closed)",
			path, lineNo, open, closed))
	}
}
