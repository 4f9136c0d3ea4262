package transformer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreflightPassesCleanSource(t *testing.T) {
	p := NewPreflight()
	p.Check("clean.knda", "~sometimes(x > 0):\n    print(x)\n")
	assert.False(t, p.HasErrors())
	assert.False(t, p.HasWarnings())
}

func TestPreflightWarnsOnUnboundedEventuallyUntil(t *testing.T) {
	p := NewPreflight()
	p.Check("loop.knda", "~eventually_until x > 10:\n    x = kinda_int(x + 1)\n")
	assert.False(t, p.HasErrors())
	assert.True(t, p.HasWarnings())
}

func TestPreflightNoWarningWhenMaxIterationsPresent(t *testing.T) {
	p := NewPreflight()
	p.Check("loop.knda", "~eventually_until x > 10:  # max_iterations=500\n    x += 1\n")
	assert.False(t, p.HasWarnings())
}

func TestPreflightWarnsOnHugeKindaRepeat(t *testing.T) {
	p := NewPreflight()
	p.Check("loop.knda", "~kinda_repeat(5000000):\n    do_work()\n")
	assert.True(t, p.HasWarnings())
	assert.False(t, p.HasErrors())
}

func TestPreflightErrorsOnNegativeKindaRepeat(t *testing.T) {
	p := NewPreflight()
	p.Check("loop.knda", "~kinda_repeat(-1):\n    do_work()\n")
	assert.True(t, p.HasErrors())
}

func TestPreflightErrorsOnUnbalancedParens(t *testing.T) {
	p := NewPreflight()
	p.Check("broken.knda", "x = foo(bar(1, 2)\n")
	assert.True(t, p.HasErrors())
}

func TestGetReportListsErrorsAndWarnings(t *testing.T) {
	p := NewPreflight()
	p.Check("loop.knda", "~kinda_repeat(-1):\n    do_work()\n")
	report := p.GetReport()
	assert.Contains(t, report, "ERRORS:")
}
