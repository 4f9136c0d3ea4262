package transformer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransformSourceSometimesBlock(t *testing.T) {
	src := "~sometimes (x > 0):\n    y = x\n"
	out, helpers, err := New().TransformSource("t.py", src)
	require.NoError(t, err)
	assert.Contains(t, out, "if sometimes(x > 0):")
	assert.Contains(t, out, "    y = x")
	assert.Contains(t, helpers, "sometimes")
	assert.Contains(t, out, "from kinda_runtime import")
}

func TestTransformSourceKindaRepeatEmitsInlineForLoop(t *testing.T) {
	src := "~kinda_repeat(5):\n    do_thing()\n"
	out, helpers, err := New().TransformSource("t.py", src)
	require.NoError(t, err)
	assert.Contains(t, out, "for _ in range(kinda_repeat(5)):")
	assert.Contains(t, out, "    do_thing()")
	assert.Contains(t, helpers, "kinda_repeat")
}

func TestTransformSourceKindaRepeatBodyBreakIsValidLoopSyntax(t *testing.T) {
	src := "~kinda_repeat(5):\n    if stop:\n        break\n    do_thing()\n"
	out, _, err := New().TransformSource("t.py", src)
	require.NoError(t, err)
	assert.Contains(t, out, "for _ in range(kinda_repeat(5)):")
	assert.Contains(t, out, "        break")
	assert.NotContains(t, out, "def _body_")
}

func TestTransformSourceEventuallyUntilEmitsStatefulWhileLoop(t *testing.T) {
	src := "~eventually_until done:\n    step()\n"
	out, helpers, err := New().TransformSource("t.py", src)
	require.NoError(t, err)
	assert.Contains(t, out, "_ev_1 = eventually_until()")
	assert.Contains(t, out, "while not _ev_1.step(done):")
	assert.Contains(t, out, "    step()")
	assert.Contains(t, helpers, "eventually_until")
	assert.Contains(t, helpers, "wilson_interval")
}

func TestTransformSourceMaybeForBindsLoopVar(t *testing.T) {
	src := "~maybe_for item in items:\n    use(item)\n"
	out, helpers, err := New().TransformSource("t.py", src)
	require.NoError(t, err)
	assert.Contains(t, out, "for item in items:")
	assert.Contains(t, out, "if not maybe_for():")
	assert.Contains(t, out, "    use(item)")
	assert.Contains(t, helpers, "maybe_for")
}

func TestTransformSourceMaybeForBodyContinueIsValidLoopSyntax(t *testing.T) {
	src := "~maybe_for item in items:\n    if skip(item):\n        continue\n    use(item)\n"
	out, _, err := New().TransformSource("t.py", src)
	require.NoError(t, err)
	assert.Contains(t, out, "for item in items:")
	assert.Contains(t, out, "        continue")
	assert.NotContains(t, out, "def _body_")
}

func TestTransformSourceSometimesWhileEmitsInlineWhileLoop(t *testing.T) {
	src := "~sometimes_while running:\n    step()\n"
	out, helpers, err := New().TransformSource("t.py", src)
	require.NoError(t, err)
	assert.Contains(t, out, "while running:")
	assert.Contains(t, out, "if not sometimes_while():")
	assert.Contains(t, out, "    step()")
	assert.Contains(t, helpers, "sometimes_while")
}

func TestTransformSourceNestedConstructRecurses(t *testing.T) {
	src := "~sometimes (a):\n    ~maybe (b):\n        c = 1\n"
	out, _, err := New().TransformSource("t.py", src)
	require.NoError(t, err)
	assert.Contains(t, out, "if sometimes(a):")
	assert.Contains(t, out, "if maybe(b):")
	assert.Contains(t, out, "c = 1")
}

func TestTransformSourceMissingBodyErrors(t *testing.T) {
	src := "~sometimes (a):\nnext_stmt()\n"
	_, _, err := New().TransformSource("t.py", src)
	require.Error(t, err)
}

func TestTransformSourceMoodDirective(t *testing.T) {
	src := "~kinda mood chaotic\nx = 1\n"
	out, helpers, err := New().TransformSource("t.py", src)
	require.NoError(t, err)
	assert.Contains(t, out, `set_mood("chaotic")`)
	assert.Contains(t, helpers, "set_mood")
}

func TestTransformSourceIshAssignmentAndInlinePassesCompose(t *testing.T) {
	src := "x ~ish 7\n"
	out, helpers, err := New().TransformSource("t.py", src)
	require.NoError(t, err)
	assert.True(t, strings.Contains(out, "x = ish_value(x, 7)"))
	assert.Contains(t, helpers, "ish_value")
}

func TestTransformSourceIshComparisonRoutesThroughComposite(t *testing.T) {
	src := "check(x ~ish y)\n"
	out, helpers, err := New().TransformSource("t.py", src)
	require.NoError(t, err)
	assert.True(t, strings.Contains(out, "check(ish(x, y))"))
	assert.Contains(t, helpers, "ish")
}

func TestTransformSourceImportHeaderEmptyWhenNoHelpers(t *testing.T) {
	src := "plain_statement()\n"
	out, helpers, err := New().TransformSource("t.py", src)
	require.NoError(t, err)
	assert.Empty(t, helpers)
	assert.False(t, strings.Contains(out, "import"))
}
