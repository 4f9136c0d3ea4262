package transformer

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// moodDirective matches the transformer-only `~kinda mood NAME` directive.
// It rewrites to a call into the "set_mood" helper rather than writing
// _personality.mood directly, so an unknown mood name falls back to
// "playful" with a styled diagnostic instead of corrupting profile()'s
// later lookup.
var moodDirective = regexp.MustCompile(`^(\s*)~kinda mood (\w+)\s*$`)

// Transformer runs the fixed four-pass pipeline from spec §4.4 over a
// single source file: inline ~ish, inline ~welp, inline ~drift, then the
// block/loop construct pass, finally prefixing the import header naming
// every helper the Used-Helper Set recorded.
type Transformer struct{}

func New() *Transformer {
	return &Transformer{}
}

// TransformFile reads path and transforms its contents. No partial output
// is ever returned: on error the returned source is empty.
func (t *Transformer) TransformFile(path string) (string, []string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("transformer: read %s: %w", path, err)
	}
	return t.TransformSource(path, string(raw))
}

// TransformSource runs the pipeline over src. path is used only for error
// excerpts and may be empty for in-memory callers (e.g. tests).
func (t *Transformer) TransformSource(path, src string) (string, []string, error) {
	helpers := newHelperSet()
	lines := strings.Split(src, "\n")

	for i, line := range lines {
		if m := moodDirective.FindStringSubmatch(line); m != nil {
			helpers.Add("set_mood")
			lines[i] = m[1] + `set_mood("` + m[2] + `")`
			continue
		}
		line = applyIshPass(line, helpers)
		line = applyWelpPass(line, helpers)
		line = applyDriftPass(line, helpers)
		lines[i] = line
	}

	bt := &blockTransformer{helpers: helpers, path: path}
	idx := make([]int, len(lines))
	for i := range lines {
		idx[i] = i
	}
	body, err := bt.transformLines(idx, lines)
	if err != nil {
		return "", nil, err
	}

	out := buildImportHeader(helpers.Names()) + strings.Join(body, "\n")
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out, helpers.Names(), nil
}

// buildImportHeader emits spec §4.4's single import line naming every
// helper actually used, sorted for determinism. An empty Used-Helper Set
// produces no header at all.
func buildImportHeader(names []string) string {
	if len(names) == 0 {
		return ""
	}
	return "from kinda_runtime import " + strings.Join(names, ", ") + "\n\n"
}
