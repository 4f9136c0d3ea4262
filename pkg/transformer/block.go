package transformer

import (
	"fmt"
	"strings"

	"github.com/kmayhew2020/kinda-lang-sub002/pkg/matcher"
)

// blockTransformer implements spec §4.4 pass 3: recognizing registry
// patterns at statement start and pairing each header with its indented
// block body, recursively, per the host language's indentation rules.
type blockTransformer struct {
	helpers *HelperSet
	counter int
	path    string
}

func (bt *blockTransformer) transformLines(lines []int, all []string) ([]string, error) {
	var out []string
	i := 0
	for i < len(lines) {
		lineNo := lines[i]
		line := all[lineNo]

		if strings.TrimSpace(line) == "" {
			out = append(out, line)
			i++
			continue
		}

		matches := matcher.FindConstructs(line)
		if len(matches) == 0 {
			out = append(out, line)
			i++
			continue
		}

		m := matches[0]
		headerIndent := leadingIndentLen(line)

		j := i + 1
		var bodyIdx []int
		for j < len(lines) {
			candidate := all[lines[j]]
			if strings.TrimSpace(candidate) == "" {
				bodyIdx = append(bodyIdx, lines[j])
				j++
				continue
			}
			if leadingIndentLen(candidate) <= headerIndent {
				break
			}
			bodyIdx = append(bodyIdx, lines[j])
			j++
		}

		if len(bodyIdx) == 0 {
			return nil, &TransformError{
				Path: bt.path, Line: lineNo + 1, Column: headerIndent + 1,
				Excerpt: strings.TrimSpace(line),
				Cause:   fmt.Errorf("%s construct header has no indented body", m.Name),
			}
		}

		body, err := bt.transformLines(bodyIdx, all)
		if err != nil {
			return nil, err
		}

		emitted, err := bt.emit(m, headerIndent, body, lineNo)
		if err != nil {
			return nil, err
		}
		out = append(out, emitted...)
		i = j
	}
	return out, nil
}

// conditionalConstructs gate their body behind a plain `if helper(...):`
// because the helper itself returns the bool the host `if` needs.
var conditionalConstructs = map[string]bool{
	"sometimes": true, "maybe": true, "probably": true, "rarely": true,
}

func (bt *blockTransformer) emit(m matcher.Match, indent int, body []string, lineNo int) ([]string, error) {
	pad := strings.Repeat(" ", indent)

	if conditionalConstructs[m.Name] {
		bt.helpers.Add(m.Name)
		header := pad + "if " + m.Name + "(" + m.Captures["condition"] + "):"
		return append([]string{header}, body...), nil
	}

	switch m.Name {
	case "sometimes_while":
		return bt.emitSometimesWhile(m, indent, body), nil
	case "eventually_until":
		return bt.emitEventuallyUntil(m, indent, body), nil
	case "maybe_for":
		return bt.emitMaybeFor(m, indent, body), nil
	case "kinda_repeat":
		return bt.emitKindaRepeat(m, indent, body), nil
	case "sorta":
		return bt.emitSorta(m, indent, body), nil
	default:
		return nil, &TransformError{
			Path: bt.path, Line: lineNo + 1, Column: indent + 1,
			Excerpt: m.Name, Cause: fmt.Errorf("construct %q has no block emission rule", m.Name),
		}
	}
}

// emitSometimesWhile and the other probabilistic-loop emitters below splice
// the body directly under a real host for/while statement, guarded by a
// decision helper that carries no args of its own — unlike emitSorta, whose
// body runs at most once per evaluation and is safe to wrap in a callback,
// a loop body commonly contains the user's own break/continue, which must
// land on an actual loop rather than a nested def.
func (bt *blockTransformer) emitSometimesWhile(m matcher.Match, indent int, body []string) []string {
	bt.helpers.Add("sometimes_while")
	pad := strings.Repeat(" ", indent)
	inner := strings.Repeat(" ", indent+4)

	out := []string{
		fmt.Sprintf("%swhile %s:", pad, m.Captures["condition"]),
		fmt.Sprintf("%sif not sometimes_while():", inner),
		fmt.Sprintf("%s    break", inner),
	}
	out = append(out, body...)
	return out
}

func (bt *blockTransformer) emitEventuallyUntil(m matcher.Match, indent int, body []string) []string {
	bt.helpers.Add("eventually_until")
	bt.helpers.Add("wilson_interval")
	bt.counter++
	n := bt.counter
	pad := strings.Repeat(" ", indent)

	out := []string{
		fmt.Sprintf("%s_ev_%d = eventually_until()", pad, n),
		fmt.Sprintf("%swhile not _ev_%d.step(%s):", pad, n, m.Captures["condition"]),
	}
	out = append(out, body...)
	return out
}

func (bt *blockTransformer) emitMaybeFor(m matcher.Match, indent int, body []string) []string {
	bt.helpers.Add("maybe_for")
	pad := strings.Repeat(" ", indent)
	inner := strings.Repeat(" ", indent+4)
	v := m.Captures["var"]

	out := []string{
		fmt.Sprintf("%sfor %s in %s:", pad, v, m.Captures["iterable"]),
		fmt.Sprintf("%sif not maybe_for():", inner),
		fmt.Sprintf("%s    continue", inner),
	}
	out = append(out, body...)
	return out
}

func (bt *blockTransformer) emitKindaRepeat(m matcher.Match, indent int, body []string) []string {
	bt.helpers.Add("kinda_repeat")
	pad := strings.Repeat(" ", indent)

	out := []string{fmt.Sprintf("%sfor _ in range(kinda_repeat(%s)):", pad, m.Captures["count"])}
	out = append(out, body...)
	return out
}

func (bt *blockTransformer) emitSorta(m matcher.Match, indent int, body []string) []string {
	bt.helpers.Add("sorta")
	bt.helpers.Add("sometimes")
	bt.helpers.Add("maybe")
	bt.counter++
	n := bt.counter
	pad := strings.Repeat(" ", indent)

	out := []string{fmt.Sprintf("%sdef _body_%d():", pad, n)}
	out = append(out, body...)
	out = append(out, fmt.Sprintf("%ssorta(%s, _body_%d)", pad, m.Captures["condition"], n))
	return out
}
