package matcher

import (
	"sort"

	"github.com/kmayhew2020/kinda-lang-sub002/pkg/registry"
)

// Match is one construct occurrence: its registry name, byte span within
// the (comment-stripped) line, and its named capture groups.
type Match struct {
	Name     string
	Start    int
	End      int
	Captures map[string]string
}

// FindConstructs returns every top-level (statement-start) construct
// occurrence on line, left to right, skipping anything inside a string
// literal or an unquoted trailing comment. Inline constructs (~ish, ~welp)
// are not included — see FindIshConstructs/FindWelpConstructs.
func FindConstructs(line string) []Match {
	idx := NewLineIndex(line)
	effective := idx.EffectiveLine()

	var matches []Match
	for _, d := range registry.BlockPatterns() {
		loc := d.Pattern.FindStringSubmatchIndex(effective)
		if loc == nil {
			continue
		}
		if idx.IsInsideStringLiteral(loc[0]) {
			continue
		}
		matches = append(matches, Match{
			Name:     d.Name,
			Start:    loc[0],
			End:      loc[1],
			Captures: namedCaptures(d.Pattern, effective, loc),
		})
	}

	sort.Slice(matches, func(i, j int) bool { return matches[i].Start < matches[j].Start })
	return matches
}

func namedCaptures(re interface {
	SubexpNames() []string
}, s string, loc []int) map[string]string {
	names := re.SubexpNames()
	out := make(map[string]string, len(names))
	for i, name := range names {
		if name == "" || 2*i+1 >= len(loc) || loc[2*i] < 0 {
			continue
		}
		out[name] = s[loc[2*i]:loc[2*i+1]]
	}
	return out
}
