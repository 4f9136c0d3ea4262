package matcher

import "regexp"

var driftToken = regexp.MustCompile(`(?P<var>[A-Za-z_]\w*) ~drift`)

// DriftMatch is one inline ~drift read: the variable name and the span of
// the whole "NAME ~drift" token.
type DriftMatch struct {
	Start, End int
	Var        string
}

// FindDriftConstructs locates every inline "NAME ~drift" read on line,
// outside string literals and comments.
func FindDriftConstructs(line string) []DriftMatch {
	idx := NewLineIndex(line)
	effective := idx.EffectiveLine()

	var out []DriftMatch
	for _, loc := range driftToken.FindAllStringSubmatchIndex(effective, -1) {
		if idx.IsInsideStringLiteral(loc[0]) {
			continue
		}
		varIdx := driftToken.SubexpIndex("var")
		out = append(out, DriftMatch{
			Start: loc[0],
			End:   loc[1],
			Var:   effective[loc[2*varIdx]:loc[2*varIdx+1]],
		})
	}
	return out
}
