package matcher

import "regexp"

var (
	ishToken  = regexp.MustCompile(`~ish\b`)
	welpToken = regexp.MustCompile(`~welp\b`)
)

// IshMatch is one inline ~ish occurrence: the token span, the balanced
// backward-scanned left operand, and the balanced forward-scanned right
// operand. Classifying it as an assignment or a comparison (spec §4.4) is
// the transformer's job, not the matcher's — the matcher only locates spans.
type IshMatch struct {
	Start, End           int
	LeftStart, LeftEnd   int
	RightStart, RightEnd int
}

// WelpMatch is one inline ~welp occurrence: the token span, the balanced
// backward-scanned left operand (the expression that might fail), and the
// balanced forward-scanned right operand (the fallback value).
type WelpMatch struct {
	Start, End           int
	LeftStart, LeftEnd   int
	RightStart, RightEnd int
}

// FindIshConstructs locates every ~ish occurrence on line, outside string
// literals and comments, with each one's right operand span resolved by
// balanced-delimiter scanning forward from the token.
func FindIshConstructs(line string) []IshMatch {
	idx := NewLineIndex(line)
	effective := idx.EffectiveLine()

	var out []IshMatch
	for _, loc := range ishToken.FindAllStringIndex(effective, -1) {
		if idx.IsInsideStringLiteral(loc[0]) {
			continue
		}
		ls, le := scanBackward(effective, loc[0])
		ls, le = trimSpanWS(effective, ls, le)
		rs, re := scanForward(effective, loc[1])
		rs, re = trimSpanWS(effective, rs, re)
		out = append(out, IshMatch{
			Start: loc[0], End: loc[1],
			LeftStart: ls, LeftEnd: le,
			RightStart: rs, RightEnd: re,
		})
	}
	return out
}

// FindWelpConstructs locates every ~welp occurrence on line, outside string
// literals and comments, resolving both its preceding expression (backward
// scan) and its fallback expression (forward scan).
func FindWelpConstructs(line string) []WelpMatch {
	idx := NewLineIndex(line)
	effective := idx.EffectiveLine()

	var out []WelpMatch
	for _, loc := range welpToken.FindAllStringIndex(effective, -1) {
		if idx.IsInsideStringLiteral(loc[0]) {
			continue
		}
		ls, le := scanBackward(effective, loc[0])
		ls, le = trimSpanWS(effective, ls, le)
		rs, re := scanForward(effective, loc[1])
		rs, re = trimSpanWS(effective, rs, re)
		out = append(out, WelpMatch{
			Start: loc[0], End: loc[1],
			LeftStart: ls, LeftEnd: le,
			RightStart: rs, RightEnd: re,
		})
	}
	return out
}

// boundaryKeywords are the keyword boundaries both scans stop at (at
// bracket depth 0): "if"/"while"/"and"/"or"/"not"/"return". Besides these,
// scanForward stops at a depth-0 comma or colon (depth-0 colons only occur
// at statement end in .knda source) and scanBackward at a depth-0 comma or
// bare assignment.
var boundaryKeywords = []string{"if ", "while ", "and ", "or ", "not ", "return "}

// scanForward walks from start through balanced (), [], {} until it hits a
// depth-0 comma, colon, boundary keyword, or end of string.
func scanForward(s string, start int) (int, int) {
	depth := 0
	i := start
	for i < len(s) {
		c := s[i]
		switch c {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			if depth == 0 {
				return start, i
			}
			depth--
		case ',', ':':
			if depth == 0 {
				return start, i
			}
		}
		if depth == 0 {
			if _, ok := matchesKeywordAt(s, i, boundaryKeywords); ok {
				return start, i
			}
		}
		i++
	}
	return start, len(s)
}

// scanBackward walks from end (exclusive) back through balanced brackets
// until it hits a depth-0 comma, an assignment operator, a boundary
// keyword, or the start of the line.
func scanBackward(s string, end int) (int, int) {
	depth := 0
	i := end
	for i > 0 {
		if depth == 0 {
			for _, kw := range boundaryKeywords {
				k := i - len(kw)
				if k >= 0 && s[k:i] == kw && (k == 0 || s[k-1] == ' ' || s[k-1] == '\t') {
					return i, end
				}
			}
		}
		c := s[i-1]
		switch c {
		case ')', ']', '}':
			depth++
		case '(', '[', '{':
			if depth == 0 {
				return i, end
			}
			depth--
		case ',':
			if depth == 0 {
				return i, end
			}
		case '=':
			// Don't stop on comparison/fuzzy operators ==, !=, <=, >=, ~=;
			// only a bare assignment `=` is a statement-level boundary.
			if depth == 0 && !isComparisonEquals(s, i-1) {
				return i, end
			}
		}
		i--
	}
	return 0, end
}

func isComparisonEquals(s string, pos int) bool {
	if pos+1 < len(s) && s[pos+1] == '=' {
		return true
	}
	if pos > 0 {
		prev := s[pos-1]
		if prev == '=' || prev == '!' || prev == '<' || prev == '>' || prev == '~' {
			return true
		}
	}
	return false
}

// trimSpanWS trims leading/trailing ASCII spaces from the [start,end) span
// so operand spans never include the whitespace that separates them from
// the construct token or the boundary that stopped the scan.
func trimSpanWS(s string, start, end int) (int, int) {
	for start < end && s[start] == ' ' {
		start++
	}
	for end > start && s[end-1] == ' ' {
		end--
	}
	return start, end
}

func matchesKeywordAt(s string, pos int, keywords []string) (string, bool) {
	for _, kw := range keywords {
		end := pos + len(kw)
		if end <= len(s) && s[pos:end] == kw {
			return kw, true
		}
	}
	return "", false
}
