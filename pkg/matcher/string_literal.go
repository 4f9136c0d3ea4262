// Package matcher implements the string-literal-aware, delimiter-balanced
// scanner that locates construct occurrences (and their argument spans) in
// a line of .knda source.
package matcher

// LineIndex precomputes, once per line, which byte offsets fall inside a
// string literal and where an unquoted comment begins. Every other
// operation in this package consults it instead of re-scanning quotes.
type LineIndex struct {
	line         string
	inString     []bool
	commentStart int // -1 if the line has no unquoted comment marker
}

// NewLineIndex scans line once, tracking quote state (single/double,
// triple-quoted, backslash-escaped) and the first unquoted '#'.
func NewLineIndex(line string) *LineIndex {
	idx := &LineIndex{
		line:         line,
		inString:     make([]bool, len(line)+1),
		commentStart: -1,
	}
	idx.scan()
	return idx
}

func (idx *LineIndex) scan() {
	s := idx.line
	i := 0
	for i < len(s) {
		c := s[i]

		if c == '\'' || c == '"' {
			quote := c
			triple := i+2 < len(s) && s[i+1] == quote && s[i+2] == quote
			width := 1
			if triple {
				width = 3
			}
			start := i
			i += width
			for i < len(s) {
				if s[i] == '\\' && i+1 < len(s) {
					i += 2
					continue
				}
				if triple {
					if i+2 < len(s) && s[i] == quote && s[i+1] == quote && s[i+2] == quote {
						i += 3
						break
					}
				} else if s[i] == quote {
					i++
					break
				}
				i++
			}
			for j := start; j < i && j < len(idx.inString); j++ {
				idx.inString[j] = true
			}
			continue
		}

		if c == '#' {
			idx.commentStart = i
			return
		}

		i++
	}
}

// IsInsideStringLiteral reports whether byte offset pos in line falls
// inside a string literal.
func (idx *LineIndex) IsInsideStringLiteral(pos int) bool {
	if pos < 0 || pos >= len(idx.inString) {
		return false
	}
	return idx.inString[pos]
}

// EffectiveLine returns the line with any unquoted trailing comment
// stripped — construct matching never looks past this point.
func (idx *LineIndex) EffectiveLine() string {
	if idx.commentStart < 0 {
		return idx.line
	}
	return idx.line[:idx.commentStart]
}

// IsInsideStringLiteral is the package-level convenience form of
// LineIndex.IsInsideStringLiteral for one-off callers.
func IsInsideStringLiteral(line string, pos int) bool {
	return NewLineIndex(line).IsInsideStringLiteral(pos)
}
