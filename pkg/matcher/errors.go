package matcher

import "fmt"

// ParseError is raised when the matcher cannot safely locate construct
// boundaries: unbalanced brackets, an unterminated string literal, or a
// construct used in an unparseable position. It always carries enough to
// point the user at the exact spot.
type ParseError struct {
	Line    int
	Column  int
	Excerpt string
	Cause   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s (near %q)", e.Line, e.Column, e.Cause, e.Excerpt)
}
