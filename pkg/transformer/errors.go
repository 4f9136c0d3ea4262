package transformer

import "fmt"

// TransformError is raised when a construct is recognized but cannot be
// rewritten (e.g. a block construct header with no indented body). Per spec
// §4.4, the first unrecoverable error aborts the whole file: no partial
// emission.
type TransformError struct {
	Path    string
	Line    int
	Column  int
	Excerpt string
	Cause   error
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("%s:%d:%d: transform error: %v (near %q)", e.Path, e.Line, e.Column, e.Cause, e.Excerpt)
}

func (e *TransformError) Unwrap() error {
	return e.Cause
}
