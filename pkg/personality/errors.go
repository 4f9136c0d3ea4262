package personality

import "fmt"

// UnknownProfileError is returned when SetMood is asked for a mood name that
// isn't in the Profiles table.
type UnknownProfileError struct {
	Name string
}

func (e *UnknownProfileError) Error() string {
	return fmt.Sprintf("personality: unknown mood %q", e.Name)
}

// PersonalityError wraps a failure inside the personality engine so callers
// can recognize it with errors.As instead of string matching, per the
// engine's error taxonomy.
type PersonalityError struct {
	Op  string
	Err error
}

func (e *PersonalityError) Error() string {
	return fmt.Sprintf("personality: %s: %v", e.Op, e.Err)
}

func (e *PersonalityError) Unwrap() error {
	return e.Err
}
