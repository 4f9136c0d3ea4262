package registry

import "fmt"

// Validator accumulates warnings and errors while checking the static
// table's invariants, the same Warnings/Errors accumulator shape as the
// teacher's scenario/validator.Validator.
type Validator struct {
	Warnings []string
	Errors   []string
}

// New returns an empty Validator.
func New() *Validator {
	return &Validator{}
}

// Validate checks every registered descriptor against the invariants in
// spec §3 (acyclic depends_on, every referenced name registered, non-empty
// body) and returns whether it found zero errors. Warnings are advisory
// (e.g. a descriptor with no Pattern and no helper dependents, which can
// never actually be reached by a real program).
func (v *Validator) Validate() bool {
	v.Warnings = nil
	v.Errors = nil

	referenced := make(map[string]bool)
	for _, d := range constructs {
		for _, dep := range d.DependsOn {
			referenced[dep] = true
			if _, ok := constructs[dep]; !ok {
				v.Errors = append(v.Errors, fmt.Sprintf("%s depends_on unknown construct %q", d.Name, dep))
			}
		}
	}

	if _, err := DependencyClosure(SortedNames); err != nil {
		v.Errors = append(v.Errors, err.Error())
	}

	for _, name := range SortedNames {
		d := constructs[name]
		if d.Body == "" {
			v.Errors = append(v.Errors, fmt.Sprintf("%s has an empty body", name))
		}
		if d.Pattern == nil && d.Category != CategoryInline && d.Category != CategoryHelper {
			v.Warnings = append(v.Warnings, fmt.Sprintf("%s has no statement pattern and is not inline/helper", name))
		}
		if d.Category == CategoryHelper && !referenced[name] {
			v.Warnings = append(v.Warnings, fmt.Sprintf("helper %s is never depended on by any other construct", name))
		}
	}

	return len(v.Errors) == 0
}
