// Package registry is the static, declarative table of constructs: their
// syntactic patterns, runtime-helper source bodies, and dependency edges.
// The registry is built once at init time and is read-only afterward.
package registry

import "regexp"

// Category distinguishes how a construct participates in transformation and
// how its helper relates to others.
type Category string

const (
	// CategoryValue constructs declare or mutate a value in place
	// (kinda int/float/bool, fuzzy reassign, sorta print, drift).
	CategoryValue Category = "value"
	// CategoryPrimitiveControl constructs gate a block on a probabilistic
	// decision (sometimes/maybe/probably/rarely).
	CategoryPrimitiveControl Category = "primitive_control"
	// CategoryLoop constructs are the four probabilistic loop forms.
	CategoryLoop Category = "loop"
	// CategoryComposite constructs are built from primitives by pkg/composition.
	CategoryComposite Category = "composite"
	// CategoryInline constructs (~ish, ~welp) are matched by dedicated
	// balanced-delimiter scanners rather than the generic Pattern field.
	CategoryInline Category = "inline"
	// CategoryHelper constructs have no surface syntax of their own; they
	// exist only as a dependency of another construct's body (e.g.
	// wilson_interval, pulled in by eventually_until).
	CategoryHelper Category = "helper"
)

// Descriptor is one entry in the Construct Registry.
type Descriptor struct {
	// Name is the construct's unique identifier, e.g. "sometimes", "ish_value".
	Name string

	Category Category

	// Pattern recognizes the construct's syntax at statement start. It is
	// nil for inline constructs (ish, welp) that the matcher locates with
	// dedicated string-literal-aware, delimiter-balanced scanners instead —
	// see pkg/matcher.
	Pattern *regexp.Regexp

	// DependsOn lists other construct names whose helper bodies must be
	// emitted alongside this one. Must be acyclic (checked at package init
	// by closure.go's init, which runs DependencyClosure over every name).
	DependsOn []string

	// Body is the host-language source text implementing the runtime
	// helper, written once and reused by every emitted program that uses
	// this construct — see pkg/runtimegen.
	Body string
}
