package registry

import "fmt"

// UnknownConstructError is returned by Get and DependencyClosure when a name
// isn't registered. Per the registry's error taxonomy this is a
// RegistryError — it indicates a core bug, never a user input mistake,
// since every name reaching the registry was already validated by the
// matcher/transformer against the construct list.
type UnknownConstructError struct {
	Name string
}

func (e *UnknownConstructError) Error() string {
	return fmt.Sprintf("registry: unknown construct %q", e.Name)
}

// CycleError is returned by DependencyClosure when depends_on edges form a
// cycle — a registry build-time bug, since dependencies are a fixed static
// table, not user input.
type CycleError struct {
	Path []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("registry: dependency cycle detected: %v", e.Path)
}

// RegistryError wraps any registry failure for errors.As-based handling.
type RegistryError struct {
	Op  string
	Err error
}

func (e *RegistryError) Error() string {
	return fmt.Sprintf("registry: %s: %v", e.Op, e.Err)
}

func (e *RegistryError) Unwrap() error {
	return e.Err
}
