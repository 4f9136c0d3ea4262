package registry

import "sort"

// color tracks DFS visitation state for cycle-safe topological sort, the
// same white/gray/black scheme katalvlaran-lvlath's dfs.TopologicalSort
// uses — reimplemented locally here rather than imported (see DESIGN.md's
// entry on the graph library).
type color int

const (
	white color = iota
	gray
	black
)

// DependencyClosure returns the unique, topologically sorted set of
// construct names reachable from names via depends_on edges, including the
// names themselves. Ties (independent subtrees) break in lexical order,
// matching SortedNames.
func DependencyClosure(names []string) ([]string, error) {
	colors := make(map[string]color, len(constructs))
	var order []string

	var visit func(name string, path []string) error
	visit = func(name string, path []string) error {
		switch colors[name] {
		case black:
			return nil
		case gray:
			return &RegistryError{Op: "dependency_closure", Err: &CycleError{Path: append(append([]string{}, path...), name)}}
		}

		d, ok := constructs[name]
		if !ok {
			return &RegistryError{Op: "dependency_closure", Err: &UnknownConstructError{Name: name}}
		}

		colors[name] = gray
		deps := append([]string{}, d.DependsOn...)
		sort.Strings(deps)
		for _, dep := range deps {
			if err := visit(dep, append(path, name)); err != nil {
				return err
			}
		}
		colors[name] = black
		order = append(order, name)
		return nil
	}

	seeds := append([]string{}, names...)
	sort.Strings(seeds)
	for _, name := range seeds {
		if err := visit(name, nil); err != nil {
			return nil, err
		}
	}
	return order, nil
}

func init() {
	// Validate acyclicity of the full static table at build time, per the
	// Construct Descriptor invariant in spec §3: "depends_on is acyclic;
	// every name referenced is registered."
	if _, err := DependencyClosure(SortedNames); err != nil {
		panic(err)
	}
}
