package registry

import (
	"regexp"
	"sort"
)

func anchored(pattern string) *regexp.Regexp {
	return regexp.MustCompile(pattern)
}

// constructs is the static declarative table described in spec §4.2: one
// entry per construct, read-only after init(). Unlike the teacher's
// pkg/fuzz.Sampler tables (plain data), these entries also carry the
// runtime-helper source text the emitter concatenates — the registry is
// simultaneously a syntax table and a minimal-runtime source catalogue.
var constructs = map[string]*Descriptor{
	"kinda_int": {
		Name:      "kinda_int",
		Category:  CategoryValue,
		Pattern:   anchored(`^(?P<indent>\s*)~kinda int (?P<var>[A-Za-z_]\w*) = (?P<value>.+)$`),
		DependsOn: nil,
		Body:      bodyKindaInt,
	},
	"kinda_float": {
		Name:      "kinda_float",
		Category:  CategoryValue,
		Pattern:   anchored(`^(?P<indent>\s*)~kinda float (?P<var>[A-Za-z_]\w*) = (?P<value>.+)$`),
		DependsOn: nil,
		Body:      bodyKindaFloat,
	},
	"kinda_bool": {
		Name:      "kinda_bool",
		Category:  CategoryValue,
		Pattern:   anchored(`^(?P<indent>\s*)~kinda bool (?P<var>[A-Za-z_]\w*) = (?P<value>.+)$`),
		DependsOn: nil,
		Body:      bodyKindaBool,
	},
	"fuzzy_reassign": {
		Name:      "fuzzy_reassign",
		Category:  CategoryValue,
		Pattern:   anchored(`^(?P<indent>\s*)(?P<var>[A-Za-z_]\w*) ~= (?P<value>.+)$`),
		DependsOn: []string{"kinda_int", "kinda_float", "kinda_bool"},
		Body:      bodyFuzzyReassign,
	},
	"sorta_print": {
		Name:      "sorta_print",
		Category:  CategoryValue,
		Pattern:   anchored(`^(?P<indent>\s*)~sorta print\((?P<args>.*)\)$`),
		DependsOn: nil,
		Body:      bodySortaPrint,
	},
	"time_drift_int": {
		Name:      "time_drift_int",
		Category:  CategoryValue,
		Pattern:   anchored(`^(?P<indent>\s*)~time drift int (?P<var>[A-Za-z_]\w*) = (?P<value>.+)$`),
		DependsOn: nil,
		Body:      bodyTimeDriftInt,
	},
	"time_drift_float": {
		Name:      "time_drift_float",
		Category:  CategoryValue,
		Pattern:   anchored(`^(?P<indent>\s*)~time drift float (?P<var>[A-Za-z_]\w*) = (?P<value>.+)$`),
		DependsOn: nil,
		Body:      bodyTimeDriftFloat,
	},
	"drift_access": {
		Name: "drift_access",
		// No statement-start Pattern: ~drift is an inline read matched by
		// pkg/matcher's dedicated FindDriftConstructs, the same way ~ish
		// and ~welp are, not by the generic block/loop pass.
		Category:  CategoryInline,
		DependsOn: nil,
		Body:      bodyDriftAccess,
	},
	"chaos_tolerance": {
		Name:      "chaos_tolerance",
		Category:  CategoryHelper,
		DependsOn: nil,
		Body:      bodyChaosTolerance,
	},
	"chaos_variance": {
		Name:      "chaos_variance",
		Category:  CategoryHelper,
		DependsOn: nil,
		Body:      bodyChaosVariance,
	},
	"set_mood": {
		// No statement-start Pattern: ~kinda mood is rewritten directly by
		// pkg/transformer.Transformer, not matched by the generic block pass.
		Name:      "set_mood",
		Category:  CategoryHelper,
		DependsOn: nil,
		Body:      bodySetMood,
	},

	"sometimes": {
		Name:      "sometimes",
		Category:  CategoryPrimitiveControl,
		Pattern:   anchored(`^(?P<indent>\s*)~sometimes \((?P<condition>.+)\):\s*$`),
		DependsOn: nil,
		Body:      bodySometimes,
	},
	"maybe": {
		Name:      "maybe",
		Category:  CategoryPrimitiveControl,
		Pattern:   anchored(`^(?P<indent>\s*)~maybe \((?P<condition>.+)\):\s*$`),
		DependsOn: nil,
		Body:      bodyMaybe,
	},
	"probably": {
		Name:      "probably",
		Category:  CategoryPrimitiveControl,
		Pattern:   anchored(`^(?P<indent>\s*)~probably \((?P<condition>.+)\):\s*$`),
		DependsOn: nil,
		Body:      bodyProbably,
	},
	"rarely": {
		Name:      "rarely",
		Category:  CategoryPrimitiveControl,
		Pattern:   anchored(`^(?P<indent>\s*)~rarely \((?P<condition>.+)\):\s*$`),
		DependsOn: nil,
		Body:      bodyRarely,
	},

	"ish_comparison": {
		Name:      "ish_comparison",
		Category:  CategoryInline,
		DependsOn: []string{"kinda_float", "probably"},
		Body:      bodyIshComparison,
	},
	"ish_value": {
		Name:      "ish_value",
		Category:  CategoryInline,
		DependsOn: []string{"kinda_float", "sometimes"},
		Body:      bodyIshValue,
	},
	"welp_fallback": {
		Name:      "welp_fallback",
		Category:  CategoryInline,
		DependsOn: nil,
		Body:      bodyWelpFallback,
	},

	"sometimes_while": {
		Name:      "sometimes_while",
		Category:  CategoryLoop,
		Pattern:   anchored(`^(?P<indent>\s*)~sometimes_while (?P<condition>.+):\s*$`),
		DependsOn: nil,
		Body:      bodySometimesWhile,
	},
	"maybe_for": {
		Name:      "maybe_for",
		Category:  CategoryLoop,
		Pattern:   anchored(`^(?P<indent>\s*)~maybe_for (?P<var>[A-Za-z_]\w*) in (?P<iterable>.+):\s*$`),
		DependsOn: nil,
		Body:      bodyMaybeFor,
	},
	"kinda_repeat": {
		Name:      "kinda_repeat",
		Category:  CategoryLoop,
		Pattern:   anchored(`^(?P<indent>\s*)~kinda_repeat\((?P<count>.+)\):\s*$`),
		DependsOn: nil,
		Body:      bodyKindaRepeat,
	},
	"eventually_until": {
		Name:      "eventually_until",
		Category:  CategoryLoop,
		Pattern:   anchored(`^(?P<indent>\s*)~eventually_until (?P<condition>.+):\s*$`),
		DependsOn: []string{"wilson_interval"},
		Body:      bodyEventuallyUntil,
	},
	"wilson_interval": {
		Name:      "wilson_interval",
		Category:  CategoryHelper,
		DependsOn: nil,
		Body:      bodyWilsonInterval,
	},

	"sorta": {
		Name:      "sorta",
		Category:  CategoryComposite,
		Pattern:   anchored(`^(?P<indent>\s*)~sorta \((?P<condition>.+)\):\s*$`),
		DependsOn: []string{"sometimes", "maybe"},
		Body:      bodySorta,
	},
	"ish": {
		Name:      "ish",
		Category:  CategoryComposite,
		DependsOn: []string{"ish_value", "ish_comparison"},
		Body:      bodyIsh,
	},
}

// SortedNames is computed once at init time, the same way the teacher's
// pkg/fuzz.Sampler sorts tierNames from its tierNamespaces map, so iteration
// order (registry dumps, closure tie-breaks) is deterministic.
var SortedNames []string

func init() {
	SortedNames = make([]string, 0, len(constructs))
	for name := range constructs {
		SortedNames = append(SortedNames, name)
	}
	sort.Strings(SortedNames)
}

// Get returns the descriptor for name, or an UnknownConstructError.
func Get(name string) (*Descriptor, error) {
	d, ok := constructs[name]
	if !ok {
		return nil, &RegistryError{Op: "get", Err: &UnknownConstructError{Name: name}}
	}
	return d, nil
}

// All returns every registered descriptor in deterministic (sorted-name)
// order.
func All() []*Descriptor {
	out := make([]*Descriptor, 0, len(SortedNames))
	for _, name := range SortedNames {
		out = append(out, constructs[name])
	}
	return out
}

// BlockPatterns returns the descriptors that have a statement-start Pattern
// (i.e. everything the matcher's generic block/loop pass can recognize),
// in deterministic order. ish/welp are excluded — they're located by
// pkg/matcher's dedicated inline scanners.
func BlockPatterns() []*Descriptor {
	out := make([]*Descriptor, 0, len(SortedNames))
	for _, name := range SortedNames {
		d := constructs[name]
		if d.Pattern != nil {
			out = append(out, d)
		}
	}
	return out
}
