// Package composition implements C7: the composition framework that builds
// composite constructs (sorta, ish) out of the personality-gated primitives
// in pkg/fuzzyruntime, with a per-context result cache and a feature flag
// to fall back to the primitives directly.
package composition

import (
	"sync"

	"github.com/kmayhew2020/kinda-lang-sub002/pkg/fuzzyruntime"
	"github.com/kmayhew2020/kinda-lang-sub002/pkg/personality"
)

// USE_COMPOSITION_ISH mirrors the emitted runtime's feature flag from spec
// §4.2/§9: when false, ~ish resolves straight to fuzzyruntime.IshValue /
// IshComparison instead of through the cached Composition lookup below.
// Named in upper-snake-case to match the flag's own surface identifier,
// not Go style, since it's meant to read as the same toggle on both sides
// of the codegen boundary.
var USE_COMPOSITION_ISH = true

// Composition is a named, cacheable composite construct built from one or
// more primitive gates.
type Composition interface {
	Name() string
	Apply(ctx *personality.Context, args ...interface{}) interface{}
}

var (
	registryMu sync.RWMutex
	registry   = map[string]Composition{}
)

func register(c Composition) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[c.Name()] = c
}

// Get returns the registered composition for name, or false if none exists.
func Get(name string) (Composition, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	c, ok := registry[name]
	return c, ok
}

func init() {
	register(&SortaComposition{})
	register(&IshToleranceComposition{})
}

// cacheKey identifies one memoized composition result: the composition
// name, the owning context, and the execution tick it was computed at.
// Results from a prior execution tick are never reused — the cache exists
// only to dedupe repeated evaluation of the same composite expression
// within a single construct's emission, not across time.
type cacheKey struct {
	name string
	ctx  *personality.Context
	tick uint64
}

var (
	cacheMu sync.Mutex
	cache   = map[cacheKey]interface{}{}
)

func cached(name string, ctx *personality.Context, compute func() interface{}) interface{} {
	key := cacheKey{name: name, ctx: ctx, tick: ctx.Snapshot().ExecutionCount}
	cacheMu.Lock()
	if v, ok := cache[key]; ok {
		cacheMu.Unlock()
		return v
	}
	cacheMu.Unlock()

	v := compute()

	cacheMu.Lock()
	cache[key] = v
	cacheMu.Unlock()
	return v
}

// InvalidateCache drops every memoized result belonging to ctx. Callers
// must invoke this after ctx.Seed — a reseed changes the RNG stream, so a
// cached result keyed off a stale tick would silently reuse an answer from
// a different reproducibility line.
func InvalidateCache(ctx *personality.Context) {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	for k := range cache {
		if k.ctx == ctx {
			delete(cache, k)
		}
	}
}

// SortaComposition composes Sometimes+Maybe into the "run it, leniently"
// control construct (spec §4.2's "Composite: sorta").
type SortaComposition struct{}

func (c *SortaComposition) Name() string { return "sorta" }

// Apply expects args[0] to be the bool condition and args[1] a func().
// It returns a bool reporting whether body ran.
func (c *SortaComposition) Apply(ctx *personality.Context, args ...interface{}) interface{} {
	cond, _ := args[0].(bool)
	body, _ := args[1].(func())
	return cached("sorta", ctx, func() interface{} {
		return fuzzyruntime.Sorta(ctx, cond, body)
	})
}

// IshToleranceComposition composes KindaFloat+Probably into the tolerance
// comparison (~ish as a comparison), the composite half of spec §4.2's "ish"
// entry. The value-jitter half (IshValue) has no cacheable gate to compose
// from and is called directly by pkg/fuzzyruntime.
type IshToleranceComposition struct{}

func (c *IshToleranceComposition) Name() string { return "ish_tolerance" }

// Apply expects args[0], args[1] as float64 operands and an optional
// args[2] float64 tolerance override.
func (c *IshToleranceComposition) Apply(ctx *personality.Context, args ...interface{}) interface{} {
	a, _ := args[0].(float64)
	b, _ := args[1].(float64)
	hasTol := len(args) > 2
	tol := 0.0
	if hasTol {
		tol, _ = args[2].(float64)
	}
	return cached("ish_tolerance", ctx, func() interface{} {
		return fuzzyruntime.IshComparison(ctx, a, b, tol, hasTol)
	})
}

// ApplyIsh is the single entry point the transformer's emitted call site
// would reach for a composite ~ish comparison, honoring USE_COMPOSITION_ISH.
func ApplyIsh(ctx *personality.Context, a, b float64, tol *float64) bool {
	if !USE_COMPOSITION_ISH {
		hasTol := tol != nil
		t := 0.0
		if hasTol {
			t = *tol
		}
		return fuzzyruntime.IshComparison(ctx, a, b, t, hasTol)
	}
	comp, _ := Get("ish_tolerance")
	var result interface{}
	if tol != nil {
		result = comp.Apply(ctx, a, b, *tol)
	} else {
		result = comp.Apply(ctx, a, b)
	}
	return result.(bool)
}
