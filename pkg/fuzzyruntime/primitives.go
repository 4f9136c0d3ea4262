package fuzzyruntime

import (
	"fmt"
	"io"
	"math"

	"github.com/kmayhew2020/kinda-lang-sub002/pkg/personality"
)

// ShrugMessage is the fixed fallback sorta_print prints when the draw
// fails, matching the literal placeholder string the emitted Python's
// bodySortaPrint writes.
const ShrugMessage = "\U0001F937️ ..."

// KindaInt returns v jittered by a uniform integer drawn from the active
// profile's symmetric fuzz range.
func KindaInt(ctx *personality.Context, v int) int {
	lo, hi := ctx.ChaosFuzzRange()
	r := lo
	if hi > lo {
		r = lo + ctx.Intn(hi-lo+1)
	}
	ctx.UpdateChaosState("kinda_int", false)
	return v + r
}

// KindaFloat returns v jittered by a Gaussian sample scaled by the active
// profile's float variance.
func KindaFloat(ctx *personality.Context, v float64) float64 {
	sigma := ctx.ChaosVariance()
	g := ctx.NormFloat64()
	ctx.UpdateChaosState("kinda_float", false)
	return v + g*sigma
}

// KindaBool returns v, occasionally flipped, at a rate derived from the
// amplifier/cascade pipeline for the "kinda_bool" construct.
func KindaBool(ctx *personality.Context, v bool) bool {
	flipProb := 1 - ctx.ChaosProbability("kinda_bool", v)
	result := v
	if ctx.Float64() < flipProb {
		result = !v
	}
	ctx.UpdateChaosState("kinda_bool", false)
	return result
}

// FuzzyReassign re-jitters value through the primitive matching its dynamic
// type, the Go mirror of the emitted `fuzzy_reassign` dispatch. Types with
// no fuzzy primitive pass through unchanged.
func FuzzyReassign(ctx *personality.Context, value interface{}) interface{} {
	switch v := value.(type) {
	case bool:
		return KindaBool(ctx, v)
	case int:
		return KindaInt(ctx, v)
	case float64:
		return KindaFloat(ctx, v)
	default:
		return value
	}
}

// SortaPrint writes args to w most of the time, and a shrug placeholder the
// rest, per the active profile's "sorta_print" probability.
func SortaPrint(ctx *personality.Context, w io.Writer, args ...interface{}) {
	if ctx.Float64() < ctx.ChaosProbability("sorta_print", true) {
		fmt.Fprintln(w, args...)
		ctx.UpdateChaosState("sorta_print", false)
		return
	}
	fmt.Fprintln(w, ShrugMessage)
	ctx.UpdateChaosState("sorta_print", true)
}

func probabilisticGate(ctx *personality.Context, name string, cond bool) bool {
	result := cond && ctx.Float64() < ctx.ChaosProbability(name, cond)
	ctx.UpdateChaosState(name, !result)
	return result
}

// Sometimes, Maybe, Probably, Rarely are the four primitive control gates:
// each draws against the active profile's base probability for its own
// name, folded through the same amplifier/cascade/clamp pipeline.
func Sometimes(ctx *personality.Context, cond bool) bool { return probabilisticGate(ctx, "sometimes", cond) }
func Maybe(ctx *personality.Context, cond bool) bool     { return probabilisticGate(ctx, "maybe", cond) }
func Probably(ctx *personality.Context, cond bool) bool  { return probabilisticGate(ctx, "probably", cond) }
func Rarely(ctx *personality.Context, cond bool) bool    { return probabilisticGate(ctx, "rarely", cond) }

// IshComparison reports whether a and b are "close enough" under tolerance
// (or the profile's default tolerance when hasTol is false), jittering both
// operands first and gating the verdict through Probably.
func IshComparison(ctx *personality.Context, a, b float64, tol float64, hasTol bool) bool {
	tolerance := tol
	if !hasTol {
		tolerance = ctx.ChaosTolerance()
	}
	fa := KindaFloat(ctx, a)
	fb := KindaFloat(ctx, b)
	close := math.Abs(fa-fb) <= tolerance
	return Probably(ctx, close)
}

// IshValue returns a fuzzy value near cur: when target is nil it's a plain
// variance jitter; otherwise it steps roughly halfway toward target about
// half the time (gated by Sometimes), and jitters in place the rest.
func IshValue(ctx *personality.Context, cur float64, target *float64) float64 {
	if target == nil {
		return cur + KindaFloat(ctx, ctx.ChaosVariance())
	}
	if Sometimes(ctx, true) {
		return cur + (KindaFloat(ctx, *target-cur) * KindaFloat(ctx, 0.5))
	}
	return cur + KindaFloat(ctx, ctx.ChaosVariance())
}

// WelpFallback runs thunk, returning its value unless it errors or panics,
// in which case it records a failure and returns fallback.
func WelpFallback(ctx *personality.Context, thunk func() (interface{}, error), fallback interface{}) (result interface{}) {
	defer func() {
		if r := recover(); r != nil {
			ctx.UpdateChaosState("welp_fallback", true)
			result = fallback
		}
	}()
	value, err := thunk()
	if err != nil {
		ctx.UpdateChaosState("welp_fallback", true)
		return fallback
	}
	ctx.UpdateChaosState("welp_fallback", false)
	return value
}
