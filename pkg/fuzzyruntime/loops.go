package fuzzyruntime

import (
	"math"

	"github.com/kmayhew2020/kinda-lang-sub002/pkg/personality"
	"github.com/kmayhew2020/kinda-lang-sub002/pkg/stats"
)

// safeCond evaluates cond, treating any panic as a false guard — the Go
// mirror of the emitted Python's `except Exception: cond = False`.
func safeCond(cond func() bool) (result bool) {
	defer func() {
		if recover() != nil {
			result = false
		}
	}()
	return cond()
}

// SometimesWhile runs body while cond holds, but only continues each
// iteration at the profile's sometimes_while probability — a single miss
// ends the loop, the same "leaky while" semantics as the emitted Python.
func SometimesWhile(ctx *personality.Context, cond func() bool, body func()) {
	p := ctx.LoopParameters("sometimes_while").Probability
	for {
		if !safeCond(cond) {
			break
		}
		if ctx.Float64() < p {
			body()
		} else {
			break
		}
	}
}

// MaybeFor calls body on each item at the profile's maybe_for probability,
// independently per item — unlike SometimesWhile, a skipped item doesn't
// end the loop.
func MaybeFor[T any](ctx *personality.Context, items []T, body func(T)) {
	p := ctx.LoopParameters("maybe_for").Probability
	for _, item := range items {
		if ctx.Float64() < p {
			body(item)
		}
	}
}

// KindaRepeat runs body a fuzzy number of times: n perturbed by a Gaussian
// sample scaled by the profile's repeat-count variance, floored at 1 when
// n itself is at least 1 (so a nonzero repeat count never fuzzes away to
// zero iterations), and at 0 otherwise.
func KindaRepeat(ctx *personality.Context, n int, body func()) {
	variancePct := ctx.LoopParameters("kinda_repeat").VariancePct
	if variancePct == 0 {
		variancePct = 0.1
	}
	sigma := variancePct * float64(n)
	k := n
	if sigma > 0 {
		k = int(math.Round(ctx.NormFloat64()*sigma + float64(n)))
	}
	floor := 0
	if n >= 1 {
		floor = 1
	}
	if k < floor {
		k = floor
	}
	for i := 0; i < k; i++ {
		body()
	}
}

// EventuallyUntil runs body, re-checking cond each iteration, until the
// Wilson lower bound on the observed success rate reaches the profile's
// configured confidence (spec §4.8), tracked over a sliding window of the
// most recent 100 observations. maxIterations <= 0 means no safety cap;
// otherwise hitting it counts as a failed termination.
func EventuallyUntil(ctx *personality.Context, cond func() bool, body func(), maxIterations int) {
	confidence := ctx.LoopParameters("eventually_until").Confidence
	var window []bool
	trials, successes, iterations := 0, 0, 0

	for {
		observed := safeCond(cond)
		window = append(window, observed)
		if len(window) > 100 {
			dropped := window[0]
			window = window[1:]
			if dropped {
				successes--
			}
			trials--
		}
		trials++
		if observed {
			successes++
		}
		iterations++

		if trials >= 3 {
			lo, _ := stats.WilsonInterval(successes, trials, confidence)
			if lo >= confidence {
				break
			}
		}
		if maxIterations > 0 && iterations >= maxIterations {
			ctx.UpdateChaosState("eventually_until", true)
			break
		}
		body()
	}
}

// Sorta is the composite control construct: it runs body if either
// Sometimes or Maybe accepts cond, reporting whether it ran.
func Sorta(ctx *personality.Context, cond bool, body func()) bool {
	if Sometimes(ctx, cond) || Maybe(ctx, cond) {
		body()
		return true
	}
	return false
}

// Ish is the composite value/comparison construct: called with one operand
// it's a value jitter (IshValue); called with two it's a tolerance
// comparison (IshComparison) — the same dynamic-return shape as the
// emitted Python's `ish(a, b_or_none=None, tol=None)`.
func Ish(ctx *personality.Context, a float64, b *float64, tol *float64) interface{} {
	if b == nil {
		return IshValue(ctx, a, nil)
	}
	hasTol := tol != nil
	t := 0.0
	if hasTol {
		t = *tol
	}
	return IshComparison(ctx, a, *b, t, hasTol)
}
