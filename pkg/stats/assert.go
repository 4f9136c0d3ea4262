package stats

import "fmt"

// AssertionError reports a failed statistical assertion: for
// AssertProbability, the claim fell outside the tolerance-widened Wilson
// interval around the observed rate; for AssertEventually, the interval's
// lower bound had not reached the confidence target.
type AssertionError struct {
	Trials     int
	Successes  int
	Confidence float64
	Lo, Hi     float64
	Claim      float64
	Tolerance  float64
}

func (e *AssertionError) Error() string {
	return fmt.Sprintf("observed success rate %.4f (interval [%.4f, %.4f] at %.2f confidence, tolerance %.4f) does not support claim %.4f over %d trials",
		float64(e.Successes)/float64(e.Trials), e.Lo, e.Hi, e.Confidence, e.Tolerance, e.Claim, e.Trials)
}

// AssertProbability checks that successes/trials is statistically
// consistent with claim at the given confidence: claim must fall within the
// Wilson interval around the observed rate, widened on both ends by
// tolerance (spec §4.8's `assert_probability(thunk, expected, tolerance,
// samples)` — passes iff expected lies within the interval adjusted by
// tolerance). It is pure with respect to personality state — callers draw
// the samples themselves (e.g. via repeated fuzzyruntime.Sometimes calls)
// and pass in the tally.
func AssertProbability(successes, trials int, claim, tolerance, confidence float64) error {
	lo, hi := WilsonInterval(successes, trials, confidence)
	if claim < lo-tolerance || claim > hi+tolerance {
		return &AssertionError{
			Trials: trials, Successes: successes, Confidence: confidence,
			Lo: lo, Hi: hi, Claim: claim, Tolerance: tolerance,
		}
	}
	return nil
}

// AssertEventually checks that the Wilson interval's lower bound for
// successes/trials has reached confidence — the same termination
// condition ~eventually_until uses, exposed standalone so tests can assert
// it without driving a full loop construct.
func AssertEventually(successes, trials int, confidence float64) error {
	if trials < 3 {
		return fmt.Errorf("stats: eventually assertion needs at least 3 trials, got %d", trials)
	}
	lo, _ := WilsonInterval(successes, trials, confidence)
	if lo < confidence {
		return &AssertionError{
			Trials: trials, Successes: successes, Confidence: confidence,
			Lo: lo, Claim: confidence,
		}
	}
	return nil
}
