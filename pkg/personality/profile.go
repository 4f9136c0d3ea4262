// Package personality implements the chaos-profile and instability-feedback
// engine that every fuzzy construct consults before it decides what to do.
package personality

// LoopParams is the (probability | variance | confidence) triple a
// probabilistic loop construct draws from a profile.
type LoopParams struct {
	// Probability is the per-iteration continue/execute probability used by
	// ~sometimes_while and ~maybe_for.
	Probability float64

	// VariancePct is the repeat-count variance percentage used by
	// ~kinda_repeat(n) — the standard deviation of the draw is VariancePct*n.
	VariancePct float64

	// Confidence is the Wilson-score confidence threshold ~eventually_until
	// waits for before terminating.
	Confidence float64
}

// ChaosProfile is an immutable bundle of base probabilities, variances, and
// tone parameters. The four built-ins (Reliable, Cautious, Playful, Chaotic)
// are registered in the package-level Profiles table at init time.
type ChaosProfile struct {
	Name string

	SometimesBase float64
	MaybeBase     float64
	ProbablyBase  float64
	RarelyBase    float64

	// IntFuzzRange is the symmetric [lo, hi] integer jitter range for kinda_int.
	IntFuzzRange [2]int

	// FloatVariance is the non-negative standard deviation used by kinda_float.
	FloatVariance float64

	// ToleranceFactor scales FloatVariance into the default ~ish tolerance.
	ToleranceFactor float64

	// ChaosAmplifier pulls probabilities toward 0.5 (>1) or toward their
	// extreme (<1).
	ChaosAmplifier float64

	// CascadeStrength is the [0,1] weight instability feedback carries into
	// later probability/variance calculations.
	CascadeStrength float64

	// ErrorSnarkLevel in [0,1] selects the error-message tone bucket.
	ErrorSnarkLevel float64

	// LoopParams is keyed by construct name: "sometimes_while", "maybe_for",
	// "kinda_repeat", "eventually_until".
	LoopParams map[string]LoopParams
}

// BaseProbability returns the construct's base probability and whether the
// construct name was recognized. Unknown constructs fall back to the
// "sometimes" base per the Personality Engine's total-function contract.
func (p ChaosProfile) BaseProbability(construct string) (float64, bool) {
	switch construct {
	case "sometimes", "sometimes_while":
		return p.SometimesBase, true
	case "maybe", "maybe_for":
		return p.MaybeBase, true
	case "probably":
		return p.ProbablyBase, true
	case "rarely":
		return p.RarelyBase, true
	default:
		return p.SometimesBase, false
	}
}

// Profiles is the read-only registry of built-in chaos profiles.
var Profiles = map[string]ChaosProfile{
	"reliable": {
		Name:            "reliable",
		SometimesBase:   0.90,
		MaybeBase:       0.75,
		ProbablyBase:    0.85,
		RarelyBase:      0.15,
		IntFuzzRange:    [2]int{-1, 1},
		FloatVariance:   0.05,
		ToleranceFactor: 2.0,
		ChaosAmplifier:  0.8,
		CascadeStrength: 0.2,
		ErrorSnarkLevel: 0.05,
		LoopParams: map[string]LoopParams{
			"sometimes_while":  {Probability: 0.90},
			"maybe_for":        {Probability: 0.85},
			"kinda_repeat":     {VariancePct: 0.05},
			"eventually_until": {Confidence: 0.95},
		},
	},
	"cautious": {
		Name:            "cautious",
		SometimesBase:   0.70,
		MaybeBase:       0.55,
		ProbablyBase:    0.75,
		RarelyBase:      0.25,
		IntFuzzRange:    [2]int{-1, 1},
		FloatVariance:   0.10,
		ToleranceFactor: 2.0,
		ChaosAmplifier:  0.9,
		CascadeStrength: 0.35,
		ErrorSnarkLevel: 0.25,
		LoopParams: map[string]LoopParams{
			"sometimes_while":  {Probability: 0.70},
			"maybe_for":        {Probability: 0.65},
			"kinda_repeat":     {VariancePct: 0.10},
			"eventually_until": {Confidence: 0.90},
		},
	},
	"playful": {
		Name:            "playful",
		SometimesBase:   0.50,
		MaybeBase:       0.50,
		ProbablyBase:    0.60,
		RarelyBase:      0.35,
		IntFuzzRange:    [2]int{-2, 2},
		FloatVariance:   0.20,
		ToleranceFactor: 1.5,
		ChaosAmplifier:  1.2,
		CascadeStrength: 0.5,
		ErrorSnarkLevel: 0.6,
		LoopParams: map[string]LoopParams{
			"sometimes_while":  {Probability: 0.50},
			"maybe_for":        {Probability: 0.50},
			"kinda_repeat":     {VariancePct: 0.20},
			"eventually_until": {Confidence: 0.80},
		},
	},
	"chaotic": {
		Name:            "chaotic",
		SometimesBase:   0.30,
		MaybeBase:       0.50,
		ProbablyBase:    0.40,
		RarelyBase:      0.50,
		IntFuzzRange:    [2]int{-3, 3},
		FloatVariance:   0.40,
		ToleranceFactor: 1.25,
		ChaosAmplifier:  1.8,
		CascadeStrength: 0.8,
		ErrorSnarkLevel: 0.95,
		LoopParams: map[string]LoopParams{
			"sometimes_while":  {Probability: 0.30},
			"maybe_for":        {Probability: 0.50},
			"kinda_repeat":     {VariancePct: 0.35},
			"eventually_until": {Confidence: 0.70},
		},
	},
}

// defaultProfileName is used whenever a requested mood can't be resolved.
const defaultProfileName = "playful"
