package personality

import (
	"crypto/rand"
	"encoding/binary"
	mathrand "math/rand"
	"sync"
)

// Context is the single mutable resource every fuzzy construct shares: the
// active chaos profile, the instability feedback level, the execution
// counter, and the canonical RNG. It is safe for concurrent use, mirroring
// the mutex-guarded shape of emergency.Controller in the teacher repo.
type Context struct {
	mu sync.RWMutex

	profile          ChaosProfile
	instabilityLevel float64
	executionCount   uint64
	drawCounts       map[string]uint64

	rng   *mathrand.Rand
	seed  int64
	drift map[string]*driftState
}

// NewContext builds a Context for the named mood, falling back to the
// playful profile if the name is unrecognized, and seeding from system
// entropy. The fallback is silent: no diagnostic is emitted or returned.
func NewContext(mood string) *Context {
	profile, ok := Profiles[mood]
	if !ok {
		profile = Profiles[defaultProfileName]
	}
	seed := entropySeed()
	return &Context{
		profile:    profile,
		drawCounts: make(map[string]uint64),
		rng:        mathrand.New(mathrand.NewSource(seed)),
		seed:       seed,
	}
}

// NewContextWithSeed builds a Context for the named mood with a caller-
// supplied seed, for reproducible replay of (profile, seed, source).
func NewContextWithSeed(mood string, seed int64) (*Context, error) {
	profile, ok := Profiles[mood]
	if !ok {
		return nil, &PersonalityError{Op: "new_context", Err: &UnknownProfileError{Name: mood}}
	}
	return &Context{
		profile:    profile,
		drawCounts: make(map[string]uint64),
		rng:        mathrand.New(mathrand.NewSource(seed)),
		seed:       seed,
	}, nil
}

func entropySeed() int64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand failing is effectively unrecoverable on any real
		// platform; fall back to a fixed seed rather than panic so the
		// engine stays total.
		return 1
	}
	return int64(binary.LittleEndian.Uint64(buf[:]))
}

// Snapshot is an immutable, lock-free copy of the context's observable
// state, used for reporting and telemetry export.
type Snapshot struct {
	Profile          ChaosProfile
	InstabilityLevel float64
	ExecutionCount   uint64
	Seed             int64
	DrawCounts       map[string]uint64
}

// Snapshot returns a consistent read of the context's current state.
func (c *Context) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	draws := make(map[string]uint64, len(c.drawCounts))
	for k, v := range c.drawCounts {
		draws[k] = v
	}
	return Snapshot{
		Profile:          c.profile,
		InstabilityLevel: c.instabilityLevel,
		ExecutionCount:   c.executionCount,
		Seed:             c.seed,
		DrawCounts:       draws,
	}
}

// SetMood atomically switches the active profile. It does not reset
// instability or the execution counter — only Seed does that, so a mood
// change mid-run keeps the feedback history it has already accumulated.
func (c *Context) SetMood(name string) error {
	profile, ok := Profiles[name]
	if !ok {
		return &PersonalityError{Op: "set_mood", Err: &UnknownProfileError{Name: name}}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.profile = profile
	return nil
}

// SetMoodOrFallback applies SetMood and, on an unknown mood, falls back to
// the playful profile instead of returning an error — matching the engine's
// "never fatal" policy for bad personality input. It returns the mood that
// actually ended up active plus any fallback diagnostic.
func (c *Context) SetMoodOrFallback(name string) (active string, fallbackErr error) {
	if err := c.SetMood(name); err != nil {
		_ = c.SetMood(defaultProfileName)
		return defaultProfileName, err
	}
	return name, nil
}

// Seed resets the RNG, instability level, execution counter, and draw
// counts, making the context a fresh, reproducible starting point for the
// given seed value.
func (c *Context) Seed(seed int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rng = mathrand.New(mathrand.NewSource(seed))
	c.seed = seed
	c.instabilityLevel = 0
	c.executionCount = 0
	c.drawCounts = make(map[string]uint64)
	c.drift = make(map[string]*driftState)
}

// Float64 draws the next uniform float in [0,1) from the canonical RNG.
func (c *Context) Float64() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rng.Float64()
}

// NormFloat64 draws the next standard-normal sample from the canonical RNG.
func (c *Context) NormFloat64() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rng.NormFloat64()
}

// Intn draws a uniform int in [0,n) from the canonical RNG.
func (c *Context) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rng.Intn(n)
}

// Profile returns the currently active chaos profile.
func (c *Context) Profile() ChaosProfile {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.profile
}

// InstabilityLevel returns the current instability feedback value in [0,1].
func (c *Context) InstabilityLevel() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.instabilityLevel
}

// UpdateChaosState folds the outcome of one construct execution into the
// instability feedback loop and bumps the execution/draw counters. It is
// the only mutator the fuzzy runtime primitives call after a draw.
func (c *Context) UpdateChaosState(construct string, failed bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delta := -0.05
	if failed {
		delta = 0.10
	}
	c.instabilityLevel = clamp(c.instabilityLevel+delta*c.profile.CascadeStrength, 0, 1)
	c.executionCount++
	c.drawCounts[construct]++
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
