package personality

// driftState tracks one ~time drift variable's running random-walk offset,
// mirroring the _personality._drift entries the emitted Python keeps.
type driftState struct {
	offset float64
	sigma  float64
	cap    float64
	tick   uint64
}

// InitIntDrift registers name as a ~time drift int variable anchored at v.
// The walk is capped at max(1, |v|*0.5 + 1) so small seed values still get a
// usable drift range.
func (c *Context) InitIntDrift(name string, v int) {
	cap := float64(v) * 0.5
	if cap < 0 {
		cap = -cap
	}
	cap += 1
	if cap < 1 {
		cap = 1
	}
	c.initDrift(name, cap)
}

// InitFloatDrift registers name as a ~time drift float variable anchored at
// v, capped at |v|*0.5 + 1.
func (c *Context) InitFloatDrift(name string, v float64) {
	cap := v * 0.5
	if cap < 0 {
		cap = -cap
	}
	c.initDrift(name, cap+1.0)
}

func (c *Context) initDrift(name string, cap float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.drift == nil {
		c.drift = make(map[string]*driftState)
	}
	c.drift[name] = &driftState{
		offset: 0,
		sigma:  c.profile.FloatVariance,
		cap:    cap,
		tick:   c.executionCount,
	}
}

// DriftAccess returns v plus name's current random-walk offset, advancing
// the walk by one Gaussian step per execution tick elapsed since the last
// read — an untracked name (no prior Init*Drift call) returns v unchanged.
func (c *Context) DriftAccess(name string, v float64) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	state, ok := c.drift[name]
	if !ok {
		return v
	}

	ticks := c.executionCount - state.tick
	walk := 0.0
	for i := uint64(0); i < ticks; i++ {
		walk += c.rng.NormFloat64()
	}
	walk *= state.sigma

	bounded := clamp(state.offset+walk, -state.cap, state.cap)
	state.offset = bounded
	state.tick = c.executionCount
	return v + bounded
}
