package personality

// negativeConstructs are the constructs whose base probability represents a
// rare/bad outcome rather than a "do the normal thing" outcome — instability
// feedback pushes these in the opposite direction from the positive ones.
var negativeConstructs = map[string]bool{
	"rarely": true,
}

// ChaosProbability implements the amplifier -> cascade -> clamp pipeline:
// it looks up the construct's base probability on the active profile, pulls
// it toward or away from 0.5 by ChaosAmplifier, folds in the instability
// feedback via CascadeStrength, and clamps to [0,1].
//
// conditionTrue is the evaluated truth value of the construct's guard
// expression (used only by the amplifier's directional pull when
// amplifier < 1); pass true when there is no guard to evaluate.
func (c *Context) ChaosProbability(construct string, conditionTrue bool) float64 {
	c.mu.RLock()
	profile := c.profile
	instability := c.instabilityLevel
	c.mu.RUnlock()

	return computeChaosProbability(profile, instability, construct, conditionTrue)
}

func computeChaosProbability(profile ChaosProfile, instability float64, construct string, conditionTrue bool) float64 {
	p0, _ := profile.BaseProbability(construct)

	p1 := p0
	switch {
	case profile.ChaosAmplifier > 1:
		pull := profile.ChaosAmplifier - 1
		if pull > 1 {
			pull = 1
		}
		p1 = p0 - (p0-0.5)*pull
	case profile.ChaosAmplifier < 1:
		target := 0.05
		if conditionTrue {
			target = 0.95
		}
		p1 = p0 + (target-p0)*(1-profile.ChaosAmplifier)
	}

	p2 := p1
	if negativeConstructs[construct] {
		p2 = p1 + (1-p1)*instability*profile.CascadeStrength
	} else {
		p2 = p1 * (1 - instability*profile.CascadeStrength)
	}

	return clamp(p2, 0, 1)
}

// ChaosFuzzRange returns the profile's symmetric integer jitter bounds.
func (c *Context) ChaosFuzzRange() (lo, hi int) {
	p := c.Profile()
	return p.IntFuzzRange[0], p.IntFuzzRange[1]
}

// ChaosVariance returns the profile's float-jitter standard deviation.
func (c *Context) ChaosVariance() float64 {
	return c.Profile().FloatVariance
}

// ChaosTolerance returns the default ~ish comparison tolerance derived from
// the profile's float variance.
func (c *Context) ChaosTolerance() float64 {
	p := c.Profile()
	return p.FloatVariance * p.ToleranceFactor
}

// LoopParameters returns the (probability | variance | confidence) triple a
// probabilistic loop construct should draw from, falling back to the
// playful profile's parameters for a construct name the profile has none
// registered for.
func (c *Context) LoopParameters(construct string) LoopParams {
	p := c.Profile()
	if lp, ok := p.LoopParams[construct]; ok {
		return lp
	}
	return Profiles[defaultProfileName].LoopParams[construct]
}
