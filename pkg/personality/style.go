package personality

// Style buckets ErrorSnarkLevel into the four message tones the emitted
// runtime and the transformer's own diagnostics pick from.
type Style int

const (
	StyleProfessional Style = iota
	StyleFriendly
	StyleSnarky
	StyleChaotic
)

func (s Style) String() string {
	switch s {
	case StyleProfessional:
		return "professional"
	case StyleFriendly:
		return "friendly"
	case StyleSnarky:
		return "snarky"
	case StyleChaotic:
		return "chaotic"
	default:
		return "professional"
	}
}

// ErrorMessageStyle buckets the active profile's ErrorSnarkLevel into one of
// the four tone quartiles.
func (c *Context) ErrorMessageStyle() Style {
	return styleForSnark(c.Profile().ErrorSnarkLevel)
}

func styleForSnark(snark float64) Style {
	switch {
	case snark < 0.25:
		return StyleProfessional
	case snark < 0.5:
		return StyleFriendly
	case snark < 0.75:
		return StyleSnarky
	default:
		return StyleChaotic
	}
}

// messageTemplates holds, per style and per failure kind, the phrasing the
// emitted runtime's fallback/assertion helpers report through. Kind names
// match the runtime helper that can fail: "welp_fallback", "ish_comparison",
// "assert_probability", "assert_eventually".
var messageTemplates = map[Style]map[string][]string{
	StyleProfessional: {
		"welp_fallback":      {"Primary expression failed; fallback value used."},
		"ish_comparison":     {"Fuzzy comparison evaluated outside tolerance."},
		"assert_probability": {"Observed rate fell outside the expected confidence interval."},
		"assert_eventually":  {"Condition did not reach the required confidence before the iteration cap."},
	},
	StyleFriendly: {
		"welp_fallback":      {"That didn't quite work, so we used the fallback instead.", "No worries — falling back to the backup value."},
		"ish_comparison":     {"Close, but not quite close enough this time."},
		"assert_probability": {"The rate we saw doesn't quite match what we expected — might be worth another look."},
		"assert_eventually":  {"Still waiting on that condition to settle; gave up after the iteration cap."},
	},
	StyleSnarky: {
		"welp_fallback":      {"Yeah, that blew up. Fallback it is.", "Primary value said nope; using the understudy."},
		"ish_comparison":     {"'Ish' has limits, and this missed them."},
		"assert_probability": {"The odds did not cooperate with your expectations."},
		"assert_eventually":  {"Gave it every chance. It never showed up."},
	},
	StyleChaotic: {
		"welp_fallback":      {"WELP. That's a fallback moment if I've ever seen one.", "Primary value evaporated. Plan B, engage."},
		"ish_comparison":     {"Ish-ly speaking? Nope, not even close."},
		"assert_probability": {"The chaos gods rolled against you on this one."},
		"assert_eventually":  {"Waited. Waited some more. Still nothing. Moving on."},
	},
}

// SelectMessage draws one templated message for the given failure kind in
// the context's current style, falling back to the professional template
// when the kind is unrecognized.
func (c *Context) SelectMessage(kind string) string {
	style := c.ErrorMessageStyle()
	options, ok := messageTemplates[style][kind]
	if !ok || len(options) == 0 {
		options = messageTemplates[StyleProfessional][kind]
	}
	if len(options) == 0 {
		return "operation did not complete as expected"
	}
	if len(options) == 1 {
		return options[0]
	}
	return options[c.Intn(len(options))]
}
